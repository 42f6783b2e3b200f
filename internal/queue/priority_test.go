package queue

import (
	"testing"
	"time"

	"github.com/joseph-ayodele/orderflow/constants"
)

func TestPriorityAssign(t *testing.T) {
	p := PriorityPolicy{LargePayloadBytes: 1024}

	tests := []struct {
		name      string
		requested constants.Priority
		urgent    bool
		bytes     int
		attempts  int
		want      constants.Priority
	}{
		{"plain normal", constants.PriorityNormal, false, 10, 0, constants.PriorityNormal},
		{"urgent raises one tier", constants.PriorityNormal, true, 10, 0, constants.PriorityHigh},
		{"urgent saturates at critical", constants.PriorityCritical, true, 10, 0, constants.PriorityCritical},
		{"oversized payload lowers one tier", constants.PriorityNormal, false, 2048, 0, constants.PriorityLow},
		{"urgent and oversized cancel out", constants.PriorityNormal, true, 2048, 0, constants.PriorityNormal},
		{"retry raises one tier", constants.PriorityLow, false, 10, 1, constants.PriorityNormal},
		{"unknown tier treated as normal", constants.Priority("bogus"), false, 10, 0, constants.PriorityNormal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Assign(tc.requested, tc.urgent, tc.bytes, tc.attempts)
			if got != tc.want {
				t.Errorf("Assign = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPriorityAssignIgnoresSizeWhenUnconfigured(t *testing.T) {
	p := PriorityPolicy{}
	if got := p.Assign(constants.PriorityNormal, false, 1<<30, 0); got != constants.PriorityNormal {
		t.Errorf("Assign = %q, want %q", got, constants.PriorityNormal)
	}
}

func TestEnqueueDelay(t *testing.T) {
	p := PriorityPolicy{LowDelay: 10 * time.Second, BatchDelay: time.Minute}
	if d := p.EnqueueDelay(constants.PriorityCritical); d != 0 {
		t.Errorf("critical delay = %s, want 0", d)
	}
	if d := p.EnqueueDelay(constants.PriorityNormal); d != 0 {
		t.Errorf("normal delay = %s, want 0", d)
	}
	if d := p.EnqueueDelay(constants.PriorityLow); d != 10*time.Second {
		t.Errorf("low delay = %s, want 10s", d)
	}
	if d := p.EnqueueDelay(constants.PriorityBatch); d != time.Minute {
		t.Errorf("batch delay = %s, want 1m", d)
	}
}
