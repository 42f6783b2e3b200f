package queue

import (
	"time"

	"github.com/joseph-ayodele/orderflow/constants"
)

// PriorityPolicy assigns a priority tier from caller intent plus cheap
// fairness heuristics, and maps the low tiers to a fixed enqueue delay so
// bursty urgent work is not starved behind bulk jobs.
type PriorityPolicy struct {
	// LargePayloadBytes downgrades one tier when the payload exceeds it.
	LargePayloadBytes int
	LowDelay          time.Duration
	BatchDelay        time.Duration
}

// Assign combines the requested tier with heuristics: urgent requests are
// raised one tier, oversized payloads lowered one, and jobs already being
// retried are raised one so escalated work drains first.
func (p PriorityPolicy) Assign(requested constants.Priority, urgent bool, payloadBytes, attemptsMade int) constants.Priority {
	pri := requested
	if !pri.Valid() {
		pri = constants.PriorityNormal
	}
	if urgent {
		pri = pri.Raise()
	}
	if p.LargePayloadBytes > 0 && payloadBytes > p.LargePayloadBytes {
		pri = pri.Lower()
	}
	if attemptsMade > 0 {
		pri = pri.Raise()
	}
	return pri
}

// EnqueueDelay returns the extra delay applied before a job of the given
// tier becomes poppable.
func (p PriorityPolicy) EnqueueDelay(pri constants.Priority) time.Duration {
	switch pri {
	case constants.PriorityLow:
		return p.LowDelay
	case constants.PriorityBatch:
		return p.BatchDelay
	default:
		return 0
	}
}
