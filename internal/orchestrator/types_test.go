package orchestrator

import (
	"encoding/json"
	"testing"

	"github.com/joseph-ayodele/orderflow/constants"
)

func TestNextStage(t *testing.T) {
	plan := constants.DefaultPlan()

	next, err := nextStage(plan, constants.StageExtract)
	if err != nil || next != constants.StagePersist {
		t.Errorf("nextStage(extract) = %q, %v, want persist", next, err)
	}
	next, err = nextStage(plan, constants.StageSync)
	if err != nil || next != "" {
		t.Errorf("nextStage(sync) = %q, %v, want terminal", next, err)
	}
	if _, err := nextStage(plan, "bogus"); err == nil {
		t.Error("nextStage accepted a stage outside the plan")
	}
}

func TestPriorResult(t *testing.T) {
	plan := constants.DefaultPlan()
	results := map[string]json.RawMessage{
		constants.StageExtract: json.RawMessage(`{"fields":{}}`),
		constants.StagePersist: json.RawMessage(`{"order_id":"x"}`),
	}

	if got := priorResult(plan, constants.StageExtract, results); got != nil {
		t.Errorf("first stage prior = %s, want nil", got)
	}
	if got := priorResult(plan, constants.StagePersist, results); string(got) != `{"fields":{}}` {
		t.Errorf("persist prior = %s, want extract result", got)
	}
	if got := priorResult(plan, constants.StageSync, results); string(got) != `{"order_id":"x"}` {
		t.Errorf("sync prior = %s, want persist result", got)
	}
	if got := priorResult(plan, "bogus", results); got != nil {
		t.Errorf("unknown stage prior = %s, want nil", got)
	}
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{5, 3, 100},
		{1, 0, 0},
		{1, 6, 17},
		{1, 4, 25},
	}
	for _, tc := range cases {
		if got := progressPercent(tc.completed, tc.total); got != tc.want {
			t.Errorf("progressPercent(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
		}
	}
}

func TestStatusDataRoundTrip(t *testing.T) {
	sd := StatusData{
		Message:      "waiting for review",
		CanRetry:     true,
		ReviewStage:  constants.StageExtract,
		ReviewReason: "confidence 0.40 below threshold 0.60",
		StageResults: map[string]json.RawMessage{
			constants.StageExtract: json.RawMessage(`{"confidence":0.4}`),
		},
	}
	got := decodeStatusData(sd.encode())
	if got.Message != sd.Message || !got.CanRetry || got.ReviewStage != sd.ReviewStage {
		t.Errorf("round trip = %+v", got)
	}
	if string(got.StageResults[constants.StageExtract]) != `{"confidence":0.4}` {
		t.Errorf("stage results lost: %s", got.StageResults[constants.StageExtract])
	}
}

func TestDecodeStatusDataToleratesGarbage(t *testing.T) {
	for _, raw := range []string{"", "null", "{bad"} {
		sd := decodeStatusData(json.RawMessage(raw))
		if sd.StageResults == nil {
			t.Errorf("decodeStatusData(%q) returned nil StageResults map", raw)
		}
	}
}

func TestDecodeInputRequiresPlan(t *testing.T) {
	if _, err := decodeInput(json.RawMessage(`{"document_id":"00000000-0000-0000-0000-000000000001"}`)); err == nil {
		t.Error("decodeInput accepted input without a plan")
	}
	if _, err := decodeInput(json.RawMessage(`{bad`)); err == nil {
		t.Error("decodeInput accepted malformed input")
	}
}
