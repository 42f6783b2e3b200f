package orchestrator

import (
	"encoding/json"
	"testing"

	"github.com/joseph-ayodele/orderflow/constants"
)

func TestConfidencePolicy(t *testing.T) {
	p := ConfidencePolicy{Thresholds: map[string]float32{constants.StageExtract: 0.6}}

	tests := []struct {
		name   string
		stage  string
		result string
		want   bool
	}{
		{"below threshold pauses", constants.StageExtract, `{"confidence":0.40}`, true},
		{"above threshold passes", constants.StageExtract, `{"confidence":0.95}`, false},
		{"exactly at threshold passes", constants.StageExtract, `{"confidence":0.60}`, false},
		{"no confidence figure passes", constants.StageExtract, `{"fields":{}}`, false},
		{"unthresholded stage passes", constants.StageSync, `{"confidence":0.01}`, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			needed, reason := p.NeedsReview(tc.stage, json.RawMessage(tc.result))
			if needed != tc.want {
				t.Errorf("NeedsReview = %v, want %v", needed, tc.want)
			}
			if needed && reason == "" {
				t.Error("paused with an empty reason")
			}
		})
	}
}

func TestNoReviewPolicy(t *testing.T) {
	if needed, _ := (NoReviewPolicy{}).NeedsReview(constants.StageExtract, json.RawMessage(`{"confidence":0}`)); needed {
		t.Error("NoReviewPolicy paused a workflow")
	}
}
