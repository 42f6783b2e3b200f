package orchestrator

import (
	"encoding/json"
	"fmt"

	"github.com/joseph-ayodele/orderflow/internal/stages"
)

// ReviewPolicy decides whether a successful stage result should pause the
// workflow for a human instead of advancing. The returned reason is shown to
// the reviewer.
type ReviewPolicy interface {
	NeedsReview(stage string, result json.RawMessage) (bool, string)
}

// ConfidencePolicy pauses a workflow when a stage reports a confidence below
// its threshold. Stages without a threshold, and results that carry no
// confidence figure, always pass.
type ConfidencePolicy struct {
	Thresholds map[string]float32
}

func (p ConfidencePolicy) NeedsReview(stage string, result json.RawMessage) (bool, string) {
	threshold, ok := p.Thresholds[stage]
	if !ok {
		return false, ""
	}
	env := stages.ParseEnvelope(result)
	if env.Confidence == nil {
		return false, ""
	}
	if *env.Confidence < threshold {
		return true, fmt.Sprintf("%s confidence %.2f below threshold %.2f", stage, *env.Confidence, threshold)
	}
	return false, ""
}

// NoReviewPolicy never pauses. Used by pipelines that run fully unattended.
type NoReviewPolicy struct{}

func (NoReviewPolicy) NeedsReview(string, json.RawMessage) (bool, string) { return false, "" }
