package stages

import "encoding/json"

// ExtractionResult is the extract stage's output: the structured purchase
// order fields plus the model's overall confidence. Low-confidence results
// pause the workflow for human review before persistence runs.
type ExtractionResult struct {
	Fields       json.RawMessage `json:"fields"`
	SupplierName string          `json:"supplier_name,omitempty"`
	OrderNumber  string          `json:"order_number,omitempty"`
	LineItems    int             `json:"line_items,omitempty"`
	Confidence   float32         `json:"confidence"`
	Summary      string          `json:"summary,omitempty"`
}

// PersistResult is the persist stage's output.
type PersistResult struct {
	OrderID    string  `json:"order_id"`
	Created    bool    `json:"created"`
	Confidence float32 `json:"confidence,omitempty"`
	Summary    string  `json:"summary,omitempty"`
}

// SyncResult is the sync stage's output.
type SyncResult struct {
	PlatformOrderID string `json:"platform_order_id"`
	Summary         string `json:"summary,omitempty"`
}

// ImageResult is the image preprocessing stage's output: the storage key of
// the normalized artifact extraction should read instead of the original.
type ImageResult struct {
	StorageKey string `json:"storage_key"`
	Summary    string `json:"summary,omitempty"`
}

// ResultEnvelope is the subset of any stage result the orchestrator inspects
// when deciding whether the workflow needs human review.
type ResultEnvelope struct {
	Confidence *float32 `json:"confidence,omitempty"`
	Summary    string   `json:"summary,omitempty"`
}

// ParseEnvelope reads the envelope fields out of a raw stage result. A result
// that is not an object, or carries no envelope fields, yields a zero
// envelope, never an error: stages are free to return opaque results.
func ParseEnvelope(raw json.RawMessage) ResultEnvelope {
	var env ResultEnvelope
	if len(raw) == 0 {
		return env
	}
	_ = json.Unmarshal(raw, &env)
	return env
}
