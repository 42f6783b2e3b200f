// Package stages defines the payload contract for each pipeline stage and
// adapts domain collaborators (AI extraction, persistence, platform sync)
// into queue handlers.
package stages

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
)

// ExtractPayload carries the document reference handed to the AI extraction
// stage. StorageKey locates the raw upload; ContentType tells the extractor
// which parser path to take.
type ExtractPayload struct {
	DocumentID  uuid.UUID `json:"document_id"`
	StorageKey  string    `json:"storage_key"`
	ContentType string    `json:"content_type"`
	Filename    string    `json:"filename,omitempty"`
}

// PersistPayload carries the extraction output into the persistence stage.
// Extraction is the prior stage's result verbatim.
type PersistPayload struct {
	DocumentID uuid.UUID       `json:"document_id"`
	Extraction json.RawMessage `json:"extraction"`
}

// SyncPayload carries the persisted order into the commerce-platform sync
// stage. Order is the persist stage's result verbatim.
type SyncPayload struct {
	DocumentID uuid.UUID       `json:"document_id"`
	Order      json.RawMessage `json:"order"`
}

// ImagePayload feeds the optional image preprocessing stage that runs ahead
// of extraction for photographed documents.
type ImagePayload struct {
	DocumentID  uuid.UUID `json:"document_id"`
	StorageKey  string    `json:"storage_key"`
	ContentType string    `json:"content_type"`
}

// BroadcastPayload feeds the status broadcast stage.
type BroadcastPayload struct {
	DocumentID uuid.UUID `json:"document_id"`
	Message    string    `json:"message,omitempty"`
}

// DecodePayload unmarshals raw job payload bytes into the typed payload for
// the given stage. Unknown stages are rejected so a mis-routed job fails
// loudly instead of running against the wrong contract.
func DecodePayload(stage string, raw json.RawMessage) (any, error) {
	var (
		v   any
		err error
	)
	switch stage {
	case constants.StageExtract:
		p := ExtractPayload{}
		err = json.Unmarshal(raw, &p)
		v = p
	case constants.StagePersist:
		p := PersistPayload{}
		err = json.Unmarshal(raw, &p)
		v = p
	case constants.StageSync:
		p := SyncPayload{}
		err = json.Unmarshal(raw, &p)
		v = p
	case constants.StageImage:
		p := ImagePayload{}
		err = json.Unmarshal(raw, &p)
		v = p
	case constants.StageBroadcast:
		p := BroadcastPayload{}
		err = json.Unmarshal(raw, &p)
		v = p
	default:
		return nil, fmt.Errorf("no payload contract for stage %q", stage)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", stage, err)
	}
	return v, nil
}

// PayloadSchema returns the JSON-Schema (draft 2020-12 subset) enforced at
// enqueue time for the given stage, as a generic map, or nil when the stage
// carries no schema.
func PayloadSchema(stage string) map[string]any {
	switch stage {
	case constants.StageExtract:
		return objectSchema(
			map[string]any{
				"document_id":  uuidProp(),
				"storage_key":  map[string]any{"type": "string", "minLength": 1},
				"content_type": map[string]any{"type": "string", "minLength": 1},
				"filename":     map[string]any{"type": "string"},
			},
			[]string{"document_id", "storage_key", "content_type"},
		)
	case constants.StagePersist:
		return objectSchema(
			map[string]any{
				"document_id": uuidProp(),
				"extraction":  map[string]any{"type": "object"},
			},
			[]string{"document_id", "extraction"},
		)
	case constants.StageSync:
		return objectSchema(
			map[string]any{
				"document_id": uuidProp(),
				"order":       map[string]any{"type": "object"},
			},
			[]string{"document_id", "order"},
		)
	case constants.StageImage:
		return objectSchema(
			map[string]any{
				"document_id":  uuidProp(),
				"storage_key":  map[string]any{"type": "string", "minLength": 1},
				"content_type": map[string]any{"type": "string", "minLength": 1},
			},
			[]string{"document_id", "storage_key", "content_type"},
		)
	case constants.StageBroadcast:
		return objectSchema(
			map[string]any{
				"document_id": uuidProp(),
				"message":     map[string]any{"type": "string"},
			},
			[]string{"document_id"},
		)
	}
	return nil
}

func objectSchema(props map[string]any, required []string) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func uuidProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`,
	}
}
