package stages

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
)

// DocumentRef is the slice of workflow input every stage payload is built
// from.
type DocumentRef struct {
	DocumentID  uuid.UUID
	StorageKey  string
	ContentType string
	Filename    string
}

// BuildPayload constructs the payload for a stage from the workflow's
// document reference and the prior stage's result. The prior result threads
// through untouched where the next stage consumes it: extraction output feeds
// persist, persist output feeds sync, and image preprocessing rewrites the
// storage key extraction reads from.
func BuildPayload(stage string, doc DocumentRef, prior json.RawMessage) (json.RawMessage, error) {
	switch stage {
	case constants.StageExtract:
		p := ExtractPayload{
			DocumentID:  doc.DocumentID,
			StorageKey:  doc.StorageKey,
			ContentType: doc.ContentType,
			Filename:    doc.Filename,
		}
		if len(prior) > 0 {
			var img ImageResult
			if err := json.Unmarshal(prior, &img); err == nil && img.StorageKey != "" {
				p.StorageKey = img.StorageKey
			}
		}
		return json.Marshal(p)
	case constants.StagePersist:
		if len(prior) == 0 {
			return nil, fmt.Errorf("persist stage needs an extraction result")
		}
		return json.Marshal(PersistPayload{DocumentID: doc.DocumentID, Extraction: prior})
	case constants.StageSync:
		if len(prior) == 0 {
			return nil, fmt.Errorf("sync stage needs a persisted order")
		}
		return json.Marshal(SyncPayload{DocumentID: doc.DocumentID, Order: prior})
	case constants.StageImage:
		return json.Marshal(ImagePayload{
			DocumentID:  doc.DocumentID,
			StorageKey:  doc.StorageKey,
			ContentType: doc.ContentType,
		})
	case constants.StageBroadcast:
		return json.Marshal(BroadcastPayload{DocumentID: doc.DocumentID})
	}
	return nil, fmt.Errorf("no payload contract for stage %q", stage)
}
