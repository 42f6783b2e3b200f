package stages

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/internal/queue"
)

// Extractor runs AI extraction over an uploaded purchase order document.
// Implementations classify their own failures with queue.Transient and
// queue.Permanent; unclassified errors are treated as transient.
type Extractor interface {
	Extract(ctx context.Context, merchantID uuid.UUID, p ExtractPayload, report queue.ProgressReporter) (*ExtractionResult, error)
}

// Persister writes extracted purchase order data to durable storage.
type Persister interface {
	Persist(ctx context.Context, merchantID uuid.UUID, p PersistPayload) (*PersistResult, error)
}

// Syncer pushes a persisted purchase order to the merchant's commerce
// platform. Rate-limit rejections should come back as transient failures so
// the queue's backoff absorbs them.
type Syncer interface {
	Sync(ctx context.Context, merchantID uuid.UUID, p SyncPayload) (*SyncResult, error)
}

// ImageProcessor normalizes photographed documents before extraction.
type ImageProcessor interface {
	Process(ctx context.Context, merchantID uuid.UUID, p ImagePayload) (*ImageResult, error)
}

// Broadcaster pushes an out-of-band status notification for a document.
type Broadcaster interface {
	Broadcast(ctx context.Context, merchantID uuid.UUID, p BroadcastPayload) error
}

// ExtractHandler adapts an Extractor to the queue handler contract.
func ExtractHandler(x Extractor) queue.Handler {
	return func(ctx context.Context, job *queue.Job, report queue.ProgressReporter) (json.RawMessage, error) {
		var p ExtractPayload
		if err := decode(job.Payload, &p); err != nil {
			return nil, err
		}
		result, err := x.Extract(ctx, job.MerchantID, p, report)
		if err != nil {
			return nil, err
		}
		return marshalResult(result)
	}
}

// PersistHandler adapts a Persister to the queue handler contract.
func PersistHandler(p Persister) queue.Handler {
	return func(ctx context.Context, job *queue.Job, _ queue.ProgressReporter) (json.RawMessage, error) {
		var payload PersistPayload
		if err := decode(job.Payload, &payload); err != nil {
			return nil, err
		}
		result, err := p.Persist(ctx, job.MerchantID, payload)
		if err != nil {
			return nil, err
		}
		return marshalResult(result)
	}
}

// SyncHandler adapts a Syncer to the queue handler contract.
func SyncHandler(s Syncer) queue.Handler {
	return func(ctx context.Context, job *queue.Job, _ queue.ProgressReporter) (json.RawMessage, error) {
		var payload SyncPayload
		if err := decode(job.Payload, &payload); err != nil {
			return nil, err
		}
		result, err := s.Sync(ctx, job.MerchantID, payload)
		if err != nil {
			return nil, err
		}
		return marshalResult(result)
	}
}

// ImageHandler adapts an ImageProcessor to the queue handler contract.
func ImageHandler(ip ImageProcessor) queue.Handler {
	return func(ctx context.Context, job *queue.Job, _ queue.ProgressReporter) (json.RawMessage, error) {
		var payload ImagePayload
		if err := decode(job.Payload, &payload); err != nil {
			return nil, err
		}
		result, err := ip.Process(ctx, job.MerchantID, payload)
		if err != nil {
			return nil, err
		}
		return marshalResult(result)
	}
}

// BroadcastHandler adapts a Broadcaster to the queue handler contract.
func BroadcastHandler(b Broadcaster) queue.Handler {
	return func(ctx context.Context, job *queue.Job, _ queue.ProgressReporter) (json.RawMessage, error) {
		var payload BroadcastPayload
		if err := decode(job.Payload, &payload); err != nil {
			return nil, err
		}
		if err := b.Broadcast(ctx, job.MerchantID, payload); err != nil {
			return nil, err
		}
		return json.RawMessage(`{}`), nil
	}
}

// decode failures are data errors: the payload will not get better on a
// retry, so they go straight to the dead letter store.
func decode(raw json.RawMessage, into any) error {
	if err := json.Unmarshal(raw, into); err != nil {
		return queue.Permanent(fmt.Sprintf("malformed stage payload: %v", err), err)
	}
	return nil
}

func marshalResult(v any) (json.RawMessage, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, queue.Permanent(fmt.Sprintf("stage result not serializable: %v", err), err)
	}
	return out, nil
}
