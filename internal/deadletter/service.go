// Package deadletter is the operator surface over the dead letter store:
// listing, annotating, discarding, and reprocessing entries for jobs that
// exhausted their attempts.
package deadletter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/gen/ent"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/queue"
	"github.com/joseph-ayodele/orderflow/internal/repository"
)

// Reprocessor reopens the owning workflow and enqueues a fresh job for a
// dead-lettered stage. Implemented by the orchestrator.
type Reprocessor interface {
	ReprocessFromDeadLetter(ctx context.Context, entry *ent.DeadLetterEntry) (*queue.Job, error)
}

type Service struct {
	entries     repository.DeadLetterRepository
	reprocessor Reprocessor
	logger      *slog.Logger
}

func NewService(entries repository.DeadLetterRepository, reprocessor Reprocessor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{entries: entries, reprocessor: reprocessor, logger: logger}
}

// List returns entries newest first, optionally filtered by resolution,
// along with the total matching count for pagination.
func (s *Service) List(ctx context.Context, resolution *string, limit, offset int) ([]*ent.DeadLetterEntry, int, error) {
	if resolution != nil && !constants.ValidResolution(*resolution) {
		return nil, 0, common.InvalidArgumentErrorf("unknown resolution %q", *resolution)
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.entries.List(ctx, resolution, limit, offset)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ent.DeadLetterEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *Service) ListByWorkflow(ctx context.Context, workflowID uuid.UUID) ([]*ent.DeadLetterEntry, error) {
	return s.entries.ListByWorkflow(ctx, workflowID)
}

// Annotate records reviewer notes on an entry without changing its
// resolution.
func (s *Service) Annotate(ctx context.Context, id uuid.UUID, notes, reviewedBy string) (*ent.DeadLetterEntry, error) {
	if notes == "" {
		return nil, common.InvalidArgumentError("review notes must not be empty")
	}
	return s.entries.Annotate(ctx, id, notes, reviewedBy)
}

// Discard closes an entry without re-running anything. Only pending entries
// can be discarded.
func (s *Service) Discard(ctx context.Context, id uuid.UUID, reviewedBy string) (*ent.DeadLetterEntry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Resolution != string(constants.ResolutionPending) {
		return nil, common.FailedPreconditionError(fmt.Sprintf("entry already resolved as %s", entry.Resolution))
	}
	updated, err := s.entries.SetResolution(ctx, id, string(constants.ResolutionDiscard), reviewedBy)
	if err != nil {
		return nil, err
	}
	s.logger.Info("dead letter discarded", "entry_id", id, "reviewed_by", reviewedBy)
	return updated, nil
}

// Reprocess enqueues a fresh job from the entry's captured payload and
// stamps the new job id on the entry. The resolution stays pending until the
// new job reaches its own outcome: success closes the entry as reprocessed,
// a repeat failure leaves it open for another review and opens a sibling
// entry under the new job id, so the audit trail stays append-only.
func (s *Service) Reprocess(ctx context.Context, id uuid.UUID, reviewedBy string) (*ent.DeadLetterEntry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Resolution != string(constants.ResolutionPending) {
		return nil, common.FailedPreconditionError(fmt.Sprintf("entry already resolved as %s", entry.Resolution))
	}

	// a reprocess already in flight keeps the workflow in processing, which
	// the reprocessor refuses; no separate in-flight check is needed here
	job, err := s.reprocessor.ReprocessFromDeadLetter(ctx, entry)
	if err != nil {
		return nil, err
	}
	updated, err := s.entries.StampReprocessed(ctx, id, job.ID, reviewedBy)
	if err != nil {
		s.logger.Error("reprocessed but new job id not recorded", "entry_id", id, "new_job_id", job.ID, "error", err)
		return nil, err
	}
	s.logger.Info("dead letter reprocessed", "entry_id", id, "new_job_id", job.ID, "reviewed_by", reviewedBy)
	return updated, nil
}

// BulkResult reports the outcome for one entry of a bulk reprocess.
type BulkResult struct {
	EntryID  uuid.UUID
	NewJobID string
	Err      error
}

// ReprocessBulk runs Reprocess over each id, isolating failures: one bad
// entry never stops the rest of the batch.
func (s *Service) ReprocessBulk(ctx context.Context, ids []uuid.UUID, reviewedBy string) []BulkResult {
	results := make([]BulkResult, 0, len(ids))
	for _, id := range ids {
		if ctx.Err() != nil {
			results = append(results, BulkResult{EntryID: id, Err: ctx.Err()})
			continue
		}
		updated, err := s.Reprocess(ctx, id, reviewedBy)
		res := BulkResult{EntryID: id, Err: err}
		if err == nil && updated.ReprocessedAsJobID != nil {
			res.NewJobID = *updated.ReprocessedAsJobID
		}
		results = append(results, res)
	}
	return results
}
