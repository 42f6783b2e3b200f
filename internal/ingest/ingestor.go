package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/internal/orchestrator"
	"github.com/joseph-ayodele/orderflow/internal/repository"
)

// FSIngestor reads documents from the local filesystem. Files are deduplicated
// by content hash per merchant, so re-dropping the same export is harmless.
type FSIngestor struct {
	documents repository.DocumentRepository
	starter   WorkflowStarter
	priority  constants.Priority
	logger    *slog.Logger
}

func NewFSIngestor(documents repository.DocumentRepository, starter WorkflowStarter, priority constants.Priority, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	if !priority.Valid() {
		priority = constants.PriorityBatch
	}
	return &FSIngestor{
		documents: documents,
		starter:   starter,
		priority:  priority,
		logger:    logger,
	}
}

// IngestPath registers one file as an order document and starts a workflow
// for it. A file whose content hash already exists for the merchant is
// recorded as deduplicated and no new workflow is started.
func (i *FSIngestor) IngestPath(ctx context.Context, merchantID uuid.UUID, path string) (Result, error) {
	var out Result

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, err
	}
	out.SourcePath = abs

	contentType, ok := contentTypeFor(abs)
	if !ok {
		return out, fmt.Errorf("unsupported file type: %q", filepath.Ext(abs))
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			i.logger.Warn("failed to close ingested file", "path", abs, "error", err)
		}
	}(f)

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return out, err
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	doc, dedup, err := i.documents.UpsertByHash(ctx, merchantID, filepath.Base(abs), contentType, abs, int(size), sum, now)
	if err != nil {
		return out, err
	}

	out.DocumentID = doc.ID.String()
	out.Deduplicated = dedup
	out.HashHex = hex.EncodeToString(sum)
	out.UploadedAt = doc.UploadedAt
	if dedup {
		i.logger.Info("skipping duplicate document", "merchant_id", merchantID, "path", abs, "document_id", doc.ID)
		return out, nil
	}

	wf, err := i.starter.CreateWorkflow(ctx, merchantID, orchestrator.WorkflowInput{
		DocumentID:  doc.ID,
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		StorageKey:  doc.StorageKey,
		Priority:    i.priority,
	})
	if err != nil {
		return out, err
	}
	out.WorkflowID = wf.ID.String()
	i.logger.Info("ingested document", "merchant_id", merchantID, "path", abs, "workflow_id", wf.ID)
	return out, nil
}

// IngestDirectory walks root and ingests every matching file. Per-file
// failures are collected, not fatal.
func (i *FSIngestor) IngestDirectory(ctx context.Context, merchantID uuid.UUID, root string, skipHidden bool) ([]Result, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []Result
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, Result{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := contentTypeFor(path); !ok {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, merchantID, path)
		if err != nil {
			r.Err = err.Error()
			results = append(results, r)
			stats.Failed++
			return nil
		}
		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
