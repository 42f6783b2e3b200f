// Package ingest turns documents dropped into a watched directory into
// workflow executions. It is an optional intake path next to the gRPC
// CreateWorkflow surface, meant for merchants that export purchase orders
// to a shared folder.
package ingest

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/gen/ent"
	"github.com/joseph-ayodele/orderflow/internal/orchestrator"
)

// allowedContentTypes maps the extensions we accept to their MIME types.
var allowedContentTypes = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// Result is the per-file intake outcome.
type Result struct {
	SourcePath   string
	DocumentID   string
	WorkflowID   string
	Deduplicated bool
	HashHex      string
	UploadedAt   time.Time
	Err          string
}

// DirStats summarizes a directory sweep.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// WorkflowStarter is the slice of the orchestrator the ingestor needs.
type WorkflowStarter interface {
	CreateWorkflow(ctx context.Context, merchantID uuid.UUID, input orchestrator.WorkflowInput) (*ent.WorkflowExecution, error)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func contentTypeFor(path string) (string, bool) {
	ct, ok := allowedContentTypes[normalizeExt(filepath.Ext(path))]
	return ct, ok
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
