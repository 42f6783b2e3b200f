package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/orderflow/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	workflows   repository.WorkflowRepository
	deadLetters repository.DeadLetterRepository
	logger      *slog.Logger
}

func NewService(workflows repository.WorkflowRepository, deadLetters repository.DeadLetterRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{workflows: workflows, deadLetters: deadLetters, logger: logger}
}

// ExportDeadLettersXLSX returns an XLSX workbook (as bytes) of dead letter
// entries, optionally filtered by resolution. Meant for the weekly failure
// review: one row per entry, newest first.
func (s *Service) ExportDeadLettersXLSX(ctx context.Context, resolution *string) ([]byte, error) {
	start := time.Now()

	entries, _, err := s.deadLetters.List(ctx, resolution, 10000, 0)
	if err != nil {
		return nil, fmt.Errorf("query dead letters: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Dead Letters"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Created",
		"Stage",
		"Workflow",
		"Job ID",
		"Attempts",
		"Priority",
		"Failure Reason",
		"Resolution",
		"Reviewed By",
		"Review Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range entries {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, e.CreatedAt.UTC().Format("2006-01-02 15:04"))
		write(2, e.Stage)
		write(3, e.WorkflowID.String())
		write(4, e.JobID)
		write(5, e.AttemptsMade)
		write(6, e.Priority)
		write(7, truncate(e.FailureReason, 140))
		write(8, e.Resolution)
		if e.ReviewedBy != nil {
			write(9, *e.ReviewedBy)
		}
		if e.ReviewNotes != nil {
			write(10, truncate(*e.ReviewNotes, 140))
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 14)
	_ = f.SetColWidth(sheet, "C", "D", 38)
	_ = f.SetColWidth(sheet, "E", "F", 10)
	_ = f.SetColWidth(sheet, "G", "G", 60)
	_ = f.SetColWidth(sheet, "H", "I", 14)
	_ = f.SetColWidth(sheet, "J", "J", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.deadletters.ok",
		"rows", len(entries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportWorkflowAuditXLSX returns an XLSX workbook of one merchant's recent
// workflow executions.
func (s *Service) ExportWorkflowAuditXLSX(ctx context.Context, merchantID uuid.UUID) ([]byte, error) {
	start := time.Now()

	workflows, err := s.workflows.ListByMerchant(ctx, merchantID, 10000, 0)
	if err != nil {
		return nil, fmt.Errorf("query workflows: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Workflows"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Created",
		"Workflow",
		"Document",
		"Status",
		"Progress %",
		"Current Stage",
		"Failed Stage",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, wf := range workflows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, wf.CreatedAt.UTC().Format("2006-01-02 15:04"))
		write(2, wf.ID.String())
		write(3, wf.DocumentID.String())
		write(4, wf.Status)
		write(5, wf.ProgressPercent)
		if wf.CurrentStage != nil {
			write(6, *wf.CurrentStage)
		}
		if wf.FailedStage != nil {
			write(7, *wf.FailedStage)
		}
		if wf.ErrorMessage != nil {
			write(8, truncate(*wf.ErrorMessage, 140))
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "C", 38)
	_ = f.SetColWidth(sheet, "D", "G", 14)
	_ = f.SetColWidth(sheet, "H", "H", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.workflows.ok",
		"merchant_id", merchantID.String(),
		"rows", len(workflows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
