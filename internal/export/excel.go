// Package export renders a job's pipeline as a spreadsheet.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"ats/internal/domain"
)

const (
	PipelineSheet = "Pipeline"
	StagesSheet   = "Stages"
)

// WritePipeline writes an xlsx workbook with one row per application and a
// per-stage count summary, in catalog order.
func WritePipeline(w io.Writer, jobID string, apps []domain.Application, catalog *domain.Catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PipelineSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(StagesSheet); err != nil {
		return fmt.Errorf("create stages sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	if err := writePipelineSheet(f, headerStyle, apps, catalog); err != nil {
		return fmt.Errorf("pipeline sheet for job %s: %w", jobID, err)
	}
	if err := writeStagesSheet(f, headerStyle, apps, catalog); err != nil {
		return fmt.Errorf("stages sheet for job %s: %w", jobID, err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writePipelineSheet(f *excelize.File, headerStyle int, apps []domain.Application, catalog *domain.Catalog) error {
	headers := []any{"Application", "Candidate", "Stage", "Category", "Status", "Outcome", "Updated"}
	if err := f.SetSheetRow(PipelineSheet, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(PipelineSheet, "A1", "G1", headerStyle); err != nil {
		return err
	}
	_ = f.SetColWidth(PipelineSheet, "A", "B", 38)
	_ = f.SetColWidth(PipelineSheet, "C", "G", 20)

	for i, app := range apps {
		def, err := catalog.Definition(app.Stage)
		if err != nil {
			return err
		}
		outcome := ""
		if app.Decision != nil {
			outcome = string(app.Decision.Outcome)
		}
		row := []any{app.ID, app.CandidateID, def.Label, def.Category.String(), string(app.Status), outcome, app.UpdatedAt.UTC().Format(time.RFC3339)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(PipelineSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeStagesSheet(f *excelize.File, headerStyle int, apps []domain.Application, catalog *domain.Catalog) error {
	headers := []any{"Stage", "Label", "Order", "Category", "Applications"}
	if err := f.SetSheetRow(StagesSheet, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(StagesSheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	counts := make(map[domain.Stage]int)
	for _, app := range apps {
		counts[app.Stage]++
	}
	for i, d := range catalog.Definitions() {
		row := []any{d.Stage.String(), d.Label, d.Order, d.Category.String(), counts[d.Stage]}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(StagesSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
