package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/onboarding"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Export formats
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatPDF  = "pdf"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

var taskHeaders = []string{"ID", "Task", "Due date", "Status", "Priority", "Assignee", "Estimated hours", "Description"}

// ExportFile is a rendered plan ready for download
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders plans as spreadsheets and PDF documents
type ExportService struct {
	plans *PlanService
}

var _ ExportServiceInterface = (*ExportService)(nil)

// NewExportService creates a new export service
func NewExportService(plans *PlanService) *ExportService {
	return &ExportService{plans: plans}
}

// ExportPlan renders the plan of a new hire in the given format
func (s *ExportService) ExportPlan(ctx context.Context, newHireID uuid.UUID, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != ExportFormatXLSX && format != ExportFormatPDF {
		return nil, apperrors.ErrUnsupportedExportFormat
	}

	resp, err := s.plans.GetPlan(ctx, newHireID)
	if err != nil {
		return nil, err
	}

	base := fmt.Sprintf("onboarding-plan-%s", slug(resp.Plan.NewHireName))
	switch format {
	case ExportFormatXLSX:
		data, err := renderXLSX(ctx, resp)
		if err != nil {
			return nil, fmt.Errorf("failed to render xlsx: %w", err)
		}
		return &ExportFile{Filename: base + ".xlsx", ContentType: contentTypeXLSX, Data: data}, nil
	default:
		data, err := renderPDF(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to render pdf: %w", err)
		}
		return &ExportFile{Filename: base + ".pdf", ContentType: contentTypePDF, Data: data}, nil
	}
}

// renderXLSX writes a summary sheet followed by one sheet per milestone
func renderXLSX(ctx context.Context, resp *PlanResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithContext(ctx).Component("export").WithError(err).Error("failed to close workbook")
		}
	}()

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, err
	}

	summary := "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}
	plan, progress := resp.Plan, resp.Progress
	rows := [][]interface{}{
		{"New hire", plan.NewHireName},
		{"Role", plan.Role},
		{"Start date", plan.StartDate.String()},
		{"Status", string(progress.Status)},
		{"Current milestone", string(progress.CurrentMilestone)},
		{"Milestones completed", fmt.Sprintf("%d / %d", progress.ActualProgress, onboarding.MilestoneCount)},
		{"Milestones scheduled", fmt.Sprintf("%d / %d", progress.ScheduledProgress, onboarding.MilestoneCount)},
		{"Tasks completed", fmt.Sprintf("%d / %d", progress.CompletedTasks, progress.TotalTasks)},
		{"Evaluated on", progress.EvaluatedOn.String()},
		{"Plan version", resp.Version},
	}
	for i, row := range rows {
		if err := writeRow(f, summary, i+1, row); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(summary, "A1", fmt.Sprintf("A%d", len(rows)), header); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(summary, "A", "B", 28); err != nil {
		return nil, err
	}

	for _, m := range plan.Milestones {
		sheet := m.Label
		if sheet == "" {
			sheet = string(m.ID)
		}
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		headerRow := make([]interface{}, len(taskHeaders))
		for i, h := range taskHeaders {
			headerRow[i] = h
		}
		if err := writeRow(f, sheet, 1, headerRow); err != nil {
			return nil, err
		}
		last, err := excelize.CoordinatesToCellName(len(taskHeaders), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, "B", "B", 45); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, "C", "G", 16); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, "H", "H", 60); err != nil {
			return nil, err
		}

		for i, task := range m.Tasks {
			row := []interface{}{
				task.ID,
				task.Name,
				task.DueDate.String(),
				string(task.Status),
				string(task.Priority),
				string(task.Assignee),
				task.EstimatedHours,
				task.Description,
			}
			if err := writeRow(f, sheet, i+2, row); err != nil {
				return nil, err
			}
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// renderPDF writes an A4 document with a header block and one section per milestone
func renderPDF(resp *PlanResponse) ([]byte, error) {
	plan, progress := resp.Plan, resp.Progress

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Onboarding plan: "+plan.NewHireName, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr("Onboarding plan"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		"New hire: " + plan.NewHireName,
		"Role: " + plan.Role,
		"Start date: " + plan.StartDate.String(),
		fmt.Sprintf("Status: %s (%d of %d milestones done, %d scheduled)",
			progress.Status, progress.ActualProgress, onboarding.MilestoneCount, progress.ScheduledProgress),
	} {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{12, 98, 26, 26, 28}
	for _, m := range plan.Milestones {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, tr(m.Label), "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 236, 245)
		for i, h := range []string{"ID", "Task", "Due", "Status", "Assignee"} {
			pdf.CellFormat(widths[i], 6, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, task := range m.Tasks {
			cells := []string{
				fmt.Sprintf("%d", task.ID),
				truncate(task.Name, 60),
				task.DueDate.String(),
				string(task.Status),
				string(task.Assignee),
			}
			for i, c := range cells {
				pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	dash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "new-hire"
	}
	return out
}
