package excel

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	runsSheetName  = "Launch Runs"
	stepsSheetName = "Steps"
)

// Service renders launch run history as Excel workbooks
type Service struct{}

// NewExcelService creates a new Excel service instance
func NewExcelService() *Service {
	return &Service{}
}

var runColumns = []string{
	"id", "organization_id", "variant", "state",
	"campaign_id", "campaign_name", "failed_step", "error",
	"warnings", "started_at", "finished_at", "created_at",
}

var stepColumns = []string{
	"run_id", "campaign_id", "step", "name", "outcome", "message",
}

// ExportLaunchRuns writes one row per run and one row per step result
func (s *Service) ExportLaunchRuns(runs []*models.LaunchRun) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheetName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheetName, runsSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(stepsSheetName); err != nil {
		return nil, fmt.Errorf("failed to create steps sheet: %w", err)
	}
	f.SetActiveSheet(0)

	writeHeader(f, runsSheetName, runColumns)
	writeHeader(f, stepsSheetName, stepColumns)

	for i, col := range runColumns {
		colLetter := columnToLetter(i + 1)
		width := 20.0

		switch col {
		case "id", "organization_id", "campaign_id":
			width = 38.0
		case "campaign_name":
			width = 30.0
		case "error":
			width = 50.0
		case "variant", "state", "failed_step", "warnings":
			width = 15.0
		}

		f.SetColWidth(runsSheetName, colLetter, colLetter, width)
	}
	f.SetColWidth(stepsSheetName, "A", "B", 38.0)
	f.SetColWidth(stepsSheetName, "D", "D", 30.0)
	f.SetColWidth(stepsSheetName, "F", "F", 60.0)

	failedStyle, _ := f.NewStyle(fillStyle("F4B084"))   // Orange
	partialStyle, _ := f.NewStyle(fillStyle("FFFF00"))  // Yellow
	launchedStyle, _ := f.NewStyle(fillStyle("C6EFCE")) // Green
	warningStyle, _ := f.NewStyle(fillStyle("FFEB9C"))  // Light yellow

	if len(runs) == 0 {
		f.SetCellValue(runsSheetName, "A2", "no launch runs found")
	}

	stepRow := 2
	for j, run := range runs {
		rowNum := j + 2
		result := models.DecodeFlowResult(run.Result)

		warnings := 0
		if result != nil {
			warnings = len(result.Warnings())
		}

		f.SetCellValue(runsSheetName, fmt.Sprintf("A%d", rowNum), run.ID)
		f.SetCellValue(runsSheetName, fmt.Sprintf("B%d", rowNum), run.OrganizationID)
		f.SetCellValue(runsSheetName, fmt.Sprintf("C%d", rowNum), string(run.Variant))
		f.SetCellValue(runsSheetName, fmt.Sprintf("D%d", rowNum), string(run.State))
		f.SetCellValue(runsSheetName, fmt.Sprintf("E%d", rowNum), run.CampaignID)
		f.SetCellValue(runsSheetName, fmt.Sprintf("F%d", rowNum), run.CampaignName)
		f.SetCellValue(runsSheetName, fmt.Sprintf("G%d", rowNum), string(run.FailedStep))
		f.SetCellValue(runsSheetName, fmt.Sprintf("H%d", rowNum), run.Error)
		f.SetCellValue(runsSheetName, fmt.Sprintf("I%d", rowNum), warnings)
		f.SetCellValue(runsSheetName, fmt.Sprintf("J%d", rowNum), formatTime(run.StartedAt))
		f.SetCellValue(runsSheetName, fmt.Sprintf("K%d", rowNum), formatTime(run.FinishedAt))
		f.SetCellValue(runsSheetName, fmt.Sprintf("L%d", rowNum), run.CreatedAt.Format(time.RFC3339))

		rowEnd := fmt.Sprintf("%s%d", columnToLetter(len(runColumns)), rowNum)
		switch run.State {
		case models.RunFailed:
			f.SetCellStyle(runsSheetName, fmt.Sprintf("A%d", rowNum), rowEnd, failedStyle)
		case models.RunPartial:
			f.SetCellStyle(runsSheetName, fmt.Sprintf("A%d", rowNum), rowEnd, partialStyle)
		case models.RunLaunched:
			f.SetCellStyle(runsSheetName, fmt.Sprintf("A%d", rowNum), rowEnd, launchedStyle)
		}

		if result == nil {
			continue
		}
		for _, step := range result.Steps {
			f.SetCellValue(stepsSheetName, fmt.Sprintf("A%d", stepRow), run.ID)
			f.SetCellValue(stepsSheetName, fmt.Sprintf("B%d", stepRow), run.CampaignID)
			f.SetCellValue(stepsSheetName, fmt.Sprintf("C%d", stepRow), string(step.Step))
			f.SetCellValue(stepsSheetName, fmt.Sprintf("D%d", stepRow), step.Name)
			f.SetCellValue(stepsSheetName, fmt.Sprintf("E%d", stepRow), string(step.Outcome))
			f.SetCellValue(stepsSheetName, fmt.Sprintf("F%d", stepRow), step.Message)
			if step.Outcome == models.StepWarning || step.Outcome == models.StepFatal {
				f.SetCellStyle(stepsSheetName, fmt.Sprintf("A%d", stepRow), fmt.Sprintf("F%d", stepRow), warningStyle)
			}
			stepRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf, nil
}

func writeHeader(f *excelize.File, sheet string, columns []string) {
	for i, col := range columns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(sheet, cell, col)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9D9D9"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", columnToLetter(len(columns))+strconv.Itoa(1), headerStyle)
	}
}

func fillStyle(color string) *excelize.Style {
	return &excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{color},
			Pattern: 1,
		},
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
