package report

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"go-agency/internal/features/agent"
)

type ReportService interface {
	ExportTasks(tasks []agent.Task, filename string) ([]byte, string, error)
}

type ReportServiceImpl struct{}

func NewReportService() ReportService {
	return &ReportServiceImpl{}
}

var exportColumns = []string{
	"ID", "Gorev", "Tur", "Aksiyon", "Musteri", "Telefon",
	"Tarih", "Saat", "Durum", "Oncelik", "Police No", "Sonuc",
}

// ExportTasks renders the task list as an xlsx workbook and returns the
// file bytes together with the final filename.
func (s *ReportServiceImpl) ExportTasks(tasks []agent.Task, filename string) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Gorevler"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, task := range tasks {
		values := []any{
			task.ID,
			task.Title,
			agent.TypeLabels[task.Type],
			agent.ActionLabels[task.Action],
			task.CustomerName,
			task.CustomerPhone,
			task.Date,
			task.Time,
			agent.StatusLabels[task.Status],
			agent.PriorityLabels[task.Priority],
			task.PolicyNo,
			task.ResultMessage,
		}
		for colIdx, val := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	for i := range exportColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	xlsxFilename := filename
	if !strings.HasSuffix(xlsxFilename, ".xlsx") {
		xlsxFilename += ".xlsx"
	}

	return buffer.Bytes(), xlsxFilename, nil
}
