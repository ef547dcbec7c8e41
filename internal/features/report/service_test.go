package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"go-agency/internal/features/agent"
)

func TestExportTasks(t *testing.T) {
	service := NewReportService()

	tasks := []agent.Task{
		{ID: 1, Type: agent.TypeBirthday, Action: agent.ActionSMS, Title: "Dogum gunu kutlama mesaji", CustomerName: "Ahmet Yilmaz", CustomerPhone: "0532 111 2233", Date: "2025-06-10", Time: "09:30", Status: agent.StatusCompleted, Priority: agent.PriorityNormal, ResultMessage: "SMS iletildi"},
		{ID: 2, Type: agent.TypeCrossSell, Action: agent.ActionOffer, Title: "Kasko teklifi sunumu", CustomerName: "Mehmet Kaya", CustomerPhone: "0534 333 4455", Date: "2025-06-15", Time: "11:00", Status: agent.StatusPendingApproval, Priority: agent.PriorityHigh, PolicyNo: "KSK-123456"},
	}

	data, filename, err := service.ExportTasks(tasks, "rapor")
	if err != nil {
		t.Fatalf("ExportTasks() error = %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("filename = %q, want .xlsx suffix", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes are not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Gorevler")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 { // header + 2 tasks
		t.Fatalf("row count = %d, want 3", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][1] != "Gorev" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][4] != "Ahmet Yilmaz" {
		t.Errorf("first data row customer = %q, want Ahmet Yilmaz", rows[1][4])
	}
	if rows[2][10] != "KSK-123456" {
		t.Errorf("policy number cell = %q, want KSK-123456", rows[2][10])
	}
}

func TestExportTasksEmpty(t *testing.T) {
	service := NewReportService()

	data, _, err := service.ExportTasks(nil, "bos.xlsx")
	if err != nil {
		t.Fatalf("ExportTasks() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes are not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Gorevler")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("empty export should only carry the header row, got %d rows", len(rows))
	}
}
