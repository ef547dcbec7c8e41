package report

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"go-agency/internal/features/agent"
)

type ReportController struct {
	ReportService ReportService
	AgentService  agent.AgentService
}

func NewReportController(reportService ReportService, agentService agent.AgentService) *ReportController {
	return &ReportController{ReportService: reportService, AgentService: agentService}
}

// ExportTasks streams the (optionally range-filtered) task list as xlsx.
func (c *ReportController) ExportTasks(ctx *fiber.Ctx) error {
	var tasks []agent.Task
	start, end := ctx.Query("start"), ctx.Query("end")
	if start != "" && end != "" {
		tasks = c.AgentService.TasksForRange(start, end)
	} else {
		tasks = c.AgentService.Tasks()
	}

	data, filename, err := c.ReportService.ExportTasks(tasks, "ajan-gorev-raporu")
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export tasks"})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Send(data)
}
