package agent

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type AgentController struct {
	AgentService AgentService
}

func NewAgentController(agentService AgentService) *AgentController {
	return &AgentController{AgentService: agentService}
}

// ListTasks supports ?date=, ?start=&end=, ?type= and ?status= filters.
// Without a filter the full collection is returned.
func (c *AgentController) ListTasks(ctx *fiber.Ctx) error {
	if date := ctx.Query("date"); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format (YYYY-MM-DD)"})
		}
		return ctx.JSON(c.AgentService.TasksForDate(date))
	}

	start, end := ctx.Query("start"), ctx.Query("end")
	if start != "" || end != "" {
		if start == "" || end == "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start and End dates are required"})
		}
		return ctx.JSON(c.AgentService.TasksForRange(start, end))
	}

	if raw := ctx.Query("type"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task type"})
		}
		return ctx.JSON(c.AgentService.TasksByType(TaskType(n)))
	}

	if raw := ctx.Query("status"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task status"})
		}
		return ctx.JSON(c.AgentService.TasksByStatus(TaskStatus(n)))
	}

	return ctx.JSON(c.AgentService.Tasks())
}

func (c *AgentController) GetTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	task, err := c.AgentService.TaskByID(id)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.JSON(task)
}

func (c *AgentController) ApproveTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	task, err := c.AgentService.Approve(id)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.JSON(task)
}

func (c *AgentController) RejectTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	task, err := c.AgentService.Reject(id)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.JSON(task)
}

type postponeRequest struct {
	Date string `json:"date"`
}

func (c *AgentController) PostponeTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	var req postponeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format (YYYY-MM-DD)"})
	}

	task, err := c.AgentService.Postpone(id, req.Date)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.JSON(task)
}

func (c *AgentController) ApproveAllTasks(ctx *fiber.Ctx) error {
	count := c.AgentService.ApproveAll()
	return ctx.JSON(fiber.Map{"approved": count})
}

func (c *AgentController) GetStats(ctx *fiber.Ctx) error {
	return ctx.JSON(c.AgentService.Stats())
}

func (c *AgentController) GetActivity(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	return ctx.JSON(c.AgentService.Activity(limit))
}

func taskError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, ErrTaskNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
