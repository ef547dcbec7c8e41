package automation

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type AutomationController struct {
	AutomationService AutomationService
}

func NewAutomationController(automationService AutomationService) *AutomationController {
	return &AutomationController{AutomationService: automationService}
}

func (c *AutomationController) ListRules(ctx *fiber.Ctx) error {
	return ctx.JSON(c.AutomationService.Rules())
}

type toggleRequest struct {
	Enabled bool `json:"enabled"`
}

func (c *AutomationController) ToggleRule(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid rule id"})
	}

	var req toggleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rule, err := c.AutomationService.Toggle(id, req.Enabled)
	if err != nil {
		if errors.Is(err, ErrRuleNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Rule not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(rule)
}
