package automation

import (
	"github.com/gofiber/fiber/v2"
)

type AutomationApi struct {
	AutomationController *AutomationController
}

func NewAutomationApi(automationController *AutomationController) *AutomationApi {
	return &AutomationApi{AutomationController: automationController}
}

func (api *AutomationApi) Setup(app *fiber.App) {
	group := app.Group("/api/automation")
	group.Get("/rules", api.AutomationController.ListRules)
	group.Patch("/rules/:id", api.AutomationController.ToggleRule)
}
