package agent

import (
	"github.com/gofiber/fiber/v2"
)

type AgentApi struct {
	AgentController *AgentController
}

func NewAgentApi(agentController *AgentController) *AgentApi {
	return &AgentApi{AgentController: agentController}
}

func (api *AgentApi) Setup(app *fiber.App) {
	group := app.Group("/api/agent")
	group.Get("/tasks", api.AgentController.ListTasks)
	group.Post("/tasks/approve-all", api.AgentController.ApproveAllTasks)
	group.Get("/tasks/:id", api.AgentController.GetTask)
	group.Post("/tasks/:id/approve", api.AgentController.ApproveTask)
	group.Post("/tasks/:id/reject", api.AgentController.RejectTask)
	group.Post("/tasks/:id/postpone", api.AgentController.PostponeTask)
	group.Get("/stats", api.AgentController.GetStats)
	group.Get("/activity", api.AgentController.GetActivity)
}
