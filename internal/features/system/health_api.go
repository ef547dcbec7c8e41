package system

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	started time.Time
}

func NewHealthApi() *HealthApi {
	return &HealthApi{started: time.Now()}
}

func (api *HealthApi) Setup(app *fiber.App) {
	app.Get("/api/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(api.started).String(),
		})
	})
}
