package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature API so Fx can collect them
// into a group and register them against the Fiber app.
type Route interface {
	Setup(app *fiber.App)
}
