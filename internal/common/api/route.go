package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature API. Setup registers its handlers on app.
type Route interface {
	Setup(app *fiber.App)
}
