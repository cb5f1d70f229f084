package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORSMiddleware allows the CRM frontend origins. Content-Disposition is exposed
// so browsers can read the activity export filename.
func CORSMiddleware(allowOrigins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
		ExposeHeaders:    fiber.HeaderContentDisposition,
		AllowCredentials: true,
	})
}
