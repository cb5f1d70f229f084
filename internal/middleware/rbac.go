package middleware

import (
	"slices"
	"strings"

	"sankhya-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireRole allows the request through when the caller holds any of the
// given roles. Role names compare case-insensitively.
func RequireRole(skipAuth bool, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuth {
			return c.Next()
		}

		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		allowed := slices.ContainsFunc(claims.Roles, func(held string) bool {
			return slices.ContainsFunc(roles, func(want string) bool {
				return strings.EqualFold(held, want)
			})
		})
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}
