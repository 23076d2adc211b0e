package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole restricts a route to users carrying the given role flag.
// Roles are fixed at signup, so the JWT claim is authoritative and no
// database lookup is needed.
func RequireRole(roleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User role not found in context",
			})
		}

		if role != roleName {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have the required role to perform this action",
			})
		}

		return c.Next()
	}
}
