package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAuth rejects requests without a signed-in session user. The
// router populates the "userID" local before any gated route runs.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("userID") == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}
		return c.Next()
	}
}
