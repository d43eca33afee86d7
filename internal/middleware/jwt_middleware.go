package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"inventaris/internal/token"
)

// AuthRequired is a Fiber middleware that resolves the bearer token into a
// verified identity. Requests without a valid token never reach the handler,
// and the response never says why the token was rejected.
func AuthRequired(codec *token.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		identity, err := codec.Resolve(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		// Store the identity in the context for subsequent handlers.
		c.Locals("user_id", identity.UserID)
		c.Locals("email", identity.Email)

		return c.Next()
	}
}
