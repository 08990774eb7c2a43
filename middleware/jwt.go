package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"wecare/utils"
)

// JWT guards mutating routes. The issuer from a valid token is stored in
// locals as user_id for the controllers.
func JWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		userID, err := utils.ParseJWTToken(secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
