// path: auth/middleware.go
package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth.
const (
	LocalUserID   = "auth_user_id"
	LocalUsername = "auth_username"
	LocalEmail    = "auth_email"
)

// RequireAuth rejects requests without a valid bearer token and stores the
// verified claims in the request locals.
func RequireAuth(v *TokenVerifier, logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "missing bearer token"})
		}
		claims, err := v.Verify(token)
		if err != nil {
			logger.Printf("auth: rejected token: %v", err)
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "invalid or expired token"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// UserID returns the authenticated subject, or "" when unauthenticated.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}
