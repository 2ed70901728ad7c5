package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const adminContextKey = "currentAdminID"

// TokenParser validates a bearer token and returns the admin user ID.
type TokenParser func(token string) (uuid.UUID, error)

// AdminAuth rejects requests without a valid admin bearer token and stores
// the admin ID in the request locals.
func AdminAuth(parse TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		adminID, err := parse(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(adminContextKey, adminID)
		return c.Next()
	}
}

// CurrentAdminID returns the authenticated admin ID.
func CurrentAdminID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(adminContextKey).(uuid.UUID)
	return id, ok
}
