package transport

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SessionChecker resolves a bearer token to the admin id it belongs to.
type SessionChecker interface {
	Resolve(ctx context.Context, token string) (int64, error)
}

const adminIDLocal = "adminId"

// AuthMiddleware guards admin routes with a redis-backed session token.
func AuthMiddleware(sessions SessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		adminID, err := sessions.Resolve(c.Context(), token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired session")
		}

		c.Locals(adminIDLocal, adminID)
		return c.Next()
	}
}

// AdminIDFromCtx returns the admin id set by AuthMiddleware, if present.
func AdminIDFromCtx(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(adminIDLocal).(int64)
	return id, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
