package transport

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lighthouse-program/lighthouse-api/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimitMiddleware throttles a route per client IP. When the limiter
// itself fails the request is let through; throttling is best effort.
func RateLimitMiddleware(limiter ratelimit.RateLimiter, logger *zap.Logger) fiber.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}

		allowed, err := limiter.Allow(c.Context(), c.IP())
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if !allowed {
			return fiber.NewError(fiber.StatusTooManyRequests, "too many requests")
		}
		return c.Next()
	}
}
