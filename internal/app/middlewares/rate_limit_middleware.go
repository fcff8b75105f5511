package middlewares

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/wafflepopco/loyalty-core/internal/app/models"
	"github.com/wafflepopco/loyalty-core/pkg/ratelimit"
)

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
}

// NewRateLimitMiddleware builds the middleware over Redis. With a nil client
// every request passes through unlimited.
func NewRateLimitMiddleware(client *redis.Client) *RateLimitMiddleware {
	if client == nil {
		return &RateLimitMiddleware{}
	}
	return &RateLimitMiddleware{
		limiter: ratelimit.NewRedisRateLimiter(client, "wafflepop"),
	}
}

// LimitByIP applies a per-client-IP rate limit.
func (m *RateLimitMiddleware) LimitByIP(limit ratelimit.Rate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.limiter == nil {
			return c.Next()
		}

		key := "ip:" + c.IP()
		allowed, info := m.limiter.Allow(key, limit)

		c.Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		c.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		c.Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.Reset.Unix()))

		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.WebResponse[any]{
				Success: false,
				Message: "Rate limit exceeded",
			})
		}

		return c.Next()
	}
}
