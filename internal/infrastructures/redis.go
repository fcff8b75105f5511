package infrastructures

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to Redis for rate limiting. Returns nil when no
// address is configured; the limiter treats that as "no limits".
func NewRedisClient() *redis.Client {
	if Config.RedisAddress == "" {
		logrus.Warn("REDIS_ADDRESS not set, rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     Config.RedisAddress,
		Password: Config.RedisPassword,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("failed to connect redis: %v", err)
	}

	return client
}
