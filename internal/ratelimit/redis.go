package ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisLimiter counts attempts per key in a fixed window. It fails open:
// a redis outage must never lock everyone out of the login form.
type RedisLimiter struct {
	client *redis.Client
	logger *zap.Logger

	limit  int
	window time.Duration
}

func NewRedisLimiter(
	client *redis.Client,
	logger *zap.Logger,
	limit int,
	window time.Duration,
) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		logger: logger,
		limit:  limit,
		window: window,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:" + key

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		r.logger.Error("rate limit INCR failed", zap.Error(err), zap.String("key", key))
		return true, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, r.window).Err(); err != nil {
			r.logger.Error("rate limit EXPIRE failed", zap.Error(err), zap.String("key", key))
		}
	}

	return count <= int64(r.limit), nil
}

var _ Limiter = (*RedisLimiter)(nil)
var _ Limiter = (*Nop)(nil)
