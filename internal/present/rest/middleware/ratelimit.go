package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/dadscape/diary-api/internal/present/rest/presenter"
)

// RedisRateLimiterStore is a fixed-window rate-limiter store shared
// across instances through redis. It satisfies echo's RateLimiterStore.
type RedisRateLimiterStore struct {
	client *redis.Client
	max    int
	window time.Duration
}

func NewRedisRateLimiterStore(client *redis.Client, max int, window time.Duration) *RedisRateLimiterStore {
	return &RedisRateLimiterStore{client: client, max: max, window: window}
}

func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx := context.Background()
	key := "ratelimit:" + identifier

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := s.client.Expire(ctx, key, s.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(s.max), nil
}

// RateLimiter builds the per-IP limiter middleware. With a redis client
// the window state is shared; otherwise echo's in-memory store is used.
func RateLimiter(client *redis.Client, max int, window time.Duration) echo.MiddlewareFunc {
	var store echomw.RateLimiterStore
	if client != nil {
		store = NewRedisRateLimiterStore(client, max, window)
	} else {
		store = echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(max) / window.Seconds()),
			Burst:     max,
			ExpiresIn: window,
		})
	}

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, presenter.Envelope{
				Success: false,
				Error:   "Too many requests from this IP, please try again later.",
			})
		},
	})
}
