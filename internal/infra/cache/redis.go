// Package cache provides the Redis connection and Redis-backed stores.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	options, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Password != "" {
		options.Password = cfg.Password
	}
	if cfg.DB != 0 {
		options.DB = cfg.DB
	}

	client := redis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// RateLimitStore implements adapter.RateLimitStore with one counter key per
// window. The first attempt of a window sets the key's expiry.
type RateLimitStore struct {
	client redis.Cmdable
}

// NewRateLimitStore creates a Redis-backed rate limit store.
func NewRateLimitStore(client redis.Cmdable) *RateLimitStore {
	return &RateLimitStore{client: client}
}

// Allow increments the counter for key and reports whether it is within maxAttempts.
func (s *RateLimitStore) Allow(ctx context.Context, key string, maxAttempts int, window time.Duration) (bool, error) {
	attempts, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count attempt: %w", err)
	}

	if attempts == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return false, fmt.Errorf("failed to set window expiry: %w", err)
		}
	}

	return attempts <= int64(maxAttempts), nil
}
