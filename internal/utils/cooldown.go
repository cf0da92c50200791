package utils

import (
	"context" // Context for Redis calls
	"time"    // Cooldown window

	"github.com/redis/go-redis/v9" // Redis client
)

// Cooldown allows an action once per key within a window
type Cooldown interface {
	Allow(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// RedisCooldown claims keys with SET NX so concurrent callers race on Redis
type RedisCooldown struct {
	rdb    *redis.Client
	prefix string
	window time.Duration
}

// NewRedisCooldown creates a cooldown; a zero window allows every call
func NewRedisCooldown(rdb *redis.Client, prefix string, window time.Duration) *RedisCooldown {
	return &RedisCooldown{rdb: rdb, prefix: prefix, window: window}
}

// Allow claims key for the window and reports whether this caller got it
func (c *RedisCooldown) Allow(ctx context.Context, key string) (bool, error) {
	if c.window <= 0 {
		return true, nil
	}
	return c.rdb.SetNX(ctx, c.prefix+key, 1, c.window).Result()
}

// Release drops a claim so the action can be retried before the window ends
func (c *RedisCooldown) Release(ctx context.Context, key string) error {
	if c.window <= 0 {
		return nil
	}
	return c.rdb.Del(ctx, c.prefix+key).Err()
}
