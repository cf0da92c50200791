package utils

import (
	"context" // Context for Redis calls
	"time"    // Token lifetimes

	"github.com/redis/go-redis/v9" // Redis client
)

// TokenDenylist records session tokens revoked before their expiry
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisDenylist keeps revoked token ids as keys that expire with the token
type RedisDenylist struct {
	rdb *redis.Client
}

// NewRedisDenylist creates a denylist on top of a Redis client
func NewRedisDenylist(rdb *redis.Client) *RedisDenylist {
	return &RedisDenylist{rdb: rdb}
}

// denylistKey namespaces token ids in Redis
func denylistKey(tokenID string) string {
	return "denylist:token:" + tokenID
}

// Revoke is a no-op for tokens that have already expired
func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, denylistKey(tokenID), 1, ttl).Err()
}

// IsRevoked reports whether tokenID was revoked and has not yet expired
func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, denylistKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil // Key present means revoked
}
