package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ResponseCache implements ports.ResponseCache for marketplace GET bodies.
type ResponseCache struct {
	client goredis.Cmdable
	prefix string
}

// NewResponseCache creates a new Redis-backed response cache.
func NewResponseCache(client goredis.Cmdable) *ResponseCache {
	return &ResponseCache{
		client: client,
		prefix: "respcache:",
	}
}

// Get retrieves a cached body by key.
// Returns nil, nil if the key does not exist.
func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis response cache get: %w", err)
	}
	return val, nil
}

// Set stores a body with TTL.
func (c *ResponseCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis response cache set: %w", err)
	}
	return nil
}
