// Package cache wraps an optional redis client. All methods are safe on a
// nil *Cache, so the service runs unchanged without redis configured.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	rdb *redis.Client
}

// New connects to redis at addr. Returns nil (cache disabled) when addr is
// empty or the server is unreachable.
func New(ctx context.Context, addr string) *Cache {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil
	}
	return &Cache{rdb: rdb}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, key, value, ttl)
}

func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, keys...)
}
