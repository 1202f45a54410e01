package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "shipcast:configured:"

// RedisCache is the ShopCache shared between instances when a Redis address
// is configured. Backend errors degrade to cache misses, never to request
// failures.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps an existing client with the configured entry TTL.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// GetConfigured implements ShopCache.
func (c *RedisCache) GetConfigured(ctx context.Context, shop string) (bool, bool) {
	val, err := c.client.Get(ctx, keyPrefix+shop).Result()
	if err != nil {
		return false, false
	}
	return val == "1", true
}

// SetConfigured implements ShopCache.
func (c *RedisCache) SetConfigured(ctx context.Context, shop string, configured bool) {
	val := "0"
	if configured {
		val = "1"
	}
	c.client.Set(ctx, keyPrefix+shop, val, c.ttl)
}

// Invalidate implements ShopCache.
func (c *RedisCache) Invalidate(ctx context.Context, shop string) {
	c.client.Del(ctx, keyPrefix+shop)
}
