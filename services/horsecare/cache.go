// File: services/horsecare/cache.go
package horsecare

import (
	"context"
	"encoding/json"
	"time"

	"horselink/models"

	"github.com/go-redis/redis/v8"
)

const dueCachePrefix = "horsecare:"

// RedisResultCache caches derived due-for-service lists in Redis with a TTL.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{client: client, ttl: ttl}
}

func (c *RedisResultCache) Get(ctx context.Context, key string) ([]models.DueForServiceResult, bool) {
	data, err := c.client.Get(ctx, dueCachePrefix+key).Result()
	if err != nil {
		return nil, false
	}
	var results []models.DueForServiceResult
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		return nil, false
	}
	return results, true
}

func (c *RedisResultCache) Set(ctx context.Context, key string, results []models.DueForServiceResult) {
	b, err := json.Marshal(results)
	if err != nil {
		return
	}
	// Cache failures are invisible to callers; the list is recomputed next time.
	_ = c.client.Set(ctx, dueCachePrefix+key, b, c.ttl).Err()
}
