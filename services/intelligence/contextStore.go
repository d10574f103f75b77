// File: services/intelligence/contextStore.go
package intelligence

import (
	"context"
	"encoding/json"
	"time"

	"horselink/models"

	"github.com/go-redis/redis/v8"
)

const insightContextPrefix = "insight:ctx:"

// ContextStore keeps per-owner rolling context for the insight service.
type ContextStore interface {
	Get(ctx context.Context, ownerID string) (*models.InsightContext, error)
	Set(ctx context.Context, ownerID string, insightCtx *models.InsightContext) error
	Clear(ctx context.Context, ownerID string) error
}

// RedisContextStore is the production ContextStore.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, ownerID string) (*models.InsightContext, error) {
	key := insightContextPrefix + ownerID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.InsightContext{OwnerID: ownerID}, nil
	}
	if err != nil {
		return nil, err
	}
	var insightCtx models.InsightContext
	if err := json.Unmarshal([]byte(data), &insightCtx); err != nil {
		return nil, err
	}
	return &insightCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, ownerID string, insightCtx *models.InsightContext) error {
	key := insightContextPrefix + ownerID
	b, err := json.Marshal(insightCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, ownerID string) error {
	key := insightContextPrefix + ownerID
	return s.client.Del(ctx, key).Err()
}
