package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"assessment-service/internal/models"
	"github.com/redis/go-redis/v9"
)

// ResultCache keeps recently evaluated results in Redis so dashboard and
// report flows do not hit Mongo on every read.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

func resultKey(id string) string {
	return "assessment:result:" + id
}

func (c *ResultCache) Save(ctx context.Context, result *models.AssessmentResult) error {
	val, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error marshaling result for cache: %w", err)
	}
	if err := c.client.Set(ctx, resultKey(result.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("error saving result to cache: %w", err)
	}
	return nil
}

func (c *ResultCache) Get(ctx context.Context, id string) (*models.AssessmentResult, error) {
	raw, err := c.client.Get(ctx, resultKey(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var result models.AssessmentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("error decoding cached result: %w", err)
	}
	return &result, nil
}

func (c *ResultCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, resultKey(id)).Err(); err != nil {
		return fmt.Errorf("error deleting cached result %s: %w", id, err)
	}
	return nil
}
