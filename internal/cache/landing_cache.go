// Package cache puts a Redis read-through cache in front of a landing data
// source.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/example/brandslanding/internal/brandslanding"
	"github.com/example/brandslanding/internal/store"
)

const keyPrefix = "brandslanding:landing:"

// Key returns the Redis key for a brand's landing data.
func Key(brandKey string) string {
	return keyPrefix + brandKey
}

// LandingCache serves landing data from Redis and falls back to the wrapped
// source on a miss or a Redis failure. Only successful loads are cached.
type LandingCache struct {
	next   store.Source
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewLandingCache wraps next. A nil client disables caching.
func NewLandingCache(next store.Source, client *redis.Client, ttl time.Duration) *LandingCache {
	return &LandingCache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: zap.L().Named("cache"),
	}
}

// LoadLanding implements store.Source.
func (c *LandingCache) LoadLanding(ctx context.Context, brandKey string) (*brandslanding.Data, error) {
	if c.client == nil {
		return c.next.LoadLanding(ctx, brandKey)
	}

	raw, err := c.client.Get(ctx, Key(brandKey)).Bytes()
	switch {
	case err == nil:
		var data brandslanding.Data
		jsonErr := json.Unmarshal(raw, &data)
		if jsonErr == nil {
			return &data, nil
		}
		c.logger.Warn("discarding unreadable cache entry", zap.String("brand", brandKey), zap.Error(jsonErr))
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("redis get failed", zap.String("brand", brandKey), zap.Error(err))
	}

	data, err := c.next.LoadLanding(ctx, brandKey)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(data); err == nil {
		if err := c.client.Set(ctx, Key(brandKey), payload, c.ttl).Err(); err != nil {
			c.logger.Warn("redis set failed", zap.String("brand", brandKey), zap.Error(err))
		}
	}

	return data, nil
}

// Invalidate drops the cached entry for a brand.
func (c *LandingCache) Invalidate(ctx context.Context, brandKey string) {
	if c.client == nil || brandKey == "" {
		return
	}
	if err := c.client.Del(ctx, Key(brandKey)).Err(); err != nil {
		c.logger.Warn("redis delete failed", zap.String("brand", brandKey), zap.Error(err))
	}
}

// NewClient connects to Redis from a URL such as redis://localhost:6379/0.
// An empty URL returns a nil client.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
