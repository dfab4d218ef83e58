// Package redis caches sub-category lookups in front of another category store.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"clickrec/internal/config"
	"clickrec/internal/metrics"
	"clickrec/internal/repository"
)

const keySubCategories = "subcategories:"

// Cache is a read-through cache. Redis failures degrade to the backing store;
// backing store failures are returned and never cached.
type Cache struct {
	client  goredis.UniversalClient
	backend repository.CategoryRepository
	ttl     time.Duration
	log     *zap.Logger
}

func NewClient(cfg *config.Config) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	})
}

func New(client goredis.UniversalClient, backend repository.CategoryRepository, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{client: client, backend: backend, ttl: ttl, log: logger}
}

func Key(category string) string {
	return keySubCategories + category
}

func (c *Cache) SubCategories(ctx context.Context, category string) ([]string, error) {
	key := Key(category)

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var names []string
		jsonErr := json.Unmarshal(cached, &names)
		if jsonErr == nil {
			metrics.CategoryCacheResults.WithLabelValues("hit").Inc()
			if names == nil {
				names = []string{}
			}
			return names, nil
		}
		metrics.CategoryCacheResults.WithLabelValues("error").Inc()
		c.log.Warn("redis cached sub-categories unreadable", zap.String("key", key), zap.Error(jsonErr))
	case errors.Is(err, goredis.Nil):
		metrics.CategoryCacheResults.WithLabelValues("miss").Inc()
	default:
		metrics.CategoryCacheResults.WithLabelValues("error").Inc()
		c.log.Warn("redis get failed", zap.String("key", key), zap.Error(err))
	}

	names, err := c.backend.SubCategories(ctx, category)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(names)
	if err != nil {
		c.log.Warn("sub-categories marshal failed", zap.String("key", key), zap.Error(err))
		return names, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
	return names, nil
}

// Invalidate drops the cached entry for category.
func (c *Cache) Invalidate(ctx context.Context, category string) error {
	return c.client.Del(ctx, Key(category)).Err()
}
