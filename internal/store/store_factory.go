package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"clickrec/internal/config"
	"clickrec/internal/db"
	"clickrec/internal/repository"
	"clickrec/internal/store/firebase"
	"clickrec/internal/store/memory"
	"clickrec/internal/store/mysql"
	"clickrec/internal/store/redis"
)

// NewLedger builds the in-memory click ledger, seeding the demo users when enabled.
func NewLedger(cfg *config.Config, logger *zap.Logger) repository.ClickLedger {
	ledger := memory.New(logger)
	if cfg.SeedDemoClicks {
		ledger.Seed(memory.DemoClicks())
	}
	return ledger
}

// NewCategoryStore picks Firebase, then MySQL, then an empty static tree, and
// puts the Redis cache in front when REDIS_ADDR is set.
func NewCategoryStore(cfg *config.Config, logger *zap.Logger) (repository.CategoryRepository, error) {
	backend, err := newCategoryBackend(cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.RedisAddr == "" {
		return backend, nil
	}
	client := redis.NewClient(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// the cache degrades to the backend on every call, so keep going
		logger.Warn("redis ping failed", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	logger.Info("sub-category cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CategoryCacheTTL))
	return redis.New(client, backend, cfg.CategoryCacheTTL, logger), nil
}

func newCategoryBackend(cfg *config.Config, logger *zap.Logger) (repository.CategoryRepository, error) {
	if cfg.Firebase.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err := firebase.Dial(ctx, cfg, logger)
		if err != nil {
			logger.Error("firebase init failed", zap.Error(err))
			return nil, err
		}
		return store, nil
	}
	if cfg.MySQLDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		conn, err := mysql.Open(ctx, cfg.MySQLDSN)
		if err != nil {
			logger.Error("mysql init failed", zap.Error(err))
			return nil, err
		}
		return mysql.New(db.New(conn), logger), nil
	}
	logger.Warn("no category store configured, sub-category suggestions will be empty")
	return memory.NewCategories(nil), nil
}
