package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clickrec/internal/config"
	"clickrec/internal/store/memory"
	"clickrec/internal/store/redis"
)

func TestNewLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("empty by default", func(t *testing.T) {
		ledger := NewLedger(&config.Config{}, zap.NewNop())
		_, ok, err := ledger.History(ctx, "user_123")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("seeded", func(t *testing.T) {
		ledger := NewLedger(&config.Config{SeedDemoClicks: true}, zap.NewNop())
		history, ok, err := ledger.History(ctx, "user_456")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []string{"cooking", "school_work", "grocery_shopping"}, history)
	})
}

func TestNewCategoryStore(t *testing.T) {
	t.Run("static fallback", func(t *testing.T) {
		repo, err := NewCategoryStore(&config.Config{}, zap.NewNop())
		require.NoError(t, err)
		require.IsType(t, &memory.Categories{}, repo)

		names, err := repo.SubCategories(context.Background(), "Cooking")
		require.NoError(t, err)
		require.Empty(t, names)
	})

	t.Run("cache in front", func(t *testing.T) {
		repo, err := NewCategoryStore(&config.Config{RedisAddr: "127.0.0.1:1"}, zap.NewNop())
		require.NoError(t, err)
		require.IsType(t, &redis.Cache{}, repo)
	})
}
