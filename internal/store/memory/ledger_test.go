package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"clickrec/internal/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLedgerRecordClick(t *testing.T) {
	ctx := context.Background()
	store := New(zap.NewNop())

	clicks := []string{"Cooking", "Gardening", "Cooking", "Grocery Shopping"}
	for _, c := range clicks {
		require.NoError(t, store.RecordClick(ctx, "user-1", c))
	}

	history, ok, err := store.History(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, clicks, history)
}

func TestLedgerHistoryIsCopy(t *testing.T) {
	ctx := context.Background()
	store := New(zap.NewNop())
	require.NoError(t, store.RecordClick(ctx, "user-1", "Cooking"))

	history, _, err := store.History(ctx, "user-1")
	require.NoError(t, err)
	history[0] = "mutated"

	again, _, err := store.History(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{"Cooking"}, again)
}

func TestLedgerUnknownUser(t *testing.T) {
	store := New(zap.NewNop())

	history, ok, err := store.History(context.Background(), "nobody")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, history)
}

func TestLedgerReset(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		store := New(zap.NewNop())
		require.ErrorIs(t, store.Reset(ctx, "nobody"), domain.ErrUserNotFound)
	})

	t.Run("known user", func(t *testing.T) {
		store := New(zap.NewNop())
		require.NoError(t, store.RecordClick(ctx, "user-1", "Cooking"))
		require.NoError(t, store.RecordClick(ctx, "user-2", "Gardening"))

		require.NoError(t, store.Reset(ctx, "user-1"))

		_, ok, err := store.History(ctx, "user-1")
		require.NoError(t, err)
		require.False(t, ok)

		other, ok, err := store.History(ctx, "user-2")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []string{"Gardening"}, other)

		require.ErrorIs(t, store.Reset(ctx, "user-1"), domain.ErrUserNotFound)
	})
}

func TestLedgerConcurrentUsers(t *testing.T) {
	ctx := context.Background()
	store := New(zap.NewNop())

	var wg sync.WaitGroup
	for u := 0; u < 8; u++ {
		wg.Add(1)
		go func(u int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", u)
			for i := 0; i < 50; i++ {
				_ = store.RecordClick(ctx, userID, fmt.Sprintf("cat-%d", i))
			}
		}(u)
	}
	wg.Wait()

	for u := 0; u < 8; u++ {
		history, ok, err := store.History(ctx, fmt.Sprintf("user-%d", u))
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, history, 50)
		require.Equal(t, "cat-0", history[0])
		require.Equal(t, "cat-49", history[49])
	}
}

func TestSeed(t *testing.T) {
	store := New(zap.NewNop())
	store.Seed(DemoClicks())

	history, ok, err := store.History(context.Background(), "user_123")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"Cooking", "Gardening", "Grocery Shopping", "Cooking", "Cooking"}, history)
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	cats := NewCategories(map[string][]string{"Cooking": {"Baking", "Grilling"}})

	names, err := cats.SubCategories(ctx, "Cooking")
	require.NoError(t, err)
	require.Equal(t, []string{"Baking", "Grilling"}, names)

	names, err = cats.SubCategories(ctx, "cooking")
	require.NoError(t, err)
	require.Empty(t, names)

	cats.Put("cooking", []string{"Soups"})
	names, err = cats.SubCategories(ctx, "cooking")
	require.NoError(t, err)
	require.Equal(t, []string{"Soups"}, names)
}
