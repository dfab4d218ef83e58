package clicks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clickrec/internal/domain"
	"clickrec/internal/model"
	"clickrec/internal/sse"
	"clickrec/internal/store/memory"
)

type ledgerMock struct {
	mock.Mock
}

func (m *ledgerMock) RecordClick(ctx context.Context, userID, category string) error {
	args := m.Called(ctx, userID, category)
	return args.Error(0)
}

func (m *ledgerMock) History(ctx context.Context, userID string) ([]string, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Bool(1), args.Error(2)
}

func (m *ledgerMock) Reset(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type categoriesMock struct {
	mock.Mock
}

func (m *categoriesMock) SubCategories(ctx context.Context, category string) ([]string, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]string), args.Error(1)
}

func TestServiceRecord(t *testing.T) {
	t.Run("invalid click", func(t *testing.T) {
		ledger := &ledgerMock{}
		svc := NewService(ledger, &categoriesMock{}, sse.NewHub(), zap.NewNop())

		_, err := svc.Record(context.Background(), "", "Cooking")
		require.ErrorIs(t, err, domain.ErrInvalidClick)
		ledger.AssertNotCalled(t, "RecordClick", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ledger error", func(t *testing.T) {
		ledgerErr := errors.New("ledger failed")
		ledger := &ledgerMock{}
		ledger.On("RecordClick", mock.Anything, "user-1", "Cooking").Return(ledgerErr).Once()
		svc := NewService(ledger, &categoriesMock{}, sse.NewHub(), zap.NewNop())

		_, err := svc.Record(context.Background(), "user-1", "Cooking")
		require.ErrorIs(t, err, ledgerErr)
		ledger.AssertExpectations(t)
	})

	t.Run("broadcasts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		hub := sse.NewHub()
		go hub.Run(ctx)

		client := &sse.Client{UserID: "user-1", Ch: make(chan model.Click, 1)}
		hub.Register(client)
		defer hub.Unregister(client)

		ledger := &ledgerMock{}
		ledger.On("RecordClick", mock.Anything, "user-1", "Cooking").Return(nil).Once()
		svc := NewService(ledger, &categoriesMock{}, hub, zap.NewNop())

		click, err := svc.Record(context.Background(), "user-1", "Cooking")
		require.NoError(t, err)
		require.Equal(t, "Cooking", click.Category)
		require.False(t, click.ClickedAt.IsZero())
		ledger.AssertExpectations(t)

		select {
		case got := <-client.Ch:
			require.Equal(t, "user-1", got.UserID)
			require.Equal(t, "Cooking", got.Category)
		case <-time.After(200 * time.Millisecond):
			t.Fatalf("expected broadcast to client")
		}
	})
}

func TestServiceRecommend(t *testing.T) {
	history := []string{"Cooking", "Gardening", "Grocery Shopping", "Cooking", "Cooking"}

	t.Run("unknown user", func(t *testing.T) {
		ledger := &ledgerMock{}
		ledger.On("History", mock.Anything, "nobody").Return([]string(nil), false, nil).Once()
		cats := &categoriesMock{}
		svc := NewService(ledger, cats, sse.NewHub(), zap.NewNop())

		_, err := svc.Recommend(context.Background(), "nobody", 5)
		require.ErrorIs(t, err, domain.ErrUserNotFound)
		cats.AssertNotCalled(t, "SubCategories", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		ledger := &ledgerMock{}
		ledger.On("History", mock.Anything, "user_123").Return(history, true, nil).Once()
		cats := &categoriesMock{}
		cats.On("SubCategories", mock.Anything, "Cooking").Return([]string{"Baking", "Grilling"}, nil).Once()
		cats.On("SubCategories", mock.Anything, "Gardening").Return([]string{"Herbs"}, nil).Once()
		cats.On("SubCategories", mock.Anything, "Grocery Shopping").Return([]string(nil), nil).Once()
		svc := NewService(ledger, cats, sse.NewHub(), zap.NewNop())

		rec, err := svc.Recommend(context.Background(), "user_123", 5)
		require.NoError(t, err)
		require.Equal(t, []string{"Cooking", "Gardening", "Grocery Shopping"}, rec.Categories())
		require.Equal(t, 3, rec.MostCommon[0].Count)
		require.Equal(t, []string{"Baking", "Grilling"}, rec.SubCategories["Cooking"])
		require.Equal(t, []string{"Herbs"}, rec.SubCategories["Gardening"])
		require.Equal(t, []string{}, rec.SubCategories["Grocery Shopping"])
		require.Equal(t, history, rec.RecentClicks)
		ledger.AssertExpectations(t)
		cats.AssertExpectations(t)
	})

	t.Run("empty window", func(t *testing.T) {
		ledger := &ledgerMock{}
		ledger.On("History", mock.Anything, "user_123").Return(history, true, nil).Once()
		cats := &categoriesMock{}
		svc := NewService(ledger, cats, sse.NewHub(), zap.NewNop())

		rec, err := svc.Recommend(context.Background(), "user_123", 0)
		require.NoError(t, err)
		require.Empty(t, rec.MostCommon)
		require.Empty(t, rec.SubCategories)
		require.Empty(t, rec.RecentClicks)
		cats.AssertNotCalled(t, "SubCategories", mock.Anything, mock.Anything)
	})

	t.Run("category store error", func(t *testing.T) {
		storeErr := errors.New("store unreachable")
		ledger := &ledgerMock{}
		ledger.On("History", mock.Anything, "user-1").Return([]string{"Cooking"}, true, nil).Once()
		cats := &categoriesMock{}
		cats.On("SubCategories", mock.Anything, "Cooking").Return([]string(nil), storeErr).Once()
		svc := NewService(ledger, cats, sse.NewHub(), zap.NewNop())

		_, err := svc.Recommend(context.Background(), "user-1", 5)
		require.ErrorIs(t, err, storeErr)
		cats.AssertExpectations(t)
	})
}

func TestServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	ledger := memory.New(zap.NewNop())
	cats := memory.NewCategories(map[string][]string{"Hiking": {"Trails"}})
	svc := NewService(ledger, cats, sse.NewHub(), zap.NewNop())

	for _, c := range []string{"Cooking", "Cooking", "Cooking", "Hiking"} {
		_, err := svc.Record(ctx, "user-1", c)
		require.NoError(t, err)
	}

	rec, err := svc.Recommend(ctx, "user-1", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Hiking"}, rec.Categories())
	require.Equal(t, []string{"Trails"}, rec.SubCategories["Hiking"])
	require.Equal(t, []string{"Hiking"}, rec.RecentClicks)
}

func TestServiceHistory(t *testing.T) {
	ctx := context.Background()
	ledger := memory.New(zap.NewNop())
	svc := NewService(ledger, memory.NewCategories(nil), sse.NewHub(), zap.NewNop())

	for _, c := range []string{"a", "b", "c"} {
		_, err := svc.Record(ctx, "user-1", c)
		require.NoError(t, err)
	}

	got, err := svc.History(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, got)

	got, err = svc.History(ctx, "user-1", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, got)

	got, err = svc.History(ctx, "nobody", 5)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestServiceReset(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ledger := &ledgerMock{}
		ledger.On("Reset", mock.Anything, "nobody").Return(domain.ErrUserNotFound).Once()
		svc := NewService(ledger, &categoriesMock{}, sse.NewHub(), zap.NewNop())

		require.ErrorIs(t, svc.Reset(context.Background(), "nobody"), domain.ErrUserNotFound)
		ledger.AssertExpectations(t)
	})

	t.Run("success", func(t *testing.T) {
		ctx := context.Background()
		ledger := memory.New(zap.NewNop())
		svc := NewService(ledger, memory.NewCategories(nil), sse.NewHub(), zap.NewNop())
		_, err := svc.Record(ctx, "user-1", "Cooking")
		require.NoError(t, err)

		require.NoError(t, svc.Reset(ctx, "user-1"))
		_, err = svc.Recommend(ctx, "user-1", 5)
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
