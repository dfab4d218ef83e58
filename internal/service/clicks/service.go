package clicks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"clickrec/internal/domain"
	"clickrec/internal/model"
	"clickrec/internal/recommend"
	"clickrec/internal/repository"
	"clickrec/internal/sse"
)

type Service struct {
	ledger     repository.ClickLedger
	categories repository.CategoryRepository
	hub        *sse.Hub
	log        *zap.Logger
	now        func() time.Time
}

func NewService(ledger repository.ClickLedger, categories repository.CategoryRepository, hub *sse.Hub, logger *zap.Logger) *Service {
	return &Service{
		ledger:     ledger,
		categories: categories,
		hub:        hub,
		log:        logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Record(ctx context.Context, userID, category string) (model.Click, error) {
	if err := domain.ValidateClick(userID, category); err != nil {
		return model.Click{}, err
	}
	if err := s.ledger.RecordClick(ctx, userID, category); err != nil {
		s.log.Error("ledger record click failed",
			zap.String("user_id", userID),
			zap.String("category", category),
			zap.Error(err),
		)
		return model.Click{}, err
	}
	click := model.Click{UserID: userID, Category: category, ClickedAt: s.now()}
	s.hub.Broadcast(click)
	return click, nil
}

// History returns up to limit of the user's most recent clicks, oldest first.
// A non-positive limit returns the whole history.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]string, error) {
	history, _, err := s.ledger.History(ctx, userID)
	if err != nil {
		s.log.Error("ledger history failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	if limit > 0 {
		return recommend.Window(history, limit), nil
	}
	return history, nil
}

func (s *Service) Recommend(ctx context.Context, userID string, windowSize int) (model.Recommendation, error) {
	history, ok, err := s.ledger.History(ctx, userID)
	if err != nil {
		s.log.Error("ledger history failed", zap.String("user_id", userID), zap.Error(err))
		return model.Recommendation{}, err
	}
	if !ok {
		return model.Recommendation{}, domain.ErrUserNotFound
	}

	top, recent := recommend.Top(history, windowSize, domain.TopCategories)

	labels := make([]string, 0, len(top))
	for _, c := range top {
		labels = append(labels, c.Category)
	}
	subCategories, err := s.Enrich(ctx, labels)
	if err != nil {
		return model.Recommendation{}, err
	}

	return model.Recommendation{
		MostCommon:    top,
		SubCategories: subCategories,
		RecentClicks:  recent,
	}, nil
}

// Enrich looks up the sub-categories of every category concurrently.
// The first failing lookup cancels the others and fails the whole call.
func (s *Service) Enrich(ctx context.Context, categories []string) (map[string][]string, error) {
	ctx, span := otel.Tracer("clicks").Start(ctx, "clicks.enrich")
	span.SetAttributes(attribute.StringSlice("categories", categories))
	defer span.End()

	results := make([][]string, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			names, err := s.categories.SubCategories(gctx, category)
			if err != nil {
				return fmt.Errorf("sub-categories of %q: %w", category, err)
			}
			results[i] = names
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "category lookup failed")
		s.log.Error("category enrichment failed", zap.Strings("categories", categories), zap.Error(err))
		return nil, err
	}

	out := make(map[string][]string, len(categories))
	for i, category := range categories {
		names := results[i]
		if names == nil {
			names = []string{}
		}
		out[category] = names
	}
	return out, nil
}

func (s *Service) Reset(ctx context.Context, userID string) error {
	if err := s.ledger.Reset(ctx, userID); err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Error("ledger reset failed", zap.String("user_id", userID), zap.Error(err))
		}
		return err
	}
	s.log.Info("click history reset", zap.String("user_id", userID))
	return nil
}
