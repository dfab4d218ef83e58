package mysql

import (
	"context"
	"time"

	"go.uber.org/zap"

	"clickrec/internal/db"
	"clickrec/internal/metrics"
)

// SubCategories lists display names ordered by sub-category id. An unknown
// category yields an empty slice.
func (s *Store) SubCategories(ctx context.Context, category string) ([]string, error) {
	start := time.Now()
	rows, err := s.queries.ListSubCategories(ctx, category)
	if err != nil {
		metrics.CategoryLookupDuration.WithLabelValues("mysql", "error").Observe(time.Since(start).Seconds())
		s.log.Error("sql list sub-categories failed", zap.String("category", category), zap.Error(err))
		return nil, err
	}
	metrics.CategoryLookupDuration.WithLabelValues("mysql", "ok").Observe(time.Since(start).Seconds())

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names, nil
}

func (s *Store) PutSubCategory(ctx context.Context, category, subID, name string) error {
	err := s.queries.UpsertSubCategory(ctx, db.UpsertSubCategoryParams{
		Category: category,
		SubID:    subID,
		Name:     name,
	})
	if err != nil {
		s.log.Error("sql upsert sub-category failed",
			zap.String("category", category),
			zap.String("sub_id", subID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
