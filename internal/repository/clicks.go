package repository

import "context"

type ClickLedger interface {
	RecordClick(ctx context.Context, userID, category string) error
	History(ctx context.Context, userID string) ([]string, bool, error)
	Reset(ctx context.Context, userID string) error
}

// CategoryRepository resolves sub-category display names for a category label.
// An unknown or empty category yields an empty slice, not an error.
type CategoryRepository interface {
	SubCategories(ctx context.Context, category string) ([]string, error)
}
