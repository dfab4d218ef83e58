// Package firebase reads the category tree from a Firebase Realtime Database.
//
// Sub-categories of a category live at <root>/<category>/SubCategories, keyed
// by sub-category id, each record carrying at least a name:
//
//	{"category": {"Cooking": {"SubCategories": {"c1": {"name": "Baking"}}}}}
//
// The category label is used verbatim as a path segment.
package firebase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"clickrec/internal/config"
	"clickrec/internal/metrics"
)

const subCategoriesSegment = "SubCategories"

var ErrMalformedCategory = errors.New("malformed sub-category data")

// Reader fetches the JSON value stored at path into v.
type Reader interface {
	Get(ctx context.Context, path string, v any) error
}

type dbReader struct {
	client *db.Client
}

func (r dbReader) Get(ctx context.Context, path string, v any) error {
	return r.client.NewRef(path).Get(ctx, v)
}

type Store struct {
	reader Reader
	root   string
	log    *zap.Logger
}

// Dial initialises a Firebase app from the service account settings in cfg.
func Dial(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	creds, err := json.Marshal(cfg.Firebase)
	if err != nil {
		return nil, fmt.Errorf("firebase credentials: %w", err)
	}
	app, err := fb.NewApp(ctx, &fb.Config{DatabaseURL: cfg.Firebase.DatabaseURL}, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase database: %w", err)
	}
	logger.Info("firebase category store ready",
		zap.String("database_url", cfg.Firebase.DatabaseURL),
		zap.String("root", cfg.CategoryRootPath),
	)
	return New(dbReader{client: client}, cfg.CategoryRootPath, logger), nil
}

func New(reader Reader, root string, logger *zap.Logger) *Store {
	return &Store{reader: reader, root: root, log: logger}
}

// Path returns the database path holding the sub-categories of category.
func (s *Store) Path(category string) string {
	if s.root == "" {
		return category + "/" + subCategoriesSegment
	}
	return s.root + "/" + category + "/" + subCategoriesSegment
}

func (s *Store) SubCategories(ctx context.Context, category string) ([]string, error) {
	path := s.Path(category)
	ctx, span := otel.Tracer("firebase").Start(ctx, "firebase.get")
	span.SetAttributes(
		attribute.String("db.system", "firebase"),
		attribute.String("db.firebase.path", path),
	)
	defer span.End()

	start := time.Now()
	var raw json.RawMessage
	if err := s.reader.Get(ctx, path, &raw); err != nil {
		metrics.CategoryLookupDuration.WithLabelValues("firebase", "error").Observe(time.Since(start).Seconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, "get failed")
		s.log.Error("firebase get failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("firebase get %s: %w", path, err)
	}
	metrics.CategoryLookupDuration.WithLabelValues("firebase", "ok").Observe(time.Since(start).Seconds())

	names, err := decodeSubCategories(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		s.log.Error("firebase decode failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	return names, nil
}

type subCategory struct {
	Name *string `json:"name"`
}

// decodeSubCategories accepts both shapes the database may return: an object
// keyed by id, or an array when the ids are sequential integers.
func decodeSubCategories(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}, nil
	}

	switch raw[0] {
	case '{':
		var byID map[string]*subCategory
		if err := json.Unmarshal(raw, &byID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCategory, err)
		}
		ids := make([]string, 0, len(byID))
		for id := range byID {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		names := make([]string, 0, len(ids))
		for _, id := range ids {
			sub := byID[id]
			if sub == nil {
				continue
			}
			if sub.Name == nil {
				return nil, fmt.Errorf("%w: %s has no name", ErrMalformedCategory, id)
			}
			names = append(names, *sub.Name)
		}
		return names, nil
	case '[':
		var list []*subCategory
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCategory, err)
		}
		names := make([]string, 0, len(list))
		for i, sub := range list {
			if sub == nil {
				continue
			}
			if sub.Name == nil {
				return nil, fmt.Errorf("%w: %d has no name", ErrMalformedCategory, i)
			}
			names = append(names, *sub.Name)
		}
		return names, nil
	default:
		return nil, fmt.Errorf("%w: unexpected value %s", ErrMalformedCategory, raw)
	}
}
