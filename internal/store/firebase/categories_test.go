package firebase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	data  map[string]string
	err   error
	paths []string
}

func (f *fakeReader) Get(_ context.Context, path string, v any) error {
	f.paths = append(f.paths, path)
	if f.err != nil {
		return f.err
	}
	value, ok := f.data[path]
	if !ok {
		value = "null"
	}
	return json.Unmarshal([]byte(value), v)
}

func TestPath(t *testing.T) {
	require.Equal(t, "category/Cooking/SubCategories", New(nil, "category", zap.NewNop()).Path("Cooking"))
	require.Equal(t, "Grocery Shopping/SubCategories", New(nil, "", zap.NewNop()).Path("Grocery Shopping"))
}

func TestSubCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("object keyed by id", func(t *testing.T) {
		reader := &fakeReader{data: map[string]string{
			"category/Cooking/SubCategories": `{"b":{"name":"Grilling","icon":"fire"},"a":{"name":"Baking"}}`,
		}}
		store := New(reader, "category", zap.NewNop())

		names, err := store.SubCategories(ctx, "Cooking")
		require.NoError(t, err)
		require.Equal(t, []string{"Baking", "Grilling"}, names)
		require.Equal(t, []string{"category/Cooking/SubCategories"}, reader.paths)
	})

	t.Run("array shaped", func(t *testing.T) {
		reader := &fakeReader{data: map[string]string{
			"category/Gardening/SubCategories": `[null,{"name":"Herbs"},{"name":"Roses"}]`,
		}}
		store := New(reader, "category", zap.NewNop())

		names, err := store.SubCategories(ctx, "Gardening")
		require.NoError(t, err)
		require.Equal(t, []string{"Herbs", "Roses"}, names)
	})

	t.Run("absent category", func(t *testing.T) {
		store := New(&fakeReader{}, "category", zap.NewNop())

		names, err := store.SubCategories(ctx, "Unknown")
		require.NoError(t, err)
		require.NotNil(t, names)
		require.Empty(t, names)
	})

	t.Run("case sensitive", func(t *testing.T) {
		reader := &fakeReader{data: map[string]string{
			"category/Cooking/SubCategories": `{"a":{"name":"Baking"}}`,
		}}
		store := New(reader, "category", zap.NewNop())

		names, err := store.SubCategories(ctx, "cooking")
		require.NoError(t, err)
		require.Empty(t, names)
	})

	t.Run("record without name", func(t *testing.T) {
		reader := &fakeReader{data: map[string]string{
			"category/Cooking/SubCategories": `{"a":{"title":"Baking"}}`,
		}}
		store := New(reader, "category", zap.NewNop())

		_, err := store.SubCategories(ctx, "Cooking")
		require.ErrorIs(t, err, ErrMalformedCategory)
	})

	t.Run("scalar value", func(t *testing.T) {
		reader := &fakeReader{data: map[string]string{
			"category/Cooking/SubCategories": `"oops"`,
		}}
		store := New(reader, "category", zap.NewNop())

		_, err := store.SubCategories(ctx, "Cooking")
		require.ErrorIs(t, err, ErrMalformedCategory)
	})

	t.Run("reader error", func(t *testing.T) {
		readErr := errors.New("unavailable")
		store := New(&fakeReader{err: readErr}, "category", zap.NewNop())

		_, err := store.SubCategories(ctx, "Cooking")
		require.ErrorIs(t, err, readErr)
	})
}
