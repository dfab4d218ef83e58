package memory

import (
	"context"
	"sync"
)

// Categories is a static category tree, used when no remote store is configured.
type Categories struct {
	mu   sync.RWMutex
	tree map[string][]string
}

func NewCategories(tree map[string][]string) *Categories {
	c := &Categories{tree: make(map[string][]string, len(tree))}
	for category, names := range tree {
		c.tree[category] = append([]string(nil), names...)
	}
	return c
}

func (c *Categories) SubCategories(_ context.Context, category string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string{}, c.tree[category]...), nil
}

func (c *Categories) Put(category string, names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree[category] = append([]string(nil), names...)
}
