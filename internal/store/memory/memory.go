package memory

import (
	"sync"

	"go.uber.org/zap"
)

// Store is the process-local click ledger. Histories live until reset or exit.
type Store struct {
	mu     sync.RWMutex
	clicks map[string][]string
	log    *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{clicks: make(map[string][]string), log: logger}
}

// DemoClicks are the histories preloaded when demo seeding is enabled.
func DemoClicks() map[string][]string {
	return map[string][]string{
		"user_123": {"Cooking", "Gardening", "Grocery Shopping", "Cooking", "Cooking"},
		"user_456": {"cooking", "school_work", "grocery_shopping"},
	}
}

// Seed replaces the histories of the given users.
func (s *Store) Seed(histories map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, categories := range histories {
		s.clicks[userID] = append([]string(nil), categories...)
	}
	s.log.Info("click ledger seeded", zap.Int("users", len(histories)))
}
