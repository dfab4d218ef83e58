package memory

import (
	"context"

	"clickrec/internal/domain"
	"go.uber.org/zap"
)

func (s *Store) RecordClick(_ context.Context, userID, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clicks[userID] = append(s.clicks[userID], category)
	s.log.Debug("click recorded",
		zap.String("user_id", userID),
		zap.String("category", category),
		zap.Int("history_len", len(s.clicks[userID])),
	)
	return nil
}

func (s *Store) History(_ context.Context, userID string) ([]string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history, ok := s.clicks[userID]
	if !ok {
		return nil, false, nil
	}
	return append([]string{}, history...), true, nil
}

func (s *Store) Reset(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clicks[userID]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.clicks, userID)
	return nil
}
