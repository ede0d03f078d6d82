package storage

import (
	"context"

	"github.com/calorelia/calorelia-bot/internal/logger"
)

// resilientStore shadows every write into a memory overlay and falls back to
// it when the backend fails, so a storage outage degrades to memory-only
// operation instead of blocking the user. Data written during an outage does
// not survive a restart.
type resilientStore struct {
	inner   Store
	overlay *MemoryStore
}

// Resilient wraps a backend with the silent-degradation policy.
func Resilient(inner Store) Store {
	return &resilientStore{inner: inner, overlay: NewMemoryStore()}
}

func (s *resilientStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := s.inner.Get(ctx, key)
	if err != nil {
		logger.Warningf("Storage read failed for %s, using in-memory copy: %v", key, err)
		value, ok, _ = s.overlay.Get(ctx, key)
		return value, ok, nil
	}
	if ok {
		// Keep the overlay current so later fallbacks see the latest value.
		_ = s.overlay.Set(ctx, key, value)
	}
	return value, ok, nil
}

func (s *resilientStore) Set(ctx context.Context, key, value string) error {
	_ = s.overlay.Set(ctx, key, value)
	if err := s.inner.Set(ctx, key, value); err != nil {
		logger.Warningf("Storage write failed for %s, value kept in memory only: %v", key, err)
	}
	return nil
}

func (s *resilientStore) Remove(ctx context.Context, key string) error {
	_ = s.overlay.Remove(ctx, key)
	if err := s.inner.Remove(ctx, key); err != nil {
		logger.Warningf("Storage remove failed for %s: %v", key, err)
	}
	return nil
}

func (s *resilientStore) Close() error {
	return s.inner.Close()
}
