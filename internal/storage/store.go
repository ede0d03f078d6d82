// Package storage provides the durable string-keyed store behind the
// tracker's persistence slots, with interchangeable Postgres, Redis and
// in-memory backends.
package storage

import (
	"context"

	"github.com/calorelia/calorelia-bot/internal/config"
	"github.com/calorelia/calorelia-bot/internal/logger"
)

// Store is a durable mapping from string key to string value. Get reports
// absence through its second return value, not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// New builds the configured backend wrapped in the resilient overlay. A
// backend that cannot be reached at startup degrades to memory-only
// operation with a logged diagnostic instead of failing the process.
func New(cfg config.StorageConfig) Store {
	switch cfg.Backend {
	case config.BackendPostgres:
		s, err := NewPostgresStore(cfg.DB)
		if err != nil {
			logger.Warningf("Postgres unavailable, continuing in memory: %v", err)
			return NewMemoryStore()
		}
		return Resilient(s)
	case config.BackendRedis:
		s, err := NewRedisStore(cfg.Redis)
		if err != nil {
			logger.Warningf("Redis unavailable, continuing in memory: %v", err)
			return NewMemoryStore()
		}
		return Resilient(s)
	default:
		return NewMemoryStore()
	}
}
