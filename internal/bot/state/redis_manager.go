package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/calorelia/calorelia-bot/internal/config"
	"github.com/calorelia/calorelia-bot/internal/domain"
	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long abandoned conversational state survives.
const sessionTTL = 24 * time.Hour

// RedisManager keeps conversational state in Redis so it survives bot
// restarts within the session window.
type RedisManager struct {
	client *redis.Client
}

// NewRedisManager creates a new Redis-based state manager
func NewRedisManager(cfg config.RedisConfig) (*RedisManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisManager{client: client}, nil
}

// SetUserState sets the state for a user with TTL
func (m *RedisManager) SetUserState(userID int64, state string) {
	ctx := context.Background()
	m.client.Set(ctx, fmt.Sprintf("session:%d:state", userID), state, sessionTTL)
}

// GetUserState gets the state for a user
func (m *RedisManager) GetUserState(userID int64) string {
	ctx := context.Background()
	result := m.client.Get(ctx, fmt.Sprintf("session:%d:state", userID))
	if result.Err() != nil {
		return None
	}
	return result.Val()
}

// SetShowingDifference sets the difference-view flag for a user
func (m *RedisManager) SetShowingDifference(userID int64, showing bool) {
	ctx := context.Background()
	m.client.Set(ctx, fmt.Sprintf("session:%d:diff", userID), showing, sessionTTL)
}

// ShowingDifference reports the difference-view flag for a user
func (m *RedisManager) ShowingDifference(userID int64) bool {
	ctx := context.Background()
	result := m.client.Get(ctx, fmt.Sprintf("session:%d:diff", userID))
	if result.Err() != nil {
		return false
	}
	showing, _ := result.Bool()
	return showing
}

// SetPendingCandidates stores AI candidates awaiting confirmation
func (m *RedisManager) SetPendingCandidates(userID int64, items []domain.FoodCandidate) {
	ctx := context.Background()
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	m.client.Set(ctx, fmt.Sprintf("session:%d:pending", userID), data, sessionTTL)
}

// PendingCandidates returns the candidates awaiting confirmation
func (m *RedisManager) PendingCandidates(userID int64) ([]domain.FoodCandidate, bool) {
	ctx := context.Background()
	result := m.client.Get(ctx, fmt.Sprintf("session:%d:pending", userID))
	if result.Err() != nil {
		return nil, false
	}

	var items []domain.FoodCandidate
	if err := json.Unmarshal([]byte(result.Val()), &items); err != nil {
		return nil, false
	}
	return items, true
}

// ClearPendingCandidates discards any candidates awaiting confirmation
func (m *RedisManager) ClearPendingCandidates(userID int64) {
	ctx := context.Background()
	m.client.Del(ctx, fmt.Sprintf("session:%d:pending", userID))
}

// Close closes the Redis connection
func (m *RedisManager) Close() error {
	return m.client.Close()
}
