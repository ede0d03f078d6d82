package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/calorelia/calorelia-bot/internal/domain"
	apperrors "github.com/calorelia/calorelia-bot/internal/errors"
	"github.com/calorelia/calorelia-bot/internal/logger"
)

// Slot names, one per persisted field of the tracker aggregate.
const (
	SlotFoods   = "foods"
	SlotGoals   = "goals"
	SlotHistory = "history"
	SlotCounter = "counter"
	SlotAPIKey  = "api_key"
)

// StateRepo maps a user's tracker aggregate onto the five storage slots.
// Loading is best effort: an absent or unparsable slot falls back to its
// default with a logged warning, never failing startup. Saving writes the
// four data slots individually; the writes are not transactional, so a crash
// mid-save can leave slots from different generations (accepted, see
// DESIGN.md).
type StateRepo struct {
	store Store
}

// NewStateRepo creates a state repository over the given store.
func NewStateRepo(store Store) *StateRepo {
	return &StateRepo{store: store}
}

func userKey(userID int64, slot string) string {
	return fmt.Sprintf("user:%d:%s", userID, slot)
}

// Load reads one user's tracker state.
func (r *StateRepo) Load(ctx context.Context, userID int64) *domain.TrackerState {
	state := &domain.TrackerState{
		Foods:   []domain.FoodEntry{},
		History: []domain.DayRecord{},
	}

	if raw, ok := r.get(ctx, userID, SlotFoods); ok {
		if err := json.Unmarshal([]byte(raw), &state.Foods); err != nil {
			logger.Warningf("Discarding unreadable foods slot for user %d: %v", userID, err)
			state.Foods = []domain.FoodEntry{}
		}
	}
	if raw, ok := r.get(ctx, userID, SlotGoals); ok {
		if err := json.Unmarshal([]byte(raw), &state.Goals); err != nil {
			logger.Warningf("Discarding unreadable goals slot for user %d: %v", userID, err)
			state.Goals = domain.Goals{}
		}
	}
	if raw, ok := r.get(ctx, userID, SlotHistory); ok {
		if err := json.Unmarshal([]byte(raw), &state.History); err != nil {
			logger.Warningf("Discarding unreadable history slot for user %d: %v", userID, err)
			state.History = []domain.DayRecord{}
		}
	}
	if raw, ok := r.get(ctx, userID, SlotCounter); ok {
		counter, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warningf("Discarding unreadable counter slot for user %d: %v", userID, err)
			counter = 0
		}
		state.Counter = counter
	}

	return state
}

// Save persists one user's tracker state.
func (r *StateRepo) Save(ctx context.Context, userID int64, state *domain.TrackerState) error {
	foods, err := json.Marshal(state.Foods)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "ENCODE", "failed to encode foods")
	}
	goals, err := json.Marshal(state.Goals)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "ENCODE", "failed to encode goals")
	}
	history, err := json.Marshal(state.History)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "ENCODE", "failed to encode history")
	}

	writes := []struct{ slot, value string }{
		{SlotFoods, string(foods)},
		{SlotGoals, string(goals)},
		{SlotHistory, string(history)},
		{SlotCounter, strconv.Itoa(state.Counter)},
	}
	for _, w := range writes {
		if err := r.store.Set(ctx, userKey(userID, w.slot), w.value); err != nil {
			return apperrors.NewStorageError(err)
		}
	}
	return nil
}

// APIKey reads the user's stored AI credential, empty when unset.
func (r *StateRepo) APIKey(ctx context.Context, userID int64) string {
	raw, _ := r.get(ctx, userID, SlotAPIKey)
	return raw
}

// SetAPIKey stores the user's AI credential as a raw string.
func (r *StateRepo) SetAPIKey(ctx context.Context, userID int64, key string) error {
	if err := r.store.Set(ctx, userKey(userID, SlotAPIKey), key); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (r *StateRepo) get(ctx context.Context, userID int64, slot string) (string, bool) {
	raw, ok, err := r.store.Get(ctx, userKey(userID, slot))
	if err != nil {
		logger.Warningf("Storage read failed for user %d slot %s: %v", userID, slot, err)
		return "", false
	}
	return raw, ok
}
