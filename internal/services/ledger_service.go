package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/calorelia/calorelia-bot/internal/domain"
	apperrors "github.com/calorelia/calorelia-bot/internal/errors"
	"github.com/calorelia/calorelia-bot/internal/logger"
	"github.com/calorelia/calorelia-bot/internal/storage"
	"github.com/google/uuid"
)

// LedgerService manages the current day's food entries.
type LedgerService struct {
	repo *storage.StateRepo
}

// EntryInput describes one manual entry. Protein and Calories are per-unit
// values; Amount is the multiplier applied at creation (0 means default 1).
type EntryInput struct {
	Protein  float64
	Calories float64
	Name     string
	Amount   float64
}

func NewLedgerService(repo *storage.StateRepo) *LedgerService {
	return &LedgerService{repo: repo}
}

// AddEntry validates, scales and records one entry. A zero-valued entry
// (no protein and no calories) is rejected with ErrInvalidEntry; an unnamed
// entry consumes the next auto-naming counter value.
func (s *LedgerService) AddEntry(ctx context.Context, userID int64, input EntryInput) (*domain.FoodEntry, error) {
	if input.Protein < 0 || input.Calories < 0 {
		return nil, apperrors.ErrInvalidEntry
	}
	amount := input.Amount
	if amount == 0 {
		amount = 1
	}
	if amount < 0 {
		return nil, apperrors.ErrInvalidEntry
	}

	protein := input.Protein * amount
	calories := input.Calories * amount
	if protein == 0 && calories == 0 {
		return nil, apperrors.ErrInvalidEntry
	}

	state := s.repo.Load(ctx, userID)

	name := strings.TrimSpace(input.Name)
	displayName := name
	if name == "" {
		state.Counter++
		displayName = "Food " + strconv.Itoa(state.Counter)
	}

	entry := domain.FoodEntry{
		ID:          uuid.NewString(),
		Protein:     protein,
		Calories:    calories,
		Name:        name,
		DisplayName: displayName,
		Amount:      amount,
		Timestamp:   time.Now(),
	}
	state.Foods = append(state.Foods, entry)

	if err := s.repo.Save(ctx, userID, state); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveEntry deletes the entry at the given position. An out-of-range
// position is a no-op so stale delete clicks never fail.
func (s *LedgerService) RemoveEntry(ctx context.Context, userID int64, index int) error {
	state := s.repo.Load(ctx, userID)
	if index < 0 || index >= len(state.Foods) {
		logger.Debug("Ignoring out-of-range entry removal", "user_id", userID, "index", index, "entries", len(state.Foods))
		return nil
	}
	state.Foods = append(state.Foods[:index], state.Foods[index+1:]...)
	return s.repo.Save(ctx, userID, state)
}

// Entries returns the current ledger in display order.
func (s *LedgerService) Entries(ctx context.Context, userID int64) []domain.FoodEntry {
	return s.repo.Load(ctx, userID).Foods
}

// Totals returns the component-wise sum over the current ledger.
func (s *LedgerService) Totals(ctx context.Context, userID int64) domain.Totals {
	return s.repo.Load(ctx, userID).Totals()
}
