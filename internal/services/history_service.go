package services

import (
	"context"
	"time"

	"github.com/calorelia/calorelia-bot/internal/domain"
	"github.com/calorelia/calorelia-bot/internal/logger"
	"github.com/calorelia/calorelia-bot/internal/storage"
	"github.com/calorelia/calorelia-bot/internal/utils"
)

// HistoryService archives closed days and serves the history log. Records
// are prepend-only; the service never updates or deletes them.
type HistoryService struct {
	repo *storage.StateRepo
}

func NewHistoryService(repo *storage.StateRepo) *HistoryService {
	return &HistoryService{repo: repo}
}

// CloseDay snapshots the current ledger into a new history record at the
// front of the log, then resets the ledger and the naming counter. Returns
// nil without changes when the ledger is empty. Goals are left untouched.
// Closing twice on one calendar date produces two records.
func (s *HistoryService) CloseDay(ctx context.Context, userID int64, now time.Time) (*domain.DayRecord, error) {
	state := s.repo.Load(ctx, userID)
	if len(state.Foods) == 0 {
		return nil, nil
	}

	totals := state.Totals()
	record := domain.DayRecord{
		Date:          utils.FormatShortDate(now),
		TotalProtein:  totals.Protein,
		TotalCalories: totals.Calories,
		Foods:         append([]domain.FoodEntry(nil), state.Foods...),
	}

	state.History = append([]domain.DayRecord{record}, state.History...)
	state.Foods = []domain.FoodEntry{}
	state.Counter = 0

	if err := s.repo.Save(ctx, userID, state); err != nil {
		return nil, err
	}

	logger.Info("Day closed", "user_id", userID, "date", record.Date, "foods", len(record.Foods))
	return &record, nil
}

// List returns all archived days, newest first.
func (s *HistoryService) List(ctx context.Context, userID int64) []domain.DayRecord {
	return s.repo.Load(ctx, userID).History
}
