package services

import (
	"context"
	"time"

	"github.com/calorelia/calorelia-bot/internal/domain"
	"github.com/calorelia/calorelia-bot/internal/logger"
	"github.com/calorelia/calorelia-bot/internal/storage"
	"github.com/google/uuid"
)

// ImportService merges confirmed AI candidates into the ledger. Candidates
// already carry total quantities, so every entry gets amount 1, and the
// candidate name is used as-is, even when empty: the auto-naming counter is
// reserved for manual entries.
type ImportService struct {
	repo *storage.StateRepo
}

func NewImportService(repo *storage.StateRepo) *ImportService {
	return &ImportService{repo: repo}
}

// Commit appends one ledger entry per candidate and returns the number
// recorded. Items are committed independently: a zero-valued or negative
// candidate is skipped with a warning without aborting the rest.
func (s *ImportService) Commit(ctx context.Context, userID int64, items []domain.FoodCandidate) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	state := s.repo.Load(ctx, userID)
	added := 0
	for _, item := range items {
		if item.Protein < 0 || item.Calories < 0 || (item.Protein == 0 && item.Calories == 0) {
			logger.Warningf("Skipping AI candidate %q with unusable values (protein=%v, calories=%v)", item.Name, item.Protein, item.Calories)
			continue
		}
		state.Foods = append(state.Foods, domain.FoodEntry{
			ID:          uuid.NewString(),
			Protein:     item.Protein,
			Calories:    item.Calories,
			Name:        item.Name,
			DisplayName: item.Name,
			Amount:      1,
			Timestamp:   time.Now(),
		})
		added++
	}

	if added == 0 {
		return 0, nil
	}
	if err := s.repo.Save(ctx, userID, state); err != nil {
		return 0, err
	}
	return added, nil
}
