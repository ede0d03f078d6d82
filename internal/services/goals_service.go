package services

import (
	"context"
	"math"

	"github.com/calorelia/calorelia-bot/internal/domain"
	apperrors "github.com/calorelia/calorelia-bot/internal/errors"
	"github.com/calorelia/calorelia-bot/internal/storage"
)

// GoalsService manages the optional daily protein and calorie targets.
type GoalsService struct {
	repo *storage.StateRepo
}

func NewGoalsService(repo *storage.StateRepo) *GoalsService {
	return &GoalsService{repo: repo}
}

// SetGoals sets or clears the daily targets. A nil field clears that target.
// Goals persist across day closes.
func (s *GoalsService) SetGoals(ctx context.Context, userID int64, protein, calories *float64) error {
	for _, v := range []*float64{protein, calories} {
		if v != nil && (*v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return apperrors.ErrInvalidGoal
		}
	}

	state := s.repo.Load(ctx, userID)
	state.Goals = domain.Goals{Protein: protein, Calories: calories}
	return s.repo.Save(ctx, userID, state)
}

// Goals returns the currently configured targets.
func (s *GoalsService) Goals(ctx context.Context, userID int64) domain.Goals {
	return s.repo.Load(ctx, userID).Goals
}

// Difference returns totals minus goals with the sign preserved. The second
// return value is false while either target is unset.
func (s *GoalsService) Difference(ctx context.Context, userID int64) (domain.Difference, bool) {
	state := s.repo.Load(ctx, userID)
	if !state.Goals.Complete() {
		return domain.Difference{}, false
	}
	totals := state.Totals()
	return domain.Difference{
		Protein:  totals.Protein - *state.Goals.Protein,
		Calories: totals.Calories - *state.Goals.Calories,
	}, true
}
