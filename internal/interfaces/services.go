package interfaces

import (
	"context"
	"time"

	"github.com/calorelia/calorelia-bot/internal/domain"
	"github.com/calorelia/calorelia-bot/internal/services"
)

// LedgerServiceInterface defines the contract for current-day entry operations
type LedgerServiceInterface interface {
	AddEntry(ctx context.Context, userID int64, input services.EntryInput) (*domain.FoodEntry, error)
	RemoveEntry(ctx context.Context, userID int64, index int) error
	Entries(ctx context.Context, userID int64) []domain.FoodEntry
	Totals(ctx context.Context, userID int64) domain.Totals
}

// GoalsServiceInterface defines the contract for daily goal operations
type GoalsServiceInterface interface {
	SetGoals(ctx context.Context, userID int64, protein, calories *float64) error
	Goals(ctx context.Context, userID int64) domain.Goals
	Difference(ctx context.Context, userID int64) (domain.Difference, bool)
}

// HistoryServiceInterface defines the contract for day-close and history
type HistoryServiceInterface interface {
	CloseDay(ctx context.Context, userID int64, now time.Time) (*domain.DayRecord, error)
	List(ctx context.Context, userID int64) []domain.DayRecord
}

// AIServiceInterface defines the contract for candidate suggestion
type AIServiceInterface interface {
	SuggestFoods(ctx context.Context, apiKey, input string) ([]domain.FoodCandidate, error)
}

// ImportServiceInterface defines the contract for committing AI candidates
type ImportServiceInterface interface {
	Commit(ctx context.Context, userID int64, items []domain.FoodCandidate) (int, error)
}

// CredentialStoreInterface defines the contract for the per-user AI key slot
type CredentialStoreInterface interface {
	APIKey(ctx context.Context, userID int64) string
	SetAPIKey(ctx context.Context, userID int64, key string) error
}
