package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestFullDayFlow walks one day of use across all services sharing a repo:
// manual entries, goal setting, the difference view and the day close.
func TestFullDayFlow(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	ledger := NewLedgerService(repo)
	goals := NewGoalsService(repo)
	history := NewHistoryService(repo)

	first, err := ledger.AddEntry(ctx, 7, EntryInput{Protein: 30, Calories: 500})
	require.NoError(t, err)
	require.Equal(t, "Food 1", first.DisplayName)
	require.Equal(t, 30.0, ledger.Totals(ctx, 7).Protein)
	require.Equal(t, 500.0, ledger.Totals(ctx, 7).Calories)

	second, err := ledger.AddEntry(ctx, 7, EntryInput{Protein: 10, Calories: 100, Name: "Snack", Amount: 2})
	require.NoError(t, err)
	require.Equal(t, 20.0, second.Protein)
	require.Equal(t, 200.0, second.Calories)
	require.Equal(t, "Snack", second.DisplayName)

	totals := ledger.Totals(ctx, 7)
	require.Equal(t, 50.0, totals.Protein)
	require.Equal(t, 700.0, totals.Calories)

	require.NoError(t, goals.SetGoals(ctx, 7, floatPtr(150), floatPtr(2000)))
	diff, ok := goals.Difference(ctx, 7)
	require.True(t, ok)
	require.Equal(t, -100.0, diff.Protein)
	require.Equal(t, -1300.0, diff.Calories)

	record, err := history.CloseDay(ctx, 7, time.Now())
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Equal(t, 50.0, record.TotalProtein)
	require.Equal(t, 700.0, record.TotalCalories)
	require.Len(t, record.Foods, 2)

	require.Empty(t, ledger.Entries(ctx, 7))
	require.True(t, goals.Goals(ctx, 7).Complete())

	records := history.List(ctx, 7)
	require.Len(t, records, 1)
	require.Equal(t, record.Date, records[0].Date)
}
