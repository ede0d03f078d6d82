package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCloseDayEmptyLedgerIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	history := NewHistoryService(repo)

	record, err := history.CloseDay(ctx, 1, time.Now())
	require.NoError(t, err)
	require.Nil(t, record)
	require.Empty(t, history.List(ctx, 1))
}

func TestCloseDayArchivesAndResets(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	ledger := NewLedgerService(repo)
	history := NewHistoryService(repo)

	_, err := ledger.AddEntry(ctx, 1, EntryInput{Protein: 10, Calories: 100})
	require.NoError(t, err)
	_, err = ledger.AddEntry(ctx, 1, EntryInput{Protein: 12, Calories: 155, Name: "yogurt"})
	require.NoError(t, err)

	now := time.Date(2025, time.January, 2, 15, 4, 5, 0, time.UTC)
	record, err := history.CloseDay(ctx, 1, now)
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Equal(t, "01-02-25", record.Date)
	require.Equal(t, 22.0, record.TotalProtein)
	require.Equal(t, 255.0, record.TotalCalories)
	require.Len(t, record.Foods, 2)

	require.Empty(t, ledger.Entries(ctx, 1))

	// The counter resets too: the next unnamed entry starts over at "Food 1".
	next, err := ledger.AddEntry(ctx, 1, EntryInput{Protein: 5, Calories: 50})
	require.NoError(t, err)
	require.Equal(t, "Food 1", next.DisplayName)
}

func TestCloseDayPreservesGoals(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	ledger := NewLedgerService(repo)
	goals := NewGoalsService(repo)
	history := NewHistoryService(repo)

	require.NoError(t, goals.SetGoals(ctx, 1, floatPtr(150), floatPtr(2000)))
	_, err := ledger.AddEntry(ctx, 1, EntryInput{Protein: 10, Calories: 100, Name: "a"})
	require.NoError(t, err)

	_, err = history.CloseDay(ctx, 1, time.Now())
	require.NoError(t, err)

	require.True(t, goals.Goals(ctx, 1).Complete())
}

func TestCloseDayRecordIsIndependentCopy(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	ledger := NewLedgerService(repo)
	history := NewHistoryService(repo)

	_, err := ledger.AddEntry(ctx, 1, EntryInput{Protein: 10, Calories: 100, Name: "a"})
	require.NoError(t, err)
	_, err = history.CloseDay(ctx, 1, time.Now())
	require.NoError(t, err)

	// New entries after the close must not leak into the archived record.
	_, err = ledger.AddEntry(ctx, 1, EntryInput{Protein: 99, Calories: 999, Name: "later"})
	require.NoError(t, err)

	records := history.List(ctx, 1)
	require.Len(t, records, 1)
	require.Len(t, records[0].Foods, 1)
	require.Equal(t, "a", records[0].Foods[0].Name)
}

func TestCloseDayPrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	ledger := NewLedgerService(repo)
	history := NewHistoryService(repo)

	day1 := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC)

	_, err := ledger.AddEntry(ctx, 1, EntryInput{Protein: 1, Calories: 10, Name: "first day"})
	require.NoError(t, err)
	_, err = history.CloseDay(ctx, 1, day1)
	require.NoError(t, err)

	_, err = ledger.AddEntry(ctx, 1, EntryInput{Protein: 2, Calories: 20, Name: "second day"})
	require.NoError(t, err)
	_, err = history.CloseDay(ctx, 1, day2)
	require.NoError(t, err)

	records := history.List(ctx, 1)
	require.Len(t, records, 2)
	require.Equal(t, "03-02-25", records[0].Date)
	require.Equal(t, "03-01-25", records[1].Date)
}

func TestCloseDayTwiceOnSameDateKeepsBothRecords(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	ledger := NewLedgerService(repo)
	history := NewHistoryService(repo)

	now := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)

	_, err := ledger.AddEntry(ctx, 1, EntryInput{Protein: 1, Calories: 10, Name: "breakfast"})
	require.NoError(t, err)
	_, err = history.CloseDay(ctx, 1, now)
	require.NoError(t, err)

	_, err = ledger.AddEntry(ctx, 1, EntryInput{Protein: 2, Calories: 20, Name: "dinner"})
	require.NoError(t, err)
	_, err = history.CloseDay(ctx, 1, now.Add(12*time.Hour))
	require.NoError(t, err)

	records := history.List(ctx, 1)
	require.Len(t, records, 2)
	require.Equal(t, records[0].Date, records[1].Date)
	require.Equal(t, "dinner", records[0].Foods[0].Name)
}
