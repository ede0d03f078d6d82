package storage

import (
	"context"
	"testing"
	"time"

	"github.com/calorelia/calorelia-bot/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestStateRepoLoadDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepo(NewMemoryStore())

	state := repo.Load(ctx, 1)
	require.NotNil(t, state)
	require.Empty(t, state.Foods)
	require.Empty(t, state.History)
	require.Nil(t, state.Goals.Protein)
	require.Nil(t, state.Goals.Calories)
	require.Zero(t, state.Counter)
}

func TestStateRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepo(NewMemoryStore())

	protein := 150.0
	ts := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	state := &domain.TrackerState{
		Foods: []domain.FoodEntry{
			{ID: "a", Protein: 12, Calories: 155, Name: "yogurt", DisplayName: "yogurt", Amount: 1, Timestamp: ts},
			{ID: "b", Protein: 30, Calories: 500, DisplayName: "Food 1", Amount: 1, Timestamp: ts},
		},
		Goals: domain.Goals{Protein: &protein},
		History: []domain.DayRecord{
			{Date: "05-31-25", TotalProtein: 40, TotalCalories: 600, Foods: []domain.FoodEntry{
				{ID: "c", Protein: 40, Calories: 600, DisplayName: "Food 1", Amount: 1, Timestamp: ts},
			}},
		},
		Counter: 1,
	}
	require.NoError(t, repo.Save(ctx, 1, state))

	loaded := repo.Load(ctx, 1)
	require.Equal(t, state.Foods, loaded.Foods)
	require.Equal(t, state.History, loaded.History)
	require.Equal(t, 150.0, *loaded.Goals.Protein)
	require.Nil(t, loaded.Goals.Calories)
	require.Equal(t, 1, loaded.Counter)
}

func TestStateRepoIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepo(NewMemoryStore())

	state := repo.Load(ctx, 1)
	state.Counter = 5
	require.NoError(t, repo.Save(ctx, 1, state))

	require.Zero(t, repo.Load(ctx, 2).Counter)
	require.Equal(t, 5, repo.Load(ctx, 1).Counter)
}

func TestStateRepoDiscardsUnreadableSlots(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewStateRepo(store)

	require.NoError(t, store.Set(ctx, userKey(1, SlotFoods), "not json"))
	require.NoError(t, store.Set(ctx, userKey(1, SlotGoals), "{{{"))
	require.NoError(t, store.Set(ctx, userKey(1, SlotHistory), "nope"))
	require.NoError(t, store.Set(ctx, userKey(1, SlotCounter), "three"))

	state := repo.Load(ctx, 1)
	require.Empty(t, state.Foods)
	require.Empty(t, state.History)
	require.Nil(t, state.Goals.Protein)
	require.Zero(t, state.Counter)
}

func TestStateRepoAPIKey(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepo(NewMemoryStore())

	require.Empty(t, repo.APIKey(ctx, 1))
	require.NoError(t, repo.SetAPIKey(ctx, 1, "gm-key"))
	require.Equal(t, "gm-key", repo.APIKey(ctx, 1))
	require.Empty(t, repo.APIKey(ctx, 2))

	// Overwriting with empty clears the credential.
	require.NoError(t, repo.SetAPIKey(ctx, 1, ""))
	require.Empty(t, repo.APIKey(ctx, 1))
}

func TestMemoryStoreRemove(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v"))
	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", value)

	require.NoError(t, store.Remove(ctx, "k"))
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}
