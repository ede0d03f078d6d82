package state

import (
	"testing"

	"github.com/calorelia/calorelia-bot/internal/domain"
	"github.com/stretchr/testify/require"
)

// Both session managers must expose the same surface, Close included.
var (
	_ StateManager = (*Manager)(nil)
	_ StateManager = (*RedisManager)(nil)
)

func TestManagerUserState(t *testing.T) {
	m := NewManager()

	require.Equal(t, None, m.GetUserState(1))

	m.SetUserState(1, WaitingForEntry)
	require.Equal(t, WaitingForEntry, m.GetUserState(1))
	require.Equal(t, None, m.GetUserState(2))
}

func TestManagerShowingDifference(t *testing.T) {
	m := NewManager()

	require.False(t, m.ShowingDifference(1))
	m.SetShowingDifference(1, true)
	require.True(t, m.ShowingDifference(1))
	m.SetShowingDifference(1, false)
	require.False(t, m.ShowingDifference(1))
}

func TestManagerPendingCandidates(t *testing.T) {
	m := NewManager()

	_, ok := m.PendingCandidates(1)
	require.False(t, ok)

	items := []domain.FoodCandidate{{Name: "Egg", Protein: 6, Calories: 70}}
	m.SetPendingCandidates(1, items)

	got, ok := m.PendingCandidates(1)
	require.True(t, ok)
	require.Equal(t, items, got)

	m.ClearPendingCandidates(1)
	_, ok = m.PendingCandidates(1)
	require.False(t, ok)
}

func TestManagerClose(t *testing.T) {
	require.NoError(t, NewManager().Close())
}
