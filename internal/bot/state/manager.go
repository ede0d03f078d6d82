package state

import (
	"sync"

	"github.com/calorelia/calorelia-bot/internal/domain"
)

// User states constants
const (
	None               = "none"
	WaitingForEntry    = "waiting_for_entry"
	WaitingForGoals    = "waiting_for_goals"
	WaitingForAPIKey   = "waiting_for_api_key"
	WaitingForFoodText = "waiting_for_food_text"
	AIProcessing       = "ai_processing"
)

// StateManager tracks per-user conversational state, the difference-view
// session flag and AI candidates awaiting confirmation. All of this is
// session data: it intentionally does not survive a restart.
type StateManager interface {
	SetUserState(userID int64, state string)
	GetUserState(userID int64) string
	SetShowingDifference(userID int64, showing bool)
	ShowingDifference(userID int64) bool
	SetPendingCandidates(userID int64, items []domain.FoodCandidate)
	PendingCandidates(userID int64) ([]domain.FoodCandidate, bool)
	ClearPendingCandidates(userID int64)
	Close() error
}

// Manager is the in-memory StateManager.
type Manager struct {
	userStates  map[int64]string
	showingDiff map[int64]bool
	pending     map[int64][]domain.FoodCandidate
	mu          sync.RWMutex
}

// NewManager creates a new state manager
func NewManager() *Manager {
	return &Manager{
		userStates:  make(map[int64]string),
		showingDiff: make(map[int64]bool),
		pending:     make(map[int64][]domain.FoodCandidate),
	}
}

// SetUserState sets the state for a user
func (m *Manager) SetUserState(userID int64, state string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userStates[userID] = state
}

// GetUserState gets the state for a user
func (m *Manager) GetUserState(userID int64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, exists := m.userStates[userID]
	if !exists {
		return None
	}
	return state
}

// SetShowingDifference sets the difference-view flag for a user
func (m *Manager) SetShowingDifference(userID int64, showing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.showingDiff[userID] = showing
}

// ShowingDifference reports the difference-view flag for a user
func (m *Manager) ShowingDifference(userID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.showingDiff[userID]
}

// SetPendingCandidates stores AI candidates awaiting confirmation
func (m *Manager) SetPendingCandidates(userID int64, items []domain.FoodCandidate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[userID] = items
}

// PendingCandidates returns the candidates awaiting confirmation
func (m *Manager) PendingCandidates(userID int64) ([]domain.FoodCandidate, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items, exists := m.pending[userID]
	return items, exists
}

// ClearPendingCandidates discards any candidates awaiting confirmation
func (m *Manager) ClearPendingCandidates(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, userID)
}

// Close is a no-op; the in-memory manager holds no external resources.
func (m *Manager) Close() error {
	return nil
}
