package domain

import (
	"time"
)

// FoodEntry is one recorded food item with its total protein and calorie
// contribution for the current day. Protein and Calories are already scaled
// by Amount at creation time; an entry is never edited in place, only removed.
type FoodEntry struct {
	ID          string    `json:"id"`
	Protein     float64   `json:"protein"`
	Calories    float64   `json:"calories"`
	Name        string    `json:"name,omitempty"`
	DisplayName string    `json:"displayName"`
	Amount      float64   `json:"amount"`
	Timestamp   time.Time `json:"timestamp"`
}

// Goals holds the optional daily targets. A nil field means unset.
type Goals struct {
	Protein  *float64 `json:"protein"`
	Calories *float64 `json:"calories"`
}

// Complete reports whether both targets are set. Difference view is only
// available on a complete goal pair.
func (g Goals) Complete() bool {
	return g.Protein != nil && g.Calories != nil
}

// Totals is the component-wise sum over the current ledger.
type Totals struct {
	Protein  float64
	Calories float64
}

// Difference is totals minus goals with the sign preserved: non-negative
// means surplus over the goal, negative means deficit.
type Difference struct {
	Protein  float64
	Calories float64
}

// DayRecord is an immutable snapshot of one closed day. TotalProtein and
// TotalCalories cache the sums at close time; Foods is an independent copy
// of the ledger entries.
type DayRecord struct {
	Date          string      `json:"date"`
	TotalProtein  float64     `json:"totalProtein"`
	TotalCalories float64     `json:"totalCalories"`
	Foods         []FoodEntry `json:"foods"`
}

// FoodCandidate is an AI-suggested entry awaiting user confirmation. Values
// already represent total quantities, not per-unit amounts.
type FoodCandidate struct {
	Name     string  `json:"name"`
	Protein  float64 `json:"protein"`
	Calories float64 `json:"calories"`
}

// TrackerState is one user's persisted aggregate: the current ledger, goals,
// history and the auto-naming counter.
type TrackerState struct {
	Foods   []FoodEntry
	Goals   Goals
	History []DayRecord
	Counter int
}

// Totals sums the current ledger entries. Zero-valued when the ledger is
// empty.
func (s *TrackerState) Totals() Totals {
	var t Totals
	for _, f := range s.Foods {
		t.Protein += f.Protein
		t.Calories += f.Calories
	}
	return t
}
