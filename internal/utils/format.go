package utils

import (
	"math"
	"time"
)

// FormatShortDate renders a local date as the fixed-width MM-DD-YY string
// used for history record dates.
func FormatShortDate(t time.Time) string {
	return t.Format("01-02-06")
}

// RoundInt rounds to the nearest integer for presentation.
func RoundInt(v float64) int {
	return int(math.Round(v))
}
