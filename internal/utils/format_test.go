package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatShortDate(t *testing.T) {
	require.Equal(t, "01-02-25", FormatShortDate(time.Date(2025, time.January, 2, 23, 59, 0, 0, time.UTC)))
	require.Equal(t, "12-31-99", FormatShortDate(time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestRoundInt(t *testing.T) {
	require.Equal(t, 2, RoundInt(1.5))
	require.Equal(t, 1, RoundInt(1.4))
	require.Equal(t, -2, RoundInt(-1.5))
	require.Equal(t, 0, RoundInt(0))
}
