package menus

import (
	"testing"

	"github.com/calorelia/calorelia-bot/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestDiffTagZeroCountsAsSurplus(t *testing.T) {
	require.Equal(t, "surplus", diffTag(0))
	require.Equal(t, "surplus", diffTag(0.4))
	require.Equal(t, "deficit", diffTag(-0.4))
	require.Equal(t, "deficit", diffTag(-300))
}

func TestDiffTagFollowsTrueSignNotRoundedDisplay(t *testing.T) {
	// A hair under the goal rounds to a displayed 0 but is still tagged as
	// a deficit; the tag follows the exact value, not the rendering.
	require.Equal(t, 0, utils.RoundInt(-0.4))
	require.Equal(t, "deficit", diffTag(-0.4))
}
