package services

import (
	"context"
	"testing"

	apperrors "github.com/calorelia/calorelia-bot/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestSuggestFoodsRequiresCredentialAndPrompt(t *testing.T) {
	ctx := context.Background()
	svc := NewAIService("")

	_, err := svc.SuggestFoods(ctx, "", "two eggs")
	require.ErrorIs(t, err, apperrors.ErrMissingCredential)

	_, err = svc.SuggestFoods(ctx, "   ", "two eggs")
	require.ErrorIs(t, err, apperrors.ErrMissingCredential)

	_, err = svc.SuggestFoods(ctx, "some-key", "   ")
	require.ErrorIs(t, err, apperrors.ErrMissingPrompt)
}

func TestParseCandidatesCleanArray(t *testing.T) {
	candidates, err := ParseCandidates(`[{"name": "Egg", "protein": 6, "calories": 70}, {"name": "Toast", "protein": 3, "calories": 80}]`)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	require.Equal(t, "Egg", candidates[0].Name)
	require.Equal(t, 6.0, candidates[0].Protein)
	require.Equal(t, 70.0, candidates[0].Calories)
	require.Equal(t, "Toast", candidates[1].Name)
}

func TestParseCandidatesIgnoresSurroundingProse(t *testing.T) {
	raw := "Here is what I found:\n```json\n[{\"name\": \"Apple\", \"protein\": 0.5, \"calories\": 95}]\n```\nHope that helps!"
	candidates, err := ParseCandidates(raw)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.Equal(t, "Apple", candidates[0].Name)
}

func TestParseCandidatesNoArrayIsMalformed(t *testing.T) {
	for _, raw := range []string{
		"I couldn't identify any foods.",
		"",
		"]oops[",
	} {
		_, err := ParseCandidates(raw)
		require.ErrorIs(t, err, apperrors.ErrMalformedResponse)
	}
}

func TestParseCandidatesBrokenArrayIsMalformed(t *testing.T) {
	_, err := ParseCandidates(`[{"name": "Egg", "protein": 6,]`)
	require.ErrorIs(t, err, apperrors.ErrMalformedResponse)
}

func TestParseCandidatesDropsItemsWithMissingFields(t *testing.T) {
	raw := `[
		{"name": "Egg", "protein": 6, "calories": 70},
		{"name": "Mystery", "protein": 5},
		{"name": "Stranger", "protein": "lots", "calories": 100},
		{"name": "Toast", "protein": 3, "calories": 80}
	]`
	candidates, err := ParseCandidates(raw)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	require.Equal(t, "Egg", candidates[0].Name)
	require.Equal(t, "Toast", candidates[1].Name)
}

func TestParseCandidatesEmptyArray(t *testing.T) {
	candidates, err := ParseCandidates("[]")
	require.NoError(t, err)
	require.Empty(t, candidates)
}
