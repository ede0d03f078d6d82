package handlers

import (
	"testing"

	"github.com/calorelia/calorelia-bot/internal/services"
	"github.com/stretchr/testify/require"
)

func TestParseEntryInput(t *testing.T) {
	tests := []struct {
		name string
		text string
		want services.EntryInput
	}{
		{
			name: "values only",
			text: "30 500",
			want: services.EntryInput{Protein: 30, Calories: 500},
		},
		{
			name: "with name",
			text: "12 155 greek yogurt",
			want: services.EntryInput{Protein: 12, Calories: 155, Name: "greek yogurt"},
		},
		{
			name: "with amount",
			text: "6 70 egg x2",
			want: services.EntryInput{Protein: 6, Calories: 70, Name: "egg", Amount: 2},
		},
		{
			name: "amount without name",
			text: "6 70 x2",
			want: services.EntryInput{Protein: 6, Calories: 70, Amount: 2},
		},
		{
			name: "fractional values",
			text: "12.5 155.5 yogurt x0.5",
			want: services.EntryInput{Protein: 12.5, Calories: 155.5, Name: "yogurt", Amount: 0.5},
		},
		{
			name: "x-word stays part of the name",
			text: "5 50 xylitol gum",
			want: services.EntryInput{Protein: 5, Calories: 50, Name: "xylitol gum"},
		},
		{
			name: "extra whitespace",
			text: "  30   500   chicken  ",
			want: services.EntryInput{Protein: 30, Calories: 500, Name: "chicken"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEntryInput(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseEntryInputRejectsBadLines(t *testing.T) {
	for _, text := range []string{"", "30", "abc def", "30 abc"} {
		_, err := parseEntryInput(text)
		require.ErrorIs(t, err, errBadInput)
	}
}

func TestParseGoalsInput(t *testing.T) {
	protein, calories, err := parseGoalsInput("150 2000")
	require.NoError(t, err)
	require.Equal(t, 150.0, *protein)
	require.Equal(t, 2000.0, *calories)

	protein, calories, err = parseGoalsInput("- 1800")
	require.NoError(t, err)
	require.Nil(t, protein)
	require.Equal(t, 1800.0, *calories)

	protein, calories, err = parseGoalsInput("- -")
	require.NoError(t, err)
	require.Nil(t, protein)
	require.Nil(t, calories)
}

func TestParseGoalsInputRejectsBadLines(t *testing.T) {
	for _, text := range []string{"", "150", "150 2000 extra", "abc 2000"} {
		_, _, err := parseGoalsInput(text)
		require.ErrorIs(t, err, errBadInput)
	}
}
