package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImportResultMessage(t *testing.T) {
	require.Equal(t, "None of the suggestions had usable values, so nothing was added.", importResultMessage(0))
	require.Equal(t, "✅ Added 1 food to today's list.", importResultMessage(1))
	require.Equal(t, "✅ Added 3 foods to today's list.", importResultMessage(3))
}
