package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTeamCodes(t *testing.T) {
	codes, err := GenerateTeamCodes(5)
	require.NoError(t, err)
	require.Len(t, codes, 5)
	for _, code := range codes {
		assert.Len(t, code, TeamCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(TeamCodeAlphabet, r), "unexpected rune %q", r)
		}
	}

	for _, bad := range []int{0, -1, MaxTeamCodes + 1} {
		_, err := GenerateTeamCodes(bad)
		assert.Error(t, err, "count %d", bad)
	}
}
