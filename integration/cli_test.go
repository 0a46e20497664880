//go:build basic

package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/teamdisc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTeamdiscWithSQLite runs the main workflows against a temporary SQLite file.
func TestTeamdiscWithSQLite(t *testing.T) {
	dir := t.TempDir()
	env := []string{"TEAMDISC_DB_CONNECT=" + filepath.Join(dir, "profiles.db")}

	for _, args := range submissions {
		_, err := runTeamdisc(t, env, append([]string{"score", "--save"}, args...)...)
		require.NoError(t, err)
	}

	t.Run("profiles", func(t *testing.T) {
		out, err := runTeamdisc(t, env, "profiles", "--output", "json", "--team", "ALPHA2")
		require.NoError(t, err)
		var profiles []schema.Profile
		require.NoError(t, json.Unmarshal([]byte(out), &profiles))
		require.Len(t, profiles, 1)
		assert.Equal(t, "Cy", profiles[0].Name)
		assert.Equal(t, schema.D, profiles[0].PrimaryNatural)
	})

	t.Run("departments table", func(t *testing.T) {
		out, err := runTeamdisc(t, env, "analytics", "departments", "--color", "no")
		require.NoError(t, err)
		assert.Contains(t, out, "Engineering")
		assert.Contains(t, out, "Sales")
	})

	t.Run("compatibility csv", func(t *testing.T) {
		out, err := runTeamdisc(t, env, "analytics", "compatibility", "--output", "csv")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Len(t, lines, 2)
	})

	t.Run("export", func(t *testing.T) {
		prefix := filepath.Join(dir, "export")
		_, err := runTeamdisc(t, env, "store", "export", "--output-file", prefix)
		require.NoError(t, err)
		assert.FileExists(t, prefix+".profiles.parquet")
		assert.FileExists(t, prefix+".departments.parquet")
	})

	t.Run("clear", func(t *testing.T) {
		_, err := runTeamdisc(t, env, "store", "clear")
		require.NoError(t, err)
		_, statErr := os.Stat(filepath.Join(dir, "profiles.db"))
		assert.True(t, os.IsNotExist(statErr))
	})
}

// TestScoreWithoutSave scores from flags without touching a store.
func TestScoreWithoutSave(t *testing.T) {
	out, err := runTeamdisc(t, []string{"TEAMDISC_BACKEND=memory"}, "score", "--answers", "D:I", "--output", "json")
	require.NoError(t, err)

	var p schema.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	require.NotNil(t, p.Natural)
	assert.Equal(t, schema.Scores{100, 0, 0, 0}, *p.Natural)
	require.NotNil(t, p.Adaptive)
	assert.Equal(t, schema.Scores{60, 0, 20, 20}, *p.Adaptive)
}

// TestTeamcode prints the requested number of codes.
func TestTeamcode(t *testing.T) {
	out, err := runTeamdisc(t, nil, "teamcode", "--count", "3")
	require.NoError(t, err)
	codes := strings.Fields(out)
	require.Len(t, codes, 3)
	for _, code := range codes {
		assert.Len(t, code, 6)
	}
}
