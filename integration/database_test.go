//go:build database

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/huangsam/teamdisc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestTeamdiscWithMySQL tests the teamdisc CLI with a MySQL backend.
func TestTeamdiscWithMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "teamdisc",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/teamdisc", host, port.Port())
	exerciseBackend(t, []string{"TEAMDISC_BACKEND=mysql", "TEAMDISC_DB_CONNECT=" + connStr})
}

// TestTeamdiscWithPostgres tests the teamdisc CLI with a PostgreSQL backend.
func TestTeamdiscWithPostgres(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres sslmode=disable", host, port.Port())
	exerciseBackend(t, []string{"TEAMDISC_BACKEND=postgresql", "TEAMDISC_DB_CONNECT=" + connStr})
}

// exerciseBackend migrates, fills, reads, and clears one SQL backend through the CLI.
func exerciseBackend(t *testing.T, env []string) {
	t.Helper()

	_, err := runTeamdisc(t, env, "store", "clear")
	require.NoError(t, err)

	_, err = runTeamdisc(t, env, "store", "migrate")
	require.NoError(t, err)

	for _, args := range submissions {
		_, err := runTeamdisc(t, env, append([]string{"score", "--save", "--output", "json"}, args...)...)
		require.NoError(t, err)
	}

	out, err := runTeamdisc(t, env, "profiles", "--output", "json", "--department", "SALES")
	require.NoError(t, err)
	var profiles []schema.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &profiles))
	require.Len(t, profiles, 2)
	assert.Equal(t, "Bo", profiles[0].Name)

	out, err = runTeamdisc(t, env, "analytics", "report", "--output", "json")
	require.NoError(t, err)
	var report schema.AnalyticsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.ProfileCount)
	assert.Len(t, report.Departments, 2)
	assert.Len(t, report.Compatibility, 1)

	out, err = runTeamdisc(t, env, "store", "status", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_profiles": 3`)

	_, err = runTeamdisc(t, env, "store", "clear")
	require.NoError(t, err)
}
