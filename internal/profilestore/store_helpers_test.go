package profilestore

import (
	"context"
	"testing"
	"time"

	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, time.March, 10, 9, 30, 0, 123456789, time.UTC)

func makeProfile(id, dept string, offset time.Duration) schema.Profile {
	natural := schema.Scores{50, 25, 25, 0}
	adaptive := schema.Scores{40, 20, 20, 20}
	return schema.Profile{
		ID:              id,
		Name:            "Person " + id,
		Department:      dept,
		Natural:         &natural,
		Adaptive:        &adaptive,
		PrimaryNatural:  schema.D,
		PrimaryAdaptive: schema.D,
		CreatedAt:       baseTime.Add(offset),
	}
}

// exerciseRepository runs the behavior every backend must share.
func exerciseRepository(t *testing.T, repo contract.ProfileRepository) {
	ctx := context.Background()

	rev, err := repo.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rev.Count)

	withForces := makeProfile("b", "Sales", time.Hour)
	withForces.Email = "b@example.com"
	withForces.TeamCode = "TEAM1"
	withForces.DrivingForces = &schema.DrivingForceResult{
		Scores:        schema.DrivingForceScores{schema.KI: 2, schema.KN: 1},
		PrimaryForces: schema.PrimaryForces{schema.KI, schema.US, schema.SO, schema.OI, schema.PC, schema.MR},
	}

	require.NoError(t, repo.CreateProfile(ctx, makeProfile("c", "Engineering", 2*time.Hour)))
	require.NoError(t, repo.CreateProfile(ctx, withForces))
	require.NoError(t, repo.CreateProfile(ctx, makeProfile("a", " sales ", time.Hour)))

	err = repo.CreateProfile(ctx, makeProfile("a", "Other", 0))
	assert.ErrorIs(t, err, contract.ErrDuplicateProfile)

	got, err := repo.GetProfile(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, withForces.Email, got.Email)
	assert.Equal(t, withForces.TeamCode, got.TeamCode)
	assert.True(t, withForces.CreatedAt.Equal(got.CreatedAt))
	require.NotNil(t, got.Natural)
	assert.Equal(t, *withForces.Natural, *got.Natural)
	require.NotNil(t, got.DrivingForces)
	assert.Equal(t, *withForces.DrivingForces, *got.DrivingForces)

	_, err = repo.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, contract.ErrProfileNotFound)

	all, err := repo.ListProfiles(ctx, schema.ProfileFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].ID, all[1].ID, all[2].ID}, "ordered by createdAt then id")

	sales, err := repo.ListProfiles(ctx, schema.ProfileFilter{Department: "SALES"})
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	team, err := repo.ListProfiles(ctx, schema.ProfileFilter{TeamCode: "TEAM1"})
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "b", team[0].ID)

	window, err := repo.ListProfiles(ctx, schema.ProfileFilter{From: baseTime.Add(2 * time.Hour), To: baseTime.Add(2 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, window, 1, "bounds are inclusive")
	assert.Equal(t, "c", window[0].ID)

	none, err := repo.ListProfiles(ctx, schema.ProfileFilter{Department: "Legal"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	rev, err = repo.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rev.Count)
	assert.True(t, baseTime.Add(2*time.Hour).Equal(rev.LatestAt))

	status, err := repo.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(3), status.TotalProfiles)
	assert.Equal(t, int64(2), status.Departments)
	assert.True(t, baseTime.Add(time.Hour).Equal(status.OldestProfileAt))
}
