package agg

import (
	"testing"
	"time"

	"github.com/huangsam/teamdisc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile(dept string, natural, adaptive schema.Scores, pn, pa schema.Trait) schema.Profile {
	return schema.Profile{
		Name:            "someone",
		Department:      dept,
		Natural:         &natural,
		Adaptive:        &adaptive,
		PrimaryNatural:  pn,
		PrimaryAdaptive: pa,
		CreatedAt:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateProfiles(t *testing.T) {
	good := profile("Sales", schema.Scores{50, 20, 20, 10}, schema.Scores{40, 20, 20, 20}, schema.D, schema.D)

	blank := good
	blank.Department = "   "

	missing := good
	missing.Adaptive = nil

	outOfRange := good
	bad := schema.Scores{120, 0, 0, 0}
	outOfRange.Natural = &bad

	badPrimary := good
	badPrimary.PrimaryNatural = schema.Trait(9)

	valid, skipped := ValidateProfiles([]schema.Profile{good, blank, missing, outOfRange, badPrimary})
	assert.Len(t, valid, 1)
	assert.Equal(t, 4, skipped)
}

func TestAggregateDepartments_Empty(t *testing.T) {
	summary := AggregateDepartments(nil)
	assert.NotNil(t, summary.Departments)
	assert.Empty(t, summary.Departments)
	assert.Equal(t, 0, summary.Skipped)
}

func TestAggregateDepartments_CaseAndWhitespaceInsensitive(t *testing.T) {
	profiles := []schema.Profile{
		profile(" sales ", schema.Scores{100, 0, 0, 0}, schema.Scores{60, 0, 20, 20}, schema.D, schema.D),
		profile("Sales", schema.Scores{0, 100, 0, 0}, schema.Scores{20, 60, 20, 0}, schema.I, schema.I),
		profile("SALES", schema.Scores{0, 0, 100, 0}, schema.Scores{20, 0, 60, 20}, schema.S, schema.S),
	}

	summary := AggregateDepartments(profiles)
	require.Len(t, summary.Departments, 1)

	got := summary.Departments[0]
	assert.Equal(t, "sales", got.Department, "display name is the trimmed first-seen form")
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, schema.Scores{33, 33, 33, 0}, got.AvgNatural)
	assert.Equal(t, schema.Scores{33, 20, 33, 13}, got.AvgAdaptive)
	assert.Equal(t, schema.TraitCounts{1, 1, 1, 0}, got.PrimaryNaturalDistribution)
	assert.Equal(t, got.Count, got.PrimaryNaturalDistribution.Total())
	assert.Equal(t, got.Count, got.PrimaryAdaptiveDistribution.Total())
}

func TestAggregateDepartments_OrderAndSkips(t *testing.T) {
	s := schema.Scores{40, 20, 20, 20}
	profiles := []schema.Profile{
		profile("Ops", s, s, schema.D, schema.D),
		profile("", s, s, schema.D, schema.D),
		profile("Engineering", s, s, schema.D, schema.D),
		profile("ops", s, s, schema.D, schema.D),
	}

	summary := AggregateDepartments(profiles)
	require.Len(t, summary.Departments, 2)
	assert.Equal(t, "Ops", summary.Departments[0].Department)
	assert.Equal(t, 2, summary.Departments[0].Count)
	assert.Equal(t, "Engineering", summary.Departments[1].Department)
	assert.Equal(t, 1, summary.Skipped)
}

func TestAggregateDepartments_RoundsPerTrait(t *testing.T) {
	profiles := []schema.Profile{
		profile("R&D", schema.Scores{25, 25, 25, 25}, schema.Scores{25, 25, 25, 25}, schema.D, schema.D),
		profile("R&D", schema.Scores{26, 26, 24, 24}, schema.Scores{26, 26, 24, 24}, schema.D, schema.D),
	}

	got := AggregateDepartments(profiles).Departments[0]
	// 25.5 rounds up and 24.5 rounds up independently; the sum is 102, not 100.
	assert.Equal(t, schema.Scores{26, 26, 25, 25}, got.AvgNatural)
	assert.Equal(t, 102, got.AvgNatural.Total())
}
