package core

import (
	"testing"

	"github.com/huangsam/teamdisc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeComposition(t *testing.T) {
	got := AnalyzeComposition([]schema.DepartmentAggregate{dept("Sales", schema.Scores{40, 10, 10, 10})})
	require.Len(t, got, 1)

	tc := got[0]
	assert.Equal(t, "Sales", tc.Department)
	assert.Equal(t, []string{traitStrengths[schema.D]}, tc.Strengths)
	assert.Equal(t, []string{traitGaps[schema.I], traitGaps[schema.S], traitGaps[schema.C]}, tc.Gaps)
	assert.Equal(t, []string{
		traitGapRecommendations[schema.I],
		traitGapRecommendations[schema.S],
		traitGapRecommendations[schema.C],
		crossFunctionalRecommendations[schema.D],
	}, tc.Recommendations)
}

func TestAnalyzeComposition_BoundariesAreExclusive(t *testing.T) {
	got := AnalyzeComposition([]schema.DepartmentAggregate{dept("Balanced", schema.Scores{30, 20, 30, 20})})
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Strengths)
	assert.Empty(t, got[0].Gaps)
	assert.NotNil(t, got[0].Gaps)
	assert.Equal(t, []string{crossFunctionalRecommendations[schema.D]}, got[0].Recommendations)
}

func TestAnalyzeComposition_CrossFunctionalByPrimary(t *testing.T) {
	tests := []struct {
		natural schema.Scores
		primary schema.Trait
	}{
		{schema.Scores{50, 20, 20, 10}, schema.D},
		{schema.Scores{20, 50, 20, 10}, schema.I},
		{schema.Scores{20, 20, 50, 10}, schema.S},
		{schema.Scores{20, 10, 20, 50}, schema.C},
	}

	for _, tt := range tests {
		t.Run(tt.primary.String(), func(t *testing.T) {
			got := AnalyzeComposition([]schema.DepartmentAggregate{dept("X", tt.natural)})
			recs := got[0].Recommendations
			assert.Equal(t, crossFunctionalRecommendations[tt.primary], recs[len(recs)-1])
		})
	}
}

func TestAnalyzeComposition_OnePerDepartment(t *testing.T) {
	aggs := []schema.DepartmentAggregate{
		dept("A", schema.Scores{25, 25, 25, 25}),
		dept("B", schema.Scores{25, 25, 25, 25}),
	}
	got := AnalyzeComposition(aggs)
	assert.Len(t, got, 2)
	assert.Equal(t, "B", got[1].Department)
}
