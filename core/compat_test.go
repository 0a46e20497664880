package core

import (
	"testing"

	"github.com/huangsam/teamdisc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dept(name string, natural schema.Scores) schema.DepartmentAggregate {
	return schema.DepartmentAggregate{Department: name, Count: 1, AvgNatural: natural, AvgAdaptive: natural}
}

func TestAnalyzeCompatibility_InsufficientData(t *testing.T) {
	assert.Empty(t, AnalyzeCompatibility(nil))
	assert.Empty(t, AnalyzeCompatibility([]schema.DepartmentAggregate{dept("Sales", schema.Scores{100, 0, 0, 0})}))

	// A second department with a negative average does not count toward the minimum.
	invalid := dept("Broken", schema.Scores{-5, 50, 50, 5})
	got := AnalyzeCompatibility([]schema.DepartmentAggregate{dept("Sales", schema.Scores{100, 0, 0, 0}), invalid})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAnalyzeCompatibility_NoBalanceBonus(t *testing.T) {
	got := AnalyzeCompatibility([]schema.DepartmentAggregate{
		dept("Sales", schema.Scores{100, 0, 0, 0}),
		dept("Exec", schema.Scores{100, 0, 0, 0}),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Sales", got[0].Dept1)
	assert.Equal(t, "Exec", got[0].Dept2)
	assert.Equal(t, 60, got[0].Score)
	assert.Equal(t, compatibilityReasoning[pairKey{schema.D, schema.D}], got[0].Reasoning)
}

func TestAnalyzeCompatibility_BalanceBonus(t *testing.T) {
	got := AnalyzeCompatibility([]schema.DepartmentAggregate{
		dept("Sales", schema.Scores{40, 20, 20, 20}),   // D, balance 0.6
		dept("Support", schema.Scores{20, 20, 40, 20}), // S, balance 0.6
	})
	require.Len(t, got, 1)
	// 0.9 + 0.6*0.2 = 1.02, clamped to 1.
	assert.Equal(t, 100, got[0].Score)

	got = AnalyzeCompatibility([]schema.DepartmentAggregate{
		dept("Finance", schema.Scores{10, 10, 10, 70}), // C, balance 0.3
		dept("Ops", schema.Scores{70, 10, 10, 10}),     // D, balance 0.3
	})
	require.Len(t, got, 1)
	// 0.5 + 0.3*0.2 = 0.56
	assert.Equal(t, 56, got[0].Score)
	assert.Equal(t, compatibilityFallback, got[0].Reasoning)
}

func TestAnalyzeCompatibility_ZeroVectorHasNoBalance(t *testing.T) {
	got := AnalyzeCompatibility([]schema.DepartmentAggregate{
		dept("Empty", schema.Scores{0, 0, 0, 0}), // primary D, balance 0
		dept("Sales", schema.Scores{100, 0, 0, 0}),
	})
	require.Len(t, got, 1)
	assert.Equal(t, 60, got[0].Score)
}

func TestAnalyzeCompatibility_AllPairsSorted(t *testing.T) {
	aggs := []schema.DepartmentAggregate{
		dept("Eng", schema.Scores{0, 0, 0, 100}),   // C
		dept("Sales", schema.Scores{0, 100, 0, 0}), // I
		dept("Ops", schema.Scores{100, 0, 0, 0}),   // D
	}
	got := AnalyzeCompatibility(aggs)
	require.Len(t, got, 3)

	assert.Equal(t, schema.Compatibility{Dept1: "Eng", Dept2: "Sales", Score: 80, Reasoning: compatibilityReasoning[pairKey{schema.C, schema.I}]}, got[0])
	assert.Equal(t, "Sales", got[1].Dept1)
	assert.Equal(t, "Ops", got[1].Dept2)
	assert.Equal(t, 70, got[1].Score)
	assert.Equal(t, 50, got[2].Score)

	for _, c := range got {
		assert.GreaterOrEqual(t, c.Score, 0)
		assert.LessOrEqual(t, c.Score, 100)
	}
	assert.Equal(t, got, AnalyzeCompatibility(aggs), "analysis is idempotent")
}

func TestCompatibilityMatrixLookupIsDirectional(t *testing.T) {
	for _, a := range schema.AllTraits {
		for _, b := range schema.AllTraits {
			assert.InDelta(t, compatibilityMatrix[a][b], compatibilityMatrix[b][a], 1e-9, "table values are symmetric today")
		}
	}
	assert.Equal(t, 0.9, compatibilityMatrix[schema.D][schema.S])
	assert.Equal(t, 0.5, compatibilityMatrix[schema.C][schema.D])
}
