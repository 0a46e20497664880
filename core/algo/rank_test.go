package algo

import (
	"testing"

	"github.com/huangsam/teamdisc/schema"
	"github.com/stretchr/testify/assert"
)

func TestRankTraits(t *testing.T) {
	tests := []struct {
		name   string
		scores schema.Scores
		want   []schema.Trait
	}{
		{"distinct", schema.Scores{10, 40, 30, 20}, []schema.Trait{schema.I, schema.S, schema.C, schema.D}},
		{"all equal keeps order", schema.Scores{25, 25, 25, 25}, []schema.Trait{schema.D, schema.I, schema.S, schema.C}},
		{"tie at top", schema.Scores{10, 45, 0, 45}, []schema.Trait{schema.I, schema.C, schema.D, schema.S}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RankTraits(tt.scores))
		})
	}
}

func TestPrimaryTrait(t *testing.T) {
	assert.Equal(t, schema.D, PrimaryTrait(schema.Scores{}))
	assert.Equal(t, schema.S, PrimaryTrait(schema.Scores{20, 20, 40, 20}))
	assert.Equal(t, schema.I, PrimaryTrait(schema.Scores{0, 50, 0, 50}))
}

func TestRankCompatibilitiesIsStable(t *testing.T) {
	pairs := []schema.Compatibility{
		{Dept1: "a", Dept2: "b", Score: 60},
		{Dept1: "a", Dept2: "c", Score: 90},
		{Dept1: "b", Dept2: "c", Score: 60},
	}
	ranked := RankCompatibilities(pairs)
	assert.Equal(t, 90, ranked[0].Score)
	assert.Equal(t, "b", ranked[1].Dept2)
	assert.Equal(t, "c", ranked[2].Dept2)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 60, Percent(1.5, 2.5))
	assert.Equal(t, 20, Percent(0.5, 2.5))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 50, Percent(1, 2))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.2))
	assert.Equal(t, 1.0, Clamp01(1.04))
	assert.Equal(t, 0.7, Clamp01(0.7))
}
