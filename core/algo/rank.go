// Package algo has ranking and rounding primitives shared by scoring and analytics.
package algo

import (
	"math"
	"sort"

	"github.com/huangsam/teamdisc/schema"
)

// RankTraits orders the four traits by their score in descending order.
// The sort is stable over D, I, S, C, so ties keep enumeration order.
func RankTraits(scores schema.Scores) []schema.Trait {
	ranked := make([]schema.Trait, 0, schema.TraitCount)
	ranked = append(ranked, schema.AllTraits[:]...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}

// PrimaryTrait returns the highest-scoring trait, preferring the earliest trait on ties.
func PrimaryTrait(scores schema.Scores) schema.Trait {
	return RankTraits(scores)[0]
}

// RankCompatibilities sorts pairings by score in descending order.
// Pairings with equal scores keep their input order.
func RankCompatibilities(pairs []schema.Compatibility) []schema.Compatibility {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})
	return pairs
}

// Percent converts part/total to a whole percentage, rounding half away from zero.
func Percent(part, total float64) int {
	return int(math.Round(part / total * 100))
}

// Clamp01 limits v to the closed interval [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
