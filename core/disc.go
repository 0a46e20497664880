package core

import (
	"github.com/huangsam/teamdisc/core/algo"
	"github.com/huangsam/teamdisc/schema"
)

// Raw point weights for one DISC answer.
const (
	naturalMostPoints   = 2.0
	adaptiveMostPoints  = 1.0
	adaptiveNotLeastPts = 0.5
)

// uniformScores is returned for a vector with no points at all.
var uniformScores = schema.Scores{25, 25, 25, 25}

// ScoreDisc converts forced-choice answers into Natural and Adaptive percentage vectors.
// Natural comes from "most" picks only. Adaptive gives the "most" trait one point and
// every trait other than "least" half a point, so the "most" trait collects both.
// Percentages are rounded per trait and are not renormalized afterwards.
// Answers naming a trait outside the enumeration are ignored.
func ScoreDisc(answers []schema.DiscAnswer) schema.DiscProfile {
	var naturalRaw, adaptiveRaw [schema.TraitCount]float64

	for _, a := range answers {
		if !a.Most.Valid() || !a.Least.Valid() {
			continue
		}
		naturalRaw[a.Most] += naturalMostPoints
		adaptiveRaw[a.Most] += adaptiveMostPoints
		for _, t := range schema.AllTraits {
			if t != a.Least {
				adaptiveRaw[t] += adaptiveNotLeastPts
			}
		}
	}

	natural := normalize(naturalRaw)
	adaptive := normalize(adaptiveRaw)

	return schema.DiscProfile{
		Natural:         natural,
		Adaptive:        adaptive,
		PrimaryNatural:  algo.PrimaryTrait(natural),
		PrimaryAdaptive: algo.PrimaryTrait(adaptive),
	}
}

// normalize turns raw points into whole percentages of the total.
func normalize(raw [schema.TraitCount]float64) schema.Scores {
	var total float64
	for _, v := range raw {
		total += v
	}
	if total == 0 {
		return uniformScores
	}

	var out schema.Scores
	for _, t := range schema.AllTraits {
		out[t] = algo.Percent(raw[t], total)
	}
	return out
}
