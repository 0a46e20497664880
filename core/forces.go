package core

import "github.com/huangsam/teamdisc/schema"

// ScoreDrivingForces tallies pole choices and picks the primary pole of every axis.
// The left pole of an axis wins when its count is greater than or equal to the right pole's.
func ScoreDrivingForces(choices []schema.Pole) schema.DrivingForceResult {
	var res schema.DrivingForceResult
	for _, p := range choices {
		if !p.Valid() {
			continue
		}
		res.Scores[p]++
	}

	for _, axis := range schema.AllAxes {
		left, right := axis.Poles()
		if res.Scores[left] >= res.Scores[right] {
			res.PrimaryForces[axis] = left
		} else {
			res.PrimaryForces[axis] = right
		}
	}
	return res
}
