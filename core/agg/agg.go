// Package agg has aggregation logic for stored assessment profiles.
package agg

import (
	"math"
	"strings"

	"github.com/huangsam/teamdisc/schema"
)

// ValidateProfiles splits out the profiles that can take part in aggregation.
// A profile is skipped when its department is blank, either score vector is missing
// or outside [0,100], or a primary trait is outside the enumeration.
func ValidateProfiles(profiles []schema.Profile) (valid []schema.Profile, skipped int) {
	valid = make([]schema.Profile, 0, len(profiles))
	for _, p := range profiles {
		if !isAggregatable(p) {
			skipped++
			continue
		}
		valid = append(valid, p)
	}
	return valid, skipped
}

func isAggregatable(p schema.Profile) bool {
	if strings.TrimSpace(p.Department) == "" {
		return false
	}
	if p.Natural == nil || p.Adaptive == nil {
		return false
	}
	if !p.Natural.InRange() || !p.Adaptive.InRange() {
		return false
	}
	return p.PrimaryNatural.Valid() && p.PrimaryAdaptive.Valid()
}

// departmentGroup accumulates one normalized department.
type departmentGroup struct {
	display     string
	count       int
	naturalSum  [schema.TraitCount]int
	adaptiveSum [schema.TraitCount]int
	naturalDist schema.TraitCounts
	adaptDist   schema.TraitCounts
}

// AggregateDepartments validates profiles, then groups them by normalized department.
// Output follows the order in which departments are first seen, and each group is
// labeled with the trimmed department of its first profile.
func AggregateDepartments(profiles []schema.Profile) schema.DepartmentSummary {
	valid, skipped := ValidateProfiles(profiles)

	order := make([]string, 0)
	groups := make(map[string]*departmentGroup)

	for _, p := range valid {
		key := schema.NormalizeDepartment(p.Department)
		g, ok := groups[key]
		if !ok {
			g = &departmentGroup{display: strings.TrimSpace(p.Department)}
			groups[key] = g
			order = append(order, key)
		}
		g.count++
		for _, t := range schema.AllTraits {
			g.naturalSum[t] += p.Natural[t]
			g.adaptiveSum[t] += p.Adaptive[t]
		}
		g.naturalDist[p.PrimaryNatural]++
		g.adaptDist[p.PrimaryAdaptive]++
	}

	out := make([]schema.DepartmentAggregate, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if g.count == 0 {
			continue
		}
		out = append(out, schema.DepartmentAggregate{
			Department:                  g.display,
			Count:                       g.count,
			AvgNatural:                  mean(g.naturalSum, g.count),
			AvgAdaptive:                 mean(g.adaptiveSum, g.count),
			PrimaryNaturalDistribution:  g.naturalDist,
			PrimaryAdaptiveDistribution: g.adaptDist,
		})
	}

	return schema.DepartmentSummary{Departments: out, Skipped: skipped}
}

// mean rounds each trait's average independently.
func mean(sum [schema.TraitCount]int, n int) schema.Scores {
	var out schema.Scores
	for _, t := range schema.AllTraits {
		out[t] = int(math.Round(float64(sum[t]) / float64(n)))
	}
	return out
}
