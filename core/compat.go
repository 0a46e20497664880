package core

import (
	"github.com/huangsam/teamdisc/core/algo"
	"github.com/huangsam/teamdisc/schema"
)

// balanceWeight scales the averaged department balance into the score bonus.
const balanceWeight = 0.2

// compatibilityMatrix holds base compatibility by [primary of dept1][primary of dept2].
// It is read with both keys and never assumed symmetric.
var compatibilityMatrix = [schema.TraitCount][schema.TraitCount]float64{
	schema.D: {schema.D: 0.6, schema.I: 0.7, schema.S: 0.9, schema.C: 0.5},
	schema.I: {schema.D: 0.7, schema.I: 0.6, schema.S: 0.7, schema.C: 0.8},
	schema.S: {schema.D: 0.9, schema.I: 0.7, schema.S: 0.6, schema.C: 0.8},
	schema.C: {schema.D: 0.5, schema.I: 0.8, schema.S: 0.8, schema.C: 0.6},
}

// pairKey identifies an ordered pair of primary traits.
type pairKey [2]schema.Trait

var compatibilityReasoning = map[pairKey]string{
	{schema.D, schema.S}: "Decisive direction from one side is steadied by patient follow-through from the other.",
	{schema.S, schema.D}: "Steady, reliable execution gives a results-driven partner a stable base to push from.",
	{schema.I, schema.C}: "Enthusiasm and big-picture energy are grounded by careful analysis and quality checks.",
	{schema.C, schema.I}: "Precise, structured work is carried further by persuasive, people-focused advocacy.",
	{schema.D, schema.D}: "Both groups move fast and want control; agree on decision rights early to avoid clashes.",
	{schema.I, schema.I}: "Plenty of shared energy and ideas; add explicit owners so momentum turns into delivery.",
	{schema.S, schema.S}: "A calm, cooperative pairing; schedule deliberate checkpoints so change is not deferred.",
	{schema.C, schema.C}: "Shared standards and rigor; set time boxes so analysis does not stall decisions.",
}

const compatibilityFallback = "Different working styles that can complement each other with clear communication about priorities."

// AnalyzeCompatibility scores every unordered pair of departments.
// Only aggregates with at least one profile and non-negative averages take part;
// with fewer than two of those the result is empty. Dept1 is always the department
// that comes first in the input, and the output is sorted by descending score.
func AnalyzeCompatibility(aggregates []schema.DepartmentAggregate) []schema.Compatibility {
	eligible := make([]schema.DepartmentAggregate, 0, len(aggregates))
	for _, a := range aggregates {
		if hasUsableAverages(a) {
			eligible = append(eligible, a)
		}
	}

	pairs := make([]schema.Compatibility, 0)
	if len(eligible) < 2 {
		return pairs
	}

	for i := 0; i < len(eligible); i++ {
		for j := i + 1; j < len(eligible); j++ {
			pairs = append(pairs, compatibilityOf(eligible[i], eligible[j]))
		}
	}
	return algo.RankCompatibilities(pairs)
}

func compatibilityOf(a, b schema.DepartmentAggregate) schema.Compatibility {
	pa := algo.PrimaryTrait(a.AvgNatural)
	pb := algo.PrimaryTrait(b.AvgNatural)

	base := compatibilityMatrix[pa][pb]
	bonus := (balance(a.AvgNatural) + balance(b.AvgNatural)) / 2 * balanceWeight
	score := algo.Clamp01(base + bonus)

	reasoning, ok := compatibilityReasoning[pairKey{pa, pb}]
	if !ok {
		reasoning = compatibilityFallback
	}

	return schema.Compatibility{
		Dept1:     a.Department,
		Dept2:     b.Department,
		Score:     algo.Percent(score, 1),
		Reasoning: reasoning,
	}
}

// balance is 1 minus the dominant trait share; an all-zero vector counts as 0.
func balance(avg schema.Scores) float64 {
	m := avg.Max()
	if m == 0 {
		return 0
	}
	return 1 - float64(m)/100
}

func hasUsableAverages(a schema.DepartmentAggregate) bool {
	if a.Count <= 0 {
		return false
	}
	for _, t := range schema.AllTraits {
		if a.AvgNatural[t] < 0 || a.AvgAdaptive[t] < 0 {
			return false
		}
	}
	return true
}
