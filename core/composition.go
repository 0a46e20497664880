package core

import (
	"github.com/huangsam/teamdisc/core/algo"
	"github.com/huangsam/teamdisc/schema"
)

// Thresholds on a department's average Natural share of a trait.
const (
	strengthThreshold = 30 // strictly above: strength
	gapThreshold      = 20 // strictly below: gap
)

var traitStrengths = [schema.TraitCount]string{
	schema.D: "Strong drive for results and comfort making fast decisions.",
	schema.I: "Strong people skills, enthusiasm, and ability to rally others.",
	schema.S: "Strong consistency, patience, and reliable team support.",
	schema.C: "Strong attention to detail, accuracy, and quality standards.",
}

var traitGaps = [schema.TraitCount]string{
	schema.D: "Limited decisiveness; decisions and ownership may stall under pressure.",
	schema.I: "Limited outward enthusiasm; ideas may not be promoted or socialized.",
	schema.S: "Limited steadiness; follow-through and change pacing may suffer.",
	schema.C: "Limited focus on detail; quality and process rigor may slip.",
}

var traitGapRecommendations = [schema.TraitCount]string{
	schema.D: "Assign clear decision owners and set explicit deadlines for key calls.",
	schema.I: "Create space for storytelling, demos, and stakeholder outreach.",
	schema.S: "Introduce steady routines, documented handoffs, and paced rollouts.",
	schema.C: "Add review checklists, acceptance criteria, and data-backed checkpoints.",
}

var crossFunctionalRecommendations = [schema.TraitCount]string{
	schema.D: "Pair with S-dominant teams to balance speed with steady execution.",
	schema.I: "Pair with C-dominant teams to ground ideas in analysis and quality.",
	schema.S: "Pair with D-dominant teams to add urgency and decisive direction.",
	schema.C: "Pair with I-dominant teams to bring energy and stakeholder buy-in.",
}

// AnalyzeComposition derives strengths, gaps, and recommendations for each department
// from its average Natural vector. Every department gets one cross-functional
// recommendation keyed by its primary trait, after any gap recommendations.
func AnalyzeComposition(aggregates []schema.DepartmentAggregate) []schema.TeamComposition {
	out := make([]schema.TeamComposition, 0, len(aggregates))
	for _, a := range aggregates {
		tc := schema.TeamComposition{
			Department:      a.Department,
			Strengths:       []string{},
			Gaps:            []string{},
			Recommendations: []string{},
		}
		for _, t := range schema.AllTraits {
			v := a.AvgNatural[t]
			if v > strengthThreshold {
				tc.Strengths = append(tc.Strengths, traitStrengths[t])
			}
			if v < gapThreshold {
				tc.Gaps = append(tc.Gaps, traitGaps[t])
				tc.Recommendations = append(tc.Recommendations, traitGapRecommendations[t])
			}
		}
		primary := algo.PrimaryTrait(a.AvgNatural)
		tc.Recommendations = append(tc.Recommendations, crossFunctionalRecommendations[primary])
		out = append(out, tc)
	}
	return out
}
