package core

import (
	"fmt"

	"github.com/huangsam/teamdisc/core/algo"
	"github.com/huangsam/teamdisc/schema"
)

type communicationStyle struct {
	label       string
	preferences []string
}

var communicationStyles = [schema.TraitCount]communicationStyle{
	schema.D: {
		label:       "Direct and results-focused",
		preferences: []string{"Brief, bottom-line updates", "Clear options with a recommendation", "Fast decisions"},
	},
	schema.I: {
		label:       "Enthusiastic and collaborative",
		preferences: []string{"Open discussion and brainstorming", "Recognition and visible wins", "Informal check-ins"},
	},
	schema.S: {
		label:       "Supportive and steady",
		preferences: []string{"Advance notice of changes", "One-on-one conversations", "Step-by-step plans"},
	},
	schema.C: {
		label:       "Analytical and precise",
		preferences: []string{"Written detail and data", "Time to review before deciding", "Clear standards and criteria"},
	},
}

// communicationRules lists the directional pairings that earn a recommendation,
// keyed by [own primary][other primary].
var communicationRules = map[pairKey]string{
	{schema.D, schema.S}: "When working with %s, explain the reasoning behind changes and give them time to adjust.",
	{schema.S, schema.D}: "When working with %s, lead with the outcome and keep updates short and decisive.",
	{schema.I, schema.C}: "When working with %s, back ideas with data and send details in writing.",
	{schema.C, schema.I}: "When working with %s, share the big picture first and leave room for discussion.",
}

const communicationFallback = "Keep communication open and check preferred channels with each partner team."

// AnalyzeCommunication derives a communication style and cross-department
// recommendations for every department from its primary Natural trait.
func AnalyzeCommunication(aggregates []schema.DepartmentAggregate) []schema.CommunicationInsight {
	primaries := make([]schema.Trait, len(aggregates))
	for i, a := range aggregates {
		primaries[i] = algo.PrimaryTrait(a.AvgNatural)
	}

	out := make([]schema.CommunicationInsight, 0, len(aggregates))
	for i, a := range aggregates {
		style := communicationStyles[primaries[i]]
		insight := schema.CommunicationInsight{
			Department:      a.Department,
			Style:           style.label,
			Preferences:     append([]string(nil), style.preferences...),
			Recommendations: []string{},
		}
		for j, other := range aggregates {
			if i == j {
				continue
			}
			if tmpl, ok := communicationRules[pairKey{primaries[i], primaries[j]}]; ok {
				insight.Recommendations = append(insight.Recommendations, fmt.Sprintf(tmpl, other.Department))
			}
		}
		if len(insight.Recommendations) == 0 {
			insight.Recommendations = append(insight.Recommendations, communicationFallback)
		}
		out = append(out, insight)
	}
	return out
}
