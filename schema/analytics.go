package schema

import "time"

// DepartmentAggregate summarizes every valid profile sharing a normalized department name.
type DepartmentAggregate struct {
	Department                  string      `json:"department"`
	Count                       int         `json:"count"`
	AvgNatural                  Scores      `json:"avgNatural"`
	AvgAdaptive                 Scores      `json:"avgAdaptive"`
	PrimaryNaturalDistribution  TraitCounts `json:"primaryNaturalDistribution"`
	PrimaryAdaptiveDistribution TraitCounts `json:"primaryAdaptiveDistribution"`
}

// DepartmentSummary is the aggregate list plus how many profiles failed validation.
type DepartmentSummary struct {
	Departments []DepartmentAggregate `json:"departments"`
	Skipped     int                   `json:"skipped"`
}

// Compatibility scores how well two departments work together.
type Compatibility struct {
	Dept1     string `json:"dept1"`
	Dept2     string `json:"dept2"`
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// TeamComposition lists the strengths, gaps, and recommendations for one department.
type TeamComposition struct {
	Department      string   `json:"department"`
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
}

// CommunicationInsight describes how a department prefers to communicate.
type CommunicationInsight struct {
	Department      string   `json:"department"`
	Style           string   `json:"style"`
	Preferences     []string `json:"preferences"`
	Recommendations []string `json:"recommendations"`
}

// AnalyticsReport bundles every derived view over one profile read.
type AnalyticsReport struct {
	GeneratedAt   time.Time              `json:"generatedAt"`
	Filter        ProfileFilter          `json:"filter"`
	ProfileCount  int                    `json:"profileCount"`
	Skipped       int                    `json:"skipped"`
	Departments   []DepartmentAggregate  `json:"departments"`
	Compatibility []Compatibility        `json:"compatibility"`
	Composition   []TeamComposition      `json:"composition"`
	Communication []CommunicationInsight `json:"communication"`
}
