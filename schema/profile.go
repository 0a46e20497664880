package schema

import (
	"strings"
	"time"
)

// DiscAnswer is one forced-choice DISC item: the option most and least like the respondent.
type DiscAnswer struct {
	Most  Trait `json:"most"`
	Least Trait `json:"least"`
}

// DiscProfile is the scored outcome of a DISC questionnaire.
type DiscProfile struct {
	Natural         Scores `json:"natural"`
	Adaptive        Scores `json:"adaptive"`
	PrimaryNatural  Trait  `json:"primaryNatural"`
	PrimaryAdaptive Trait  `json:"primaryAdaptive"`
}

// Profile is the persisted unit: one completed assessment for one person.
// Natural and Adaptive are pointers so that rows with missing vectors can be
// carried through to aggregation, which skips them.
type Profile struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Email           string              `json:"email,omitempty"`
	Department      string              `json:"department"`
	TeamCode        string              `json:"teamCode,omitempty"`
	Natural         *Scores             `json:"natural"`
	Adaptive        *Scores             `json:"adaptive"`
	PrimaryNatural  Trait               `json:"primaryNatural"`
	PrimaryAdaptive Trait               `json:"primaryAdaptive"`
	DrivingForces   *DrivingForceResult `json:"drivingForces,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
}

// NewProfile builds a Profile from identity fields and scored results.
func NewProfile(identity Identity, disc DiscProfile, forces *DrivingForceResult, createdAt time.Time) Profile {
	natural, adaptive := disc.Natural, disc.Adaptive
	return Profile{
		Name:            strings.TrimSpace(identity.Name),
		Email:           strings.TrimSpace(identity.Email),
		Department:      strings.TrimSpace(identity.Department),
		TeamCode:        strings.TrimSpace(identity.TeamCode),
		Natural:         &natural,
		Adaptive:        &adaptive,
		PrimaryNatural:  disc.PrimaryNatural,
		PrimaryAdaptive: disc.PrimaryAdaptive,
		DrivingForces:   forces,
		CreatedAt:       createdAt,
	}
}

// Disc returns the DISC portion of the profile. Missing vectors come back zeroed.
func (p Profile) Disc() DiscProfile {
	dp := DiscProfile{PrimaryNatural: p.PrimaryNatural, PrimaryAdaptive: p.PrimaryAdaptive}
	if p.Natural != nil {
		dp.Natural = *p.Natural
	}
	if p.Adaptive != nil {
		dp.Adaptive = *p.Adaptive
	}
	return dp
}

// Identity holds the respondent fields captured alongside the questionnaire.
type Identity struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department"`
	TeamCode   string `json:"teamCode,omitempty"`
}

// AssessmentSubmission is a completed questionnaire as delivered by a client.
type AssessmentSubmission struct {
	Identity
	DiscAnswers  []DiscAnswer `json:"discAnswers"`
	ForceChoices []Pole       `json:"drivingForceAnswers,omitempty"`
}

// ProfileFilter narrows a profile read. The zero value selects all profiles.
type ProfileFilter struct {
	Department string    `json:"department,omitempty"`
	TeamCode   string    `json:"teamCode,omitempty"`
	From       time.Time `json:"from,omitzero"`
	To         time.Time `json:"to,omitzero"`
}

// IsZero reports whether the filter selects everything.
func (f ProfileFilter) IsZero() bool {
	return NormalizeDepartment(f.Department) == "" && strings.TrimSpace(f.TeamCode) == "" && f.From.IsZero() && f.To.IsZero()
}

// Matches reports whether p passes the filter.
func (f ProfileFilter) Matches(p Profile) bool {
	if dept := NormalizeDepartment(f.Department); dept != "" && NormalizeDepartment(p.Department) != dept {
		return false
	}
	if team := strings.TrimSpace(f.TeamCode); team != "" && p.TeamCode != team {
		return false
	}
	if !f.From.IsZero() && p.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && p.CreatedAt.After(f.To) {
		return false
	}
	return true
}

// Key returns a stable string form of the filter for cache keys.
func (f ProfileFilter) Key() string {
	var b strings.Builder
	b.WriteString(NormalizeDepartment(f.Department))
	b.WriteByte('|')
	b.WriteString(strings.TrimSpace(f.TeamCode))
	b.WriteByte('|')
	if !f.From.IsZero() {
		b.WriteString(f.From.UTC().Format(time.RFC3339Nano))
	}
	b.WriteByte('|')
	if !f.To.IsZero() {
		b.WriteString(f.To.UTC().Format(time.RFC3339Nano))
	}
	return b.String()
}

// NormalizeDepartment returns the grouping key for a department name.
func NormalizeDepartment(department string) string {
	return strings.ToLower(strings.TrimSpace(department))
}
