package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Pole is one of the twelve Driving Forces motivator poles.
type Pole uint8

// All poles in their fixed enumeration order. Each axis lists its left pole first.
const (
	KI Pole = iota // Intellectual
	KN             // Instinctive
	US             // Selfless
	UR             // Resourceful
	SO             // Objective
	SH             // Harmonious
	OI             // Intentional
	OA             // Altruistic
	PC             // Collaborative
	PD             // Commanding
	MR             // Receptive
	MS             // Structured

	PoleCount = 12
)

// Axis is one of the six bipolar motivator axes.
type Axis uint8

// All axes in their fixed enumeration order.
const (
	Knowledge Axis = iota
	Utility
	Surroundings
	Others
	Power
	Methodologies

	AxisCount = 6
)

// AllPoles lists every pole in enumeration order.
var AllPoles = [PoleCount]Pole{KI, KN, US, UR, SO, SH, OI, OA, PC, PD, MR, MS}

// AllAxes lists every axis in enumeration order.
var AllAxes = [AxisCount]Axis{Knowledge, Utility, Surroundings, Others, Power, Methodologies}

var poleCodes = [PoleCount]string{
	KI: "KI", KN: "KN",
	US: "US", UR: "UR",
	SO: "SO", SH: "SH",
	OI: "OI", OA: "OA",
	PC: "PC", PD: "PD",
	MR: "MR", MS: "MS",
}

var poleNames = [PoleCount]string{
	KI: "Intellectual", KN: "Instinctive",
	US: "Selfless", UR: "Resourceful",
	SO: "Objective", SH: "Harmonious",
	OI: "Intentional", OA: "Altruistic",
	PC: "Collaborative", PD: "Commanding",
	MR: "Receptive", MS: "Structured",
}

var axisNames = [AxisCount]string{
	Knowledge:     "Knowledge",
	Utility:       "Utility",
	Surroundings:  "Surroundings",
	Others:        "Others",
	Power:         "Power",
	Methodologies: "Methodologies",
}

// axisPoles holds the (left, right) poles of each axis. Left wins ties.
var axisPoles = [AxisCount][2]Pole{
	Knowledge:     {KI, KN},
	Utility:       {US, UR},
	Surroundings:  {SO, SH},
	Others:        {OI, OA},
	Power:         {PC, PD},
	Methodologies: {MR, MS},
}

// Valid reports whether p is one of the twelve poles.
func (p Pole) Valid() bool { return p < PoleCount }

// String returns the two-letter pole code.
func (p Pole) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pole(%d)", uint8(p))
	}
	return poleCodes[p]
}

// Name returns the descriptive pole name.
func (p Pole) Name() string {
	if !p.Valid() {
		return p.String()
	}
	return poleNames[p]
}

// Axis returns the motivator axis the pole belongs to.
func (p Pole) Axis() Axis {
	return Axis(p / 2)
}

// ParsePole parses a two-letter pole code (case-insensitive).
func ParsePole(s string) (Pole, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	for _, p := range AllPoles {
		if poleCodes[p] == code {
			return p, nil
		}
	}
	return 0, fmt.Errorf("invalid driving force %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Pole) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid pole %d", uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pole) UnmarshalText(text []byte) error {
	parsed, err := ParsePole(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Valid reports whether a is one of the six axes.
func (a Axis) Valid() bool { return a < AxisCount }

// String returns the axis name.
func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
	return axisNames[a]
}

// Poles returns the left and right poles of the axis.
func (a Axis) Poles() (left, right Pole) {
	return axisPoles[a][0], axisPoles[a][1]
}

// ParseAxis parses an axis name (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	for _, a := range AllAxes {
		if strings.EqualFold(axisNames[a], strings.TrimSpace(s)) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("invalid motivator axis %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid axis %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// DrivingForceScores counts how often each pole was chosen.
type DrivingForceScores [PoleCount]int

// PrimaryForces holds the winning pole of each axis.
type PrimaryForces [AxisCount]Pole

// DrivingForceResult is the scored outcome of a Driving Forces questionnaire.
type DrivingForceResult struct {
	Scores        DrivingForceScores `json:"scores"`
	PrimaryForces PrimaryForces      `json:"primaryForces"`
}

// MarshalJSON encodes counts as an object keyed by pole code.
func (s DrivingForceScores) MarshalJSON() ([]byte, error) {
	m := make(map[Pole]int, PoleCount)
	for _, p := range AllPoles {
		m[p] = s[p]
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by pole code. Absent poles count as zero.
func (s *DrivingForceScores) UnmarshalJSON(data []byte) error {
	var m map[Pole]int
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to decode driving force scores: %w", err)
	}
	var out DrivingForceScores
	for p, n := range m {
		out[p] = n
	}
	*s = out
	return nil
}

// MarshalJSON encodes primaries as an object keyed by axis name.
func (pf PrimaryForces) MarshalJSON() ([]byte, error) {
	m := make(map[Axis]Pole, AxisCount)
	for _, a := range AllAxes {
		m[a] = pf[a]
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by axis name. All six axes are required,
// and each pole must belong to its axis.
func (pf *PrimaryForces) UnmarshalJSON(data []byte) error {
	var m map[Axis]Pole
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to decode primary forces: %w", err)
	}
	var out PrimaryForces
	for _, a := range AllAxes {
		p, ok := m[a]
		if !ok {
			return fmt.Errorf("primary forces missing axis %s", a)
		}
		if p.Axis() != a {
			return fmt.Errorf("pole %s does not belong to axis %s", p, a)
		}
		out[a] = p
	}
	*pf = out
	return nil
}
