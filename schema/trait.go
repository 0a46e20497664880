package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Trait is one of the four DISC behavioral traits.
type Trait uint8

// All traits in their fixed enumeration order. The order is also the tie-break order.
const (
	D Trait = iota // Dominance
	I              // Influence
	S              // Steadiness
	C              // Conscientiousness

	TraitCount = 4
)

// AllTraits lists every trait in enumeration order.
var AllTraits = [TraitCount]Trait{D, I, S, C}

var traitLetters = [TraitCount]string{D: "D", I: "I", S: "S", C: "C"}

var traitNames = [TraitCount]string{
	D: "Dominance",
	I: "Influence",
	S: "Steadiness",
	C: "Conscientiousness",
}

// Valid reports whether t is one of the four traits.
func (t Trait) Valid() bool {
	return t < TraitCount
}

// String returns the single-letter code.
func (t Trait) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Trait(%d)", uint8(t))
	}
	return traitLetters[t]
}

// Name returns the long trait name.
func (t Trait) Name() string {
	if !t.Valid() {
		return t.String()
	}
	return traitNames[t]
}

// ParseTrait parses a single-letter trait code (case-insensitive).
func ParseTrait(s string) (Trait, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "D":
		return D, nil
	case "I":
		return I, nil
	case "S":
		return S, nil
	case "C":
		return C, nil
	default:
		return 0, fmt.Errorf("invalid trait %q (expected D, I, S, or C)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Trait) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid trait %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Trait) UnmarshalText(text []byte) error {
	parsed, err := ParseTrait(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scores is a percentage distribution over the four traits.
type Scores [TraitCount]int

// TraitCounts is a per-trait tally, such as a primary-type distribution.
type TraitCounts [TraitCount]int

// Get returns the value for trait t.
func (s Scores) Get(t Trait) int { return s[t] }

// Max returns the largest value in the vector.
func (s Scores) Max() int {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Total returns the sum of all four values.
func (s Scores) Total() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// InRange reports whether every value lies in [0,100].
func (s Scores) InRange() bool {
	for _, v := range s {
		if v < 0 || v > 100 {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the vector as an object keyed by trait letter.
func (s Scores) MarshalJSON() ([]byte, error) {
	return marshalTraitVector(s)
}

// UnmarshalJSON decodes an object keyed by trait letter. All four keys are required.
func (s *Scores) UnmarshalJSON(data []byte) error {
	v, err := unmarshalTraitVector(data)
	if err != nil {
		return err
	}
	*s = Scores(v)
	return nil
}

// Total returns the number of tallied items.
func (c TraitCounts) Total() int {
	total := 0
	for _, v := range c {
		total += v
	}
	return total
}

// MarshalJSON encodes the tally as an object keyed by trait letter.
func (c TraitCounts) MarshalJSON() ([]byte, error) {
	return marshalTraitVector(c)
}

// UnmarshalJSON decodes an object keyed by trait letter.
func (c *TraitCounts) UnmarshalJSON(data []byte) error {
	v, err := unmarshalTraitVector(data)
	if err != nil {
		return err
	}
	*c = TraitCounts(v)
	return nil
}

// traitVector mirrors the on-wire object so key order stays D, I, S, C.
type traitVector struct {
	D *int `json:"D"`
	I *int `json:"I"`
	S *int `json:"S"`
	C *int `json:"C"`
}

func marshalTraitVector(v [TraitCount]int) ([]byte, error) {
	return json.Marshal(traitVector{D: &v[D], I: &v[I], S: &v[S], C: &v[C]})
}

func unmarshalTraitVector(data []byte) ([TraitCount]int, error) {
	var out [TraitCount]int
	var raw traitVector
	if err := json.Unmarshal(data, &raw); err != nil {
		return out, fmt.Errorf("failed to decode trait vector: %w", err)
	}
	for t, p := range [TraitCount]*int{D: raw.D, I: raw.I, S: raw.S, C: raw.C} {
		if p == nil {
			return out, fmt.Errorf("trait vector is missing %s", Trait(t))
		}
		out[t] = *p
	}
	return out, nil
}
