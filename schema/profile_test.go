package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDepartment(t *testing.T) {
	assert.Equal(t, "sales", NormalizeDepartment(" Sales "))
	assert.Equal(t, "sales", NormalizeDepartment("SALES"))
	assert.Equal(t, "", NormalizeDepartment("   "))
}

func TestProfileFilterMatches(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := Profile{Department: " Sales ", TeamCode: "AB12C", CreatedAt: base}

	tests := []struct {
		name   string
		filter ProfileFilter
		want   bool
	}{
		{"zero filter", ProfileFilter{}, true},
		{"department case-insensitive", ProfileFilter{Department: "SALES"}, true},
		{"department mismatch", ProfileFilter{Department: "Ops"}, false},
		{"team match", ProfileFilter{TeamCode: "AB12C"}, true},
		{"team mismatch", ProfileFilter{TeamCode: "ZZZZZ"}, false},
		{"inclusive from", ProfileFilter{From: base}, true},
		{"inclusive to", ProfileFilter{To: base}, true},
		{"before window", ProfileFilter{From: base.Add(time.Second)}, false},
		{"after window", ProfileFilter{To: base.Add(-time.Second)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(p))
		})
	}
}

func TestProfileFilterKey(t *testing.T) {
	a := ProfileFilter{Department: " Sales"}
	b := ProfileFilter{Department: "sales "}
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), ProfileFilter{}.Key())
	assert.True(t, ProfileFilter{Department: "  "}.IsZero())
}

func TestNewProfileTrimsIdentity(t *testing.T) {
	disc := DiscProfile{Natural: Scores{100, 0, 0, 0}, Adaptive: Scores{60, 0, 20, 20}}
	p := NewProfile(Identity{Name: " Ada ", Department: " R&D "}, disc, nil, time.Time{})
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "R&D", p.Department)
	assert.Equal(t, disc, p.Disc())

	// Mutating the source must not leak into the profile.
	disc.Natural[D] = 0
	assert.Equal(t, 100, p.Natural[D])
}
