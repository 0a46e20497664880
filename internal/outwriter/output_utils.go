package outwriter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
)

// formatScores renders a trait vector as "D:40 I:30 S:20 C:10", or "-" when missing.
func formatScores(s *schema.Scores) string {
	if s == nil {
		return "-"
	}
	parts := make([]string, 0, schema.TraitCount)
	for _, t := range schema.AllTraits {
		parts = append(parts, fmt.Sprintf("%s:%d", t, s[t]))
	}
	return strings.Join(parts, " ")
}

// formatCounts renders a primary-type distribution as "D:2 I:0 S:1 C:0".
func formatCounts(c schema.TraitCounts) string {
	parts := make([]string, 0, schema.TraitCount)
	for _, t := range schema.AllTraits {
		parts = append(parts, fmt.Sprintf("%s:%d", t, c[t]))
	}
	return strings.Join(parts, " ")
}

// formatPrimaryForces renders the winning pole of each axis, e.g. "KI US SO OI PC MR".
func formatPrimaryForces(forces *schema.DrivingForceResult) string {
	if forces == nil {
		return ""
	}
	parts := make([]string, 0, schema.AxisCount)
	for _, a := range schema.AllAxes {
		parts = append(parts, forces.PrimaryForces[a].String())
	}
	return strings.Join(parts, " ")
}

// scoreCells returns the four trait values as strings, or empty cells when missing.
func scoreCells(s *schema.Scores) []string {
	cells := make([]string, schema.TraitCount)
	if s == nil {
		return cells
	}
	for _, t := range schema.AllTraits {
		cells[t] = strconv.Itoa(s[t])
	}
	return cells
}

// traitLabel picks the colored or plain label for table output.
func traitLabel(t schema.Trait, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(t)
	}
	return contract.GetPlainLabel(t)
}

// formatTime renders a timestamp, or "-" for the zero time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(contract.DateTimeFormat)
}

// bulletList joins items into one cell, one item per line.
func bulletList(items []string, width int) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + contract.TruncateText(item, width)
	}
	return strings.Join(lines, "\n")
}
