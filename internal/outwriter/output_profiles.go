package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/internal/parquet"
	"github.com/huangsam/teamdisc/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintProfiles outputs a profile listing, dispatching based on the output format configured.
func PrintProfiles(profiles []schema.Profile, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, profiles)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVProfiles(w, profiles)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WriteProfilesParquet(parquet.ConvertProfiles(profiles), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote %d profiles to %s\n", len(profiles), cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfilesTable(w, profiles, cfg)
		}, "Wrote table")
	}
}

// PrintProfile outputs a single profile with its Driving Forces breakdown.
func PrintProfile(profile schema.Profile, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, profile)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVProfiles(w, []schema.Profile{profile})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return PrintProfiles([]schema.Profile{profile}, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileDetail(w, profile, cfg)
		}, "Wrote table")
	}
}

// writeProfilesTable generates and writes the human-readable profile table.
func writeProfilesTable(w io.Writer, profiles []schema.Profile, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Name", "Department", "Team", "Natural", "Adaptive", "Primary", "Created"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})

	nameWidth := getMaxTextWidth(cfg, 110)
	var data [][]string
	for i, p := range profiles {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(p.Name, nameWidth),
			p.Department,
			p.TeamCode,
			formatScores(p.Natural),
			formatScores(p.Adaptive),
			traitLabel(p.PrimaryNatural, cfg),
			formatTime(p.CreatedAt),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d profiles\n", len(profiles))
	return err
}

// writeProfileDetail writes one profile as a field/value table followed by its forces.
func writeProfileDetail(w io.Writer, p schema.Profile, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})

	rows := [][]string{
		{"ID", defaultCell(p.ID)},
		{"Name", p.Name},
		{"Email", defaultCell(p.Email)},
		{"Department", p.Department},
		{"Team", defaultCell(p.TeamCode)},
		{"Natural", formatScores(p.Natural)},
		{"Adaptive", formatScores(p.Adaptive)},
		{"Primary (natural)", traitLabel(p.PrimaryNatural, cfg)},
		{"Primary (adaptive)", traitLabel(p.PrimaryAdaptive, cfg)},
		{"Created", formatTime(p.CreatedAt)},
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if p.DrivingForces == nil {
		return nil
	}
	return writeForcesTable(w, *p.DrivingForces)
}

// writeForcesTable writes one row per motivator axis with both pole counts.
func writeForcesTable(w io.Writer, forces schema.DrivingForceResult) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Axis", "Primary", "Left", "Right"})

	var data [][]string
	for _, a := range schema.AllAxes {
		left, right := a.Poles()
		primary := forces.PrimaryForces[a]
		data = append(data, []string{
			a.String(),
			fmt.Sprintf("%s (%s)", primary, primary.Name()),
			fmt.Sprintf("%s %d", left, forces.Scores[left]),
			fmt.Sprintf("%s %d", right, forces.Scores[right]),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVProfiles writes one row per profile with flattened trait columns.
func writeCSVProfiles(w io.Writer, profiles []schema.Profile) error {
	header := []string{
		"id", "name", "email", "department", "team_code",
		"natural_d", "natural_i", "natural_s", "natural_c",
		"adaptive_d", "adaptive_i", "adaptive_s", "adaptive_c",
		"primary_natural", "primary_adaptive", "primary_forces", "created_at",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range profiles {
			rec := []string{p.ID, p.Name, p.Email, p.Department, p.TeamCode}
			rec = append(rec, scoreCells(p.Natural)...)
			rec = append(rec, scoreCells(p.Adaptive)...)
			rec = append(rec,
				p.PrimaryNatural.String(),
				p.PrimaryAdaptive.String(),
				formatPrimaryForces(p.DrivingForces),
				p.CreatedAt.Format(contract.DateTimeFormat),
			)
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func defaultCell(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
