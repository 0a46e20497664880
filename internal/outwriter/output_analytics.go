package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/internal/parquet"
	"github.com/huangsam/teamdisc/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var errParquetUnsupported = errors.New("parquet output is only supported for profiles and departments")

// PrintDepartments outputs department aggregates, dispatching based on the output format configured.
func PrintDepartments(summary schema.DepartmentSummary, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVDepartments(w, summary.Departments)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WriteDepartmentsParquet(parquet.ConvertDepartments(summary.Departments), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote %d departments to %s\n", len(summary.Departments), cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDepartmentsTable(w, summary)
		}, "Wrote table")
	}
}

// PrintCompatibility outputs department pair scores.
func PrintCompatibility(results []schema.Compatibility, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVCompatibility(w, results)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCompatibilityTable(w, results, cfg)
		}, "Wrote table")
	}
}

// PrintComposition outputs per-department strengths, gaps, and recommendations.
func PrintComposition(results []schema.TeamComposition, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVComposition(w, results)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCompositionTable(w, results, cfg)
		}, "Wrote table")
	}
}

// PrintCommunication outputs per-department communication styles.
func PrintCommunication(results []schema.CommunicationInsight, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVCommunication(w, results)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCommunicationTable(w, results, cfg)
		}, "Wrote table")
	}
}

// PrintReport outputs every analytics view. CSV and parquet are not meaningful for
// a nested report, so CSV falls back to the department table.
func PrintReport(report schema.AnalyticsReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVDepartments(w, report.Departments)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return PrintDepartments(schema.DepartmentSummary{Departments: report.Departments, Skipped: report.Skipped}, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(w, report, cfg)
		}, "Wrote report")
	}
}

// writeDepartmentsTable generates and writes the department aggregate table.
func writeDepartmentsTable(w io.Writer, summary schema.DepartmentSummary) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Department", "Count", "Avg Natural", "Avg Adaptive", "Primary (natural)", "Primary (adaptive)"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, d := range summary.Departments {
		natural, adaptive := d.AvgNatural, d.AvgAdaptive
		data = append(data, []string{
			d.Department,
			strconv.Itoa(d.Count),
			formatScores(&natural),
			formatScores(&adaptive),
			formatCounts(d.PrimaryNaturalDistribution),
			formatCounts(d.PrimaryAdaptiveDistribution),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d departments (%d profiles skipped)\n", len(summary.Departments), summary.Skipped)
	return err
}

// writeCompatibilityTable writes one row per department pair, best first.
func writeCompatibilityTable(w io.Writer, results []schema.Compatibility, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Department", "Department", "Score", "Reasoning"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})

	width := getMaxTextWidth(cfg, 50)
	var data [][]string
	for i, r := range results {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			r.Dept1,
			r.Dept2,
			strconv.Itoa(r.Score),
			contract.TruncateText(r.Reasoning, width),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCompositionTable writes strengths, gaps, and recommendations per department.
func writeCompositionTable(w io.Writer, results []schema.TeamComposition, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Department", "Strengths", "Gaps", "Recommendations"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})

	width := getMaxTextWidth(cfg, 60)
	var data [][]string
	for _, r := range results {
		data = append(data, []string{
			r.Department,
			bulletList(r.Strengths, 40),
			bulletList(r.Gaps, 40),
			bulletList(r.Recommendations, width),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCommunicationTable writes the style and guidance of each department.
func writeCommunicationTable(w io.Writer, results []schema.CommunicationInsight, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Department", "Style", "Preferences", "Recommendations"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})

	width := getMaxTextWidth(cfg, 60)
	var data [][]string
	for _, r := range results {
		data = append(data, []string{
			r.Department,
			r.Style,
			bulletList(r.Preferences, 40),
			bulletList(r.Recommendations, width),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeReportText writes every report section in sequence.
func writeReportText(w io.Writer, report schema.AnalyticsReport, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Team report generated %s over %d profiles\n\n", formatTime(report.GeneratedAt), report.ProfileCount); err != nil {
		return err
	}
	sections := []struct {
		title string
		write func() error
	}{
		{"Departments", func() error {
			return writeDepartmentsTable(w, schema.DepartmentSummary{Departments: report.Departments, Skipped: report.Skipped})
		}},
		{"Compatibility", func() error { return writeCompatibilityTable(w, report.Compatibility, cfg) }},
		{"Team composition", func() error { return writeCompositionTable(w, report.Composition, cfg) }},
		{"Communication", func() error { return writeCommunicationTable(w, report.Communication, cfg) }},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s\n", s.title); err != nil {
			return err
		}
		if err := s.write(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVDepartments writes one row per department with flattened averages and distributions.
func writeCSVDepartments(w io.Writer, departments []schema.DepartmentAggregate) error {
	header := []string{"department", "count"}
	for _, prefix := range []string{"avg_natural_", "avg_adaptive_", "primary_natural_", "primary_adaptive_"} {
		for _, t := range schema.AllTraits {
			header = append(header, prefix+strings.ToLower(t.String()))
		}
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, d := range departments {
			natural, adaptive := d.AvgNatural, d.AvgAdaptive
			rec := []string{d.Department, strconv.Itoa(d.Count)}
			rec = append(rec, scoreCells(&natural)...)
			rec = append(rec, scoreCells(&adaptive)...)
			rec = append(rec, countCells(d.PrimaryNaturalDistribution)...)
			rec = append(rec, countCells(d.PrimaryAdaptiveDistribution)...)
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeCSVCompatibility(w io.Writer, results []schema.Compatibility) error {
	return writeCSVWithHeader(w, []string{"rank", "dept1", "dept2", "score", "reasoning"}, func(cw *csv.Writer) error {
		for i, r := range results {
			if err := cw.Write([]string{strconv.Itoa(i + 1), r.Dept1, r.Dept2, strconv.Itoa(r.Score), r.Reasoning}); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeCSVComposition(w io.Writer, results []schema.TeamComposition) error {
	return writeCSVWithHeader(w, []string{"department", "strengths", "gaps", "recommendations"}, func(cw *csv.Writer) error {
		for _, r := range results {
			rec := []string{r.Department, strings.Join(r.Strengths, "|"), strings.Join(r.Gaps, "|"), strings.Join(r.Recommendations, "|")}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeCSVCommunication(w io.Writer, results []schema.CommunicationInsight) error {
	return writeCSVWithHeader(w, []string{"department", "style", "preferences", "recommendations"}, func(cw *csv.Writer) error {
		for _, r := range results {
			rec := []string{r.Department, r.Style, strings.Join(r.Preferences, "|"), strings.Join(r.Recommendations, "|")}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func countCells(c schema.TraitCounts) []string {
	cells := make([]string, schema.TraitCount)
	for _, t := range schema.AllTraits {
		cells[t] = strconv.Itoa(c[t])
	}
	return cells
}
