package cmd

import (
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
	"github.com/spf13/cobra"
)

// analyticsCmd groups the department analytics views.
var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Analyze departments across the stored profiles",
	Long: `Derive department-level analytics from the stored profiles.

Every view honors the filter flags (--department, --team, --from, --to).
Profiles with missing or out-of-range scores are skipped and counted.

Subcommands:
  departments   - Average natural and adaptive scores per department
  compatibility - How well each pair of departments works together
  composition   - Strengths, gaps, and recommendations per department
  communication - Preferred communication style per department
  report        - Every view above from one read of the profiles

Examples:
  # Compare departments for profiles taken since January
  teamdisc analytics compatibility --from 2025-01-01

  # Export the full report as JSON
  teamdisc analytics report --output json --output-file report.json`,
}

// withReport runs one report and passes it to render.
func withReport(render func(schema.AnalyticsReport) error) {
	svc, repo, err := openService(rootCtx)
	if err != nil {
		contract.LogFatal("Failed to open profile store", err)
	}
	defer closeRepo(repo)

	report, err := svc.Report(rootCtx, cfg.Filter)
	if err != nil {
		contract.LogFatal("Failed to analyze profiles", err)
	}
	if err := render(report); err != nil {
		contract.LogFatal("Failed to write analytics", err)
	}
}

var analyticsDepartmentsCmd = &cobra.Command{
	Use:     "departments",
	Short:   "Show average scores and primary-type counts per department",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		svc, repo, err := openService(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to open profile store", err)
		}
		defer closeRepo(repo)

		summary, err := svc.Departments(rootCtx, cfg.Filter)
		if err != nil {
			contract.LogFatal("Failed to aggregate departments", err)
		}
		if err := writer.WriteDepartments(summary, cfg); err != nil {
			contract.LogFatal("Failed to write departments", err)
		}
	},
}

var analyticsCompatibilityCmd = &cobra.Command{
	Use:     "compatibility",
	Short:   "Score how well each pair of departments works together",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		withReport(func(r schema.AnalyticsReport) error {
			return writer.WriteCompatibility(r.Compatibility, cfg)
		})
	},
}

var analyticsCompositionCmd = &cobra.Command{
	Use:     "composition",
	Short:   "List strengths, gaps, and recommendations per department",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		withReport(func(r schema.AnalyticsReport) error {
			return writer.WriteComposition(r.Composition, cfg)
		})
	},
}

var analyticsCommunicationCmd = &cobra.Command{
	Use:     "communication",
	Short:   "Describe how each department prefers to communicate",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		withReport(func(r schema.AnalyticsReport) error {
			return writer.WriteCommunication(r.Communication, cfg)
		})
	},
}

var analyticsReportCmd = &cobra.Command{
	Use:     "report",
	Short:   "Show every analytics view in one report",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		withReport(func(r schema.AnalyticsReport) error {
			return writer.WriteReport(r, cfg)
		})
	},
}
