package cmd

import (
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/spf13/cobra"
)

// profilesCmd lists stored profiles or shows one by id.
var profilesCmd = &cobra.Command{
	Use:   "profiles [id]",
	Short: "List stored profiles or show one profile",
	Long: `List the stored profiles that match the filter flags, oldest first.

Pass a profile id to show that profile with its Driving Forces breakdown.

Examples:
  # Everyone in sales who took the assessment this quarter
  teamdisc profiles --department sales --from "3 months ago"

  # One profile as JSON
  teamdisc profiles 2f1c0a5e-5b1d-4d55-9c55-7f1b3c1d2e4a --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		svc, repo, err := openService(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to open profile store", err)
		}
		defer closeRepo(repo)

		if len(args) == 1 {
			p, err := svc.Profile(rootCtx, args[0])
			if err != nil {
				contract.LogFatal("Failed to read profile", err)
			}
			if err := writer.WriteProfile(p, cfg); err != nil {
				contract.LogFatal("Failed to write profile", err)
			}
			return
		}

		profiles, err := svc.Profiles(rootCtx, cfg.Filter)
		if err != nil {
			contract.LogFatal("Failed to list profiles", err)
		}
		if err := writer.WriteProfiles(profiles, cfg); err != nil {
			contract.LogFatal("Failed to write profiles", err)
		}
	},
}
