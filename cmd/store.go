package cmd

import (
	"fmt"

	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/internal/profilestore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeCmd focused on profile store management.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the profile store",
	Long: `Inspect, migrate, export, and clear the profile store.

Supported backends: SQLite (default), MySQL, PostgreSQL, DynamoDB, or memory

Subcommands:
  status  - Show profile counts and connection details
  export  - Export profiles and department aggregates to Parquet
  clear   - Remove every stored profile
  migrate - Run database schema migrations

Examples:
  # Check the store
  teamdisc store status

  # Export for analysis in pandas/DuckDB
  teamdisc store export --output-file team-data`,
}

var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display profile store statistics and connection details",
	Long: `Show the backend, connection target, profile count, department count,
and the oldest and newest submission times.

Examples:
  teamdisc store status --backend postgresql --db-connect "host=localhost dbname=teamdisc"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		repo, err := profilestore.Open(rootCtx, profilestore.OptionsFromConfig(cfg))
		if err != nil {
			contract.LogFatal("Failed to open profile store", err)
		}
		defer closeRepo(repo)

		status, err := repo.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		if err := writer.WriteStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to write store status", err)
		}
	},
}

var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every stored profile",
	Long: `Delete all stored profiles.

For SQLite the database file is removed. For MySQL and PostgreSQL the profile
and migration tables are dropped. For DynamoDB every item is deleted and the
table is kept.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  teamdisc store export --output-file backup
  teamdisc store clear`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := profilestore.Clear(rootCtx, profilestore.OptionsFromConfig(cfg)); err != nil {
			contract.LogFatal("Failed to clear profile store", err)
		}
		fmt.Println("Profile store cleared successfully.")
	},
}

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profiles and department aggregates to Parquet",
	Long: `Export the profiles matching the filter flags to Parquet.

Writes two files next to --output-file:
- <output-file>.profiles.parquet
- <output-file>.departments.parquet

Requires: --output-file parameter

Examples:
  teamdisc store export --output-file team-data
  duckdb -c "SELECT department, count FROM read_parquet('team-data.departments.parquet')"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		repo, err := profilestore.Open(rootCtx, profilestore.OptionsFromConfig(cfg))
		if err != nil {
			contract.LogFatal("Failed to open profile store", err)
		}
		defer closeRepo(repo)

		result, err := profilestore.ExportParquet(rootCtx, repo, cfg.Filter, cfg.OutputFile)
		if err != nil {
			contract.LogFatal("Failed to export profiles", err)
		}
		fmt.Printf("Exported %d profiles to %s\n", result.ProfileCount, result.ProfilesFile)
		fmt.Printf("Exported %d departments to %s\n", result.DepartmentCount, result.DepartmentsFile)
	},
}

var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the SQL profile stores.

By default, migrates to the latest version. Use --target-version for specific versions.
Stores also migrate to the latest version when they are opened.

Examples:
  # Migrate to latest version (default)
  teamdisc store migrate

  # Rollback to initial state
  teamdisc store migrate --target-version 0`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		result, err := profilestore.Migrate(cfg.Backend, cfg.DBConnect, targetVersion)
		if err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		if !result.Changed {
			fmt.Printf("No migration needed; schema is at version %d.\n", result.To)
			return
		}
		fmt.Printf("Migrated schema from version %d to %d.\n", result.From, result.To)
	},
}
