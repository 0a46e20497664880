// Package cmd defines the command-line interface for teamdisc.
package cmd

import (
	"fmt"

	"github.com/huangsam/teamdisc/core"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(teamcodeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the analytics subcommands to the parent analytics command
	analyticsCmd.AddCommand(analyticsDepartmentsCmd)
	analyticsCmd.AddCommand(analyticsCompatibilityCmd)
	analyticsCmd.AddCommand(analyticsCompositionCmd)
	analyticsCmd.AddCommand(analyticsCommunicationCmd)
	analyticsCmd.AddCommand(analyticsReportCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored trait labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("backend", string(schema.SQLiteBackend), "Profile store: sqlite or mysql or postgresql or dynamodb or memory")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for sqlite/mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("dynamo-table", contract.DefaultDynamoTable, "DynamoDB table holding profiles")
	rootCmd.PersistentFlags().String("dynamo-endpoint", "", "DynamoDB endpoint override (e.g., http://localhost:8000 for DynamoDB Local)")
	rootCmd.PersistentFlags().String("aws-region", "", "AWS region for the DynamoDB backend")
	rootCmd.PersistentFlags().StringP("department", "d", "", "Department to filter by (or the respondent's department for score)")
	rootCmd.PersistentFlags().String("team", "", "Team code to filter by (or the respondent's team code for score)")
	rootCmd.PersistentFlags().String("from", "", "Include profiles created at or after this date (ISO8601, YYYY-MM-DD, or time ago)")
	rootCmd.PersistentFlags().String("to", "", "Include profiles created at or before this date (ISO8601, YYYY-MM-DD, or time ago)")
	rootCmd.PersistentFlags().Int("cache-size", contract.DefaultCacheSize, "Number of analytics reports to keep in memory (0 = disabled)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("log-format", contract.DefaultLogFormat, "Log format: text or json")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoreCmd to Viper
	scoreCmd.Flags().String("name", "", "Respondent name")
	scoreCmd.Flags().String("email", "", "Respondent email")
	scoreCmd.Flags().String("answers", "", "DISC answers as comma-separated most:least pairs (e.g., D:I,S:C)")
	scoreCmd.Flags().String("forces", "", "Driving Forces choices as comma-separated pole codes (e.g., KI,UR)")
	scoreCmd.Flags().String("input", "", "Read a JSON submission from this file (- for stdin)")
	scoreCmd.Flags().Bool("save", false, "Store the scored profile")
	if err := viper.BindPFlags(scoreCmd.Flags()); err != nil {
		contract.LogFatal("Error binding score flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("listen", contract.DefaultListen, "Address for the HTTP server")
	serveCmd.Flags().String("admin-token", "", "Token required in the x-admin-token header for admin routes (prefer TEAMDISC_ADMIN_TOKEN)")
	serveCmd.Flags().String("cors-origins", "", "Comma-separated allowed CORS origins (empty = all)")
	serveCmd.Flags().String("gin-mode", contract.DefaultGinMode, "Gin mode: debug or release or test")
	serveCmd.Flags().String("metrics", "yes", "Expose Prometheus metrics on /metrics (yes/no/true/false/1/0)")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of teamcodeCmd to Viper
	teamcodeCmd.Flags().Int("count", 1, fmt.Sprintf("Number of team codes to generate (1-%d)", core.MaxTeamCodes))
	if err := viper.BindPFlags(teamcodeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding teamcode flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
