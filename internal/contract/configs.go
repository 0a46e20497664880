package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/teamdisc/schema"
	"github.com/sirupsen/logrus"
)

// Default values for configuration.
const (
	DefaultCacheSize   = 64
	MaxCacheSize       = 4096
	DefaultListen      = ":8080"
	DefaultDynamoTable = "teamdisc_profiles"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultGinMode     = "release"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for every command.
// This struct remains the "final, validated" config.
type Config struct {
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Backend        schema.DatabaseBackend
	DBConnect      string // Please use env var as this is plaintext
	DynamoTable    string
	DynamoEndpoint string
	AWSRegion      string

	// Filter narrows every profile read issued by the CLI.
	Filter schema.ProfileFilter

	CacheSize int // 0 disables the report cache

	Listen      string
	AdminToken  string // Please use env var as this is plaintext
	CORSOrigins []string
	GinMode     string
	Metrics     bool

	LogLevel  string
	LogFormat string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	Backend        string `mapstructure:"backend"`
	DBConnect      string `mapstructure:"db-connect"`
	DynamoTable    string `mapstructure:"dynamo-table"`
	DynamoEndpoint string `mapstructure:"dynamo-endpoint"`
	AWSRegion      string `mapstructure:"aws-region"`
	LogLevel       string `mapstructure:"log-level"`
	LogFormat      string `mapstructure:"log-format"`

	// --- Filter fields shared by profiles and analytics ---
	Department string `mapstructure:"department"`
	Team       string `mapstructure:"team"`
	From       string `mapstructure:"from"`
	To         string `mapstructure:"to"`
	CacheSize  int    `mapstructure:"cache-size"`

	// --- Fields from serveCmd.Flags() ---
	Listen      string `mapstructure:"listen"`
	AdminToken  string `mapstructure:"admin-token"`
	CORSOrigins string `mapstructure:"cors-origins"`
	GinMode     string `mapstructure:"gin-mode"`
	Metrics     string `mapstructure:"metrics"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	return processAndValidateAt(cfg, input, time.Now())
}

func processAndValidateAt(cfg *Config, input *ConfigRawInput, now time.Time) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := processFilter(cfg, input, now); err != nil {
		return err
	}
	return processServerInputs(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.MemoryBackend, schema.DynamoDBBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes output and logging fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	colors, err := ParseBoolString(defaultString(input.Color, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.Output = schema.OutputMode(strings.ToLower(defaultString(input.Output, string(schema.TextOut))))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}

	cfg.LogLevel = strings.ToLower(defaultString(input.LogLevel, DefaultLogLevel))
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level '%s': %w", input.LogLevel, err)
	}
	cfg.LogFormat = strings.ToLower(defaultString(input.LogFormat, DefaultLogFormat))
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("invalid log format '%s'. must be text, json", input.LogFormat)
	}

	return nil
}

// validateBackendConfig validates the profile store configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.Backend = schema.DatabaseBackend(strings.ToLower(defaultString(input.Backend, string(schema.SQLiteBackend))))
	if _, ok := schema.ValidDatabaseBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid backend '%s'. must be sqlite, mysql, postgresql, dynamodb, memory", input.Backend)
	}
	cfg.DBConnect = input.DBConnect
	if err := ValidateDatabaseConnectionString(cfg.Backend, cfg.DBConnect); err != nil {
		return err
	}

	cfg.DynamoTable = strings.TrimSpace(defaultString(input.DynamoTable, DefaultDynamoTable))
	cfg.DynamoEndpoint = strings.TrimSpace(input.DynamoEndpoint)
	cfg.AWSRegion = strings.TrimSpace(input.AWSRegion)
	if cfg.Backend == schema.DynamoDBBackend && cfg.DynamoTable == "" {
		return fmt.Errorf("dynamo-table is required when using %s backend", cfg.Backend)
	}

	if input.CacheSize < 0 || input.CacheSize > MaxCacheSize {
		return fmt.Errorf("cache-size must be between 0 and %d (received %d)", MaxCacheSize, input.CacheSize)
	}
	cfg.CacheSize = input.CacheSize

	return nil
}

// processFilter handles the profile filter and its date parsing.
func processFilter(cfg *Config, input *ConfigRawInput, now time.Time) error {
	cfg.Filter = schema.ProfileFilter{
		Department: strings.TrimSpace(input.Department),
		TeamCode:   strings.TrimSpace(input.Team),
	}

	if input.From != "" {
		t, err := ParseDate(input.From, now, false)
		if err != nil {
			return fmt.Errorf("invalid from date '%s'. Expected RFC3339, YYYY-MM-DD or 'N [units] ago': %w", input.From, err)
		}
		cfg.Filter.From = t
	}
	if input.To != "" {
		t, err := ParseDate(input.To, now, true)
		if err != nil {
			return fmt.Errorf("invalid to date '%s'. Expected RFC3339, YYYY-MM-DD or 'N [units] ago': %w", input.To, err)
		}
		cfg.Filter.To = t
	}

	if !cfg.Filter.From.IsZero() && !cfg.Filter.To.IsZero() && cfg.Filter.From.After(cfg.Filter.To) {
		return fmt.Errorf("from (%s) cannot be after to (%s)", cfg.Filter.From.Format(DateTimeFormat), cfg.Filter.To.Format(DateTimeFormat))
	}
	return nil
}

// processServerInputs handles the HTTP server flags.
func processServerInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Listen = defaultString(strings.TrimSpace(input.Listen), DefaultListen)
	cfg.AdminToken = strings.TrimSpace(input.AdminToken)

	cfg.CORSOrigins = nil
	for origin := range strings.SplitSeq(input.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
		}
	}

	cfg.GinMode = strings.ToLower(defaultString(input.GinMode, DefaultGinMode))
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode '%s'. must be debug, release, test", input.GinMode)
	}

	metrics, err := ParseBoolString(defaultString(input.Metrics, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --metrics value: %w", err)
	}
	cfg.Metrics = metrics
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
