package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/teamdisc/schema"
)

// Color variables for console trait labels.
var (
	DominanceColor         = color.New(color.FgRed, color.Bold)
	InfluenceColor         = color.New(color.FgYellow, color.Bold)
	SteadinessColor        = color.New(color.FgGreen)
	ConscientiousnessColor = color.New(color.FgCyan)
)

var traitColors = [schema.TraitCount]*color.Color{
	schema.D: DominanceColor,
	schema.I: InfluenceColor,
	schema.S: SteadinessColor,
	schema.C: ConscientiousnessColor,
}

// GetPlainLabel returns a plain text label for a trait, e.g. "D (Dominance)".
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(t schema.Trait) string {
	if !t.Valid() {
		return t.String()
	}
	return fmt.Sprintf("%s (%s)", t, t.Name())
}

// GetColorLabel returns a colored trait label for console output (table).
func GetColorLabel(t schema.Trait) string {
	text := GetPlainLabel(t)
	if !t.Valid() {
		return text
	}
	return traitColors[t].Sprint(text)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for profile storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".teamdisc.db"
	}
	return filepath.Join(homeDir, ".teamdisc.db")
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
