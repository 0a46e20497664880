package outwriter

import (
	"os"

	"github.com/huangsam/teamdisc/internal/contract"
	"golang.org/x/term"
)

// getTerminalWidth returns the width override, the detected terminal width, or 80.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		return 80
	}
	return detectedWidth
}

// getMaxTextWidth returns the width available to the free-text column of a table
// whose other columns take reservedWidth characters.
func getMaxTextWidth(cfg *contract.Config, reservedWidth int) int {
	// Reserve generous space for table borders, separators, and padding
	available := getTerminalWidth(cfg) - reservedWidth - 20
	if available < 20 {
		return 20
	}
	if available > 100 {
		return 100
	}
	return available
}
