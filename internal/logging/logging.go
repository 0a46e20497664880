// Package logging holds the structured logger used by the server and the stores.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It writes to stderr at info level until BootstrapLogger runs.
var Log = newLogger(os.Stderr, logrus.InfoLevel, &logrus.TextFormatter{})

// BootstrapLogger configures Log from the log-level and log-format settings.
func BootstrapLogger(level, format string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var formatter logrus.Formatter
	switch format {
	case "json":
		formatter = &logrus.JSONFormatter{}
	case "", "text":
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	default:
		return fmt.Errorf("unsupported log format: %s", format)
	}

	if out == nil {
		out = os.Stderr
	}
	Log = newLogger(out, lvl, formatter)
	return nil
}

func newLogger(out io.Writer, level logrus.Level, formatter logrus.Formatter) *logrus.Logger {
	l := logrus.New()
	l.Out = out
	l.Level = level
	l.Formatter = formatter
	return l
}
