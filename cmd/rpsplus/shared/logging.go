package shared

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a logger with console output on stderr.
func SetupLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// SetupQuietLogger configures a logger that only reports warnings and
// errors. Used by the TUI, which owns the terminal.
func SetupQuietLogger() *log.Logger {
	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel)
	return logger
}
