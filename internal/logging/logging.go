// Package logging builds the diagnostic logger shared by hub and remote
// operations. User-facing output goes through internal/ui instead.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the given level. verbose forces debug
// level and caller reporting.
func New(w io.Writer, level string, verbose bool) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "localhub",
	})

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)

	if verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
	}

	return logger, nil
}

// ParseLevel parses a level name; the empty string means warn.
func ParseLevel(level string) (log.Level, error) {
	if strings.TrimSpace(level) == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return 0, fmt.Errorf("unknown log level %q", level)
	}
	return lvl, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// LogOperation logs a named operation with timing around fn
func LogOperation(logger *log.Logger, operation string, fn func() error, keyvals ...interface{}) error {
	start := time.Now()
	logger.Debug("starting "+operation, keyvals...)

	err := fn()
	took := time.Since(start)

	if err != nil {
		logger.Debug("failed "+operation, append(keyvals, "took", took, "err", err)...)
	} else {
		logger.Debug("completed "+operation, append(keyvals, "took", took)...)
	}

	return err
}
