// Package ui renders command results for people (coloured text and tables)
// and for scripts (JSON).
package ui

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/lcgerke/localhub/internal/errors"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatHuman OutputFormat = "human"
	FormatJSON  OutputFormat = "json"
)

// ParseFormat validates a --format value
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatHuman, "":
		return FormatHuman, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected human or json)", s)
	}
}

// Output handles formatted output to the user. Results go to the writer,
// failures to the error writer.
type Output struct {
	writer       io.Writer
	errWriter    io.Writer
	format       OutputFormat
	colorEnabled bool
}

// NewOutput creates a human-format Output. Colour is enabled when writer is
// a terminal.
func NewOutput(writer, errWriter io.Writer) *Output {
	return &Output{
		writer:       writer,
		errWriter:    errWriter,
		format:       FormatHuman,
		colorEnabled: IsTerminal(writer),
	}
}

// IsTerminal reports whether w is a character device
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetFormat sets the output format. JSON output is never coloured.
func (o *Output) SetFormat(format OutputFormat) {
	o.format = format
	if format == FormatJSON {
		o.colorEnabled = false
	}
}

// SetColorEnabled manually enables/disables colors
func (o *Output) SetColorEnabled(enabled bool) {
	o.colorEnabled = enabled
}

// IsJSON returns true if output format is JSON
func (o *Output) IsJSON() bool {
	return o.format == FormatJSON
}

// Success prints a success message
func (o *Output) Success(message string) {
	if o.IsJSON() {
		o.printJSON(o.writer, map[string]interface{}{
			"status":  "success",
			"message": message,
		})
		return
	}
	o.line(o.writer, color.GreenString, "✓", message)
}

// Error prints an error message to the error writer
func (o *Output) Error(message string) {
	if o.IsJSON() {
		o.printJSON(o.errWriter, map[string]interface{}{
			"status":  "error",
			"message": message,
		})
		return
	}
	o.line(o.errWriter, color.RedString, "✗", message)
}

// Failure prints a failed check to the result writer. Use Error for
// command failures.
func (o *Output) Failure(message string) {
	if o.IsJSON() {
		o.printJSON(o.writer, map[string]interface{}{
			"status":  "failure",
			"message": message,
		})
		return
	}
	o.line(o.writer, color.RedString, "✗", message)
}

// Warning prints a warning message
func (o *Output) Warning(message string) {
	if o.IsJSON() {
		o.printJSON(o.writer, map[string]interface{}{
			"status":  "warning",
			"message": message,
		})
		return
	}
	o.line(o.writer, color.YellowString, "⚠", message)
}

// Info prints an informational message
func (o *Output) Info(message string) {
	if o.IsJSON() {
		o.printJSON(o.writer, map[string]interface{}{
			"status":  "info",
			"message": message,
		})
		return
	}

	fmt.Fprintf(o.writer, "%s\n", message)
}

// Header prints a header (only in human format)
func (o *Output) Header(title string) {
	if o.IsJSON() {
		return
	}

	if o.colorEnabled {
		fmt.Fprintf(o.writer, "\n%s\n", color.New(color.Bold).Sprint(title))
	} else {
		fmt.Fprintf(o.writer, "\n%s\n", title)
	}
}

// Separator prints a separator line (only in human format)
func (o *Output) Separator() {
	if o.IsJSON() {
		return
	}

	fmt.Fprintln(o.writer, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
}

// JSON outputs arbitrary data as JSON
func (o *Output) JSON(data interface{}) error {
	return o.printJSON(o.writer, data)
}

// ReportError prints err to the error writer. A LocalHubError shows its
// message and hint; JSON output also carries its type and code.
func (o *Output) ReportError(err error) {
	var lhErr *errors.LocalHubError
	if !stderrors.As(err, &lhErr) {
		o.Error(err.Error())
		return
	}

	if o.IsJSON() {
		payload := map[string]interface{}{
			"status":  "error",
			"type":    lhErr.Type,
			"code":    lhErr.Code,
			"message": lhErr.Message,
		}
		if lhErr.Err != nil {
			payload["cause"] = lhErr.Err.Error()
		}
		if lhErr.Hint != "" {
			payload["hint"] = lhErr.Hint
		}
		o.printJSON(o.errWriter, payload)
		return
	}

	o.Error(lhErr.UserFriendlyMessage())
}

func (o *Output) line(w io.Writer, paint func(string, ...interface{}) string, symbol, message string) {
	if o.colorEnabled {
		symbol = paint(symbol)
	}
	fmt.Fprintf(w, "%s %s\n", symbol, message)
}

// printJSON encodes and prints JSON data
func (o *Output) printJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Infof prints a formatted info message
func (o *Output) Infof(format string, args ...interface{}) {
	o.Info(fmt.Sprintf(format, args...))
}

// Successf prints a formatted success message
func (o *Output) Successf(format string, args ...interface{}) {
	o.Success(fmt.Sprintf(format, args...))
}

// Warningf prints a formatted warning message
func (o *Output) Warningf(format string, args ...interface{}) {
	o.Warning(fmt.Sprintf(format, args...))
}
