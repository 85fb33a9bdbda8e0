package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rodaine/table"

	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/hub"
)

var boldStyle = lipgloss.NewStyle().Bold(true)

// NewTable creates a table writing to w. bold styles the first column.
func NewTable(w io.Writer, bold bool, headers ...interface{}) table.Table {
	tbl := table.New(headers...).WithWriter(w)

	if bold {
		tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
			return boldStyle.Render(fmt.Sprintf(format, vals...))
		})
	}
	tbl.WithPadding(2)
	// Column widths must ignore ANSI codes.
	tbl.WithWidthFunc(lipgloss.Width)

	return tbl
}

// RepoTable prints the detailed listing of hub members
func (o *Output) RepoTable(repos []hub.RepoSummary) {
	tbl := NewTable(o.writer, o.colorEnabled, "Name", "Size", "Commits", "Modified")
	for _, r := range repos {
		tbl.AddRow(r.Name, FormatSize(r.Size), FormatCommits(r.Commits), r.Modified.Format(constants.TimeFormat))
	}
	tbl.Print()
}

// FormatSize renders a byte count in SI units, e.g. "23 kB"
func FormatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}

// FormatCommits renders a commit count, or N/A when unknown
func FormatCommits(commits *int) string {
	if commits == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *commits)
}
