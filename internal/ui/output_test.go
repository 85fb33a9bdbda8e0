package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcgerke/localhub/internal/errors"
	"github.com/lcgerke/localhub/internal/hub"
)

func newBufferedOutput() (*Output, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewOutput(&stdout, &stderr), &stdout, &stderr
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatHuman, false},
		{"human", FormatHuman, false},
		{"json", FormatJSON, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutput_Human(t *testing.T) {
	out, stdout, stderr := newBufferedOutput()
	assert.False(t, out.colorEnabled, "buffers are not terminals")

	out.Success("Created repository 'proj'")
	out.Warning("careful")
	out.Info("plain")
	out.Error("failed")

	assert.Equal(t, "✓ Created repository 'proj'\n⚠ careful\nplain\n", stdout.String())
	assert.Equal(t, "✗ failed\n", stderr.String())
}

func TestOutput_HeaderAndSeparatorSkippedInJSON(t *testing.T) {
	out, stdout, _ := newBufferedOutput()
	out.SetFormat(FormatJSON)

	out.Header("Repositories")
	out.Separator()

	assert.Empty(t, stdout.String())
}

func TestOutput_JSONMessages(t *testing.T) {
	out, stdout, _ := newBufferedOutput()
	out.SetFormat(FormatJSON)

	out.Successf("Created %s", "proj")

	var msg map[string]string
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &msg))
	assert.Equal(t, "success", msg["status"])
	assert.Equal(t, "Created proj", msg["message"])
}

func TestOutput_ReportError(t *testing.T) {
	t.Run("human with hint", func(t *testing.T) {
		out, stdout, stderr := newBufferedOutput()
		out.ReportError(errors.RepositoryNotFound("proj"))

		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "✗ Repository 'proj' does not exist in hub")
		assert.Contains(t, stderr.String(), "Suggestion: Run 'localhub list'")
	})

	t.Run("human plain error", func(t *testing.T) {
		out, _, stderr := newBufferedOutput()
		out.ReportError(fmt.Errorf("boom"))

		assert.Equal(t, "✗ boom\n", stderr.String())
	})

	t.Run("json carries code", func(t *testing.T) {
		out, _, stderr := newBufferedOutput()
		out.SetFormat(FormatJSON)
		out.ReportError(fmt.Errorf("create: %w", errors.RepositoryExists("proj")))

		var payload map[string]string
		require.NoError(t, json.Unmarshal(stderr.Bytes(), &payload))
		assert.Equal(t, "error", payload["status"])
		assert.Equal(t, "hub", payload["type"])
		assert.Equal(t, "already_exists", payload["code"])
		assert.Contains(t, payload["hint"], "localhub info proj")
	})
}

func TestFormatters(t *testing.T) {
	n := 42
	assert.Equal(t, "42", FormatCommits(&n))
	assert.Equal(t, "N/A", FormatCommits(nil))

	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "23 kB", FormatSize(23000))
	assert.Equal(t, "0 B", FormatSize(-1))
}

func TestRepoTable(t *testing.T) {
	out, stdout, _ := newBufferedOutput()
	commits := 3
	modified := time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local)

	out.RepoTable([]hub.RepoSummary{
		{Name: "alpha.git", Size: 2048, Commits: &commits, Modified: modified},
		{Name: "beta.git", Size: 1000, Modified: modified},
	})

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "Commits")
	assert.Contains(t, lines[1], "alpha.git")
	assert.Contains(t, lines[1], "2.0 kB")
	assert.Contains(t, lines[1], "2024-05-01 12:30:00")
	assert.Contains(t, lines[2], "beta.git")
	assert.Contains(t, lines[2], "N/A")

	// Columns line up.
	assert.Equal(t, strings.Index(lines[1], "2.0 kB"), strings.Index(lines[2], "1.0 kB"))
}
