package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		verbose  bool
		expected log.Level
	}{
		{"default is warn", "", false, log.WarnLevel},
		{"explicit info", "info", false, log.InfoLevel},
		{"case insensitive", "DEBUG", false, log.DebugLevel},
		{"verbose forces debug", "error", true, log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(&bytes.Buffer{}, tt.level, tt.verbose)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, logger.GetLevel())
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "chatty", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log level "chatty"`)
}

func TestLogOperation(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", false)
	require.NoError(t, err)

	err = LogOperation(logger, "create", func() error { return nil }, "name", "proj")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "starting create")
	assert.Contains(t, buf.String(), "completed create")
	assert.Contains(t, buf.String(), "name=proj")

	expected := errors.New("boom")
	buf.Reset()
	err = LogOperation(logger, "delete", func() error { return expected })
	assert.Same(t, expected, err)
	assert.Contains(t, buf.String(), "failed delete")
}

func TestLogOperation_QuietAtWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "", false)
	require.NoError(t, err)

	require.NoError(t, LogOperation(logger, "create", func() error { return nil }))
	assert.Empty(t, buf.String())
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	require.NoError(t, LogOperation(logger, "noop", func() error { return nil }))
}
