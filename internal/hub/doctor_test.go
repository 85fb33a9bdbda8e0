package hub

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCheck(r *Report, name string) *CheckResult {
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestDoctor_MissingHub(t *testing.T) {
	h := New(filepath.Join(t.TempDir(), "missing"), nil)

	report, err := h.Doctor()
	require.NoError(t, err)
	assert.False(t, report.HasErrors())
	assert.Equal(t, 1, report.Warnings)
	assert.Equal(t, StatusWarning, findCheck(report, "hub_directory").Status)
}

func TestDoctor_HubIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "hub")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

	report, err := New(root, nil).Doctor()
	require.NoError(t, err)
	assert.True(t, report.HasErrors())
}

func TestDoctor_EmptyHub(t *testing.T) {
	h := newTestHub(t)

	report, err := h.Doctor()
	require.NoError(t, err)
	assert.Equal(t, StatusOK, findCheck(report, "hub_directory").Status)
	assert.Equal(t, StatusWarning, findCheck(report, "repositories").Status)
	assert.False(t, report.HasErrors())
}

func TestDoctor_Members(t *testing.T) {
	h := newTestHub(t)
	_, err := h.Create("good")
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(h.Root(), "broken.git"), 0755))

	report, err := h.Doctor()
	require.NoError(t, err)

	assert.Equal(t, StatusOK, findCheck(report, "good.git").Status)
	broken := findCheck(report, "broken.git")
	require.NotNil(t, broken)
	assert.Equal(t, StatusError, broken.Status)
	assert.True(t, report.HasErrors())
	assert.Equal(t, 1, report.Errors)
	assert.Equal(t, h.Root(), report.Root)
}
