package hub

import (
	"fmt"
	"os"

	"github.com/lcgerke/localhub/internal/errors"
	"github.com/lcgerke/localhub/internal/git"
	"github.com/lcgerke/localhub/internal/paths"
)

// Check statuses
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusError   = "error"
)

// CheckResult is the outcome of one diagnostic check
type CheckResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Report collects diagnostic results for a hub
type Report struct {
	Root     string         `json:"root"`
	Checks   []*CheckResult `json:"checks"`
	Warnings int            `json:"warnings"`
	Errors   int            `json:"errors"`
}

func (r *Report) add(name, status, message string) {
	r.Checks = append(r.Checks, &CheckResult{
		Name:    name,
		Status:  status,
		Message: message,
	})

	switch status {
	case StatusWarning:
		r.Warnings++
	case StatusError:
		r.Errors++
	}
}

// HasErrors reports whether any check failed
func (r *Report) HasErrors() bool {
	return r.Errors > 0
}

// Doctor checks that the hub directory exists and that every member is a bare
// repository go-git can open.
func (h *Hub) Doctor() (*Report, error) {
	report := &Report{Root: h.root}

	info, err := os.Stat(h.root)
	switch {
	case os.IsNotExist(err):
		report.add("hub_directory", StatusWarning, "Hub directory does not exist; run 'localhub init'")
		return report, nil
	case err != nil:
		return nil, errors.IO("failed to stat hub directory", err)
	case !info.IsDir():
		report.add("hub_directory", StatusError, fmt.Sprintf("%s is not a directory", h.root))
		return report, nil
	}
	report.add("hub_directory", StatusOK, "Hub directory exists")

	names, err := h.memberNames()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		report.add("repositories", StatusWarning, "No repositories in hub")
		return report, nil
	}

	for _, name := range names {
		path := paths.MemberPath(h.root, name)
		if !git.IsBareRepository(path) {
			report.add(name, StatusError, "Not a bare repository (missing HEAD, objects or refs)")
			continue
		}
		if _, err := git.Open(path); err != nil {
			report.add(name, StatusError, fmt.Sprintf("Cannot open repository: %v", err))
			continue
		}
		report.add(name, StatusOK, "Bare repository")
	}

	return report, nil
}
