// Package paths resolves the hub root, hub member paths and target repository paths.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/errors"
)

// Swapped in tests.
var (
	userHomeDir = os.UserHomeDir
	getwd       = os.Getwd
)

// HubRoot returns the absolute hub root. An empty override selects
// ~/.local-git-hub.
func HubRoot(override string) (string, error) {
	if override != "" {
		expanded, err := expandHome(override)
		if err != nil {
			return "", err
		}
		return absolute(expanded)
	}

	home, err := userHomeDir()
	if err != nil || home == "" {
		return "", errors.PathResolution(err)
	}
	return absolute(filepath.Join(home, constants.DefaultHubDir))
}

// Target returns the absolute path of the working repository to edit,
// defaulting to the current directory.
func Target(override string) (string, error) {
	if override != "" {
		expanded, err := expandHome(override)
		if err != nil {
			return "", err
		}
		return absolute(expanded)
	}

	wd, err := getwd()
	if err != nil {
		return "", errors.Wrap(errors.ErrorTypePath, errors.CodePathResolution, "failed to get current directory", err)
	}
	return wd, nil
}

// MemberName returns the on-disk directory name for a repository name.
// Names already carrying the bare suffix are used as-is.
func MemberName(name string) string {
	if strings.HasSuffix(name, constants.BareSuffix) {
		return name
	}
	return name + constants.BareSuffix
}

// StripSuffix returns the repository name for a member directory name.
func StripSuffix(dirName string) string {
	return strings.TrimSuffix(dirName, constants.BareSuffix)
}

// MemberPath returns the absolute path of the hub member called name.
func MemberPath(hubRoot, name string) string {
	return filepath.Join(hubRoot, MemberName(name))
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := userHomeDir()
	if err != nil || home == "" {
		return "", errors.PathResolution(err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

func absolute(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrap(errors.ErrorTypePath, errors.CodePathResolution, "failed to resolve absolute path", err)
	}
	return abs, nil
}
