// Package hub manages the directory of bare backup repositories. Membership is
// derived from the directory listing on every call; there is no index file.
package hub

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/errors"
	"github.com/lcgerke/localhub/internal/git"
	"github.com/lcgerke/localhub/internal/logging"
	"github.com/lcgerke/localhub/internal/paths"
)

// RepoSummary describes one hub member
type RepoSummary struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Size     int64     `json:"size,omitempty"`
	Commits  *int      `json:"commits,omitempty"`
	Modified time.Time `json:"modified,omitzero"`
	Detailed bool      `json:"-"`
}

// DisplayName is the member name without the bare suffix
func (r RepoSummary) DisplayName() string {
	return paths.StripSuffix(r.Name)
}

// ConfirmFunc is asked before a member is deleted. Returning false cancels.
type ConfirmFunc func(summary RepoSummary) (bool, error)

// Hub is a directory of bare repositories
type Hub struct {
	root   string
	logger *log.Logger
}

// New creates a Hub rooted at root. A nil logger discards output.
func New(root string, logger *log.Logger) *Hub {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Hub{
		root:   root,
		logger: logger.WithPrefix("hub"),
	}
}

// Root returns the hub directory
func (h *Hub) Root() string {
	return h.root
}

// Init creates the hub directory if it does not exist
func (h *Hub) Init() error {
	return logging.LogOperation(h.logger, "init", func() error {
		if err := os.MkdirAll(h.root, 0755); err != nil {
			return errors.IO("failed to create hub directory", err)
		}
		return nil
	}, "root", h.root)
}

// Create initializes a new bare repository called name
func (h *Hub) Create(name string) (RepoSummary, error) {
	if err := Validate(name); err != nil {
		return RepoSummary{}, err
	}

	path := paths.MemberPath(h.root, name)
	if _, err := os.Lstat(path); err == nil {
		return RepoSummary{}, errors.RepositoryExists(name)
	} else if !os.IsNotExist(err) {
		return RepoSummary{}, errors.IO("failed to check repository path", err)
	}

	err := logging.LogOperation(h.logger, "create", func() error {
		return git.InitBareRepo(path)
	}, "path", path)
	if err != nil {
		return RepoSummary{}, errors.Git("failed to initialize bare repository", err)
	}

	return RepoSummary{
		Name: paths.MemberName(name),
		Path: path,
	}, nil
}

// List enumerates hub members sorted by name. detailed adds size, commit
// count and modification time; members whose details cannot be read are
// skipped. A missing hub directory has no members.
func (h *Hub) List(detailed bool) ([]RepoSummary, error) {
	names, err := h.memberNames()
	if err != nil {
		return nil, err
	}

	repos := make([]RepoSummary, 0, len(names))
	for _, name := range names {
		path := paths.MemberPath(h.root, name)
		if !detailed {
			repos = append(repos, RepoSummary{Name: name, Path: path})
			continue
		}

		summary, err := h.describe(name, path)
		if err != nil {
			h.logger.Warn("skipping unreadable repository", "name", name, "err", err)
			continue
		}
		repos = append(repos, summary)
	}

	return repos, nil
}

// Search returns members whose name, without the bare suffix, contains
// pattern case-insensitively.
func (h *Hub) Search(pattern string) ([]RepoSummary, error) {
	all, err := h.List(false)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(pattern)
	matches := make([]RepoSummary, 0, len(all))
	for _, repo := range all {
		if strings.Contains(strings.ToLower(repo.DisplayName()), needle) {
			matches = append(matches, repo)
		}
	}
	return matches, nil
}

// Info returns the detailed summary of a member
func (h *Hub) Info(name string) (RepoSummary, error) {
	if err := Validate(name); err != nil {
		return RepoSummary{}, err
	}

	path, err := h.Path(name)
	if err != nil {
		return RepoSummary{}, err
	}
	return h.describe(paths.MemberName(name), path)
}

// Delete removes a member. Unless force is set, confirm is called with the
// member's summary first and nothing is removed unless it returns true. The
// returned bool reports whether the member was removed.
func (h *Hub) Delete(name string, force bool, confirm ConfirmFunc) (bool, error) {
	if err := Validate(name); err != nil {
		return false, err
	}

	path, err := h.Path(name)
	if err != nil {
		return false, err
	}

	if !git.IsBareRepository(path) {
		return false, errors.InvalidRepository(path)
	}

	if !force {
		if confirm == nil {
			return false, nil
		}
		summary, err := h.describe(paths.MemberName(name), path)
		if err != nil {
			return false, err
		}
		ok, err := confirm(summary)
		if err != nil {
			return false, err
		}
		if !ok {
			h.logger.Debug("deletion cancelled", "name", name)
			return false, nil
		}
	}

	err = logging.LogOperation(h.logger, "delete", func() error {
		return os.RemoveAll(path)
	}, "path", path)
	if err != nil {
		return false, errors.IO("failed to delete repository", err)
	}
	return true, nil
}

// Path returns the absolute path of an existing member
func (h *Hub) Path(name string) (string, error) {
	path := paths.MemberPath(h.root, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.RepositoryNotFound(name)
		}
		return "", errors.IO("failed to stat repository", err)
	}
	return path, nil
}

// memberNames lists directory children carrying the bare suffix
func (h *Hub) memberNames() ([]string, error) {
	entries, err := os.ReadDir(h.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.IO("failed to read hub directory", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), constants.BareSuffix) {
			continue
		}
		info, err := os.Stat(paths.MemberPath(h.root, entry.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// describe gathers size, commit count and modification time
func (h *Hub) describe(name, path string) (RepoSummary, error) {
	info, err := os.Stat(path)
	if err != nil {
		return RepoSummary{}, errors.IO("failed to stat repository", err)
	}

	size, err := git.DirSize(path)
	if err != nil {
		return RepoSummary{}, errors.IO("failed to compute repository size", err)
	}

	return RepoSummary{
		Name:     name,
		Path:     path,
		Size:     size,
		Commits:  h.commitCount(path),
		Modified: info.ModTime(),
		Detailed: true,
	}, nil
}

// commitCount is nil when HEAD cannot be resolved, e.g. in an empty repository
func (h *Hub) commitCount(path string) *int {
	client, err := git.Open(path)
	if err != nil {
		h.logger.Debug("cannot open repository", "path", path, "err", err)
		return nil
	}
	count, err := client.CommitCount()
	if err != nil {
		h.logger.Debug("cannot count commits", "path", path, "err", err)
		return nil
	}
	return &count
}
