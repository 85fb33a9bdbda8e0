// Package remote edits the remote configuration of a working repository so it
// points at hub members.
package remote

import (
	stderrors "errors"

	"github.com/charmbracelet/log"

	"github.com/lcgerke/localhub/internal/errors"
	"github.com/lcgerke/localhub/internal/git"
	"github.com/lcgerke/localhub/internal/logging"
)

// RemoteSummary describes a configured remote
type RemoteSummary struct {
	Name     string   `json:"name"`
	FetchURL string   `json:"fetch_url"`
	URLs     []string `json:"urls"`
	PushURLs []string `json:"push_urls"`
}

// Manager mutates the remotes of one working repository
type Manager struct {
	client *git.Client
	logger *log.Logger
}

// Open opens the working repository at exactly targetPath.
func Open(targetPath string, logger *log.Logger) (*Manager, error) {
	client, err := git.Open(targetPath)
	return newManager(targetPath, client, err, logger)
}

// Discover opens the repository containing targetPath, searching parent
// directories for .git.
func Discover(targetPath string, logger *log.Logger) (*Manager, error) {
	client, err := git.Discover(targetPath)
	return newManager(targetPath, client, err, logger)
}

func newManager(targetPath string, client *git.Client, err error, logger *log.Logger) (*Manager, error) {
	if err != nil {
		if stderrors.Is(err, git.ErrRepositoryNotExists) {
			return nil, errors.NotAGitRepository(targetPath, nil)
		}
		return nil, errors.Git("failed to open repository", err)
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &Manager{
		client: client,
		logger: logger.WithPrefix("remote"),
	}, nil
}

// Path returns the path the repository was opened from
func (m *Manager) Path() string {
	return m.client.Path()
}

// AddRemote creates remoteName with hubMemberPath as its URL
func (m *Manager) AddRemote(remoteName, hubMemberPath string) error {
	err := logging.LogOperation(m.logger, "add-remote", func() error {
		return m.client.AddRemote(remoteName, hubMemberPath)
	}, "remote", remoteName, "url", hubMemberPath)

	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, git.ErrRemoteExists):
		return errors.RemoteExists(remoteName)
	default:
		return errors.Git("failed to add remote", err)
	}
}

// AddPushURL adds hubMemberPath as an extra push URL of remoteName
func (m *Manager) AddPushURL(remoteName, hubMemberPath string) error {
	err := logging.LogOperation(m.logger, "add-push-url", func() error {
		return m.client.AddPushURL(remoteName, hubMemberPath)
	}, "remote", remoteName, "url", hubMemberPath)

	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, git.ErrRemoteNotFound):
		return errors.RemoteNotFound(remoteName)
	case stderrors.Is(err, git.ErrPushURLExists):
		return errors.PushURLExists(remoteName, hubMemberPath)
	default:
		return errors.Git("failed to add push URL", err)
	}
}

// List returns the configured remotes sorted by name
func (m *Manager) List() ([]RemoteSummary, error) {
	remotes, err := m.client.ListRemotes()
	if err != nil {
		return nil, errors.Git("failed to list remotes", err)
	}

	summaries := make([]RemoteSummary, 0, len(remotes))
	for _, r := range remotes {
		summaries = append(summaries, RemoteSummary{
			Name:     r.Name,
			FetchURL: r.FetchURL(),
			URLs:     r.URLs,
			PushURLs: r.PushURLs,
		})
	}
	return summaries, nil
}

// Remove deletes remoteName
func (m *Manager) Remove(remoteName string) error {
	err := logging.LogOperation(m.logger, "remove-remote", func() error {
		return m.client.RemoveRemote(remoteName)
	}, "remote", remoteName)

	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, git.ErrRemoteNotFound):
		return errors.RemoteNotFound(remoteName)
	default:
		return errors.Git("failed to remove remote", err)
	}
}
