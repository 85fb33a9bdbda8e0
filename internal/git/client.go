// Package git wraps the go-git operations localhub needs: bare repository
// creation, opening working repositories, remote configuration and history
// traversal.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var (
	ErrRepositoryNotExists = gogit.ErrRepositoryNotExists
	ErrRemoteExists        = gogit.ErrRemoteExists
	ErrRemoteNotFound      = gogit.ErrRemoteNotFound
	ErrPushURLExists       = errors.New("push URL already configured")
)

// Client wraps an opened repository
type Client struct {
	path string
	repo *gogit.Repository
}

// Open opens the repository at exactly path, either a working directory
// holding .git or a bare repository.
func Open(path string) (*Client, error) {
	return open(path, false)
}

// Discover opens the repository containing path, searching parent
// directories for a .git directory the way git itself does.
func Discover(path string) (*Client, error) {
	return open(path, true)
}

func open(path string, detect bool) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: detect,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		path: path,
		repo: repo,
	}, nil
}

// Path returns the path the client was opened with
func (c *Client) Path() string {
	return c.path
}

// InitBareRepo creates a bare repository at the specified path
func InitBareRepo(path string) error {
	// Check if parent directory exists
	parentDir := filepath.Dir(path)
	if _, err := os.Stat(parentDir); os.IsNotExist(err) {
		return fmt.Errorf("parent directory does not exist: %s", parentDir)
	}

	if _, err := gogit.PlainInit(path, true); err != nil {
		return fmt.Errorf("failed to initialize bare repository: %w", err)
	}
	return nil
}

// IsBareRepository checks for the HEAD, objects and refs entries every bare
// repository carries.
func IsBareRepository(path string) bool {
	for _, entry := range []string{"HEAD", "objects", "refs"} {
		if _, err := os.Stat(filepath.Join(path, entry)); err != nil {
			return false
		}
	}
	return true
}

// CommitCount walks the history reachable from HEAD
func (c *Client) CommitCount() (int, error) {
	head, err := c.repo.Head()
	if err != nil {
		return 0, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	iter, err := c.repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return 0, fmt.Errorf("failed to read history: %w", err)
	}
	defer iter.Close()

	count := 0
	err = iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to walk history: %w", err)
	}

	return count, nil
}

// DirSize returns the total size in bytes of all files below path
func DirSize(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// sortRemotes orders remote configs by name
func sortRemotes(remotes []*config.RemoteConfig) {
	sort.Slice(remotes, func(i, j int) bool {
		return remotes[i].Name < remotes[j].Name
	})
}
