// Package testutil builds git fixtures for tests without a git binary.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func signature() *object.Signature {
	return &object.Signature{
		Name:  "Test User",
		Email: "test@example.com",
		When:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// InitWorkRepo initializes a non-bare repository at dir
func InitWorkRepo(t *testing.T, dir string) *gogit.Repository {
	t.Helper()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return repo
}

// CommitFile writes name into the worktree of repo and commits it
func CommitFile(t *testing.T, repo *gogit.Repository, dir, name, content string) plumbing.Hash {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(name)
	require.NoError(t, err)

	hash, err := wt.Commit("add "+name, &gogit.CommitOptions{Author: signature()})
	require.NoError(t, err)
	return hash
}

// CommitToBare appends n empty commits to the branch HEAD points at in the
// bare repository at path.
func CommitToBare(t *testing.T, path string, n int) {
	t.Helper()
	repo, err := gogit.PlainOpen(path)
	require.NoError(t, err)

	head, err := repo.Storer.Reference(plumbing.HEAD)
	require.NoError(t, err)
	branch := head.Target()

	var parent plumbing.Hash
	if ref, err := repo.Storer.Reference(branch); err == nil {
		parent = ref.Hash()
	}

	obj := repo.Storer.NewEncodedObject()
	require.NoError(t, (&object.Tree{}).Encode(obj))
	treeHash, err := repo.Storer.SetEncodedObject(obj)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		commit := &object.Commit{
			Author:    *signature(),
			Committer: *signature(),
			Message:   fmt.Sprintf("commit %d", i),
			TreeHash:  treeHash,
		}
		if !parent.IsZero() {
			commit.ParentHashes = []plumbing.Hash{parent}
		}

		obj := repo.Storer.NewEncodedObject()
		require.NoError(t, commit.Encode(obj))
		parent, err = repo.Storer.SetEncodedObject(obj)
		require.NoError(t, err)
	}

	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(branch, parent)))
}
