package remote

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcgerke/localhub/internal/errors"
	"github.com/lcgerke/localhub/internal/hub"
	"github.com/lcgerke/localhub/internal/testutil"
)

func newTarget(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.InitWorkRepo(t, dir)
	return dir
}

func openTarget(t *testing.T, dir string) *Manager {
	t.Helper()
	m, err := Open(dir, nil)
	require.NoError(t, err)
	return m
}

func TestOpen_NotAGitRepository(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(dir, nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotAGitRepository))
}

func TestDiscover_FromSubdirectory(t *testing.T) {
	dir := newTarget(t)
	sub := filepath.Join(dir, "src", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0755))

	m, err := Discover(sub, nil)
	require.NoError(t, err)
	require.NoError(t, m.AddRemote("local-hub", "/hub/proj.git"))

	// The remote lands in the enclosing repository's config.
	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	_, err = repo.Remote("local-hub")
	assert.NoError(t, err)
}

func TestOpen_ExactPath(t *testing.T) {
	dir := newTarget(t)
	sub := filepath.Join(dir, "src")
	require.NoError(t, os.Mkdir(sub, 0755))

	_, err := Open(sub, nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotAGitRepository))
}

func TestOpen_BrokenRepository(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("garbage\n"), 0644))

	_, err := Open(dir, nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeGit))
	assert.False(t, errors.HasCode(err, errors.CodeNotAGitRepository))
}

func TestAddRemote(t *testing.T) {
	m := openTarget(t, newTarget(t))

	require.NoError(t, m.AddRemote("local-hub", "/hub/proj.git"))

	remotes, err := m.List()
	require.NoError(t, err)
	require.Len(t, remotes, 1)
	assert.Equal(t, "local-hub", remotes[0].Name)
	assert.Equal(t, "/hub/proj.git", remotes[0].FetchURL)
	assert.Empty(t, remotes[0].PushURLs)
}

func TestAddRemote_AlreadyExists(t *testing.T) {
	m := openTarget(t, newTarget(t))
	require.NoError(t, m.AddRemote("local-hub", "/hub/a.git"))

	err := m.AddRemote("local-hub", "/hub/b.git")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeRemoteAlreadyExists))

	remotes, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, "/hub/a.git", remotes[0].FetchURL, "existing remote is unchanged")
}

func TestAddPushURL(t *testing.T) {
	m := openTarget(t, newTarget(t))
	require.NoError(t, m.AddRemote("origin", "git@example.com:me/proj.git"))

	require.NoError(t, m.AddPushURL("origin", "/hub/proj.git"))

	remotes, err := m.List()
	require.NoError(t, err)
	require.Len(t, remotes, 1)
	assert.Equal(t, "git@example.com:me/proj.git", remotes[0].FetchURL)
	assert.Equal(t, []string{"git@example.com:me/proj.git", "/hub/proj.git"}, remotes[0].PushURLs)

	err = m.AddPushURL("origin", "/hub/proj.git")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodePushURLAlreadyExists))
}

func TestAddPushURL_KeepsSingleFetchURL(t *testing.T) {
	dir := newTarget(t)
	m := openTarget(t, dir)
	require.NoError(t, m.AddRemote("origin", "git@example.com:me/proj.git"))
	require.NoError(t, m.AddPushURL("origin", "/hub/proj.git"))
	require.NoError(t, m.AddPushURL("origin", "/mnt/usb/proj.git"))
	require.NoError(t, m.AddRemote("local-hub", "/hub/proj.git"))

	remotes, err := m.List()
	require.NoError(t, err)
	require.Len(t, remotes, 2)
	origin := remotes[1]
	assert.Equal(t, "origin", origin.Name)
	assert.Equal(t, []string{"git@example.com:me/proj.git"}, origin.URLs)
	assert.Equal(t, []string{"git@example.com:me/proj.git", "/hub/proj.git", "/mnt/usb/proj.git"}, origin.PushURLs)

	// git itself sees one fetch URL.
	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	cfg, err := repo.Config()
	require.NoError(t, err)
	sub := cfg.Raw.Section("remote").Subsection("origin")
	assert.Equal(t, []string{"git@example.com:me/proj.git"}, sub.Options.GetAll("url"))
	assert.Len(t, sub.Options.GetAll("pushurl"), 3)
}

func TestAddPushURL_RemoteNotFound(t *testing.T) {
	m := openTarget(t, newTarget(t))

	err := m.AddPushURL("origin", "/hub/proj.git")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeRemoteNotFound))
}

func TestRemove(t *testing.T) {
	m := openTarget(t, newTarget(t))
	require.NoError(t, m.AddRemote("local-hub", "/hub/proj.git"))
	require.NoError(t, m.AddRemote("origin", "git@example.com:me/proj.git"))

	require.NoError(t, m.Remove("local-hub"))

	remotes, err := m.List()
	require.NoError(t, err)
	require.Len(t, remotes, 1)
	assert.Equal(t, "origin", remotes[0].Name)

	err = m.Remove("local-hub")
	assert.True(t, errors.HasCode(err, errors.CodeRemoteNotFound))
}

func TestList_Sorted(t *testing.T) {
	m := openTarget(t, newTarget(t))
	for _, name := range []string{"zeta", "alpha", "origin"} {
		require.NoError(t, m.AddRemote(name, "/hub/"+name+".git"))
	}

	remotes, err := m.List()
	require.NoError(t, err)
	require.Len(t, remotes, 3)
	assert.Equal(t, "alpha", remotes[0].Name)
	assert.Equal(t, "origin", remotes[1].Name)
	assert.Equal(t, "zeta", remotes[2].Name)
}

func TestHubMemberAsRemote(t *testing.T) {
	h := hub.New(filepath.Join(t.TempDir(), "hub"), nil)
	require.NoError(t, h.Init())
	created, err := h.Create("proj")
	require.NoError(t, err)

	dir := newTarget(t)
	m := openTarget(t, dir)
	require.NoError(t, m.AddRemote("local-hub", created.Path))

	remotes, err := m.List()
	require.NoError(t, err)
	require.Len(t, remotes, 1)
	assert.Equal(t, created.Path, remotes[0].FetchURL)
	assert.True(t, filepath.IsAbs(remotes[0].FetchURL))

	// The URL points at a repository go-git can open.
	_, err = gogit.PlainOpen(remotes[0].FetchURL)
	assert.NoError(t, err)
}
