package gitutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with the given files staged in the index.
func initRepo(t *testing.T, files ...string) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
		_, err = wt.Add(f)
		require.NoError(t, err)
	}
	return dir, repo
}

func indexNames(t *testing.T, repo *git.Repository) []string {
	t.Helper()
	idx, err := repo.Storer.Index()
	require.NoError(t, err)
	var names []string
	for _, e := range idx.Entries {
		names = append(names, e.Name)
	}
	return names
}

func TestOpenMissingRepoIsSilent(t *testing.T) {
	assert.Nil(t, Open(t.TempDir(), false))
}

func TestUntrackPatternRemovesMatchingEntries(t *testing.T) {
	dir, repo := initRepo(t, "debug.log", "src/app.log", "src/main.go")

	u := Open(dir, false)
	require.NotNil(t, u)

	removed := u.UntrackPattern("*.log")
	assert.Equal(t, 2, removed, "matches anywhere in the tree, by base name")

	names := indexNames(t, repo)
	assert.Equal(t, []string{"src/main.go"}, names)

	// Files stay on disk: untracking is not deletion.
	_, err := os.Stat(filepath.Join(dir, "debug.log"))
	assert.NoError(t, err)
}

func TestUntrackPatternNoMatches(t *testing.T) {
	dir, repo := initRepo(t, "src/main.go")

	u := Open(dir, false)
	assert.Zero(t, u.UntrackPattern("*.zip"))
	assert.Len(t, indexNames(t, repo), 1)
}

func TestUntrackPatternsCountsPatternsNotEntries(t *testing.T) {
	dir, _ := initRepo(t, "a.log", "b.log", "old.bak")

	u := Open(dir, false)
	got := u.UntrackPatterns([]string{"*.log", "*.bak", "*.zip"})

	// Two patterns untracked something; *.zip matched nothing.
	assert.Equal(t, 2, got)
}

func TestUntrackFromSubdirectoryDetectsDotGit(t *testing.T) {
	dir, repo := initRepo(t, "sub/notes.tmp")

	u := Open(filepath.Join(dir, "sub"), false)
	require.NotNil(t, u)
	assert.Equal(t, 1, u.UntrackPattern("*.tmp"))
	assert.Empty(t, indexNames(t, repo))
}

func TestNilUntrackerIsSafe(t *testing.T) {
	var u *Untracker
	assert.Zero(t, u.UntrackPattern("*.log"))
}
