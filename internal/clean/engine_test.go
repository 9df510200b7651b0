package clean

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makeea/projclean/internal/config"
	"github.com/Makeea/projclean/internal/ui"
)

// fakePrompter stands in for the interactive countdown.
type fakePrompter struct {
	answer bool
	asked  int
}

func (f *fakePrompter) Confirm(string) bool {
	f.asked++
	return f.answer
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func testConfig(t *testing.T, root string) *config.RunConfig {
	t.Helper()
	cfg := &config.RunConfig{
		TargetRoot: root,
		Force:      true,
		SkipGit:    true,
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func runEngine(t *testing.T, cfg *config.RunConfig, p *fakePrompter) (*Stats, string) {
	t.Helper()
	var buf bytes.Buffer
	out := ui.NewReporter(ui.Options{Quiet: cfg.Quiet, Verbose: cfg.Verbose, Out: &buf})
	stats := New(cfg, out, p).Run()
	return stats, buf.String()
}

func TestRunForceDeletesJunkAndBuildDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "foo", "Thumbs.db"), 10)
	writeFile(t, filepath.Join(root, "foo", "node_modules", "lib.js"), 500)

	stats, _ := runEngine(t, testConfig(t, root), &fakePrompter{})

	// Thumbs.db directly, lib.js via the node_modules removal.
	assert.Equal(t, 2, stats.FilesDeleted)
	// node_modules, plus foo once it became empty.
	assert.GreaterOrEqual(t, stats.FoldersDeleted, 1)
	// Only directly deleted files reach BytesFreed.
	assert.Equal(t, int64(10), stats.BytesFreed)
	assert.Zero(t, stats.Errors)

	_, err := os.Stat(filepath.Join(root, "foo"))
	assert.True(t, os.IsNotExist(err), "foo emptied by earlier stages is removed by the empty-dir pass")
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Thumbs.db"), 10)
	writeFile(t, filepath.Join(root, "node_modules", "lib.js"), 500)

	cfg := testConfig(t, root)
	cfg.Force = false
	cfg.DryRun = true

	p := &fakePrompter{}
	stats, out := runEngine(t, cfg, p)

	assert.Zero(t, p.asked, "dry run never prompts")
	assert.Contains(t, out, "would delete")
	assert.Zero(t, stats.FilesDeleted)
	assert.Zero(t, stats.FoldersDeleted)
	assert.Zero(t, stats.BytesFreed)
	assert.Zero(t, stats.Errors)

	_, err := os.Stat(filepath.Join(root, "Thumbs.db"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "node_modules", "lib.js"))
	assert.NoError(t, err)
}

func TestRunIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Thumbs.db"), 10)
	writeFile(t, filepath.Join(root, "dist", "bundle.js"), 100)
	writeFile(t, filepath.Join(root, "keep.go"), 5)

	first, _ := runEngine(t, testConfig(t, root), &fakePrompter{})
	require.Positive(t, first.FilesDeleted)

	second, _ := runEngine(t, testConfig(t, root), &fakePrompter{})
	assert.Zero(t, second.FilesDeleted)
	assert.Zero(t, second.FoldersDeleted)
	assert.Zero(t, second.Errors)

	_, err := os.Stat(filepath.Join(root, "keep.go"))
	assert.NoError(t, err)
}

func TestRunMaxFileSizeSkips(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "huge.log"), 1024)

	cfg := testConfig(t, root)
	cfg.MaxFileSizeBytes = 1

	stats, _ := runEngine(t, cfg, &fakePrompter{})

	assert.Zero(t, stats.FilesDeleted)
	assert.Zero(t, stats.Errors, "a size-skip is not an error")
	_, err := os.Stat(filepath.Join(root, "huge.log"))
	assert.NoError(t, err)
}

func TestRunEmptyRootAllZeros(t *testing.T) {
	p := &fakePrompter{answer: true}
	cfg := testConfig(t, t.TempDir())
	cfg.Force = false

	stats, _ := runEngine(t, cfg, p)

	assert.Zero(t, p.asked, "no candidates, no prompts")
	assert.Zero(t, stats.FilesDeleted)
	assert.Zero(t, stats.FoldersDeleted)
	assert.Zero(t, stats.BytesFreed)
	assert.Zero(t, stats.Errors)
}

func TestRunEmptyDirPickupAfterDeletions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "logs", "debug.log"), 1)

	stats, _ := runEngine(t, testConfig(t, root), &fakePrompter{})

	assert.Equal(t, 1, stats.FilesDeleted)
	assert.Equal(t, 1, stats.FoldersDeleted,
		"logs/ was emptied by the file pass and caught by the final empty-dir pass")
}

func TestRunDeclinedPromptSkipsCategory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Thumbs.db"), 10)

	cfg := testConfig(t, root)
	cfg.Force = false

	p := &fakePrompter{answer: false}
	stats, _ := runEngine(t, cfg, p)

	assert.Positive(t, p.asked)
	assert.Zero(t, stats.FilesDeleted)
	_, err := os.Stat(filepath.Join(root, "Thumbs.db"))
	assert.NoError(t, err)
}

func TestRunOnlyBuildFilesLeavesJunk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Thumbs.db"), 10)
	writeFile(t, filepath.Join(root, "node_modules", "lib.js"), 500)
	writeFile(t, filepath.Join(root, ".idea", "workspace.xml"), 20)

	cfg := testConfig(t, root)
	cfg.OnlyBuildFiles = true

	runEngine(t, cfg, &fakePrompter{})

	_, err := os.Stat(filepath.Join(root, "Thumbs.db"))
	assert.NoError(t, err, "junk file categories do not run under --only-build-files")
	_, err = os.Stat(filepath.Join(root, "node_modules"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, ".idea"))
	assert.NoError(t, err, "IDE directories are outside the build/cache groups")
}

func TestRunOnlySystemFilesLeavesDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Thumbs.db"), 10)
	writeFile(t, filepath.Join(root, "node_modules", "lib.js"), 500)
	writeFile(t, filepath.Join(root, "app.pyc"), 5)

	cfg := testConfig(t, root)
	cfg.OnlySystemFiles = true

	runEngine(t, cfg, &fakePrompter{})

	_, err := os.Stat(filepath.Join(root, "Thumbs.db"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, "node_modules"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "app.pyc"))
	assert.NoError(t, err, "compiled files do not run under --only-system-files")
}
