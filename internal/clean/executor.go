package clean

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Makeea/projclean/internal/config"
	"github.com/Makeea/projclean/internal/scanner"
	"github.com/Makeea/projclean/internal/ui"
)

// Executor deletes approved candidates, or narrates them in dry-run mode.
// A failed delete is counted and reported but never stops the run.
type Executor struct {
	cfg   *config.RunConfig
	out   *ui.Reporter
	stats *Stats
}

// Execute processes one category's approved candidates. Each candidate is
// re-checked at delete time: it may have vanished since the scan, and a
// file may have grown past the size cap while the prompt was open.
func (e *Executor) Execute(items []scanner.Candidate) {
	deleted := 0

	for _, it := range items {
		info, err := os.Lstat(it.AbsPath)
		if err != nil {
			// Already gone, nothing to do.
			continue
		}
		if !it.IsDir && e.cfg.MaxFileSizeBytes > 0 && info.Size() > e.cfg.MaxFileSizeBytes {
			continue
		}

		if e.cfg.DryRun {
			e.out.Info("  would delete %s", it.DisplayPath)
			continue
		}

		var containedFiles, containedDirs int
		if it.IsDir {
			containedFiles, containedDirs = countContents(it.AbsPath)
			err = os.RemoveAll(it.AbsPath)
		} else {
			err = os.Remove(it.AbsPath)
		}
		if err != nil {
			e.stats.Errors++
			e.out.Error("  failed to delete %s: %v", it.DisplayPath, err)
			continue
		}

		deleted++
		if it.IsDir {
			// Contained files count toward FilesDeleted but their bytes do
			// not reach BytesFreed; see the note on Stats.BytesFreed.
			e.stats.FilesDeleted += containedFiles
			e.stats.FoldersDeleted += 1 + containedDirs
			e.out.Verbose("  deleted %s/", it.DisplayPath)
		} else {
			e.stats.FilesDeleted++
			e.stats.BytesFreed += info.Size()
			e.out.Verbose("  deleted %s", it.DisplayPath)
		}
	}

	if deleted > 0 {
		e.out.Success("  removed %d item(s)", deleted)
	}
}

// countContents tallies the files and subdirectories under dir, best
// effort. Unreadable subtrees are simply not counted.
func countContents(dir string) (files, dirs int) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == dir {
			return nil
		}
		if d.IsDir() {
			dirs++
		} else {
			files++
		}
		return nil
	})
	return files, dirs
}
