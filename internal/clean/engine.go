// Package clean runs the cleanup state machine: for each category in run
// order, scan, confirm, delete, then report. Categories are independent of
// one another except that empty-directory detection runs last, so it can
// pick up directories emptied by this run's own deletions.
package clean

import (
	"time"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/Makeea/projclean/internal/catalog"
	"github.com/Makeea/projclean/internal/config"
	"github.com/Makeea/projclean/internal/gitutil"
	"github.com/Makeea/projclean/internal/prompt"
	"github.com/Makeea/projclean/internal/scanner"
	"github.com/Makeea/projclean/internal/ui"
)

// Engine owns one run. Everything is strictly sequential: a category's
// scan, prompt, and deletion finish before the next category starts, since
// deletions mutate the tree later scans walk.
type Engine struct {
	cfg      *config.RunConfig
	out      *ui.Reporter
	prompter prompt.Prompter
	scan     *scanner.Scanner
	stats    *Stats
}

// New builds an Engine. The prompter is pluggable so tests can substitute
// canned answers for the interactive countdown.
func New(cfg *config.RunConfig, out *ui.Reporter, prompter prompt.Prompter) *Engine {
	return &Engine{
		cfg:      cfg,
		out:      out,
		prompter: prompter,
		scan:     scanner.New(cfg.TargetRoot, cfg.CaseInsensitive),
		stats:    NewStats(),
	}
}

// Run executes every applicable category and returns the run statistics.
// The caller maps Stats.Errors to the process exit status.
func (e *Engine) Run() *Stats {
	gate := &Gatekeeper{cfg: e.cfg, out: e.out, prompter: e.prompter}
	exec := &Executor{cfg: e.cfg, out: e.out, stats: e.stats}

	var untracker *gitutil.Untracker
	if !e.cfg.SkipGit && !e.cfg.DryRun {
		untracker = gitutil.Open(e.cfg.TargetRoot, e.cfg.CaseInsensitive)
	}

	if e.cfg.DryRun {
		e.out.Info("Dry run: nothing will be deleted")
	}

	cats := catalog.ForRun(catalog.Filter{
		OnlySystemFiles: e.cfg.OnlySystemFiles,
		OnlyBuildFiles:  e.cfg.OnlyBuildFiles,
		SkipArchives:    e.cfg.SkipArchives,
		SkipEmptyDirs:   e.cfg.SkipEmptyDirs,
	})

	for _, cat := range cats {
		items := e.scan.Scan(cat)
		for _, w := range e.scan.DrainWarnings() {
			e.out.Verbose("  %s", w)
		}

		if !gate.Approve(cat, items) {
			continue
		}
		exec.Execute(items)

		if untracker != nil && cat.Kind == catalog.KindFile {
			e.stats.PatternsUntracked += untracker.UntrackPatterns(cat.Patterns)
		}
	}

	e.summary()
	return e.stats
}

func (e *Engine) summary() {
	s := e.stats
	e.out.Info("")
	e.out.Info("Files deleted:   %d", s.FilesDeleted)
	e.out.Info("Folders deleted: %d", s.FoldersDeleted)
	e.out.Info("Space freed:     %s", ui.HumanSize(s.BytesFreed))
	if s.PatternsUntracked > 0 {
		e.out.Info("Git patterns untracked: %d", s.PatternsUntracked)
	}
	if s.Errors > 0 {
		e.out.Error("Errors: %d", s.Errors)
	}
	if usage, err := disk.Usage(e.cfg.TargetRoot); err == nil {
		e.out.Info("Free on volume:  %s", ui.HumanSize(int64(usage.Free)))
	}
	e.out.Info("Elapsed: %s", s.Elapsed().Round(10*time.Millisecond))
}
