// Package gitutil removes cleaned-up patterns from a repository's tracked
// index, the in-process equivalent of `git rm -r --cached <pattern>`. Files
// stay on disk; deletion is the executor's job, not this package's.
package gitutil

import (
	"path"

	"github.com/go-git/go-git/v5"

	"github.com/Makeea/projclean/internal/scanner"
)

// Untracker operates on the repository containing the target root.
type Untracker struct {
	repo            *git.Repository
	caseInsensitive bool
}

// Open locates a repository at or above root. A missing repository is not
// an error: callers get nil and skip untracking silently.
func Open(root string, caseInsensitive bool) *Untracker {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}
	return &Untracker{repo: repo, caseInsensitive: caseInsensitive}
}

// UntrackPattern drops every index entry whose base name matches the
// pattern and returns how many entries were removed. All failures are
// swallowed: no repo state change happens on error and the run goes on.
func (u *Untracker) UntrackPattern(pattern string) int {
	if u == nil || u.repo == nil {
		return 0
	}

	idx, err := u.repo.Storer.Index()
	if err != nil {
		return 0
	}

	kept := idx.Entries[:0]
	removed := 0
	for _, entry := range idx.Entries {
		if scanner.MatchName(path.Base(entry.Name), pattern, u.caseInsensitive) {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	if removed == 0 {
		return 0
	}

	idx.Entries = kept
	if err := u.repo.Storer.SetIndex(idx); err != nil {
		return 0
	}
	return removed
}

// UntrackPatterns untracks each pattern in turn and returns the number of
// patterns that removed at least one entry.
func (u *Untracker) UntrackPatterns(patterns []string) int {
	succeeded := 0
	for _, p := range patterns {
		if u.UntrackPattern(p) > 0 {
			succeeded++
		}
	}
	return succeeded
}
