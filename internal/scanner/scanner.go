// Package scanner walks a target tree and collects the filesystem entries
// matching a category's patterns. Scans are strictly sequential: deletions
// mutate the same tree, so no traversal runs concurrently with anything.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Makeea/projclean/internal/catalog"
)

// Candidate is one filesystem entry discovered during a scan. Candidates
// live only for the owning category's confirm/delete pass.
type Candidate struct {
	// AbsPath is the absolute path used for deletion.
	AbsPath string

	// DisplayPath is root-relative with forward slashes, for output only.
	DisplayPath string

	// Size is the file length, or for directories the best-effort recursive
	// sum of contained file sizes (advisory, preview only).
	Size int64

	IsDir bool
}

// Scanner scans one target root. Scan-level errors (permission denied,
// entries vanishing mid-walk) are swallowed and recorded as warnings; they
// never abort a scan and never count as run errors.
type Scanner struct {
	root            string
	caseInsensitive bool
	warnings        []string
}

// New creates a Scanner for the given absolute root.
func New(root string, caseInsensitive bool) *Scanner {
	return &Scanner{root: root, caseInsensitive: caseInsensitive}
}

// Scan returns the candidates matching the category, deduplicated by
// absolute path. Matched directories are not descended into: everything
// under them goes away with the recursive delete anyway.
func (s *Scanner) Scan(cat catalog.Category) []Candidate {
	if cat.EmptyDirs {
		return s.scanEmptyDirs()
	}

	seen := make(map[string]bool)
	var out []Candidate

	_ = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.addWarning("cannot read " + path + ": " + err.Error())
			return nil
		}
		if path == s.root {
			return nil
		}

		name := d.Name()
		if cat.Kind == catalog.KindDirectory {
			if !d.IsDir() || !MatchAny(name, cat.Patterns, s.caseInsensitive) {
				return nil
			}
			if !seen[path] {
				seen[path] = true
				out = append(out, Candidate{
					AbsPath:     path,
					DisplayPath: s.displayPath(path),
					Size:        s.dirSize(path),
					IsDir:       true,
				})
			}
			return filepath.SkipDir
		}

		if d.IsDir() || !MatchAny(name, cat.Patterns, s.caseInsensitive) {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			s.addWarning("cannot stat " + path + ": " + infoErr.Error())
			return nil
		}
		if !seen[path] {
			seen[path] = true
			out = append(out, Candidate{
				AbsPath:     path,
				DisplayPath: s.displayPath(path),
				Size:        info.Size(),
			})
		}
		return nil
	})

	return out
}

// scanEmptyDirs finds directories with zero entries, hidden included. The
// root itself never qualifies.
func (s *Scanner) scanEmptyDirs() []Candidate {
	var out []Candidate

	_ = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.addWarning("cannot read " + path + ": " + err.Error())
			return nil
		}
		if path == s.root || !d.IsDir() {
			return nil
		}
		entries, readErr := os.ReadDir(path)
		if readErr != nil {
			s.addWarning("cannot read " + path + ": " + readErr.Error())
			return filepath.SkipDir
		}
		if len(entries) == 0 {
			out = append(out, Candidate{
				AbsPath:     path,
				DisplayPath: s.displayPath(path),
				IsDir:       true,
			})
			return filepath.SkipDir
		}
		return nil
	})

	return out
}

// dirSize sums contained file sizes recursively. Unreadable subtrees
// contribute zero; the result is display data, never statistics.
func (s *Scanner) dirSize(dir string) int64 {
	var total int64
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, infoErr := d.Info(); infoErr == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}

func (s *Scanner) displayPath(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func (s *Scanner) addWarning(msg string) {
	if len(s.warnings) < 500 {
		s.warnings = append(s.warnings, msg)
	}
}

// DrainWarnings returns the warnings accumulated since the last drain.
// The engine surfaces them only in verbose mode.
func (s *Scanner) DrainWarnings() []string {
	w := s.warnings
	s.warnings = nil
	return w
}
