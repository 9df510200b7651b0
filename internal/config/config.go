// Package config holds the immutable per-run configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// RunConfig is the immutable input for one cleanup invocation. It is built
// once by the CLI layer and passed by pointer through the engine; nothing
// mutates it after Validate.
type RunConfig struct {
	// TargetRoot is the directory tree to clean. Must exist and be a
	// directory; anything else is the run's only fatal error.
	TargetRoot string

	DryRun          bool
	Force           bool
	Verbose         bool
	Quiet           bool
	OnlySystemFiles bool
	OnlyBuildFiles  bool
	SkipGit         bool
	SkipArchives    bool
	SkipEmptyDirs   bool

	// MaxFileSizeBytes caps the size of files the executor will delete.
	// Zero means no limit. Files over the cap are skipped, not errors.
	MaxFileSizeBytes int64

	// LogFile, when set, receives a timestamped mirror of every emitted
	// line regardless of quiet/verbose.
	LogFile string

	// CaseInsensitive controls glob matching case folding. Defaults to the
	// host filesystem convention; overridable so tests are deterministic.
	CaseInsensitive bool
}

// DefaultCaseInsensitive reports the matching convention for the host OS:
// case-insensitive on Windows and macOS, case-sensitive elsewhere.
func DefaultCaseInsensitive() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

// Validate resolves TargetRoot to an absolute path and checks that it is an
// existing directory.
func (c *RunConfig) Validate() error {
	if c.TargetRoot == "" {
		c.TargetRoot = "."
	}
	abs, err := filepath.Abs(c.TargetRoot)
	if err != nil {
		return fmt.Errorf("resolve target path %q: %w", c.TargetRoot, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("target path %q does not exist: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("target path %q is not a directory", abs)
	}
	c.TargetRoot = abs
	return nil
}
