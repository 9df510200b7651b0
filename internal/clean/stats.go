package clean

import "time"

// Stats is the single mutable accumulator for a run. Only the executor
// (and the engine's untrack step) touch it, always on the one control-flow
// goroutine, so no locking is needed.
type Stats struct {
	// FilesDeleted counts directly deleted files plus files contained in
	// recursively deleted directories. FoldersDeleted counts each removed
	// directory including nested ones.
	FilesDeleted   int
	FoldersDeleted int

	// BytesFreed counts directly deleted files only. Files removed as part
	// of a recursive directory delete are not summed separately; that
	// matches the tool's historical accounting even though it under-reports.
	BytesFreed int64

	// PatternsUntracked counts category patterns that removed at least one
	// entry from the git index.
	PatternsUntracked int

	// Errors counts failed delete operations. Errors never abort the run;
	// they only turn the exit status non-zero.
	Errors int

	StartedAt time.Time
}

// NewStats captures the start timestamp.
func NewStats() *Stats {
	return &Stats{StartedAt: time.Now()}
}

// Elapsed is the wall-clock duration since the run started.
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}
