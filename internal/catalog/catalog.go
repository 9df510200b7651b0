// Package catalog defines the static table of cleanup categories: named
// groups of file or directory patterns that the engine scans, confirms,
// and deletes one category at a time.
package catalog

// Kind says whether a category matches files or directories.
// A category never mixes the two.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Stage places a category in the fixed run order. Empty-directory detection
// must run last: earlier deletions can empty out directories that should
// then qualify in the same run.
type Stage int

const (
	StageJunkFiles Stage = iota
	StageDirectories
	StageCompiledFiles
	StageArchiveFiles
	StageEmptyDirs
)

func (s Stage) String() string {
	switch s {
	case StageJunkFiles:
		return "junk files"
	case StageDirectories:
		return "directories"
	case StageCompiledFiles:
		return "compiled files"
	case StageArchiveFiles:
		return "archives"
	case StageEmptyDirs:
		return "empty directories"
	}
	return "unknown"
}

// Group tags directory categories for --only-build-files filtering.
type Group string

const (
	GroupBuild  Group = "build"
	GroupCache  Group = "cache"
	GroupSystem Group = "system"
	GroupIDE    Group = "ide"
)

// Category is one named cleanup unit: a set of base-name patterns plus the
// metadata the engine needs to schedule and gate it.
type Category struct {
	Name     string
	Kind     Kind
	Stage    Stage
	Group    Group
	Patterns []string

	// EmptyDirs marks the computed empty-directory category, which matches
	// directories with zero entries instead of matching patterns.
	EmptyDirs bool
}

// Builtin returns the full category table in run order.
func Builtin() []Category {
	return []Category{
		{
			Name:  "Windows System Files",
			Kind:  KindFile,
			Stage: StageJunkFiles,
			Patterns: []string{
				"Thumbs.db", "ehthumbs.db", "ehthumbs_vista.db", "Desktop.ini",
				"*.lnk", "*.stackdump",
			},
		},
		{
			Name:  "macOS Files",
			Kind:  KindFile,
			Stage: StageJunkFiles,
			Patterns: []string{
				".DS_Store", "._*", ".Spotlight-V100", ".Trashes",
				".fseventsd", ".localized",
			},
		},
		{
			Name:     "Linux/WSL Files",
			Kind:     KindFile,
			Stage:    StageJunkFiles,
			Patterns: []string{"*~", ".nfs*"},
		},
		{
			Name:     "Zone Identifier Files",
			Kind:     KindFile,
			Stage:    StageJunkFiles,
			Patterns: []string{"*Zone.Identifier", "*.Zone.Identifier"},
		},
		{
			Name:  "Editor Backup Files",
			Kind:  KindFile,
			Stage: StageJunkFiles,
			Patterns: []string{
				"*.bak", "*.old", "*.orig", "*.swp", "*.swo", "*.tmp", "*.temp",
			},
		},
		{
			Name:  "Development Log Files",
			Kind:  KindFile,
			Stage: StageJunkFiles,
			Patterns: []string{
				"*.log", "npm-debug.log*", "yarn-debug.log*",
				"yarn-error.log*", "debug.log",
			},
		},
		{
			Name:  "Cache Files",
			Kind:  KindFile,
			Stage: StageJunkFiles,
			Patterns: []string{
				".eslintcache", ".sass-cache", "*.cache", ".nyc_output", ".coverage",
			},
		},
		{
			Name:  "Build Directories",
			Kind:  KindDirectory,
			Stage: StageDirectories,
			Group: GroupBuild,
			Patterns: []string{
				"node_modules", "__pycache__", ".pytest_cache", "target",
				"build", "dist", "bin", "obj", ".next", ".nuxt",
			},
		},
		{
			Name:  "Cache Directories",
			Kind:  KindDirectory,
			Stage: StageDirectories,
			Group: GroupCache,
			Patterns: []string{
				".cache", "cache", ".tmp", "tmp", "temp", ".sass-cache",
				".parcel-cache",
			},
		},
		{
			Name:  "System Directories",
			Kind:  KindDirectory,
			Stage: StageDirectories,
			Group: GroupSystem,
			Patterns: []string{
				".Trash-*", ".AppleDouble", ".LSOverride",
				"$RECYCLE.BIN", "System Volume Information",
			},
		},
		{
			Name:  "IDE Directories",
			Kind:  KindDirectory,
			Stage: StageDirectories,
			Group: GroupIDE,
			Patterns: []string{
				".vscode", ".idea", ".settings", ".metadata", ".vs",
				".venv", "venv", ".tox",
			},
		},
		{
			Name:  "Compiled Files",
			Kind:  KindFile,
			Stage: StageCompiledFiles,
			Patterns: []string{
				"*.pyc", "*.pyo", "*.class", "*.o", "*.obj", "*.exe",
				"*.dll", "*.so", "*.a",
			},
		},
		{
			Name:  "Archive Files",
			Kind:  KindFile,
			Stage: StageArchiveFiles,
			Patterns: []string{
				"*.zip", "*.rar", "*.7z", "*.tar", "*.gz", "*.bz2", "*.xz",
			},
		},
		{
			Name:      "Empty Directories",
			Kind:      KindDirectory,
			Stage:     StageEmptyDirs,
			EmptyDirs: true,
			Patterns:  []string{"*"},
		},
	}
}

// Filter holds the mode flags that narrow which categories run.
type Filter struct {
	OnlySystemFiles bool
	OnlyBuildFiles  bool
	SkipArchives    bool
	SkipEmptyDirs   bool
}

// ForRun returns the categories that apply under the given filter, in run
// order. Gating per stage:
//
//	junk files         — skipped under --only-build-files
//	directories        — skipped under --only-system-files; restricted to
//	                     build/cache groups under --only-build-files
//	compiled files     — skipped under --only-system-files
//	archives           — skipped under --only-system-files or --skip-archives
//	empty directories  — skipped under --skip-empty-dirs, always last
func ForRun(f Filter) []Category {
	var out []Category
	for _, c := range Builtin() {
		switch c.Stage {
		case StageJunkFiles:
			if f.OnlyBuildFiles {
				continue
			}
		case StageDirectories:
			if f.OnlySystemFiles {
				continue
			}
			if f.OnlyBuildFiles && c.Group != GroupBuild && c.Group != GroupCache {
				continue
			}
		case StageCompiledFiles:
			if f.OnlySystemFiles {
				continue
			}
		case StageArchiveFiles:
			if f.OnlySystemFiles || f.SkipArchives {
				continue
			}
		case StageEmptyDirs:
			if f.SkipEmptyDirs {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
