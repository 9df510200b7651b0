package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Makeea/projclean/internal/clean"
	"github.com/Makeea/projclean/internal/config"
	"github.com/Makeea/projclean/internal/prompt"
	"github.com/Makeea/projclean/internal/ui"
)

var (
	// Root command flags
	flagPath          string
	flagDryRun        bool
	flagForce         bool
	flagVerbose       bool
	flagQuiet         bool
	flagLogFile       string
	flagOnlySystem    bool
	flagOnlyBuild     bool
	flagSkipGit       bool
	flagSkipArchives  bool
	flagSkipEmptyDirs bool
	flagMaxFileSizeMB int64

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"

	// exitCode is what Execute reports after a completed run: 1 when any
	// delete operation failed, 0 otherwise. The run itself never aborts on
	// delete errors.
	exitCode int
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "projclean [path]",
	Short: "Remove project junk files and build artifacts",
	Long: `projclean - Remove project junk files and build artifacts.

Scans a directory tree for OS junk files (Thumbs.db, .DS_Store, backup and
log files), build and cache directories (node_modules, __pycache__, dist),
compiled objects, archives, and empty directories, then deletes them
category by category.

Each category shows a preview and asks for confirmation with a 5-second
countdown. NOTE: the prompt defaults to YES - on timeout or any key other
than 'n' the category IS deleted. Use --dry-run to preview safely.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runClean,
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagPath, "path", ".", "Directory tree to clean")
	f.BoolVar(&flagDryRun, "dry-run", false, "Preview what would be deleted without deleting")
	f.BoolVar(&flagForce, "force", false, "Delete without prompting")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "Show skipped items and per-item deletions")
	f.BoolVarP(&flagQuiet, "quiet", "q", false, "Only show errors (log file still gets everything)")
	f.StringVar(&flagLogFile, "log-file", "", "Append a timestamped mirror of all output to this file")
	f.BoolVar(&flagOnlySystem, "only-system-files", false, "Only clean OS junk file categories")
	f.BoolVar(&flagOnlyBuild, "only-build-files", false, "Only clean build and cache directories")
	f.BoolVar(&flagSkipGit, "skip-git", false, "Do not untrack deleted patterns from the git index")
	f.BoolVar(&flagSkipArchives, "skip-archives", false, "Do not delete archive files")
	f.BoolVar(&flagSkipEmptyDirs, "skip-empty-dirs", false, "Do not delete empty directories")
	f.Int64Var(&flagMaxFileSizeMB, "max-file-size-mb", 0, "Never delete files larger than this many MB (0 = no limit)")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(versionCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	target := flagPath
	if len(args) == 1 {
		target = args[0]
	}

	cfg := &config.RunConfig{
		TargetRoot:       target,
		DryRun:           flagDryRun,
		Force:            flagForce,
		Verbose:          flagVerbose,
		Quiet:            flagQuiet,
		OnlySystemFiles:  flagOnlySystem,
		OnlyBuildFiles:   flagOnlyBuild,
		SkipGit:          flagSkipGit,
		SkipArchives:     flagSkipArchives,
		SkipEmptyDirs:    flagSkipEmptyDirs,
		MaxFileSizeBytes: flagMaxFileSizeMB * 1024 * 1024,
		LogFile:          flagLogFile,
		CaseInsensitive:  config.DefaultCaseInsensitive(),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := ui.NewReporter(ui.Options{
		Quiet:   cfg.Quiet,
		Verbose: cfg.Verbose,
		LogFile: cfg.LogFile,
	})
	defer out.Close()

	out.Info("Cleaning %s", cfg.TargetRoot)

	stats := clean.New(cfg, out, prompt.NewTimedPrompter()).Run()
	if stats.Errors > 0 {
		exitCode = 1
	}
	return nil
}
