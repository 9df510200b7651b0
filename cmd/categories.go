package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makeea/projclean/internal/catalog"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List cleanup categories and their patterns",
	Long:  "Print every cleanup category in run order with its kind and patterns.",
	Run: func(cmd *cobra.Command, args []string) {
		cats := catalog.ForRun(catalog.Filter{
			OnlySystemFiles: flagOnlySystem,
			OnlyBuildFiles:  flagOnlyBuild,
			SkipArchives:    flagSkipArchives,
			SkipEmptyDirs:   flagSkipEmptyDirs,
		})
		for _, c := range cats {
			patterns := strings.Join(c.Patterns, ", ")
			if c.EmptyDirs {
				patterns = "(directories with no entries)"
			}
			fmt.Printf("%-24s %-9s %s\n", c.Name, c.Kind, patterns)
		}
	},
}

func init() {
	f := categoriesCmd.Flags()
	f.BoolVar(&flagOnlySystem, "only-system-files", false, "Only show OS junk file categories")
	f.BoolVar(&flagOnlyBuild, "only-build-files", false, "Only show build and cache directories")
	f.BoolVar(&flagSkipArchives, "skip-archives", false, "Hide archive categories")
	f.BoolVar(&flagSkipEmptyDirs, "skip-empty-dirs", false, "Hide the empty-directory category")
}
