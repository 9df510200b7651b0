package clean

import (
	"fmt"

	"github.com/Makeea/projclean/internal/catalog"
	"github.com/Makeea/projclean/internal/config"
	"github.com/Makeea/projclean/internal/prompt"
	"github.com/Makeea/projclean/internal/scanner"
	"github.com/Makeea/projclean/internal/ui"
)

// Gatekeeper renders a category's candidates and decides whether the
// executor may delete them. The decision is atomic for the whole category.
type Gatekeeper struct {
	cfg      *config.RunConfig
	out      *ui.Reporter
	prompter prompt.Prompter
}

// Approve returns false immediately for an empty candidate list, with no
// output and no prompt. Otherwise it previews the candidates and decides:
// dry-run and force both proceed without asking; anything else goes through
// the timed prompt.
func (g *Gatekeeper) Approve(cat catalog.Category, items []scanner.Candidate) bool {
	if len(items) == 0 {
		return false
	}

	g.out.Header(cat.Name)
	for _, it := range items {
		if g.oversize(it) {
			g.out.Verbose("  skipping %s (%s, over size limit)",
				it.DisplayPath, ui.HumanSize(it.Size))
			continue
		}
		g.out.Item(it.DisplayPath, it.Size)
	}

	if g.cfg.DryRun || g.cfg.Force {
		return true
	}

	verb := "Delete"
	if cat.Kind == catalog.KindDirectory {
		verb = "Remove"
	}
	return g.prompter.Confirm(fmt.Sprintf("%s %d item(s)?", verb, len(items)))
}

// oversize reports whether a file candidate exceeds the configured size
// cap. Directories are never size-capped.
func (g *Gatekeeper) oversize(it scanner.Candidate) bool {
	return !it.IsDir && g.cfg.MaxFileSizeBytes > 0 && it.Size > g.cfg.MaxFileSizeBytes
}
