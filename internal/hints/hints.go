// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/TheRonzor/data101-s26-slides/internal/manifest"
)

// ForManifestNotFound returns hints for manifest not found errors.
// Suggests --manifest and creating a deck.yaml in the searched directory.
func ForManifestNotFound(dir string) string {
	hint := "use --manifest /path/to/deck.yaml"
	if dir != "" {
		hint += " or create " + filepath.Join(dir, manifest.Names[0])
	}
	return format(hint)
}

// ForUnknownEngine returns the accepted math engine spellings.
// Built from manifest.EngineAliases so the hint tracks the parser.
func ForUnknownEngine() string {
	return format("accepted engines: " + strings.Join(manifest.EngineAliases, ", "))
}

// ForMissingFooter returns hints for slides missing the auto-nav footer.
func ForMissingFooter() string {
	return format(`add <footer class="slide-nav" data-auto-nav></footer> before </body> in the slide`)
}

// ForMissingBody returns hints for slides missing the slide-body region.
func ForMissingBody() string {
	return format(`wrap the slide content in <main class="slide-body"> ... </main>`)
}

// ForSlideNotFound returns hints for slide files listed in the manifest
// but absent on disk.
func ForSlideNotFound() string {
	return format("slide paths resolve relative to the manifest directory; check slides[].file")
}

// ForShellNotFound returns hints for shell template not found errors.
func ForShellNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
