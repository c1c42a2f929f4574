package assets

// Shell names known to the build. A shell is the html/template skeleton of
// one generated page.
const (
	// ShellIndex is the deck index page (table of contents).
	ShellIndex = "index"
	// ShellPrint is the single-page printable deck.
	ShellPrint = "print"
)

// ShellLoader defines the contract for loading page shells.
// Implementations may load from embedded assets, a filesystem directory,
// or anything else that can hand back template text by name.
type ShellLoader interface {
	// LoadShell loads a page shell by name (without the .tmpl extension).
	// Returns ErrShellNotFound if the shell doesn't exist.
	// Returns ErrInvalidShellName if the name contains invalid characters.
	LoadShell(name string) (string, error)
}
