package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadShell loads a page shell by name using the default embedded loader.
// The name should not include the .tmpl extension or path components.
// Returns ErrShellNotFound if the shell does not exist.
// Returns ErrInvalidShellName if the name contains path separators or traversal.
func LoadShell(name string) (string, error) {
	return defaultLoader.LoadShell(name)
}
