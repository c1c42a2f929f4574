package assets

import (
	"embed"
	"fmt"
)

//go:embed shells/*
var shells embed.FS

// EmbeddedLoader loads page shells from the embedded filesystem.
// Implements ShellLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadShell loads a page shell from embedded assets by name.
// The name should not include the .tmpl extension.
func (e *EmbeddedLoader) LoadShell(name string) (string, error) {
	if err := ValidateShellName(name); err != nil {
		return "", err
	}

	content, err := shells.ReadFile("shells/" + name + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrShellNotFound, name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ ShellLoader = (*EmbeddedLoader)(nil)
