package assets

import (
	"errors"
)

// ShellResolver combines custom and embedded loaders with fallback logic.
// When a custom directory is configured, it tries custom first, then falls
// back to embedded if the shell is not found there. This lets a deck
// override one page shell while keeping the built-in for the other.
type ShellResolver struct {
	custom   ShellLoader // nil if no custom directory configured
	embedded ShellLoader
}

// NewShellResolver creates a ShellResolver.
// If customDir is empty, only embedded shells are used.
// Returns error if customDir is set but invalid.
func NewShellResolver(customDir string) (*ShellResolver, error) {
	resolver := &ShellResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customDir != "" {
		fsLoader, err := NewFilesystemLoader(customDir)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadShell loads a page shell, trying the custom loader first if available.
func (r *ShellResolver) LoadShell(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadShell(name)
	}

	content, err := r.custom.LoadShell(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors.
	if !errors.Is(err, ErrShellNotFound) {
		return "", err
	}

	return r.embedded.LoadShell(name)
}

// HasCustomLoader returns true if a custom shell directory is configured.
func (r *ShellResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ ShellLoader = (*ShellResolver)(nil)
