package assets

import (
	"fmt"
	"strings"
)

// ValidateShellName checks that a shell name is safe for use as a filename.
// Returns ErrInvalidShellName if the name is empty or contains path
// separators, dots (which could allow extension manipulation), or traversal
// characters.
func ValidateShellName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidShellName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidShellName, name)
	}
	return nil
}
