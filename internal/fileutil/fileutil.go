// Package fileutil provides file and path utility functions.
package fileutil

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "deck" -> false (name)
//   - "./deck.yaml" -> true (relative path)
//   - "../shared/deck.yaml" -> true (parent path)
//   - "/absolute/deck.yaml" -> true (absolute)
//   - "decks/spring" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// WriteFileIfChanged writes data to path only when the current contents
// differ. Returns whether a write happened. Skipping identical writes keeps
// rebuilds from touching mtimes, which matters for watch mode: a build that
// converged must not retrigger itself.
func WriteFileIfChanged(path string, data []byte, perm os.FileMode) (bool, error) {
	current, err := os.ReadFile(path) // #nosec G304 -- path validated by caller
	if err == nil && bytes.Equal(current, data) {
		return false, nil
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
