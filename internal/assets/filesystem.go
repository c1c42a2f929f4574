package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads page shells from a directory on disk, the
// --shell-dir override. Implements ShellLoader interface.
type FilesystemLoader struct {
	dir string
}

// NewFilesystemLoader creates a FilesystemLoader for the given directory.
// Returns ErrInvalidShellDir if the path is not a valid, readable directory.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidShellDir)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShellDir, err)
	}

	// Resolve symlinks so the containment checks below compare real paths.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidShellDir, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidShellDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidShellDir, absPath)
	}
	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidShellDir, err)
	}

	return &FilesystemLoader{dir: absPath}, nil
}

// LoadShell loads a page shell from the filesystem.
// Looks for {dir}/{name}.tmpl.
func (f *FilesystemLoader) LoadShell(name string) (string, error) {
	if err := ValidateShellName(name); err != nil {
		return "", err
	}

	filePath := filepath.Join(f.dir, name+".tmpl")

	if err := f.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrShellNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrShellRead, err)
	}

	return string(content), nil
}

// verifyPathContainment ensures the resolved file path stays inside the
// shell directory, symlinks included. Name validation already blocks
// separators and dots; this is the backstop behind it.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// Use the real path when symlink resolution succeeds. When it fails
	// (file does not exist yet) the prefix check still runs on the
	// unresolved path and the read fails afterwards anyway.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	if !strings.HasPrefix(absFilePath, f.dir+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes shell directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ ShellLoader = (*FilesystemLoader)(nil)
