package main

import (
	"errors"
	"os"

	deckbuild "github.com/TheRonzor/data101-s26-slides"
	"github.com/TheRonzor/data101-s26-slides/internal/assets"
	"github.com/TheRonzor/data101-s26-slides/internal/manifest"
	"github.com/TheRonzor/data101-s26-slides/internal/pipeline"
	"github.com/TheRonzor/data101-s26-slides/internal/region"
)

// Exit codes for the deckbuild CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Build completed
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, manifest, or shell configuration
	ExitIO        = 3 // File not found, permission denied
	ExitStructure = 4 // Slide missing a required HTML region
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Slide structure errors (exit 4)
	if errors.Is(err, pipeline.ErrMissingFooter) ||
		errors.Is(err, pipeline.ErrMissingBody) ||
		errors.Is(err, region.ErrAmbiguous) {
		return ExitStructure
	}

	// I/O errors (exit 3)
	if errors.Is(err, deckbuild.ErrSlideNotFound) ||
		errors.Is(err, deckbuild.ErrSlideRead) ||
		errors.Is(err, deckbuild.ErrSlideWrite) ||
		errors.Is(err, deckbuild.ErrArtifactWrite) ||
		errors.Is(err, assets.ErrShellRead) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/manifest/configuration errors (exit 2)
	if errors.Is(err, manifest.ErrManifestNotFound) ||
		errors.Is(err, manifest.ErrManifestParse) ||
		errors.Is(err, manifest.ErrNoSlides) ||
		errors.Is(err, manifest.ErrSlideFileRequired) ||
		errors.Is(err, manifest.ErrDuplicateSlide) ||
		errors.Is(err, manifest.ErrBadScriptEntry) ||
		errors.Is(err, manifest.ErrUnknownMathEngine) ||
		errors.Is(err, assets.ErrShellNotFound) ||
		errors.Is(err, assets.ErrInvalidShellName) ||
		errors.Is(err, assets.ErrInvalidShellDir) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, ErrUnexpectedArgument) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
