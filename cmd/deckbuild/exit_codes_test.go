package main

// Notes:
// - exitCodeFor: we test every sentinel error the build surfaces, plus
//   wrapped errors to verify the errors.Is() chain works correctly.
// - Exit code constants: we verify Unix conventions (0=success, 1=general,
//   2=usage) and custom codes are below 126.

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	deckbuild "github.com/TheRonzor/data101-s26-slides"
	"github.com/TheRonzor/data101-s26-slides/internal/assets"
	"github.com/TheRonzor/data101-s26-slides/internal/manifest"
	"github.com/TheRonzor/data101-s26-slides/internal/pipeline"
	"github.com/TheRonzor/data101-s26-slides/internal/region"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Slide structure errors (exit 4)
		{"missing footer", pipeline.ErrMissingFooter, ExitStructure},
		{"missing body", pipeline.ErrMissingBody, ExitStructure},
		{"ambiguous region", region.ErrAmbiguous, ExitStructure},
		{"wrapped missing footer", fmt.Errorf("slides/01.html: %w", pipeline.ErrMissingFooter), ExitStructure},

		// I/O errors (exit 3)
		{"slide not found", deckbuild.ErrSlideNotFound, ExitIO},
		{"slide read", deckbuild.ErrSlideRead, ExitIO},
		{"slide write", deckbuild.ErrSlideWrite, ExitIO},
		{"artifact write", deckbuild.ErrArtifactWrite, ExitIO},
		{"shell read", assets.ErrShellRead, ExitIO},
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"wrapped slide not found", fmt.Errorf("build: %w", deckbuild.ErrSlideNotFound), ExitIO},

		// Usage/manifest/configuration errors (exit 2)
		{"manifest not found", manifest.ErrManifestNotFound, ExitUsage},
		{"manifest parse", manifest.ErrManifestParse, ExitUsage},
		{"no slides", manifest.ErrNoSlides, ExitUsage},
		{"slide file required", manifest.ErrSlideFileRequired, ExitUsage},
		{"duplicate slide", manifest.ErrDuplicateSlide, ExitUsage},
		{"bad script entry", manifest.ErrBadScriptEntry, ExitUsage},
		{"unknown math engine", manifest.ErrUnknownMathEngine, ExitUsage},
		{"shell not found", assets.ErrShellNotFound, ExitUsage},
		{"invalid shell name", assets.ErrInvalidShellName, ExitUsage},
		{"invalid shell dir", assets.ErrInvalidShellDir, ExitUsage},
		{"path traversal", assets.ErrPathTraversal, ExitUsage},
		{"unexpected argument", ErrUnexpectedArgument, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"wrapped manifest parse", fmt.Errorf("loading: %w", manifest.ErrManifestParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"index render", pipeline.ErrIndexRender, ExitGeneral},
		{"print render", pipeline.ErrPrintRender, ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix convention compliance
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()
	// Verify exit codes follow Unix conventions
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	// Verify custom codes are below 126 (Unix convention)
	if ExitIO >= 126 {
		t.Errorf("ExitIO = %d, should be < 126", ExitIO)
	}
	if ExitStructure >= 126 {
		t.Errorf("ExitStructure = %d, should be < 126", ExitStructure)
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Error to hint mapping
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string // substring of the hint, "" means no hint
	}{
		{"manifest not found", manifest.ErrManifestNotFound, "--manifest"},
		{"unknown engine", manifest.ErrUnknownMathEngine, "katex"},
		{"missing footer", pipeline.ErrMissingFooter, "data-auto-nav"},
		{"missing body", pipeline.ErrMissingBody, "slide-body"},
		{"slide not found", deckbuild.ErrSlideNotFound, "slides[].file"},
		{"shell not found", assets.ErrShellNotFound, "available:"},
		{"unrelated error", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, "deck")
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor = %q, want no hint", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
