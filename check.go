package deckbuild

import (
	"context"
	"fmt"
	"os"

	"github.com/TheRonzor/data101-s26-slides/internal/assets"
	"github.com/TheRonzor/data101-s26-slides/internal/fileutil"
	"github.com/TheRonzor/data101-s26-slides/internal/manifest"
	"github.com/TheRonzor/data101-s26-slides/internal/pipeline"
	"github.com/TheRonzor/data101-s26-slides/internal/region"
)

// Check statuses.
const (
	StatusOK       = "ok"
	StatusWarnings = "warnings"
	StatusErrors   = "errors"
)

// CheckResult holds deck diagnostic information.
type CheckResult struct {
	Status   string       `json:"status"` // "ok", "warnings", "errors"
	Manifest string       `json:"manifest,omitempty"`
	Title    string       `json:"title,omitempty"`
	Shells   bool         `json:"shells"`
	Slides   []SlideCheck `json:"slides,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// SlideCheck holds diagnostic information for one slide.
type SlideCheck struct {
	File   string `json:"file"`
	Exists bool   `json:"exists"`
	Footer bool   `json:"footer"`
	Body   bool   `json:"body"`
	Block  bool   `json:"block"`
}

// Check inspects the deck without writing anything: the shells must parse,
// the manifest must load, every listed slide must exist, and each slide
// must carry the regions the build rewrites. Problems are collected rather
// than aborted on, so one broken slide does not hide the rest.
func (s *Service) Check(ctx context.Context, input Input) *CheckResult {
	result := &CheckResult{Status: StatusOK}

	s.checkShells(result)

	root, path, err := resolveManifest(input)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		result.Status = StatusErrors
		return result
	}
	result.Manifest = path

	deck, err := manifest.Load(path)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		result.Status = StatusErrors
		return result
	}
	result.Title = deck.Title

	for _, slide := range deck.Slides {
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, err.Error())
			break
		}
		result.Slides = append(result.Slides, checkSlide(root, slide.File, result))
	}

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = StatusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = StatusWarnings
	}

	return result
}

// checkShells verifies both page shells load and parse.
func (s *Service) checkShells(result *CheckResult) {
	ok := true
	if shell, err := s.shells.LoadShell(assets.ShellIndex); err != nil {
		result.Errors = append(result.Errors, "index shell: "+err.Error())
		ok = false
	} else if _, err := pipeline.NewIndexAssembler(shell); err != nil {
		result.Errors = append(result.Errors, err.Error())
		ok = false
	}
	if shell, err := s.shells.LoadShell(assets.ShellPrint); err != nil {
		result.Errors = append(result.Errors, "print shell: "+err.Error())
		ok = false
	} else if _, err := pipeline.NewPrintAssembler(shell); err != nil {
		result.Errors = append(result.Errors, err.Error())
		ok = false
	}
	result.Shells = ok
}

// checkSlide probes one slide file, recording problems on result.
func checkSlide(root, file string, result *CheckResult) SlideCheck {
	sc := SlideCheck{File: file}

	target := slidePath(root, file)
	if !fileutil.FileExists(target) {
		result.Errors = append(result.Errors, "missing slide file: "+file)
		return sc
	}
	sc.Exists = true

	raw, err := os.ReadFile(target) // #nosec G304 -- paths come from the user's manifest
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read slide %s: %v", file, err))
		return sc
	}
	contents := string(raw)

	if err := pipeline.CheckFooter(contents); err != nil {
		result.Errors = append(result.Errors, file+": "+err.Error())
	} else {
		sc.Footer = true
	}

	if err := pipeline.CheckBody(contents); err != nil {
		result.Errors = append(result.Errors, file+": "+err.Error())
	} else {
		sc.Body = true
	}

	switch present, err := pipeline.CheckAutoScripts(contents); {
	case err != nil:
		result.Errors = append(result.Errors, file+": "+err.Error())
	case present:
		sc.Block = true
	default:
		result.Warnings = append(result.Warnings, file+": no auto-scripts block yet; the next build inserts one")
	}

	if !region.HasBodyClose(contents) {
		result.Warnings = append(result.Warnings, file+": no </body> tag; the auto-scripts block would be appended at end of file")
	}

	return sc
}
