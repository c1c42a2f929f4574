package deckbuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TheRonzor/data101-s26-slides/internal/assets"
	"github.com/TheRonzor/data101-s26-slides/internal/fileutil"
	"github.com/TheRonzor/data101-s26-slides/internal/manifest"
	"github.com/TheRonzor/data101-s26-slides/internal/pipeline"
)

// Generated page names, written into the deck root.
const (
	IndexFile = "index.html"
	PrintFile = "print.html"
)

// filePerm is the mode for rewritten slides and generated pages.
const filePerm = 0o644

// Service orchestrates the deck build pipeline.
type Service struct {
	cfg         serviceConfig
	shells      ShellLoader
	description *pipeline.DescriptionRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithShellDir).
func New(opts ...Option) (*Service, error) {
	s := &Service{
		description: pipeline.NewDescriptionRenderer(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Resolve shells if not injected (e.g., by tests)
	if s.shells == nil {
		resolver, err := assets.NewShellResolver(s.cfg.shellDir)
		if err != nil {
			return nil, err
		}
		s.shells = resolver
	}

	return s, nil
}

// Build runs the full deck build: every slide's machine-owned regions are
// recomputed in place, then the index and print pages are regenerated.
// Files whose bytes would not change are left untouched, so a second run
// over a converged deck writes nothing.
func (s *Service) Build(ctx context.Context, input Input) (*Summary, error) {
	root, path, err := resolveManifest(input)
	if err != nil {
		return nil, err
	}
	deck, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}

	// Refuse to touch anything while a listed slide is missing. The
	// rewrite mutates files in place; failing halfway would leave the
	// deck half-built.
	for _, slide := range deck.Slides {
		if !fileutil.FileExists(slidePath(root, slide.File)) {
			return nil, fmt.Errorf("%w: %s", ErrSlideNotFound, slide.File)
		}
	}

	summary := &Summary{
		ManifestPath: path,
		Slides:       make([]SlideResult, 0, len(deck.Slides)),
	}

	// Rewritten contents stay in memory: the print page extracts slide
	// bodies from what this build just produced, not from a re-read.
	texts := make([]string, len(deck.Slides))
	for i, slide := range deck.Slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		target := slidePath(root, slide.File)
		raw, err := os.ReadFile(target) // #nosec G304 -- paths come from the user's manifest
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrSlideRead, slide.File, err)
		}

		rewritten, err := pipeline.RewriteSlide(string(raw), deck, slide, position(deck, i))
		if err != nil {
			return nil, err
		}
		texts[i] = rewritten

		changed, err := fileutil.WriteFileIfChanged(target, []byte(rewritten), filePerm)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrSlideWrite, slide.File, err)
		}
		if changed {
			summary.Rewritten++
		}
		summary.Slides = append(summary.Slides, SlideResult{File: slide.File, Changed: changed})
	}

	if err := s.writeIndex(ctx, root, deck, summary); err != nil {
		return nil, err
	}
	if err := s.writePrint(ctx, root, deck, texts, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

// writeIndex renders and writes the table-of-contents page.
func (s *Service) writeIndex(ctx context.Context, root string, deck *manifest.Deck, summary *Summary) error {
	description, err := s.description.Render(ctx, deck.Description)
	if err != nil {
		return err
	}

	shell, err := s.shells.LoadShell(assets.ShellIndex)
	if err != nil {
		return err
	}
	asm, err := pipeline.NewIndexAssembler(shell)
	if err != nil {
		return err
	}
	page, err := asm.Assemble(ctx, deck, description)
	if err != nil {
		return err
	}

	target := filepath.Join(root, IndexFile)
	changed, err := fileutil.WriteFileIfChanged(target, []byte(page), filePerm)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrArtifactWrite, IndexFile, err)
	}
	summary.IndexPath = target
	summary.IndexChanged = changed
	return nil
}

// writePrint renders and writes the single-page print deck.
func (s *Service) writePrint(ctx context.Context, root string, deck *manifest.Deck, texts []string, summary *Summary) error {
	sections := make([]pipeline.PrintSection, 0, len(deck.Slides))
	for i, slide := range deck.Slides {
		section, err := pipeline.ExtractSection(texts[i], slide, i+1)
		if err != nil {
			return err
		}
		sections = append(sections, section)
	}

	shell, err := s.shells.LoadShell(assets.ShellPrint)
	if err != nil {
		return err
	}
	asm, err := pipeline.NewPrintAssembler(shell)
	if err != nil {
		return err
	}
	page, err := asm.Assemble(ctx, deck, sections)
	if err != nil {
		return err
	}

	target := filepath.Join(root, PrintFile)
	changed, err := fileutil.WriteFileIfChanged(target, []byte(page), filePerm)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrArtifactWrite, PrintFile, err)
	}
	summary.PrintPath = target
	summary.PrintChanged = changed
	return nil
}

// resolveManifest picks the deck root and manifest path from input.
func resolveManifest(input Input) (string, string, error) {
	root := input.Dir
	if root == "" {
		root = "."
	}
	if input.Manifest != "" {
		return root, input.Manifest, nil
	}
	path, err := manifest.Find(root)
	if err != nil {
		return "", "", err
	}
	return root, path, nil
}

// slidePath maps a manifest's slash-separated slide file to an OS path
// under the deck root.
func slidePath(root, file string) string {
	return filepath.Join(root, filepath.FromSlash(file))
}

// position computes a slide's place in deck order with its neighbors.
func position(deck *manifest.Deck, i int) pipeline.Position {
	pos := pipeline.Position{Index: i + 1, Total: len(deck.Slides)}
	if i > 0 {
		pos.Prev = deck.Slides[i-1].File
	}
	if i < len(deck.Slides)-1 {
		pos.Next = deck.Slides[i+1].File
	}
	return pos
}
