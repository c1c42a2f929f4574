// Package manifest loads and validates deck manifests.
//
// A manifest names the slides of a deck in presentation order plus the
// deck-wide settings the build needs: title, theme stylesheet, description,
// and the default math engine. The canonical format is YAML (deck.yaml);
// JSON manifests parse as YAML flow syntax, so decks that predate the YAML
// format keep working from their deck.json unchanged.
//
// Validation is strict and loading is fail-fast: unknown top-level keys,
// malformed script entries, unknown math engine spellings, and duplicate
// slide files all abort the build before any file is touched.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/TheRonzor/data101-s26-slides/internal/fileutil"
	"github.com/TheRonzor/data101-s26-slides/internal/yamlutil"
)

// Sentinel errors for manifest operations.
var (
	ErrManifestNotFound  = errors.New("manifest not found")
	ErrManifestParse     = errors.New("failed to parse manifest")
	ErrNoSlides          = errors.New("manifest has no slides")
	ErrSlideFileRequired = errors.New("slide entry has no file")
	ErrDuplicateSlide    = errors.New("duplicate slide file")
	ErrBadScriptEntry    = errors.New("invalid script entry")
	ErrUnknownMathEngine = errors.New("unknown math engine")
)

// Defaults applied when the manifest leaves a field empty.
const (
	DefaultTitle = "Deck"
	DefaultTheme = "assets/theme.css"
)

// Names lists the manifest file names probed in order when no explicit
// path is given.
var Names = []string{"deck.yaml", "deck.yml", "deck.json"}

// Deck is the validated manifest model. Slide order is presentation order.
type Deck struct {
	Title       string
	Theme       string
	Description string
	Math        Engine
	Slides      []Slide
}

// Slide is one deck entry. File is deck-root-relative with forward slashes.
type Slide struct {
	File    string
	Title   string
	Math    *Engine // per-slide override; nil inherits the deck engine
	Scripts []Script
}

// MathEngine resolves the slide's effective engine against the deck
// default. A slide override always wins, including an explicit "none"
// that switches math off for just that slide.
func (s Slide) MathEngine(deck Engine) Engine {
	if s.Math != nil {
		return *s.Math
	}
	return deck
}

// Script is one normalized script reference declared for a slide.
type Script struct {
	Src   string
	Type  string
	Defer bool
	Async bool
}

// Raw decode targets. Script and math fields decode as any because authors
// write them in several shapes: scripts as a bare string, a single mapping,
// or a list of either; math as a string or a YAML scalar like false or 0.
type rawDeck struct {
	Title       string     `yaml:"title"`
	Theme       string     `yaml:"theme"`
	Description string     `yaml:"description"`
	Math        rawMath    `yaml:"math"`
	Slides      []rawSlide `yaml:"slides"`
}

type rawMath struct {
	Engine any `yaml:"engine"`
}

type rawSlide struct {
	File    string `yaml:"file"`
	Title   string `yaml:"title"`
	Math    any    `yaml:"math"`
	Script  any    `yaml:"script"`
	Scripts any    `yaml:"scripts"`
}

// Find locates the manifest inside dir, probing Names in order.
func Find(dir string) (string, error) {
	for _, name := range Names {
		p := filepath.Join(dir, name)
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s in %s", ErrManifestNotFound, strings.Join(Names, ", "), dir)
}

// Load reads and validates the manifest at path.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	deck, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return deck, nil
}

// Parse validates manifest text. Unknown top-level keys are rejected so a
// typoed key fails loudly instead of silently dropping configuration.
func Parse(data []byte) (*Deck, error) {
	var raw rawDeck
	if err := yamlutil.UnmarshalStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}
	return buildDeck(raw)
}

func buildDeck(raw rawDeck) (*Deck, error) {
	deck := &Deck{
		Title:       strings.TrimSpace(raw.Title),
		Theme:       strings.TrimSpace(raw.Theme),
		Description: strings.TrimSpace(raw.Description),
	}
	if deck.Title == "" {
		deck.Title = DefaultTitle
	}
	if deck.Theme == "" {
		deck.Theme = DefaultTheme
	}

	if eng := strings.TrimSpace(scalarString(raw.Math.Engine)); eng != "" {
		parsed, err := ParseEngine(eng)
		if err != nil {
			return nil, err
		}
		deck.Math = parsed
	}

	if len(raw.Slides) == 0 {
		return nil, ErrNoSlides
	}

	seen := make(map[string]int, len(raw.Slides))
	deck.Slides = make([]Slide, 0, len(raw.Slides))
	for i, rs := range raw.Slides {
		slide, err := buildSlide(rs, i)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[slide.File]; dup {
			return nil, fmt.Errorf("%w: %s (slides[%d] and slides[%d])", ErrDuplicateSlide, slide.File, first, i)
		}
		seen[slide.File] = i
		deck.Slides = append(deck.Slides, slide)
	}
	return deck, nil
}

func buildSlide(rs rawSlide, i int) (Slide, error) {
	slide := Slide{
		File:  strings.TrimSpace(rs.File),
		Title: strings.TrimSpace(rs.Title),
	}
	if slide.File == "" {
		return Slide{}, fmt.Errorf("%w: slides[%d]", ErrSlideFileRequired, i)
	}
	if slide.Title == "" {
		slide.Title = stem(slide.File)
	}

	if eng := strings.TrimSpace(scalarString(rs.Math)); eng != "" {
		parsed, err := ParseEngine(eng)
		if err != nil {
			return Slide{}, fmt.Errorf("%s: %w", slide.File, err)
		}
		slide.Math = &parsed
	}

	scripts, err := slideScripts(rs)
	if err != nil {
		return Slide{}, fmt.Errorf("%s: %w", slide.File, err)
	}
	slide.Scripts = scripts
	return slide, nil
}

// slideScripts normalizes the two script shapes. A present, non-null
// scripts key wins even when empty, so "scripts: []" switches scripts off
// regardless of a lingering legacy script key. A null or absent scripts
// falls back to the legacy single-entry script key.
func slideScripts(rs rawSlide) ([]Script, error) {
	raw := rs.Scripts
	if raw == nil && truthy(rs.Script) {
		raw = rs.Script
	}
	if raw == nil {
		return nil, nil
	}

	entries, ok := raw.([]any)
	if !ok {
		entries = []any{raw}
	}

	scripts := make([]Script, 0, len(entries))
	for _, entry := range entries {
		script, err := normalizeScript(entry)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, script)
	}
	return scripts, nil
}

// normalizeScript accepts a bare src string or a mapping with a non-empty
// src plus optional type, defer, and async. Anything else is a fatal
// ErrBadScriptEntry; a half-typed entry must not silently become a deck
// with one script fewer.
func normalizeScript(entry any) (Script, error) {
	switch e := entry.(type) {
	case string:
		if strings.TrimSpace(e) == "" {
			return Script{}, fmt.Errorf("%w: empty src", ErrBadScriptEntry)
		}
		return Script{Src: e}, nil
	case map[string]any:
		src, ok := e["src"].(string)
		if !ok || strings.TrimSpace(src) == "" {
			return Script{}, fmt.Errorf("%w: %v", ErrBadScriptEntry, e)
		}
		return Script{
			Src:   src,
			Type:  scalarString(e["type"]),
			Defer: truthy(e["defer"]),
			Async: truthy(e["async"]),
		}, nil
	default:
		return Script{}, fmt.Errorf("%w: %v", ErrBadScriptEntry, entry)
	}
}

// scalarString renders a YAML scalar as its manifest spelling. Authors
// write math: false or math: 0 and the YAML parser hands those over as
// typed scalars, not strings.
func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}

// truthy mirrors the loose truthiness the legacy manifest format allowed
// for script flags and the legacy script key.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

// stem returns the file name without directories or extension, the
// fallback slide title.
func stem(file string) string {
	base := path.Base(file)
	return strings.TrimSuffix(base, path.Ext(base))
}
