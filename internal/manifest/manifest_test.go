package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/TheRonzor/data101-s26-slides/internal/manifest"
)

// ---------------------------------------------------------------------------
// TestParse - Defaults and basic shape
// ---------------------------------------------------------------------------

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	deck, err := manifest.Parse([]byte("slides:\n  - file: slides/01-intro.html\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if deck.Title != "Deck" {
		t.Errorf("Title = %q, want %q", deck.Title, "Deck")
	}
	if deck.Theme != "assets/theme.css" {
		t.Errorf("Theme = %q, want %q", deck.Theme, "assets/theme.css")
	}
	if deck.Math != manifest.EngineNone {
		t.Errorf("Math = %v, want EngineNone", deck.Math)
	}
	if len(deck.Slides) != 1 {
		t.Fatalf("len(Slides) = %d, want 1", len(deck.Slides))
	}
	if got := deck.Slides[0].Title; got != "01-intro" {
		t.Errorf("slide title defaulted to %q, want file stem %q", got, "01-intro")
	}
}

func TestParse_FullDeck(t *testing.T) {
	t.Parallel()

	src := `title: Data 101
theme: assets/spring.css
description: |
  A **semester** of slides.
math:
  engine: katex
slides:
  - file: slides/01.html
    title: Welcome
  - file: slides/02.html
    math: mathjax
    scripts:
      - demo.js
      - src: assets/charts.js
        type: module
        defer: true
`

	deck, err := manifest.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if deck.Title != "Data 101" {
		t.Errorf("Title = %q, want %q", deck.Title, "Data 101")
	}
	if deck.Math != manifest.EngineKaTeX {
		t.Errorf("Math = %v, want EngineKaTeX", deck.Math)
	}
	if deck.Description == "" {
		t.Error("Description lost in parsing")
	}

	second := deck.Slides[1]
	if second.Math == nil || *second.Math != manifest.EngineMathJax {
		t.Errorf("slide override = %v, want EngineMathJax", second.Math)
	}
	if len(second.Scripts) != 2 {
		t.Fatalf("len(Scripts) = %d, want 2", len(second.Scripts))
	}
	if got := second.Scripts[0]; got != (manifest.Script{Src: "demo.js"}) {
		t.Errorf("bare string script = %+v", got)
	}
	if got := second.Scripts[1]; got != (manifest.Script{Src: "assets/charts.js", Type: "module", Defer: true}) {
		t.Errorf("object script = %+v", got)
	}
}

func TestParse_JSONManifest(t *testing.T) {
	t.Parallel()

	src := `{
  "title": "Legacy Deck",
  "math": {"engine": "mathjax"},
  "slides": [
    {"file": "slides/01.html", "scripts": [{"src": "x.js", "async": true}]}
  ]
}`

	deck, err := manifest.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if deck.Title != "Legacy Deck" {
		t.Errorf("Title = %q, want %q", deck.Title, "Legacy Deck")
	}
	if deck.Math != manifest.EngineMathJax {
		t.Errorf("Math = %v, want EngineMathJax", deck.Math)
	}
	if got := deck.Slides[0].Scripts[0]; got != (manifest.Script{Src: "x.js", Async: true}) {
		t.Errorf("script = %+v", got)
	}
}

// ---------------------------------------------------------------------------
// TestParse - Script shapes
// ---------------------------------------------------------------------------

func TestParse_ScriptShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []manifest.Script
	}{
		{
			name: "legacy single script string",
			src:  "slides:\n  - file: a.html\n    script: demo.js\n",
			want: []manifest.Script{{Src: "demo.js"}},
		},
		{
			name: "scripts as bare string",
			src:  "slides:\n  - file: a.html\n    scripts: demo.js\n",
			want: []manifest.Script{{Src: "demo.js"}},
		},
		{
			name: "scripts as single mapping",
			src:  "slides:\n  - file: a.html\n    scripts:\n      src: demo.js\n      defer: true\n",
			want: []manifest.Script{{Src: "demo.js", Defer: true}},
		},
		{
			name: "empty scripts list beats legacy script",
			src:  "slides:\n  - file: a.html\n    script: demo.js\n    scripts: []\n",
			want: nil,
		},
		{
			name: "null scripts falls back to legacy script",
			src:  "slides:\n  - file: a.html\n    script: demo.js\n    scripts: null\n",
			want: []manifest.Script{{Src: "demo.js"}},
		},
		{
			name: "empty legacy script means no scripts",
			src:  "slides:\n  - file: a.html\n    script: \"\"\n",
			want: nil,
		},
		{
			name: "no script keys",
			src:  "slides:\n  - file: a.html\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deck, err := manifest.Parse([]byte(tt.src))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got := deck.Slides[0].Scripts
			if len(got) != len(tt.want) {
				t.Fatalf("len(Scripts) = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Scripts[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse_BadScriptEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"number in list", "slides:\n  - file: a.html\n    scripts: [42]\n"},
		{"mapping without src", "slides:\n  - file: a.html\n    scripts:\n      - type: module\n"},
		{"mapping with empty src", "slides:\n  - file: a.html\n    scripts:\n      - src: \"\"\n"},
		{"empty string in list", "slides:\n  - file: a.html\n    scripts: [\"\"]\n"},
		{"nested list", "slides:\n  - file: a.html\n    scripts: [[x.js]]\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := manifest.Parse([]byte(tt.src))
			if !errors.Is(err, manifest.ErrBadScriptEntry) {
				t.Errorf("Parse() error = %v, want ErrBadScriptEntry", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParse - Validation failures
// ---------------------------------------------------------------------------

func TestParse_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"no slides key", "title: Empty\n", manifest.ErrNoSlides},
		{"empty slides list", "slides: []\n", manifest.ErrNoSlides},
		{"slide without file", "slides:\n  - title: Orphan\n", manifest.ErrSlideFileRequired},
		{"blank file", "slides:\n  - file: \"  \"\n", manifest.ErrSlideFileRequired},
		{"duplicate slide file", "slides:\n  - file: a.html\n  - file: b.html\n  - file: a.html\n", manifest.ErrDuplicateSlide},
		{"unknown deck engine", "math:\n  engine: latex\nslides:\n  - file: a.html\n", manifest.ErrUnknownMathEngine},
		{"unknown slide engine", "slides:\n  - file: a.html\n    math: asciimath\n", manifest.ErrUnknownMathEngine},
		{"unknown top-level key", "titel: Typo\nslides:\n  - file: a.html\n", manifest.ErrManifestParse},
		{"not yaml at all", "slides: [", manifest.ErrManifestParse},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := manifest.Parse([]byte(tt.src))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_ScalarEngineSpellings(t *testing.T) {
	t.Parallel()

	// YAML hands these over as bool and int scalars, not strings.
	src := "math:\n  engine: false\nslides:\n  - file: a.html\n    math: 0\n"

	deck, err := manifest.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if deck.Math != manifest.EngineNone {
		t.Errorf("deck Math = %v, want EngineNone", deck.Math)
	}
	slide := deck.Slides[0]
	if slide.Math == nil || *slide.Math != manifest.EngineNone {
		t.Errorf("slide Math = %v, want explicit EngineNone", slide.Math)
	}
}

// ---------------------------------------------------------------------------
// TestFind - Manifest search order
// ---------------------------------------------------------------------------

func TestFind(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, dir, name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte("slides: []\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("prefers yaml over json", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		write(t, dir, "deck.json")
		write(t, dir, "deck.yaml")

		got, err := manifest.Find(dir)
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if want := filepath.Join(dir, "deck.yaml"); got != want {
			t.Errorf("Find() = %q, want %q", got, want)
		}
	})

	t.Run("falls back to yml then json", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		write(t, dir, "deck.json")

		got, err := manifest.Find(dir)
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if want := filepath.Join(dir, "deck.json"); got != want {
			t.Errorf("Find() = %q, want %q", got, want)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Find(t.TempDir())
		if !errors.Is(err, manifest.ErrManifestNotFound) {
			t.Errorf("Find() error = %v, want ErrManifestNotFound", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoad - Filesystem entry point
// ---------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads valid manifest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := filepath.Join(dir, "deck.yaml")
		if err := os.WriteFile(p, []byte("title: T\nslides:\n  - file: a.html\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		deck, err := manifest.Load(p)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if deck.Title != "T" {
			t.Errorf("Title = %q, want %q", deck.Title, "T")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Load(filepath.Join(t.TempDir(), "deck.yaml"))
		if !errors.Is(err, manifest.ErrManifestNotFound) {
			t.Errorf("Load() error = %v, want ErrManifestNotFound", err)
		}
	})

	t.Run("parse failure names the file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := filepath.Join(dir, "deck.yaml")
		if err := os.WriteFile(p, []byte("slides: []\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := manifest.Load(p)
		if !errors.Is(err, manifest.ErrNoSlides) {
			t.Fatalf("Load() error = %v, want ErrNoSlides", err)
		}
	})
}
