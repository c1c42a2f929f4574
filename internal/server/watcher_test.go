package server

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestRelevant - Event filter
// ---------------------------------------------------------------------------

func TestRelevant(t *testing.T) {
	t.Parallel()

	w := &Watcher{root: filepath.FromSlash("/deck")}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"slide", "/deck/slides/01.html", true},
		{"manifest", "/deck/deck.yaml", true},
		{"stylesheet", "/deck/assets/theme.css", true},
		{"script", "/deck/assets/deck.js", true},
		{"shell template", "/deck/shells/index.tmpl", true},
		{"image", "/deck/assets/logo.png", true},
		{"uppercase extension", "/deck/SLIDES/01.HTML", true},
		{"generated index", "/deck/index.html", false},
		{"generated print page", "/deck/print.html", false},
		{"nested index is not generated", "/deck/slides/index.html", true},
		{"unwatched extension", "/deck/notes.txt", false},
		{"editor swap file", "/deck/slides/.01.html.swp", false},
		{"backup file", "/deck/slides/01.html~", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := w.relevant(filepath.FromSlash(tt.path)); got != tt.want {
				t.Errorf("relevant(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNewWatcher - Recursive watch set
// ---------------------------------------------------------------------------

func TestNewWatcher_SkipsDotDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, sub := range []string{"slides", "assets", ".git/objects"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	w, err := NewWatcher(dir, func(string) error { return nil })
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	watched := w.fw.WatchList()
	for _, want := range []string{dir, filepath.Join(dir, "slides"), filepath.Join(dir, "assets")} {
		if !slices.Contains(watched, want) {
			t.Errorf("watch list %v is missing %q", watched, want)
		}
	}
	for _, p := range watched {
		if filepath.Base(p) == ".git" || filepath.Base(p) == "objects" {
			t.Errorf("watch list includes dot directory entry %q", p)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWatcherRun - Edit to rebuild
// ---------------------------------------------------------------------------

func TestWatcherRun_TriggersOnSlideEdit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "slides"), 0o755); err != nil {
		t.Fatal(err)
	}

	got := make(chan string, 1)
	w, err := NewWatcher(dir, func(path string) error {
		select {
		case got <- path:
		default:
		}
		return nil
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// An irrelevant write first: if the filter let it through it would be
	// the path the callback reports, since later events in the burst are
	// dropped once one rebuild is queued.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "slides", "01.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-got:
		if filepath.Base(path) != "01.html" {
			t.Errorf("rebuild triggered by %q, want 01.html", path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild triggered within 5s")
	}
}
