package hints

import (
	"strings"
	"testing"
)

func TestForManifestNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dir      string
		contains []string
	}{
		{
			name:     "empty dir",
			dir:      "",
			contains: []string{"--manifest"},
		},
		{
			name:     "with dir",
			dir:      "slides",
			contains: []string{"--manifest", "deck.yaml"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForManifestNotFound(tt.dir)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("expected hint to contain %q, got %q", want, hint)
				}
			}
		})
	}
}

func TestForUnknownEngine(t *testing.T) {
	t.Parallel()

	hint := ForUnknownEngine()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	for _, alias := range []string{"katex", "mathjax", "none"} {
		if !strings.Contains(hint, alias) {
			t.Errorf("expected %q in engine hint, got %q", alias, hint)
		}
	}
}

func TestForMissingFooter(t *testing.T) {
	t.Parallel()

	hint := ForMissingFooter()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "data-auto-nav") {
		t.Error("expected data-auto-nav mention")
	}
}

func TestForMissingBody(t *testing.T) {
	t.Parallel()

	hint := ForMissingBody()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "slide-body") {
		t.Error("expected slide-body mention")
	}
}

func TestForSlideNotFound(t *testing.T) {
	t.Parallel()

	hint := ForSlideNotFound()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "manifest directory") {
		t.Error("expected manifest directory mention")
	}
}

func TestForShellNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		available []string
		wantEmpty bool
		contains  string
	}{
		{
			name:      "empty available",
			available: []string{},
			wantEmpty: true,
		},
		{
			name:      "with shells",
			available: []string{"index", "print"},
			contains:  "index, print",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForShellNotFound(tt.available)

			if tt.wantEmpty && hint != "" {
				t.Errorf("expected empty hint, got %q", hint)
			}
			if !tt.wantEmpty && !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForManifestNotFound("deck"),
		ForUnknownEngine(),
		ForMissingFooter(),
		ForMissingBody(),
		ForSlideNotFound(),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
