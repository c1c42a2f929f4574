package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/TheRonzor/data101-s26-slides/internal/manifest"
)

// ErrIndexRender indicates index page rendering failed.
var ErrIndexRender = errors.New("index page rendering failed")

// IndexEntry is one table-of-contents line on the index page.
type IndexEntry struct {
	Number int
	File   string
	Title  string
}

// indexData feeds the index page shell.
type indexData struct {
	Title       string
	Theme       string
	Description template.HTML
	Entries     []IndexEntry
}

// IndexAssembler renders the deck index page from a shell template.
type IndexAssembler struct {
	tmpl *template.Template
}

// NewIndexAssembler creates an IndexAssembler from shell template content.
// Returns error if the template cannot be parsed.
func NewIndexAssembler(shell string) (*IndexAssembler, error) {
	tmpl, err := template.New("index").Parse(shell)
	if err != nil {
		return nil, fmt.Errorf("parsing index shell: %w", err)
	}
	return &IndexAssembler{tmpl: tmpl}, nil
}

// Assemble renders the index page for the deck. description is the
// pre-rendered HTML of the deck description; empty omits the section.
// Entry order and numbering follow manifest order.
func (a *IndexAssembler) Assemble(ctx context.Context, deck *manifest.Deck, description string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := indexData{
		Title:       deck.Title,
		Theme:       deck.Theme,
		Description: template.HTML(description), // #nosec G203 -- rendered by our own Goldmark pass
		Entries:     make([]IndexEntry, 0, len(deck.Slides)),
	}
	for i, slide := range deck.Slides {
		data.Entries = append(data.Entries, IndexEntry{Number: i + 1, File: slide.File, Title: slide.Title})
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIndexRender, err)
	}
	return buf.String(), nil
}
