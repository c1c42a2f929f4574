package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrDescriptionRender indicates description conversion failed.
var ErrDescriptionRender = errors.New("description rendering failed")

// DescriptionRenderer converts the deck description markdown into the HTML
// fragment embedded in the index page.
type DescriptionRenderer struct {
	md goldmark.Markdown
}

// NewDescriptionRenderer creates a DescriptionRenderer with GFM extensions
// and syntax highlighting.
func NewDescriptionRenderer() *DescriptionRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so the deck theme styles code blocks
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Note: WithUnsafe() intentionally NOT used; raw HTML in a
			// description is dropped, not executed.
		),
	)
	return &DescriptionRenderer{md: md}
}

// Render converts markdown to an HTML fragment. Supports context
// cancellation via goroutine + select pattern since Goldmark doesn't
// natively support context. Empty input renders to empty output so the
// index shell can omit the description section entirely.
func (r *DescriptionRenderer) Render(ctx context.Context, markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrDescriptionRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
