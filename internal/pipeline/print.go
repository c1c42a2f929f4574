package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/TheRonzor/data101-s26-slides/internal/href"
	"github.com/TheRonzor/data101-s26-slides/internal/manifest"
	"github.com/TheRonzor/data101-s26-slides/internal/region"
)

// ErrMissingBody means a slide lacks the slide-body main region.
var ErrMissingBody = errors.New(`missing <main class="slide-body">...</main>`)

// ErrPrintRender indicates print page rendering failed.
var ErrPrintRender = errors.New("print page rendering failed")

var (
	// mainRE captures the inner markup of the slide-body main element.
	mainRE = regexp.MustCompile(`(?is)<main[^>]*\bclass="[^"]*\bslide-body\b[^"]*"[^>]*>(.*?)</main>`)
	// imgSrcRE splits an img tag around its src value.
	imgSrcRE = regexp.MustCompile(`(?i)(<img[^>]*\ssrc=")([^"]+)(")`)
)

// PrintSection is one slide's contribution to the print page.
type PrintSection struct {
	Number int
	Title  string
	Body   template.HTML
}

// printData feeds the print page shell.
type printData struct {
	Title    string
	Theme    string
	MathSrc  string
	Sections []PrintSection
}

// ExtractSection lifts a slide's body out of its rewritten contents for
// the print page. Image sources are re-anchored so they keep resolving
// once the markup lives at the deck root instead of the slide's directory.
func ExtractSection(contents string, slide manifest.Slide, number int) (PrintSection, error) {
	m, err := region.FindOne(contents, mainRE)
	switch {
	case errors.Is(err, region.ErrNoMatch):
		return PrintSection{}, fmt.Errorf("%s: %w", slide.File, ErrMissingBody)
	case err != nil:
		return PrintSection{}, fmt.Errorf("%s: slide-body main: %w", slide.File, err)
	}
	start, end := m.Group(1)
	body := rewriteImageSrcs(contents[start:end], slide.File)
	return PrintSection{
		Number: number,
		Title:  slide.Title,
		Body:   template.HTML(body), // #nosec G203 -- author-owned slide markup copied verbatim
	}, nil
}

// rewriteImageSrcs makes every relative img src deck-root-absolute.
// Absolute specifiers (URLs, data URIs, rooted paths) pass through, so a
// second pass over already rewritten markup changes nothing.
func rewriteImageSrcs(body, slideFile string) string {
	var out strings.Builder
	last := 0
	for _, m := range imgSrcRE.FindAllStringSubmatchIndex(body, -1) {
		src := body[m[4]:m[5]]
		s := strings.TrimSpace(src)
		if s == "" || href.Classify(s) == href.KindAbsolute {
			continue
		}
		out.WriteString(body[last:m[4]])
		out.WriteString(href.RootAbsolute(slideFile, s))
		last = m[5]
	}
	if last == 0 {
		return body
	}
	out.WriteString(body[last:])
	return out.String()
}

// PrintEngine picks the math engine for the print page. One page serves
// every slide, so any slide pinned to MathJax forces MathJax for the whole
// page; otherwise the deck default decides.
func PrintEngine(deck *manifest.Deck) manifest.Engine {
	for _, slide := range deck.Slides {
		if slide.Math != nil && *slide.Math == manifest.EngineMathJax {
			return manifest.EngineMathJax
		}
	}
	return deck.Math
}

// PrintAssembler renders the print page from a shell template.
type PrintAssembler struct {
	tmpl *template.Template
}

// NewPrintAssembler creates a PrintAssembler from shell template content.
// Returns error if the template cannot be parsed.
func NewPrintAssembler(shell string) (*PrintAssembler, error) {
	tmpl, err := template.New("print").Parse(shell)
	if err != nil {
		return nil, fmt.Errorf("parsing print shell: %w", err)
	}
	return &PrintAssembler{tmpl: tmpl}, nil
}

// Assemble renders the print page from the extracted sections.
func (a *PrintAssembler) Assemble(ctx context.Context, deck *manifest.Deck, sections []PrintSection) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := printData{
		Title:    deck.Title,
		Theme:    deck.Theme,
		MathSrc:  mathSetupAsset(PrintEngine(deck)),
		Sections: sections,
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPrintRender, err)
	}
	return buf.String(), nil
}
