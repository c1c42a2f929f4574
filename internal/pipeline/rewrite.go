package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/TheRonzor/data101-s26-slides/internal/href"
	"github.com/TheRonzor/data101-s26-slides/internal/manifest"
	"github.com/TheRonzor/data101-s26-slides/internal/region"
)

// ErrMissingFooter means a slide lacks the auto-nav footer marker.
var ErrMissingFooter = errors.New(`missing <footer class="slide-nav" data-auto-nav>...</footer>`)

// Auto-scripts block markers. Everything between them is machine-owned
// and recomputed on every build.
const (
	AutoScriptsBegin = "<!-- AUTO-SCRIPTS:BEGIN -->"
	AutoScriptsEnd   = "<!-- AUTO-SCRIPTS:END -->"
)

// indexFile is the deck-root-relative location of the generated index.
const indexFile = "index.html"

// Math setup scripts live at fixed deck-root paths.
const (
	katexSetupAsset   = "assets/math-katex-setup.js"
	mathjaxSetupAsset = "assets/math-mathjax-setup.js"
)

var (
	// footerRE captures the auto-nav footer as open tag, inner text,
	// close tag. Only the inner text is rewritten.
	footerRE = regexp.MustCompile(`(?is)(<footer[^>]*\bclass="[^"]*\bslide-nav\b[^"]*"[^>]*\bdata-auto-nav\b[^>]*>)(.*?)(</footer>)`)
	// legacyLoaderRE matches the retired runtime loader tag.
	legacyLoaderRE = regexp.MustCompile(`(?i)\s*<script[^>]*\bsrc="\.\./assets/deck\.js"[^>]*>\s*</script>\s*`)
	// mathLoaderRE matches any previously inserted math setup tag,
	// cache-busting query string included.
	mathLoaderRE = regexp.MustCompile(`(?i)\s*<script[^>]*\bsrc="[^"]*(?:math-katex-setup\.js|math-mathjax-setup\.js)(?:\?[^"]*)?"[^>]*>\s*</script>\s*`)
)

// Position describes where a slide sits in deck order. Prev and Next hold
// the deck-root-relative files of the neighboring slides, empty at the
// ends of the deck.
type Position struct {
	Index int // 1-based
	Total int
	Prev  string
	Next  string
}

// RewriteSlide returns contents with every machine-owned region recomputed
// from the deck model: the footer nav links and counter, and the
// auto-scripts block holding the math loader and the declared script tags.
// Author markup outside those regions is untouched. The rewrite is
// convergent, so feeding its output back in yields identical bytes.
func RewriteSlide(contents string, deck *manifest.Deck, slide manifest.Slide, pos Position) (string, error) {
	out := region.StripAll(contents, legacyLoaderRE)
	out = region.StripAll(out, mathLoaderRE)
	for _, script := range slide.Scripts {
		out = stripDeclaredScript(out, slide.File, script.Src)
	}

	out, err := rewriteFooter(out, slide.File, pos)
	if err != nil {
		return "", err
	}

	out, err = region.UpsertBlock(out, AutoScriptsBegin, AutoScriptsEnd, autoScriptsBlock(deck, slide))
	if err != nil {
		return "", fmt.Errorf("%s: auto-scripts block: %w", slide.File, err)
	}
	return out, nil
}

// rewriteFooter replaces the inner text of the unique auto-nav footer.
func rewriteFooter(contents, slideFile string, pos Position) (string, error) {
	m, err := region.FindOne(contents, footerRE)
	switch {
	case errors.Is(err, region.ErrNoMatch):
		return "", fmt.Errorf("%s: %w", slideFile, ErrMissingFooter)
	case err != nil:
		return "", fmt.Errorf("%s: auto-nav footer: %w", slideFile, err)
	}
	start, end := m.Group(2)
	return region.Replace(contents, start, end, navInner(slideFile, pos)), nil
}

// navInner renders the four footer lines. Ends of the deck keep their
// anchor elements so the footer layout never shifts, with href="#" and
// aria-disabled marking the dead direction.
func navInner(slideFile string, pos Position) string {
	prevHref, nextHref := "#", "#"
	prevAttr, nextAttr := ` aria-disabled="true"`, ` aria-disabled="true"`
	if pos.Prev != "" {
		prevHref, prevAttr = href.Relative(slideFile, pos.Prev), ""
	}
	if pos.Next != "" {
		nextHref, nextAttr = href.Relative(slideFile, pos.Next), ""
	}

	lines := []string{
		`      <a class="nav-prev" href="` + prevHref + `"` + prevAttr + `>‹ Prev</a>`,
		`      <a class="nav-index" href="` + href.Relative(slideFile, indexFile) + `">Index</a>`,
		`      <a class="nav-next" href="` + nextHref + `"` + nextAttr + `>Next ›</a>`,
		`      <span class="nav-counter">` + strconv.Itoa(pos.Index) + "/" + strconv.Itoa(pos.Total) + `</span>`,
	}
	return "\n" + strings.Join(lines, "\n") + "\n    "
}

// autoScriptsBlock builds the block body: the math loader for the slide's
// effective engine first, then the declared scripts in manifest order.
// Indentation matches a block sitting as a direct child of <body>.
func autoScriptsBlock(deck *manifest.Deck, slide manifest.Slide) string {
	var tags []string
	if asset := mathSetupAsset(slide.MathEngine(deck.Math)); asset != "" {
		tags = append(tags, `<script src="`+href.Relative(slide.File, asset)+`"></script>`)
	}
	for _, script := range slide.Scripts {
		tags = append(tags, scriptTag(slide.File, script))
	}
	return AutoScriptsBegin + "\n    " + strings.Join(tags, "\n    ") + "\n    " + AutoScriptsEnd
}

// mathSetupAsset maps an engine to its setup script, empty for none.
func mathSetupAsset(engine manifest.Engine) string {
	switch engine {
	case manifest.EngineKaTeX:
		return katexSetupAsset
	case manifest.EngineMathJax:
		return mathjaxSetupAsset
	default:
		return ""
	}
}

// scriptTag renders one declared script with its src resolved for the
// slide's directory.
func scriptTag(slideFile string, script manifest.Script) string {
	attrs := []string{`src="` + href.Resolve(slideFile, script.Src) + `"`}
	if script.Type != "" {
		attrs = append(attrs, `type="`+script.Type+`"`)
	}
	if script.Defer {
		attrs = append(attrs, "defer")
	}
	if script.Async {
		attrs = append(attrs, "async")
	}
	return "<script " + strings.Join(attrs, " ") + "></script>"
}

// stripDeclaredScript removes script tags matching a declared src, in both
// its raw spelling and the slide-relative form an earlier build would have
// written. Declared tags live only inside the auto-scripts block; any copy
// found elsewhere is a leftover from before the block owned them.
func stripDeclaredScript(contents, slideFile, src string) string {
	s := strings.TrimSpace(src)
	if s == "" {
		return contents
	}
	candidates := []string{s}
	if kind := href.Classify(s); kind != href.KindAbsolute && kind != href.KindExplicitRelative {
		if resolved := href.Resolve(slideFile, s); resolved != s {
			candidates = append(candidates, resolved)
		}
	}
	for _, cand := range candidates {
		re := regexp.MustCompile(`(?i)\s*<script[^>]*\bsrc="` + regexp.QuoteMeta(cand) + `"[^>]*>\s*</script>\s*`)
		contents = region.StripAll(contents, re)
	}
	return contents
}
