// Package href classifies and resolves the path specifiers that appear in
// deck manifests and slide markup.
//
// All inputs and outputs are deck-root-relative paths with forward slashes,
// independent of the host platform. A specifier falls into exactly one of
// four kinds, and the kind alone decides how it is resolved; there is no
// fallback chain and no filesystem probing here.
package href

import (
	"path"
	"path/filepath"
	"strings"
)

// Kind is the classification of a path specifier.
type Kind int

const (
	// KindAbsolute covers external URLs, data URIs, fragments, mail/tel
	// schemes, and root-absolute paths. Passed through untouched.
	KindAbsolute Kind = iota
	// KindExplicitRelative starts with ./ or ../; the author has taken
	// manual control. Passed through untouched.
	KindExplicitRelative
	// KindRootRelative contains a slash and none of the markers above;
	// interpreted as relative to the deck root.
	KindRootRelative
	// KindSlideLocal is a bare name living next to the slide file.
	KindSlideLocal
)

// absPrefixes marks specifiers that are never rewritten.
var absPrefixes = []string{"http://", "https://", "data:", "/", "#", "mailto:", "tel:"}

// Classify reports the kind of a specifier. Callers handle empty specifiers
// before classifying; an empty string is passed through wherever it appears.
func Classify(spec string) Kind {
	for _, p := range absPrefixes {
		if strings.HasPrefix(spec, p) {
			return KindAbsolute
		}
	}
	if strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") {
		return KindExplicitRelative
	}
	if strings.Contains(spec, "/") {
		return KindRootRelative
	}
	return KindSlideLocal
}

// Resolve maps a manifest script specifier to the href a slide file should
// reference it by. Surrounding whitespace is trimmed first. Root-relative
// specifiers become hrefs relative to the slide's directory; bare names gain
// an explicit ./ so the browser resolves them against the slide.
func Resolve(slideFile, spec string) string {
	s := strings.TrimSpace(spec)
	if s == "" {
		return s
	}
	switch Classify(s) {
	case KindAbsolute, KindExplicitRelative:
		return s
	case KindRootRelative:
		return Relative(slideFile, s)
	default:
		return "./" + s
	}
}

// Relative computes the forward-slash relative href from fromFile's directory
// to toFile. Both arguments are deck-root-relative.
func Relative(fromFile, toFile string) string {
	fromDir := path.Dir(fromFile)
	rel, err := filepath.Rel(filepath.FromSlash(fromDir), filepath.FromSlash(toFile))
	if err != nil {
		// Unreachable for root-relative inputs; keep the target usable.
		return toFile
	}
	return filepath.ToSlash(rel)
}

// RootAbsolute resolves target against slideFile's directory and returns the
// normalized deck-root-absolute form with a leading slash. The print page
// uses it so image references survive being lifted out of their slide.
func RootAbsolute(slideFile, target string) string {
	return "/" + path.Join(path.Dir(slideFile), target)
}
