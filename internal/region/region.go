// Package region locates and splices machine-owned regions inside HTML
// text. It deliberately avoids DOM parsing: slides are hand-authored files,
// and a parse/serialize round trip would reformat the author's markup. All
// operations work on the raw text and touch only the matched byte ranges,
// so running them twice over converged input is a no-op.
package region

import (
	"errors"
	"regexp"
)

var (
	// ErrNoMatch means a required region is absent from the text.
	ErrNoMatch = errors.New("required region not found")
	// ErrAmbiguous means a region that must be unique matched more than
	// once. Machine-owned regions are rewritten in place, so a duplicate
	// would leave one copy stale; callers fail instead of guessing.
	ErrAmbiguous = errors.New("region matched more than once")
)

// bodyCloseRE finds the earliest closing body tag, any case.
var bodyCloseRE = regexp.MustCompile(`(?i)</body>`)

// Match holds the bounds of a uniquely matched region. Group bounds follow
// the pairing of regexp.FindStringSubmatchIndex.
type Match struct {
	bounds []int
}

// Start returns the byte offset where the whole match begins.
func (m Match) Start() int { return m.bounds[0] }

// End returns the byte offset just past the whole match.
func (m Match) End() int { return m.bounds[1] }

// Group returns the start and end offsets of capture group i.
// Group 0 is the whole match.
func (m Match) Group(i int) (int, int) {
	return m.bounds[2*i], m.bounds[2*i+1]
}

// FindOne locates the single occurrence of re in text. Zero occurrences
// return ErrNoMatch, two or more return ErrAmbiguous.
func FindOne(text string, re *regexp.Regexp) (Match, error) {
	all := re.FindAllStringSubmatchIndex(text, 2)
	switch len(all) {
	case 0:
		return Match{}, ErrNoMatch
	case 1:
		return Match{bounds: all[0]}, nil
	default:
		return Match{}, ErrAmbiguous
	}
}

// Replace splices repl into text over the byte range [start, end).
func Replace(text string, start, end int, repl string) string {
	return text[:start] + repl + text[end:]
}

// StripAll replaces every occurrence of re with a single newline. Used to
// remove script tags that will be regenerated; collapsing to a newline
// rather than nothing keeps surrounding tags on their own lines.
func StripAll(text string, re *regexp.Regexp) string {
	return re.ReplaceAllLiteralString(text, "\n")
}

// HasBodyClose reports whether text contains a closing body tag.
func HasBodyClose(text string) bool {
	return bodyCloseRE.MatchString(text)
}

// InsertBeforeBody inserts block immediately before the earliest closing
// body tag, or appends it when the text has none. The block is inserted
// verbatim; callers own whatever indentation it needs.
func InsertBeforeBody(text, block string) string {
	loc := bodyCloseRE.FindStringIndex(text)
	if loc == nil {
		return text + block
	}
	return text[:loc[0]] + block + text[loc[0]:]
}

// UpsertBlock recomputes a begin/end delimited block. An existing pair is
// replaced in place, keeping the author's placement. Otherwise the block is
// inserted before the earliest closing body tag, indented for a direct
// child of <body>, or appended on its own line when no such tag exists.
// More than one existing pair returns ErrAmbiguous.
func UpsertBlock(text, begin, end, block string) (string, error) {
	re := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(begin) + `.*?` + regexp.QuoteMeta(end))
	switch m, err := FindOne(text, re); {
	case err == nil:
		return Replace(text, m.Start(), m.End(), block), nil
	case errors.Is(err, ErrAmbiguous):
		return "", err
	}
	if loc := bodyCloseRE.FindStringIndex(text); loc != nil {
		return text[:loc[0]] + "\n    " + block + "\n  " + text[loc[0]:], nil
	}
	return text + "\n" + block + "\n", nil
}
