package manifest

import (
	"fmt"
	"strings"
)

// Engine selects which math typesetting loader a page gets.
type Engine int

const (
	// EngineNone loads no math engine.
	EngineNone Engine = iota
	// EngineKaTeX loads the KaTeX setup script.
	EngineKaTeX
	// EngineMathJax loads the MathJax setup script.
	EngineMathJax
)

// String returns the canonical lowercase engine name.
func (e Engine) String() string {
	switch e {
	case EngineKaTeX:
		return "katex"
	case EngineMathJax:
		return "mathjax"
	default:
		return "none"
	}
}

// EngineAliases lists every accepted manifest spelling, grouped by engine.
// Hint text is built from this list so the parser and the error message
// cannot drift apart.
var EngineAliases = []string{"katex", "tex", "mathjax", "mj", "none", "off", "false", "0"}

// ParseEngine maps a manifest spelling to an Engine. The accepted set is
// closed: anything outside EngineAliases is ErrUnknownMathEngine, at deck
// level and slide level alike. Matching ignores case and surrounding
// whitespace. Callers treat an absent or empty value as "no override"
// before parsing; empty input here is an error.
func ParseEngine(alias string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(alias)) {
	case "katex", "tex":
		return EngineKaTeX, nil
	case "mathjax", "mj":
		return EngineMathJax, nil
	case "none", "off", "false", "0":
		return EngineNone, nil
	default:
		return EngineNone, fmt.Errorf("%w: %q", ErrUnknownMathEngine, alias)
	}
}
