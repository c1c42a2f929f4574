// Package pipeline implements the deck build pipeline.
//
// This package handles the per-slide and whole-deck stages:
//   - Slide region rewriting (auto-nav footer, auto-scripts block)
//   - Index page assembly from the deck manifest
//   - Print page assembly from the rewritten slide bodies
//   - Deck description rendering via Goldmark
//
// Slides are hand-authored HTML and stay that way: rewriting recomputes
// the machine-owned regions in place and leaves every other byte alone.
// Manifest loading and file I/O are handled by the callers; the pipeline
// works on in-memory text so the same pass serves the builder, the
// validator, and the dev server rebuilds.
package pipeline
