// Package deckbuild wires a hand-authored HTML slide deck together from a
// manifest: per-slide navigation, math and script loaders, a table of
// contents, and a printable single page.
//
// Slides stay plain HTML files that open directly via file:// or any
// static host. All linking is baked in by the build, so nothing depends
// on fetch() or ES modules at view time.
//
// # Quick Start
//
// Create a service and build the deck in place:
//
//	svc, err := deckbuild.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := svc.Build(ctx, deckbuild.Input{Dir: "."})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("rewrote %d of %d slides\n", summary.Rewritten, len(summary.Slides))
//
// # Build Pipeline
//
// The build follows these stages:
//
//  1. Load and validate the manifest (deck.yaml, deck.yml, or deck.json)
//  2. Rewrite each slide in place: nav footer + auto-scripts block
//  3. Render the deck description via Goldmark (GFM, syntax highlighting)
//  4. Generate index.html (table of contents) and print.html (one page)
//
// # The Manifest
//
// The manifest lists the slides in order and sets deck-wide defaults:
//
//	title: Data 101
//	theme: assets/theme.css
//	math:
//	  engine: katex
//	slides:
//	  - file: slides/01-intro.html
//	    title: Introduction
//	  - file: slides/02-math.html
//	    math: mathjax
//	    scripts:
//	      - src: assets/demo.js
//	        defer: true
//
// Per-slide math overrides the deck engine; scripts accepts bare src
// strings or mappings with type/defer/async attributes.
//
// # Machine-Owned Regions
//
// Each slide carries two regions the build owns and recomputes:
//
//	<footer class="slide-nav" data-auto-nav> ... </footer>
//	<!-- AUTO-SCRIPTS:BEGIN --> ... <!-- AUTO-SCRIPTS:END -->
//
// Everything outside them belongs to the author and is never touched.
// The rewrite is convergent: building an already built deck changes no
// bytes, and files are only written when their content differs.
//
// # Checking
//
// Check performs the same analysis without writing, collecting every
// problem instead of stopping at the first:
//
//	result := svc.Check(ctx, deckbuild.Input{Dir: "."})
//	if result.Status != deckbuild.StatusOK {
//	    for _, e := range result.Errors {
//	        fmt.Println(e)
//	    }
//	}
//
// # Custom Shells
//
// The generated pages are rendered from embedded shell templates.
// Override them per deck with a shell directory:
//
//	svc, err := deckbuild.New(deckbuild.WithShellDir("shells"))
//
// Shell directory structure (missing shells fall back to embedded):
//
//	shells/
//	├── index.tmpl
//	└── print.tmpl
package deckbuild
