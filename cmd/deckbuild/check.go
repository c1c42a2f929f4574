package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	deckbuild "github.com/TheRonzor/data101-s26-slides"
	flag "github.com/spf13/pflag"
)

// runCheckCmd executes the check command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runCheckCmd(args []string, env *Environment) int {
	flags, pos, err := parseCheckFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if err := applyPositionalDir(&flags.deck, pos); err != nil {
		printError(env.Stderr, err, "")
		return ExitUsage
	}
	applyEnvToDeckFlags(loadEnvConfig(), &flags.deck)

	svc, err := deckbuild.New(deckbuild.WithShellDir(flags.deck.shellDir))
	if err != nil {
		printError(env.Stderr, err, flags.deck.dir)
		return exitCodeFor(err)
	}

	input := deckbuild.Input{Dir: flags.deck.dir, Manifest: flags.deck.manifest}
	result := svc.Check(context.Background(), input)

	if flags.jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printCheckResult(env.Stdout, result)
	}

	if result.Status == deckbuild.StatusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// printCheckResult outputs human-readable check results.
func printCheckResult(w io.Writer, r *deckbuild.CheckResult) {
	fmt.Fprintln(w, "deckbuild check")
	fmt.Fprintln(w)

	// Manifest section
	fmt.Fprintln(w, "Manifest")
	if r.Manifest != "" {
		fmt.Fprintf(w, "  [OK] Found %s\n", r.Manifest)
		if r.Title != "" {
			fmt.Fprintf(w, "  [OK] Title: %s\n", r.Title)
		}
		if len(r.Slides) > 0 {
			fmt.Fprintf(w, "  [OK] Slides: %d\n", len(r.Slides))
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	// Page shells section
	fmt.Fprintln(w, "Page Shells")
	if r.Shells {
		fmt.Fprintln(w, "  [OK] index and print shells parse")
	} else {
		fmt.Fprintln(w, "  [ERROR] Shells failed to load")
	}
	fmt.Fprintln(w)

	// Per-slide section
	if len(r.Slides) > 0 {
		fmt.Fprintln(w, "Slides")
		for _, s := range r.Slides {
			fmt.Fprintf(w, "  %s %s\n", slideMark(s), s.File)
		}
		fmt.Fprintln(w)
	}

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case deckbuild.StatusOK:
		fmt.Fprintln(w, "Status: Deck is ready to build")
	case deckbuild.StatusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case deckbuild.StatusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// slideMark returns the status marker for one slide line. A missing
// auto-scripts block is only a warning; the next build inserts it.
func slideMark(s deckbuild.SlideCheck) string {
	switch {
	case !s.Exists || !s.Footer || !s.Body:
		return "[ERROR]"
	case !s.Block:
		return "[WARN]"
	default:
		return "[OK]"
	}
}
