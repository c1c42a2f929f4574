package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	deckbuild "github.com/TheRonzor/data101-s26-slides"
	"github.com/TheRonzor/data101-s26-slides/internal/server"
	flag "github.com/spf13/pflag"
)

// runBuildCmd executes the build command and returns an exit code.
func runBuildCmd(args []string, env *Environment) int {
	flags, pos, err := parseBuildFlags(args)
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

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if flags.watch {
		return runBuildWatch(ctx, flags, env)
	}

	summary, err := buildDeck(ctx, &flags.deck)
	if err != nil {
		printError(env.Stderr, err, flags.deck.dir)
		return exitCodeFor(err)
	}

	printBuildSummary(env.Stdout, summary, flags.output)
	return ExitSuccess
}

// runBuildWatch rebuilds the deck after every edit until interrupted. An
// initial build failure does not end the watch; the next edit retries.
func runBuildWatch(ctx context.Context, flags *buildFlags, env *Environment) int {
	// The watcher logs through the standard logger.
	log.SetOutput(env.Stderr)

	svc, err := deckbuild.New(deckbuild.WithShellDir(flags.deck.shellDir))
	if err != nil {
		printError(env.Stderr, err, flags.deck.dir)
		return exitCodeFor(err)
	}
	input := deckbuild.Input{Dir: flags.deck.dir, Manifest: flags.deck.manifest}

	if summary, err := svc.Build(ctx, input); err != nil {
		printError(env.Stderr, err, flags.deck.dir)
	} else {
		printBuildSummary(env.Stdout, summary, flags.output)
	}

	root := flags.deck.dir
	if root == "" {
		root = "."
	}
	watcher, err := server.NewWatcher(root, func(string) error {
		summary, err := svc.Build(ctx, input)
		if err != nil {
			// Print with hints; the watcher would log the error bare.
			printError(env.Stderr, err, flags.deck.dir)
			return nil
		}
		printBuildSummary(env.Stdout, summary, flags.output)
		return nil
	})
	if err != nil {
		printError(env.Stderr, err, flags.deck.dir)
		return exitCodeFor(err)
	}
	defer watcher.Close()

	// A shell directory outside the deck root needs its own watch.
	if flags.deck.shellDir != "" {
		if err := watcher.WatchTree(flags.deck.shellDir); err != nil {
			log.Printf("[watch] shell dir: %v", err)
		}
	}

	if !flags.output.quiet {
		fmt.Fprintf(env.Stdout, "Watching %s for changes (Ctrl+C to stop)\n", root)
	}
	watcher.Run(ctx)
	return ExitSuccess
}

// buildDeck constructs a service from the deck flags and runs one build.
func buildDeck(ctx context.Context, deck *deckFlags) (*deckbuild.Summary, error) {
	svc, err := deckbuild.New(deckbuild.WithShellDir(deck.shellDir))
	if err != nil {
		return nil, err
	}
	return svc.Build(ctx, deckbuild.Input{Dir: deck.dir, Manifest: deck.manifest})
}

// printBuildSummary reports a successful build: one line normally, plus a
// per-file changed/unchanged listing when verbose.
func printBuildSummary(w io.Writer, s *deckbuild.Summary, out outputFlags) {
	if out.quiet {
		return
	}
	if out.verbose {
		for _, slide := range s.Slides {
			fmt.Fprintf(w, "%s: %s\n", slide.File, changeWord(slide.Changed))
		}
		fmt.Fprintf(w, "%s: %s\n", s.IndexPath, changeWord(s.IndexChanged))
		fmt.Fprintf(w, "%s: %s\n", s.PrintPath, changeWord(s.PrintChanged))
	}
	fmt.Fprintf(w, "OK: updated %d slide files (nav + auto scripts); wrote index.html and print.html.\n", len(s.Slides))
}

func changeWord(changed bool) string {
	if changed {
		return "rewritten"
	}
	return "unchanged"
}
