package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	deckbuild "github.com/TheRonzor/data101-s26-slides"
	"github.com/TheRonzor/data101-s26-slides/internal/server"
	flag "github.com/spf13/pflag"
)

// runServeCmd executes the serve command and returns an exit code.
func runServeCmd(args []string, env *Environment) int {
	flags, pos, err := parseServeFlags(args)
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
	applyEnvToServeFlags(loadEnvConfig(), flags)
	if flags.addr == "" {
		flags.addr = defaultAddr
	}
	root := flags.deck.dir
	if root == "" {
		root = "."
	}

	// The server and watcher log through the standard logger.
	log.SetOutput(env.Stderr)

	svc, err := deckbuild.New(deckbuild.WithShellDir(flags.deck.shellDir))
	if err != nil {
		printError(env.Stderr, err, flags.deck.dir)
		return exitCodeFor(err)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	input := deckbuild.Input{Dir: flags.deck.dir, Manifest: flags.deck.manifest}

	// Initial build. Failure is not fatal: serving continues and the
	// watcher rebuilds after the next edit.
	if summary, err := svc.Build(ctx, input); err != nil {
		printError(env.Stderr, err, flags.deck.dir)
	} else {
		printBuildSummary(env.Stdout, summary, flags.output)
	}

	srv := server.New(server.Config{Addr: flags.addr, Root: root})

	if !flags.noWatch {
		watcher, err := server.NewWatcher(root, func(path string) error {
			if _, err := svc.Build(ctx, input); err != nil {
				return err
			}
			srv.BroadcastReload(path)
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

		go watcher.Run(ctx)
	}

	if !flags.output.quiet {
		fmt.Fprintf(env.Stdout, "Serving %s on http://%s (Ctrl+C to stop)\n", root, displayAddr(flags.addr))
	}

	if err := srv.Run(ctx); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitGeneral
	}
	return ExitSuccess
}

// displayAddr renders a listen address for display; a bare ":8080"
// shows as "localhost:8080".
func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
