package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckbuild [command] [flags] [dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Rewrite slide nav and script blocks; generate index and print pages (default)")
	fmt.Fprintln(w, "  check       Validate the manifest and slide structure without writing")
	fmt.Fprintln(w, "  serve       Serve the deck locally with rebuild-on-change and live reload")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, deckbuild runs build in the current directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DECKBUILD_DIR        Deck directory (same as -C)")
	fmt.Fprintln(w, "  DECKBUILD_MANIFEST   Manifest file name or path (same as -m)")
	fmt.Fprintln(w, "  DECKBUILD_SHELL_DIR  Custom page shell directory (same as --shell-dir)")
	fmt.Fprintln(w, "  DECKBUILD_ADDR       Serve listen address (same as --addr)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'deckbuild help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckbuild build [flags] [dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite every slide's nav footer and auto-script block in place, then")
	fmt.Fprintln(w, "generate index.html and print.html at the deck root. Running build a")
	fmt.Fprintln(w, "second time changes nothing.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Deck directory (optional, default: current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Deck:")
	fmt.Fprintln(w, "  -C, --dir <path>        Deck directory")
	fmt.Fprintln(w, "  -m, --manifest <path>   Manifest file name or path (default: deck.yaml)")
	fmt.Fprintln(w, "      --shell-dir <path>  Directory with custom index/print page shells")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Watch:")
	fmt.Fprintln(w, "  -w, --watch             Keep running and rebuild whenever deck files change")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show per-slide detail")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckbuild check [flags] [dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validate the deck without writing anything: the manifest must parse,")
	fmt.Fprintln(w, "every listed slide must exist, and each slide must carry the footer and")
	fmt.Fprintln(w, "body regions the build rewrites.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Deck directory (optional, default: current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Deck:")
	fmt.Fprintln(w, "  -C, --dir <path>        Deck directory")
	fmt.Fprintln(w, "  -m, --manifest <path>   Manifest file name or path (default: deck.yaml)")
	fmt.Fprintln(w, "      --shell-dir <path>  Directory with custom index/print page shells")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --json              Machine-readable JSON output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit status is 1 when errors are found, 0 otherwise.")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckbuild serve [flags] [dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the deck, serve it over HTTP, and rebuild whenever a slide,")
	fmt.Fprintln(w, "manifest, stylesheet, or page shell changes. Connected browsers reload")
	fmt.Fprintln(w, "automatically. Intended for authoring; the generated deck needs no")
	fmt.Fprintln(w, "server in production.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Deck directory (optional, default: current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Deck:")
	fmt.Fprintln(w, "  -C, --dir <path>        Deck directory")
	fmt.Fprintln(w, "  -m, --manifest <path>   Manifest file name or path (default: deck.yaml)")
	fmt.Fprintln(w, "      --shell-dir <path>  Directory with custom index/print page shells")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -a, --addr <addr>       Listen address (default \":8080\")")
	fmt.Fprintln(w, "      --no-watch          Disable the file watcher and rebuild-on-change")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show per-slide detail")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: deckbuild version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: deckbuild help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
