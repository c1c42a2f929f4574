package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	deckbuild "github.com/TheRonzor/data101-s26-slides"
	"github.com/TheRonzor/data101-s26-slides/internal/assets"
	"github.com/TheRonzor/data101-s26-slides/internal/hints"
	"github.com/TheRonzor/data101-s26-slides/internal/manifest"
	"github.com/TheRonzor/data101-s26-slides/internal/pipeline"
)

// run dispatches to a command and returns the process exit code.
// A leading flag (or no arguments at all) runs the build command, so
// plain "deckbuild" and "deckbuild -C ~/deck" both work.
func run(args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr)

	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help":
			printUsage(env.Stdout)
			return ExitSuccess
		case "--version":
			fmt.Fprintf(env.Stdout, "deckbuild %s\n", Version)
			return ExitSuccess
		}
	}

	cmd := "build"
	rest := args
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd = args[0]
		rest = args[1:]
	}

	switch cmd {
	case "build":
		return runBuildCmd(rest, env)
	case "check":
		return runCheckCmd(rest, env)
	case "serve":
		return runServeCmd(rest, env)
	case "completion":
		return runCompletionCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "deckbuild %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// printError writes err to w with an actionable hint when one applies.
func printError(w io.Writer, err error, dir string) {
	fmt.Fprintf(w, "%v%s\n", err, hintFor(err, dir))
}

// hintFor picks the hint matching err, or "" when none applies.
func hintFor(err error, dir string) string {
	switch {
	case errors.Is(err, manifest.ErrManifestNotFound):
		return hints.ForManifestNotFound(dir)
	case errors.Is(err, manifest.ErrUnknownMathEngine):
		return hints.ForUnknownEngine()
	case errors.Is(err, pipeline.ErrMissingFooter):
		return hints.ForMissingFooter()
	case errors.Is(err, pipeline.ErrMissingBody):
		return hints.ForMissingBody()
	case errors.Is(err, deckbuild.ErrSlideNotFound):
		return hints.ForSlideNotFound()
	case errors.Is(err, assets.ErrShellNotFound):
		return hints.ForShellNotFound([]string{assets.ShellIndex, assets.ShellPrint})
	default:
		return ""
	}
}
