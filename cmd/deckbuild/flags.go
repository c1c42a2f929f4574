package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// defaultAddr is the serve listen address when neither --addr nor
// DECKBUILD_ADDR is set.
const defaultAddr = ":8080"

// ErrUnexpectedArgument is returned when a command receives more
// positional arguments than it accepts.
var ErrUnexpectedArgument = errors.New("unexpected argument")

// deckFlags holds flags shared by every command that reads a deck.
type deckFlags struct {
	dir      string
	manifest string
	shellDir string
}

// outputFlags holds output verbosity flags.
type outputFlags struct {
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	deck   deckFlags
	output outputFlags
	watch  bool
}

// checkFlags holds all flags for the check command.
type checkFlags struct {
	deck       deckFlags
	jsonOutput bool
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	deck    deckFlags
	output  outputFlags
	addr    string
	noWatch bool
}

// addDeckFlags adds deck location flags to a FlagSet.
func addDeckFlags(fs *flag.FlagSet, f *deckFlags) {
	fs.StringVarP(&f.dir, "dir", "C", "", "deck directory (default: current directory)")
	fs.StringVarP(&f.manifest, "manifest", "m", "", "manifest file name or path")
	fs.StringVar(&f.shellDir, "shell-dir", "", "directory with custom index/print page shells")
}

// addOutputFlags adds verbosity flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-slide detail")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	addDeckFlags(fs, &f.deck)
	addOutputFlags(fs, &f.output)
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild whenever deck files change")

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string) (*checkFlags, []string, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	f := &checkFlags{}

	addDeckFlags(fs, &f.deck)
	fs.BoolVar(&f.jsonOutput, "json", false, "machine-readable JSON output")

	fs.Usage = func() { printCheckUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string) (*serveFlags, []string, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	f := &serveFlags{}

	addDeckFlags(fs, &f.deck)
	addOutputFlags(fs, &f.output)
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default \":8080\")")
	fs.BoolVar(&f.noWatch, "no-watch", false, "disable the file watcher and rebuild-on-change")

	fs.Usage = func() { printServeUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// applyPositionalDir applies an optional positional deck directory.
// A positional directory wins over -C so that "deckbuild build ~/deck"
// does the obvious thing.
func applyPositionalDir(f *deckFlags, pos []string) error {
	switch len(pos) {
	case 0:
		return nil
	case 1:
		f.dir = pos[0]
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnexpectedArgument, pos[1])
	}
}
