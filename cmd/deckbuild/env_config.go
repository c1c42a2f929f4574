package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without repeating flags.
type envConfig struct {
	Dir      string // DECKBUILD_DIR: deck directory
	Manifest string // DECKBUILD_MANIFEST: manifest file name or path
	ShellDir string // DECKBUILD_SHELL_DIR: custom page shell directory
	Addr     string // DECKBUILD_ADDR: serve listen address
}

// knownEnvVars lists valid DECKBUILD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DECKBUILD_DIR":       true,
	"DECKBUILD_MANIFEST":  true,
	"DECKBUILD_SHELL_DIR": true,
	"DECKBUILD_ADDR":      true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		Dir:      os.Getenv("DECKBUILD_DIR"),
		Manifest: os.Getenv("DECKBUILD_MANIFEST"),
		ShellDir: os.Getenv("DECKBUILD_SHELL_DIR"),
		Addr:     os.Getenv("DECKBUILD_ADDR"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized DECKBUILD_* variables.
// Helps catch typos like DECKBUILD_MANFEST instead of DECKBUILD_MANIFEST.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "DECKBUILD_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvToDeckFlags applies environment values to deck flags.
// Only sets values if the env var is set AND the flag was left empty,
// so CLI flags always win over the environment.
func applyEnvToDeckFlags(env *envConfig, f *deckFlags) {
	if env.Dir != "" && f.dir == "" {
		f.dir = env.Dir
	}
	if env.Manifest != "" && f.manifest == "" {
		f.manifest = env.Manifest
	}
	if env.ShellDir != "" && f.shellDir == "" {
		f.shellDir = env.ShellDir
	}
}

// applyEnvToServeFlags applies environment values to serve flags,
// including the deck flags it embeds.
func applyEnvToServeFlags(env *envConfig, f *serveFlags) {
	applyEnvToDeckFlags(env, &f.deck)
	if env.Addr != "" && f.addr == "" {
		f.addr = env.Addr
	}
}
