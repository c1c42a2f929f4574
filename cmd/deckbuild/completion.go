package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// completionShells lists the shells offered when completing the
// completion command itself.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --manifest
	Short    string   // -m (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name     string
	Desc     string
	Flags    []flagDef
	TakesDir bool // accepts a deck directory argument
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// File flags with glob patterns
	"manifest": {FileGlob: "*.yaml,*.yml,*.json"},

	// Directory flags
	"dir":       {IsDir: true},
	"shell-dir": {IsDir: true},
}

// buildBuildFlagSet creates a FlagSet with all build command flags.
// This reuses the same flag registration as parseBuildFlags.
func buildBuildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}
	addDeckFlags(fs, &f.deck)
	addOutputFlags(fs, &f.output)
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild whenever deck files change")
	return fs
}

// buildCheckFlagSet creates a FlagSet with all check command flags.
func buildCheckFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	f := &checkFlags{}
	addDeckFlags(fs, &f.deck)
	fs.BoolVar(&f.jsonOutput, "json", false, "machine-readable JSON output")
	return fs
}

// buildServeFlagSet creates a FlagSet with all serve command flags.
func buildServeFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	f := &serveFlags{}
	addDeckFlags(fs, &f.deck)
	addOutputFlags(fs, &f.output)
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address")
	fs.BoolVar(&f.noWatch, "no-watch", false, "disable the file watcher and rebuild-on-change")
	return fs
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets - single source of truth.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:     "build",
			Desc:     "Rewrite slide nav and scripts; generate index and print pages",
			Flags:    extractFlagsFromFlagSet(buildBuildFlagSet()),
			TakesDir: true,
		},
		{
			Name:     "check",
			Desc:     "Validate the manifest and slide structure without writing",
			Flags:    extractFlagsFromFlagSet(buildCheckFlagSet()),
			TakesDir: true,
		},
		{
			Name:     "serve",
			Desc:     "Serve the deck with rebuild-on-change and live reload",
			Flags:    extractFlagsFromFlagSet(buildServeFlagSet()),
			TakesDir: true,
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
		},
	}
}

// commandNames returns the names of all commands, in registry order.
func commandNames(commands []commandDef) []string {
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name)
	}
	return names
}

// longFlagSpellings returns the --long spellings of flags.
func longFlagSpellings(flags []flagDef) []string {
	words := make([]string, 0, len(flags))
	for _, f := range flags {
		words = append(words, "--"+f.Long)
	}
	return words
}

// flagsOfType collects every spelling of flags of one type across all
// commands, short forms first, without duplicates.
func flagsOfType(commands []commandDef, t flagType) []string {
	seen := make(map[string]bool)
	var words []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			words = append(words, s)
		}
	}
	for _, cmd := range commands {
		for _, f := range cmd.Flags {
			if f.Type != t {
				continue
			}
			if f.Short != "" {
				add("-" + f.Short)
			}
			add("--" + f.Long)
		}
	}
	return words
}

// GenerateCompletion writes a shell completion script to w.
// Returns an error if shell is unsupported or the write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// generateBash writes the bash completion script.
func generateBash(w io.Writer) error {
	commands := getCommands()
	names := strings.Join(commandNames(commands), " ")
	dirFlags := strings.Join(flagsOfType(commands, flagDir), "|")
	fileFlags := strings.Join(flagsOfType(commands, flagFile), "|")

	var b strings.Builder
	b.WriteString("# bash completion for deckbuild\n")
	b.WriteString("# Load with: eval \"$(deckbuild completion bash)\"\n\n")
	b.WriteString("_deckbuild_completions() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	b.WriteString("    if [ \"$COMP_CWORD\" -eq 1 ]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", names)
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$prev\" in\n")
	fmt.Fprintf(&b, "        %s)\n", dirFlags)
	b.WriteString("            COMPREPLY=($(compgen -d -- \"$cur\"))\n")
	b.WriteString("            return\n")
	b.WriteString("            ;;\n")
	fmt.Fprintf(&b, "        %s)\n", fileFlags)
	b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
	b.WriteString("            return\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	for _, cmd := range commands {
		if len(cmd.Flags) == 0 {
			continue
		}
		words := strings.Join(longFlagSpellings(cmd.Flags), " ")
		fmt.Fprintf(&b, "        %s)\n", cmd.Name)
		if cmd.TakesDir {
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\") $(compgen -d -- \"$cur\"))\n", words)
		} else {
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", words)
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("        completion)\n")
	fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(completionShells, " "))
	b.WriteString("            ;;\n")
	b.WriteString("        help)\n")
	fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", names)
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _deckbuild_completions deckbuild\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshFlagSpec renders one _arguments spec line for a flag.
func zshFlagSpec(f flagDef) string {
	var action string
	switch f.Type {
	case flagDir:
		action = ":directory:_files -/"
	case flagFile:
		action = ":file:_files"
	case flagEnum:
		action = fmt.Sprintf(":value:(%s)", strings.Join(f.Values, " "))
	case flagBool:
		action = ""
	default:
		action = ":value:"
	}
	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, f.Desc, action)
}

// generateZsh writes the zsh completion script.
func generateZsh(w io.Writer) error {
	commands := getCommands()

	var b strings.Builder
	b.WriteString("#compdef deckbuild\n")
	b.WriteString("# zsh completion for deckbuild\n")
	b.WriteString("# Load with: eval \"$(deckbuild completion zsh)\"\n\n")
	b.WriteString("_deckbuild() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", cmd.Name, cmd.Desc)
	}
	b.WriteString("    )\n\n")

	b.WriteString("    _arguments -C \\\n")
	b.WriteString("        '1: :->command' \\\n")
	b.WriteString("        '*:: :->args'\n\n")

	b.WriteString("    case $state in\n")
	b.WriteString("        command)\n")
	b.WriteString("            _describe 'command' commands\n")
	b.WriteString("            ;;\n")
	b.WriteString("        args)\n")
	b.WriteString("            case $words[1] in\n")
	for _, cmd := range commands {
		if len(cmd.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "                %s)\n", cmd.Name)
		b.WriteString("                    _arguments")
		for _, f := range cmd.Flags {
			b.WriteString(" \\\n                        ")
			b.WriteString(zshFlagSpec(f))
		}
		if cmd.TakesDir {
			b.WriteString(" \\\n                        '*:directory:_files -/'")
		}
		b.WriteString("\n")
		b.WriteString("                    ;;\n")
	}
	b.WriteString("                completion)\n")
	fmt.Fprintf(&b, "                    _arguments '1:shell:(%s)'\n", strings.Join(completionShells, " "))
	b.WriteString("                    ;;\n")
	b.WriteString("                help)\n")
	fmt.Fprintf(&b, "                    _arguments '1:command:(%s)'\n", strings.Join(commandNames(commands), " "))
	b.WriteString("                    ;;\n")
	b.WriteString("            esac\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _deckbuild deckbuild\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// generateFish writes the fish completion script.
func generateFish(w io.Writer) error {
	commands := getCommands()

	var b strings.Builder
	b.WriteString("# fish completion for deckbuild\n")
	b.WriteString("# Install with: deckbuild completion fish > ~/.config/fish/completions/deckbuild.fish\n\n")

	b.WriteString("function __fish_deckbuild_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")

	b.WriteString("function __fish_deckbuild_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")

	b.WriteString("# Commands\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "complete -c deckbuild -f -n __fish_deckbuild_needs_command -a %s -d '%s'\n", cmd.Name, cmd.Desc)
	}
	b.WriteString("\n")

	for _, cmd := range commands {
		if len(cmd.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "# %s flags\n", cmd.Name)
		cond := fmt.Sprintf("'__fish_deckbuild_using_command %s'", cmd.Name)
		if cmd.TakesDir {
			fmt.Fprintf(&b, "complete -c deckbuild -n %s -a '(__fish_complete_directories)'\n", cond)
		}
		for _, f := range cmd.Flags {
			fmt.Fprintf(&b, "complete -c deckbuild -n %s", cond)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			fmt.Fprintf(&b, " -l %s", f.Long)
			switch f.Type {
			case flagDir:
				b.WriteString(" -r -a '(__fish_complete_directories)'")
			case flagFile:
				b.WriteString(" -r")
			case flagEnum:
				fmt.Fprintf(&b, " -r -a '%s'", strings.Join(f.Values, " "))
			case flagBool:
				// no argument
			default:
				b.WriteString(" -r")
			}
			fmt.Fprintf(&b, " -d '%s'\n", f.Desc)
		}
		b.WriteString("\n")
	}

	b.WriteString("# completion shells\n")
	fmt.Fprintf(&b, "complete -c deckbuild -f -n '__fish_deckbuild_using_command completion' -a '%s'\n", strings.Join(completionShells, " "))
	b.WriteString("# help topics\n")
	fmt.Fprintf(&b, "complete -c deckbuild -f -n '__fish_deckbuild_using_command help' -a '%s'\n", strings.Join(commandNames(commands), " "))

	_, err := io.WriteString(w, b.String())
	return err
}

// generatePowerShell writes the PowerShell completion script.
func generatePowerShell(w io.Writer) error {
	commands := getCommands()

	var b strings.Builder
	b.WriteString("# PowerShell completion for deckbuild\n")
	b.WriteString("# Load with: deckbuild completion powershell | Out-String | Invoke-Expression\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName deckbuild -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", cmd.Name, cmd.Desc)
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $commandFlags = @{\n")
	for _, cmd := range commands {
		if len(cmd.Flags) == 0 {
			continue
		}
		quoted := make([]string, 0, len(cmd.Flags))
		for _, word := range longFlagSpellings(cmd.Flags) {
			quoted = append(quoted, "'"+word+"'")
		}
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", cmd.Name, strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $elements = $commandAst.CommandElements\n")
	b.WriteString("    if ($elements.Count -le 1 -or ($elements.Count -eq 2 -and $wordToComplete)) {\n")
	b.WriteString("        $commands.GetEnumerator() | Where-Object { $_.Name -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterValue', $_.Value)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    $cmd = $elements[1].Value\n")
	b.WriteString("    if ($cmd -eq 'completion') {\n")
	quotedShells := make([]string, 0, len(completionShells))
	for _, shell := range completionShells {
		quotedShells = append(quotedShells, "'"+shell+"'")
	}
	fmt.Fprintf(&b, "        @(%s) | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n", strings.Join(quotedShells, ", "))
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    if ($commandFlags.ContainsKey($cmd)) {\n")
	b.WriteString("        $commandFlags[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletionCmd executes the completion command and returns an exit code.
func runCompletionCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return ExitSuccess
	}

	if err := GenerateCompletion(env.Stdout, Shell(args[0])); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckbuild completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(deckbuild completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(deckbuild completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    deckbuild completion fish > ~/.config/fish/completions/deckbuild.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    deckbuild completion powershell | Out-String | Invoke-Expression")
}
