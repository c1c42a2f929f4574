// Package assets provides the page shells used to generate index.html and
// print.html.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	ShellLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in shells)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── ShellResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in index and print shells embedded at
// compile time, so the binary works with no support files installed.
//
// FilesystemLoader serves the --shell-dir override, with path traversal
// protection and symlink resolution.
//
// ShellResolver is the loader the build service uses. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the shell is
// not found. A deck can override just one shell and inherit the other.
//
// # Directory Structure
//
// A custom shell directory is flat:
//
//	{shell-dir}/
//	├── index.tmpl    # deck index page (table of contents)
//	└── print.tmpl    # single-page printable deck
//
// Shell templates receive the data structures defined in internal/pipeline;
// see the built-in shells for the fields available to each page.
package assets
