package deckbuild

// Input identifies the deck to operate on.
type Input struct {
	Dir      string // deck root directory; empty means the current directory
	Manifest string // explicit manifest path; empty means discover inside Dir
}

// SlideResult reports the outcome for one slide file.
type SlideResult struct {
	File    string // deck-root-relative path from the manifest
	Changed bool   // bytes on disk differed after the rewrite
}

// Summary reports what a build touched. Slides follow manifest order.
type Summary struct {
	ManifestPath string
	Slides       []SlideResult
	Rewritten    int // slides whose bytes changed on disk
	IndexPath    string
	IndexChanged bool
	PrintPath    string
	PrintChanged bool
}

// ShellLoader supplies page shell templates by name. The build requests
// the shells "index" and "print". assets.ShellResolver satisfies this;
// tests may substitute their own.
type ShellLoader interface {
	LoadShell(name string) (string, error)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	shellDir string
}

// WithShellDir overrides the embedded page shells with templates from dir.
// Shells missing from dir fall back to the embedded ones.
func WithShellDir(dir string) Option {
	return func(s *Service) {
		s.cfg.shellDir = dir
	}
}

// WithShellLoader injects a shell loader directly, bypassing directory
// resolution entirely.
func WithShellLoader(l ShellLoader) Option {
	return func(s *Service) {
		s.shells = l
	}
}
