package history

import "context"

// Source defines the interface for reading commit ancestry from a repository.
// This abstraction allows for easier testing and alternative backends.
type Source interface {
	// Load queries the repository and returns both listings.
	Load(ctx context.Context) (*History, error)
}

// Compile-time interface conformance checks.
var (
	_ Source = (*CLISource)(nil)
	_ Source = (*GoGitSource)(nil)
	_ Source = (*MockSource)(nil)
)
