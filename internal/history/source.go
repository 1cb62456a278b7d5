package history

import "fmt"

// Backend selects how history is read.
type Backend string

const (
	BackendGit   Backend = "git"
	BackendGoGit Backend = "go-git"
)

// ParseBackend parses a backend name. An empty name selects the git CLI.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "", "git", "cli":
		return BackendGit, nil
	case "go-git", "gogit", "native":
		return BackendGoGit, nil
	default:
		return "", fmt.Errorf("invalid history backend: %s (expected git or go-git)", s)
	}
}

// NewSource creates a history source for the given backend.
func NewSource(backend Backend, opts Options) (Source, error) {
	switch backend {
	case BackendGoGit:
		return NewGoGitSource(opts)
	default:
		return NewCLISource(opts)
	}
}
