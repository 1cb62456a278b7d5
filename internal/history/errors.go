package history

import (
	"errors"
	"fmt"
)

// Operation names carried by QueryError.
const (
	OpOpenRepository  = "open repository"
	OpResolveRefs     = "resolve refs"
	OpListIdentifiers = "list identifiers"
	OpListAncestry    = "list ancestry"
	OpListHistory     = "list history"
)

// ErrNotRepository reports a repository location that holds no git repository.
var ErrNotRepository = errors.New("not a git repository")

// QueryError reports a failed history query. No partial result accompanies it.
type QueryError struct {
	Op     string
	Output string // Trimmed output of the failed command, if any
	Err    error
}

func (e *QueryError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("history query %q failed: %v: %s", e.Op, e.Err, e.Output)
	}
	return fmt.Sprintf("history query %q failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
