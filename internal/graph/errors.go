package graph

import "fmt"

// UnknownCommitError reports an ancestry record that references a commit
// missing from the identifier listing.
type UnknownCommitError struct {
	ID     string
	Record string
}

func (e *UnknownCommitError) Error() string {
	return fmt.Sprintf("unknown commit %q in ancestry record %q", e.ID, e.Record)
}
