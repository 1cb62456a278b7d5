package graph

import (
	"strings"

	"github.com/masmgr/commitgraph-go/internal/history"
)

// Stats summarizes the shape of a commit history.
type Stats struct {
	Commits int // Distinct commits
	Edges   int
	Roots   int // Records without parents
	Merges  int // Records with two or more parents
}

// Summarize counts commits, edges, roots and merges of a loaded history.
func Summarize(h *history.History, g *CommitGraph) Stats {
	s := Stats{
		Commits: g.Commits(),
		Edges:   len(g.Edges),
	}
	if h == nil {
		return s
	}

	for _, record := range h.Ancestry {
		fields := strings.Fields(record)
		switch {
		case len(fields) == 1:
			s.Roots++
		case len(fields) > 2:
			s.Merges++
		}
	}
	return s
}
