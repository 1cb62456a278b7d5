// Package graph turns commit listings into an ordinal-numbered edge list.
package graph

import (
	"strings"

	"github.com/masmgr/commitgraph-go/internal/history"
)

// Ordinals maps a commit identifier to its chronological position.
// Higher ordinals are newer.
type Ordinals map[string]int

// Edge is a parent-precedes-child relationship between two ordinals.
type Edge struct {
	Parent int
	Child  int
}

// CommitGraph is the ordered edge list built from one history read.
type CommitGraph struct {
	Edges    []Edge
	Ordinals Ordinals
}

// Commits returns the number of distinct commits in the graph.
func (g *CommitGraph) Commits() int {
	return len(g.Ordinals)
}

// AssignOrdinals numbers identifiers listed newest-first. The first entry
// receives len(ids) and every further unique identifier one less than the
// previous. Repeated identifiers keep the ordinal of their first occurrence.
func AssignOrdinals(ids []string) Ordinals {
	ordinals := make(Ordinals, len(ids))
	next := len(ids)
	for _, id := range ids {
		if _, ok := ordinals[id]; ok {
			continue
		}
		ordinals[id] = next
		next--
	}
	return ordinals
}

// ExtractEdges walks ancestry records oldest-first and emits one edge per
// parent, in the order the parents appear on the record.
func ExtractEdges(ancestry []string, ordinals Ordinals) ([]Edge, error) {
	edges := make([]Edge, 0, len(ancestry))

	for i := len(ancestry) - 1; i >= 0; i-- {
		record := ancestry[i]
		fields := strings.Fields(record)
		if len(fields) == 0 {
			continue
		}

		mapped := make([]int, len(fields))
		for j, id := range fields {
			ord, ok := ordinals[id]
			if !ok {
				return nil, &UnknownCommitError{ID: id, Record: record}
			}
			mapped[j] = ord
		}

		child := mapped[0]
		for _, parent := range mapped[1:] {
			edges = append(edges, Edge{Parent: parent, Child: child})
		}
	}

	return edges, nil
}

// Build assigns ordinals and extracts edges from a loaded history.
func Build(h *history.History) (*CommitGraph, error) {
	if h == nil {
		h = &history.History{}
	}

	ordinals := AssignOrdinals(h.Identifiers)
	edges, err := ExtractEdges(h.Ancestry, ordinals)
	if err != nil {
		return nil, err
	}

	return &CommitGraph{Edges: edges, Ordinals: ordinals}, nil
}
