package diagram

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/masmgr/commitgraph-go/internal/graph"
)

var edgePattern = regexp.MustCompile(`^\s*"(-?\d+)"\s*->\s*"(-?\d+)"\s*$`)

// ParseEdges reads the edge lines back out of PlantUML or DOT text.
// Lines that are not edges are skipped.
func ParseEdges(text string) ([]graph.Edge, error) {
	var edges []graph.Edge
	for i, line := range strings.Split(text, "\n") {
		m := edgePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		parent, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: parse parent ordinal: %w", i+1, err)
		}
		child, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: parse child ordinal: %w", i+1, err)
		}
		edges = append(edges, graph.Edge{Parent: parent, Child: child})
	}
	return edges, nil
}
