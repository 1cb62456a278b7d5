// Package diagram renders a commit graph as diagram text.
package diagram

import (
	"strconv"
	"strings"

	"github.com/masmgr/commitgraph-go/internal/graph"
)

const (
	documentStart = "@startuml"
	documentEnd   = "@enduml"
	graphStart    = "digraph G {"
	graphEnd      = "}"
)

// EmitPlantUML renders edges as a PlantUML digraph, one edge per line in
// input order. The result has no trailing newline.
func EmitPlantUML(edges []graph.Edge) string {
	lines := make([]string, 0, len(edges)+4)
	lines = append(lines, documentStart)
	lines = append(lines, digraphLines(edges)...)
	lines = append(lines, documentEnd)
	return strings.Join(lines, "\n")
}

// EmitDOT renders edges as a bare Graphviz digraph.
func EmitDOT(edges []graph.Edge) string {
	return strings.Join(digraphLines(edges), "\n")
}

func digraphLines(edges []graph.Edge) []string {
	lines := make([]string, 0, len(edges)+2)
	lines = append(lines, graphStart)
	for _, e := range edges {
		lines = append(lines, edgeLine(e))
	}
	lines = append(lines, graphEnd)
	return lines
}

func edgeLine(e graph.Edge) string {
	var b strings.Builder
	b.WriteString(`  "`)
	b.WriteString(strconv.Itoa(e.Parent))
	b.WriteString(`" -> "`)
	b.WriteString(strconv.Itoa(e.Child))
	b.WriteString(`"`)
	return b.String()
}
