package diagram

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/masmgr/commitgraph-go/internal/graph"
)

// Compile-time interface conformance checks.
var (
	_ Emitter = (*PlantUMLEmitter)(nil)
	_ Emitter = (*DOTEmitter)(nil)
	_ Emitter = (*JSONEmitter)(nil)
	_ Emitter = (*CSVEmitter)(nil)
)

// Format represents the diagram output format.
type Format string

const (
	FormatPlantUML Format = "plantuml"
	FormatDOT      Format = "dot"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
)

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatDOT:
		return ".dot"
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	default:
		return ".puml"
	}
}

// ParseFormat parses an output format name. An empty name selects PlantUML.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "plantuml", "puml", "uml":
		return FormatPlantUML, nil
	case "dot", "graphviz":
		return FormatDOT, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (expected plantuml, dot, json or csv)", s)
	}
}

// Emitter renders a commit graph as text.
type Emitter interface {
	Emit(g *graph.CommitGraph) (string, error)
}

// NewEmitter creates an emitter for the specified format.
func NewEmitter(format Format) Emitter {
	switch format {
	case FormatDOT:
		return &DOTEmitter{}
	case FormatJSON:
		return &JSONEmitter{}
	case FormatCSV:
		return &CSVEmitter{}
	default:
		return &PlantUMLEmitter{}
	}
}

// PlantUMLEmitter writes the PlantUML digraph consumed by the renderer.
type PlantUMLEmitter struct{}

func (e *PlantUMLEmitter) Emit(g *graph.CommitGraph) (string, error) {
	return EmitPlantUML(g.Edges), nil
}

// DOTEmitter writes a plain Graphviz digraph.
type DOTEmitter struct{}

func (e *DOTEmitter) Emit(g *graph.CommitGraph) (string, error) {
	return EmitDOT(g.Edges), nil
}

// JSONEmitter writes the edge list as a JSON document.
type JSONEmitter struct{}

// JSONGraph is the JSON output structure for a commit graph.
type JSONGraph struct {
	Commits int        `json:"commits"`
	Edges   []JSONEdge `json:"edges"`
}

// JSONEdge is the JSON output structure for a single edge.
type JSONEdge struct {
	Parent int `json:"parent"`
	Child  int `json:"child"`
}

func (e *JSONEmitter) Emit(g *graph.CommitGraph) (string, error) {
	out := JSONGraph{
		Commits: g.Commits(),
		Edges:   make([]JSONEdge, len(g.Edges)),
	}
	for i, edge := range g.Edges {
		out.Edges[i] = JSONEdge{Parent: edge.Parent, Child: edge.Child}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CSVEmitter writes the edge list as parent,child rows.
type CSVEmitter struct{}

func (e *CSVEmitter) Emit(g *graph.CommitGraph) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"parent", "child"}); err != nil {
		return "", err
	}
	for _, edge := range g.Edges {
		if err := w.Write([]string{strconv.Itoa(edge.Parent), strconv.Itoa(edge.Child)}); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
