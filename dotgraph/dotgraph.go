// Package dotgraph renders a bucketed edge list as a Graphviz DOT document.
//
// Every edge is labelled with its bucket (weight class); edges of a spanning
// forest, when given, are drawn bold and coloured so the sweep's choices
// stand out. Meant for small graphs: the output grows with the edge count.
package dotgraph

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/katalvlaran/dsubench"
	"github.com/katalvlaran/dsubench/bucketed"
)

// ErrNilList is returned when Render gets a nil list.
var ErrNilList = fmt.Errorf("dotgraph: nil edge list: %w", dsubench.ErrInvalidArgument)

const graphName = "G"

// Render builds the DOT text for n vertices and list. Isolated vertices are
// still emitted as nodes.
func Render(n int, list *bucketed.List, forest []bucketed.Edge) (string, error) {
	if list == nil {
		return "", ErrNilList
	}
	if err := list.Validate(n); err != nil {
		return "", fmt.Errorf("Render: %w", err)
	}

	inForest := make(map[bucketed.Edge]bool, len(forest))
	for _, e := range forest {
		inForest[e] = true
	}

	g := gographviz.NewGraph()
	if err := errors.Join(g.SetName(graphName), g.SetDir(false)); err != nil {
		return "", fmt.Errorf("Render: %w", err)
	}
	for v := 0; v < n; v++ {
		if err := g.AddNode(graphName, strconv.Itoa(v), nil); err != nil {
			return "", fmt.Errorf("Render: node %d: %w", v, err)
		}
	}
	for b, bucket := range list.Buckets() {
		for _, e := range bucket {
			attrs := map[string]string{"label": strconv.Itoa(b)}
			if inForest[e] {
				attrs["color"] = "red"
				attrs["penwidth"] = "2"
			}
			if err := g.AddEdge(strconv.Itoa(e.X), strconv.Itoa(e.Y), false, attrs); err != nil {
				return "", fmt.Errorf("Render: edge %s: %w", e, err)
			}
		}
	}
	return g.String(), nil
}
