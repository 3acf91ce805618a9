package shortestpath

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrUnknownVertex is returned when the source is not part of the graph.
	ErrUnknownVertex = errors.New("shortestpath: unknown vertex")
	// ErrNegativeWeight is returned when an edge with a negative weight is added.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight")
)

// Edge is a directed, weighted edge.
type Edge struct {
	To     string
	Weight int
}

// Graph is a directed graph stored as adjacency lists.
type Graph struct {
	adj map[string][]Edge
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		adj: make(map[string][]Edge),
	}
}

// AddVertex adds v if it is not present yet.
func (g *Graph) AddVertex(v string) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
	}
}

// AddEdge adds a directed edge, creating both endpoints as needed.
func (g *Graph) AddEdge(from, to string, weight int) error {
	if weight < 0 {
		return fmt.Errorf("%w: %s -> %s (%d)", ErrNegativeWeight, from, to, weight)
	}
	g.AddVertex(to)
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: weight})
	return nil
}

// HasVertex reports whether v is in the graph.
func (g *Graph) HasVertex(v string) bool {
	_, ok := g.adj[v]
	return ok
}

// Edges returns the outgoing edges of v.
func (g *Graph) Edges(v string) []Edge {
	return g.adj[v]
}

// Vertices returns every vertex in lexical order.
func (g *Graph) Vertices() []string {
	vs := maps.Keys(g.adj)
	slices.Sort(vs)
	return vs
}
