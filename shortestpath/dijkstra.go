package shortestpath

import (
	"fmt"
)

// Result holds the shortest distances from Source.
type Result struct {
	Source string
	dist   map[string]int
	prev   map[string]string

	// Pushes counts entries added to the frontier, Stale the entries popped
	// after a shorter distance for their vertex had already been settled.
	Pushes int
	Stale  int
}

// Distance returns the shortest distance to v and whether v is reachable.
func (r *Result) Distance(v string) (int, bool) {
	d, ok := r.dist[v]
	return d, ok
}

// Path returns the vertices on a shortest path from Source to v, or nil when
// v is unreachable.
func (r *Result) Path(v string) []string {
	if _, ok := r.dist[v]; !ok {
		return nil
	}
	var path []string
	for cur := v; ; cur = r.prev[cur] {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Dijkstra computes shortest paths from source using f as the priority queue.
// f must be empty.
func Dijkstra(g *Graph, source string, f Frontier) (*Result, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, source)
	}

	res := &Result{
		Source: source,
		dist:   map[string]int{source: 0},
		prev:   make(map[string]string),
	}
	settled := make(map[string]bool)

	f.Push(0, source)
	res.Pushes++

	for f.Len() > 0 {
		d, v, ok := f.Pop()
		if !ok {
			break
		}
		if settled[v] {
			res.Stale++
			continue
		}
		settled[v] = true

		for _, e := range g.Edges(v) {
			nd := d + e.Weight
			if cur, seen := res.dist[e.To]; seen && cur <= nd {
				continue
			}
			res.dist[e.To] = nd
			res.prev[e.To] = v
			// No decrease-key: the improved distance is a new entry.
			f.Push(nd, e.To)
			res.Pushes++
		}
	}
	return res, nil
}
