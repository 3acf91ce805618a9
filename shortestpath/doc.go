// Package shortestpath computes single-source shortest paths with Dijkstra's
// algorithm over a directed graph with non-negative integer weights.
//
// The priority queue is supplied by the caller as a Frontier. Instead of
// decrease-key, a vertex whose tentative distance improves is pushed again
// with the new distance; the older entry stays in the frontier and is skipped
// when it surfaces. Any queue with push and pop-min can therefore be used,
// including the pairing heap and the reference binary heap.
//
// Basic usage:
//
//	g := shortestpath.NewGraph()
//	_ = g.AddEdge("a", "b", 4)
//	_ = g.AddEdge("a", "c", 1)
//	_ = g.AddEdge("c", "b", 2)
//
//	res, err := shortestpath.Dijkstra(g, "a", shortestpath.NewPairingFrontier())
//	if err != nil {
//	    return err
//	}
//	d, _ := res.Distance("b") // 3
package shortestpath
