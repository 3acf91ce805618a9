package shortestpath

import (
	"github.com/davidvella/pairheap/pairing"
	"github.com/davidvella/pairheap/priority"
)

// Frontier is the min-priority queue of tentative distances.
type Frontier interface {
	Push(dist int, vertex string)
	Pop() (dist int, vertex string, ok bool)
	Len() int
}

type pairingFrontier struct {
	h *pairing.Heap[int, string]
}

// NewPairingFrontier returns a Frontier backed by a pairing heap.
func NewPairingFrontier() Frontier {
	return &pairingFrontier{h: pairing.New[int, string]()}
}

func (f *pairingFrontier) Push(dist int, vertex string) {
	f.h.Push(dist, vertex)
}

func (f *pairingFrontier) Pop() (int, string, bool) {
	dist, vertex, err := f.h.Pop()
	return dist, vertex, err == nil
}

func (f *pairingFrontier) Len() int {
	return f.h.Len()
}

// NewReferenceFrontier returns a Frontier backed by the binary heap in
// package priority.
func NewReferenceFrontier() Frontier {
	return priority.NewQueue[int, string](func(a, b int) bool {
		return a < b
	})
}
