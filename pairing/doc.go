// Package pairing implements a pairing heap: a mergeable min-priority queue
// in which every element carries an ordering key and an opaque payload.
//
// A pairing heap is a heap-ordered multi-way tree. The root always holds the
// minimum key, and every node's key is less than or equal to the keys in its
// own subtree. All structural work reduces to a single primitive, merge, which
// links two trees by making the root with the larger key the last child of the
// root with the smaller key.
//
// Key features:
//   - Generic over the key and payload types
//   - O(1) insertion and O(1) union of two heaps
//   - O(log n) amortized deletion of the minimum via a two-at-a-time pairing pass
//   - Explicit empty-heap errors instead of placeholder values
//   - Deterministic tie-breaking: when keys are equal, the node already in the
//     heap (or the receiving heap's root on union) stays on top
//
// Basic usage:
//
//	h := pairing.New[int, string]()
//	h.Push(5, "five")
//	h.Push(-1, "minus one")
//	h.Push(3, "three")
//
//	key, payload, ok := h.Peek()
//	if ok {
//	    fmt.Println(key, payload) // -1 minus one
//	}
//
//	for key, payload := range h.Drain() {
//	    fmt.Println(key, payload) // -1, 3, 5
//	}
//
// Union of two heaps moves every node of the argument into the receiver and
// leaves the argument empty:
//
//	a.Merge(b) // b.Len() == 0 afterwards
//
// There is no decrease-key. Callers that need to lower a key insert a fresh
// node with the new key and skip the stale entry when it surfaces. Nodes can
// be built ahead of time with NewNode and inserted with Insert; a node belongs
// to at most one heap at a time, and its key may only be changed while it is
// not held by a heap.
//
// A Heap is not safe for concurrent use. Callers must serialize Insert,
// DeleteMin and Merge with their own lock.
package pairing
