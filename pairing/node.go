package pairing

import "iter"

// Node is an element of a Heap. It holds a key, a payload and the ordered list
// of subtrees linked beneath it.
type Node[K, P any] struct {
	key      K
	payload  P
	children []*Node[K, P]
	held     bool // true while the node is reachable from some heap's root
}

// NewNode creates a free node that can be passed to Heap.Insert.
func NewNode[K, P any](key K, payload P) *Node[K, P] {
	return &Node[K, P]{
		key:     key,
		payload: payload,
	}
}

// Key returns the ordering key of the node.
func (n *Node[K, P]) Key() K {
	return n.key
}

// Payload returns the caller supplied payload.
func (n *Node[K, P]) Payload() P {
	return n.payload
}

// SetKey replaces the key of a free node. Changing the key of a node that is
// still held by a heap would break heap order, so it fails with ErrNodeInUse.
func (n *Node[K, P]) SetKey(key K) error {
	if n.held {
		return ErrNodeInUse
	}
	n.key = key
	return nil
}

// Len returns the number of direct children.
func (n *Node[K, P]) Len() int {
	return len(n.children)
}

// Children yields the direct children in link order. The sequence is a view
// over the node's child list; it is only valid until the next mutation of the
// heap that holds the node.
func (n *Node[K, P]) Children() iter.Seq[*Node[K, P]] {
	return func(yield func(*Node[K, P]) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// addChild links child as the last child of n. The caller guarantees that
// child is not already linked elsewhere and is not an ancestor of n.
func (n *Node[K, P]) addChild(child *Node[K, P]) {
	n.children = append(n.children, child)
}

// release detaches n from the structure before it is handed back to a caller.
func (n *Node[K, P]) release() {
	n.children = nil
	n.held = false
}
