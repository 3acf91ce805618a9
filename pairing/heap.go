package pairing

import (
	"cmp"
	"errors"
	"iter"

	"github.com/eapache/queue/v2"
)

var (
	// ErrEmpty is returned when the minimum of an empty heap is requested.
	ErrEmpty = errors.New("pairing: heap is empty")
	// ErrNodeInUse is returned when a node that already belongs to a heap is
	// inserted again or re-keyed.
	ErrNodeInUse = errors.New("pairing: node is held by a heap")
	// ErrNilNode is returned when a nil node is inserted.
	ErrNilNode = errors.New("pairing: nil node")
)

// Heap is a min pairing heap. The zero value is not usable; create heaps with
// New or NewFunc.
type Heap[K, P any] struct {
	root  *Node[K, P]
	size  int
	links uint64
	less  func(a, b K) bool // returns true if a orders before b
}

// New creates an empty heap ordered by the natural order of K.
func New[K cmp.Ordered, P any]() *Heap[K, P] {
	return NewFunc[K, P](cmp.Less[K])
}

// NewFunc creates an empty heap ordered by less.
func NewFunc[K, P any](less func(a, b K) bool) *Heap[K, P] {
	return &Heap[K, P]{
		less: less,
	}
}

// Len returns the number of nodes in the heap.
func (h *Heap[K, P]) Len() int {
	return h.size
}

// Links returns how many times two subtrees have been linked since the heap
// was created.
func (h *Heap[K, P]) Links() uint64 {
	return h.links
}

// Insert adds a free node to the heap.
func (h *Heap[K, P]) Insert(n *Node[K, P]) error {
	switch {
	case n == nil:
		return ErrNilNode
	case n.held:
		return ErrNodeInUse
	}
	h.insert(n)
	return nil
}

// Push creates a node for key and payload, inserts it and returns it.
func (h *Heap[K, P]) Push(key K, payload P) *Node[K, P] {
	n := NewNode(key, payload)
	h.insert(n)
	return n
}

func (h *Heap[K, P]) insert(n *Node[K, P]) {
	n.held = true
	if h.root == nil {
		h.root = n
	} else {
		h.root = h.merge(h.root, n)
	}
	h.size++
}

// FindMin returns the node with the smallest key without removing it.
func (h *Heap[K, P]) FindMin() (*Node[K, P], error) {
	if h.root == nil {
		return nil, ErrEmpty
	}
	return h.root, nil
}

// Peek returns the smallest key and its payload without removing them.
func (h *Heap[K, P]) Peek() (key K, payload P, ok bool) {
	if h.root == nil {
		return key, payload, false
	}
	return h.root.key, h.root.payload, true
}

// DeleteMin removes and returns the node with the smallest key. The returned
// node has no children and may be inserted again.
func (h *Heap[K, P]) DeleteMin() (*Node[K, P], error) {
	if h.root == nil {
		return nil, ErrEmpty
	}

	top := h.root
	h.root = h.pair(top.children)
	h.size--

	top.release()
	return top, nil
}

// Pop removes the smallest key and returns it with its payload.
func (h *Heap[K, P]) Pop() (key K, payload P, err error) {
	n, err := h.DeleteMin()
	if err != nil {
		return key, payload, err
	}
	return n.key, n.payload, nil
}

// Drain yields keys and payloads in ascending key order, removing each one
// from the heap. Stopping the iteration early leaves the rest in place.
func (h *Heap[K, P]) Drain() iter.Seq2[K, P] {
	return func(yield func(K, P) bool) {
		for h.root != nil {
			n, _ := h.DeleteMin()
			if !yield(n.key, n.payload) {
				return
			}
		}
	}
}

// Merge moves every node of other into h. Afterwards other is empty and may
// be reused. Both heaps must use the same ordering. When the two roots have
// equal keys, h's root stays on top.
func (h *Heap[K, P]) Merge(other *Heap[K, P]) {
	if other == nil || other == h || other.root == nil {
		return
	}

	if h.root == nil {
		h.root = other.root
	} else {
		h.root = h.merge(h.root, other.root)
	}
	h.size += other.size

	other.root = nil
	other.size = 0
}

// Reset removes every node from the heap and frees them for reuse.
func (h *Heap[K, P]) Reset() {
	var stack []*Node[K, P]
	if h.root != nil {
		stack = append(stack, h.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = append(stack[:len(stack)-1], n.children...)
		n.release()
	}
	h.root = nil
	h.size = 0
}

// merge links two roots and returns the one that stays on top. On equal keys
// a wins.
func (h *Heap[K, P]) merge(a, b *Node[K, P]) *Node[K, P] {
	h.links++
	if h.less(b.key, a.key) {
		b.addChild(a)
		return b
	}
	a.addChild(b)
	return a
}

// pair combines the former children of a deleted root. The two oldest
// subtrees in the queue are merged and the result goes to the back, until a
// single tree is left.
func (h *Heap[K, P]) pair(siblings []*Node[K, P]) *Node[K, P] {
	switch len(siblings) {
	case 0:
		return nil
	case 1:
		return siblings[0]
	}

	q := queue.New[*Node[K, P]]()
	for _, s := range siblings {
		q.Add(s)
	}
	for q.Length() > 1 {
		a := q.Remove()
		b := q.Remove()
		q.Add(h.merge(a, b))
	}
	return q.Remove()
}
