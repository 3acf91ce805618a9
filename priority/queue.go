package priority

// item is a single entry of the queue. seq records insertion order so that
// equal keys leave the queue first in, first out.
type item[K, P any] struct {
	key     K
	payload P
	seq     uint64
}

// Queue is a binary min-heap of key/payload pairs. Duplicate keys are allowed.
type Queue[K, P any] struct {
	items []item[K, P]
	seq   uint64
	lessF func(a, b K) bool // returns true if a has higher priority than b
}

// NewQueue creates a new priority queue with the given comparator.
func NewQueue[K, P any](less func(a, b K) bool) *Queue[K, P] {
	return &Queue[K, P]{
		items: make([]item[K, P], 0),
		lessF: less,
	}
}

// Len returns the number of items in the queue.
func (pq *Queue[K, P]) Len() int {
	return len(pq.items)
}

// Push adds key with its payload.
func (pq *Queue[K, P]) Push(key K, payload P) {
	pq.items = append(pq.items, item[K, P]{
		key:     key,
		payload: payload,
		seq:     pq.seq,
	})
	pq.seq++
	pq.up(len(pq.items) - 1)
}

// Pop removes and returns the highest priority item.
func (pq *Queue[K, P]) Pop() (key K, payload P, exists bool) {
	if len(pq.items) == 0 {
		return key, payload, false
	}

	top := pq.items[0]
	last := len(pq.items) - 1
	pq.swap(0, last)
	pq.items[last] = item[K, P]{}
	pq.items = pq.items[:last]
	if last > 0 {
		pq.down(0)
	}
	return top.key, top.payload, true
}

// Peek returns the highest priority item without removing it.
func (pq *Queue[K, P]) Peek() (key K, payload P, exists bool) {
	if len(pq.items) == 0 {
		return key, payload, false
	}
	i := pq.items[0]
	return i.key, i.payload, true
}

// Reset empties the queue, keeping its capacity.
func (pq *Queue[K, P]) Reset() {
	clear(pq.items)
	pq.items = pq.items[:0]
}

// swap swaps items at index i and j.
func (pq *Queue[K, P]) swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// less compares items at index i and j, falling back to insertion order.
func (pq *Queue[K, P]) less(i, j int) bool {
	a, b := &pq.items[i], &pq.items[j]
	if pq.lessF(a.key, b.key) {
		return true
	}
	if pq.lessF(b.key, a.key) {
		return false
	}
	return a.seq < b.seq
}

// up moves the element at index i up to its proper position.
func (pq *Queue[K, P]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !pq.less(i, parent) {
			break
		}
		pq.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down to its proper position.
func (pq *Queue[K, P]) down(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(pq.items) && pq.less(left, smallest) {
			smallest = left
		}
		if right < len(pq.items) && pq.less(right, smallest) {
			smallest = right
		}

		if smallest == i {
			break
		}

		pq.swap(i, smallest)
		i = smallest
	}
}
