// Package loser is based on the tournament tree from
// https://github.com/bboreham/go-loser/blob/iter/tree.go.
package loser

import (
	"iter"
)

// New returns a tree merging the given ascending sequences into one
// ascending sequence ordered by less.
func New[E any](less func(E, E) bool, sequences ...iter.Seq[E]) *Tree[E] {
	return &Tree[E]{
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		less:      less,
	}
}

// A loser tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// We store M leaf nodes in positions M...2M-1, and M-1 internal nodes in positions 1..M-1.
// Node 0 is a special node, containing the winner of the contest.
type Tree[E any] struct {
	nodes     []node[E]
	sequences []iter.Seq[E]
	less      func(E, E) bool
}

type node[E any] struct {
	index int              // Leaf that lost here, or the overall winner for node 0.
	value E                // Current head of the sequence; leaf nodes only.
	done  bool             // Sequence exhausted; loses against every value.
	next  func() (E, bool) // Only populated for leaf nodes.
}

// All yields the merged sequence. Each call restarts every input.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		m := len(t.sequences)
		for i, s := range t.sequences {
			next, stop := iter.Pull(s)
			//nolint:gocritic // is not a leak.
			defer stop()
			t.nodes[i+m] = node[E]{next: next}
			t.moveNext(i + m)
		}
		t.nodes[0].index = t.playGame(1)
		for {
			w := t.nodes[0].index
			if t.nodes[w].done || !yield(t.nodes[w].value) {
				return
			}
			t.moveNext(w)
			t.replayGames(w)
		}
	}
}

func (t *Tree[E]) moveNext(leaf int) {
	n := &t.nodes[leaf]
	if v, ok := n.next(); ok {
		n.value = v
		return
	}
	var zero E
	n.value = zero
	n.done = true
}

// beats reports whether leaf a wins against leaf b. Ties go to b.
func (t *Tree[E]) beats(a, b int) bool {
	na, nb := &t.nodes[a], &t.nodes[b]
	switch {
	case na.done:
		return false
	case nb.done:
		return true
	}
	return t.less(na.value, nb.value)
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	loser, winner := right, left
	if t.beats(right, left) {
		loser, winner = left, right
	}
	t.nodes[pos].index = loser
	return winner
}

// Starting at leaf pos, which just advanced, re-consider all games up to the root.
func (t *Tree[E]) replayGames(pos int) {
	winner := pos
	for n := parent(pos); n != 0; n = parent(n) {
		node := &t.nodes[n]
		if t.beats(node.index, winner) {
			// The old loser is the new winner; record the previous winner as loser.
			node.index, winner = winner, node.index
		}
	}
	t.nodes[0].index = winner
}

func parent(i int) int { return i >> 1 }
