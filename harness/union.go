package harness

import (
	"context"
	"slices"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/davidvella/pairheap/loser"
	"github.com/davidvella/pairheap/pairing"
)

// UnionReport summarizes a Union run.
type UnionReport struct {
	RunID      string
	Left       int
	Right      int
	Merged     int // size of the receiving heap after the merge
	DonorLen   int // size of the argument heap after the merge
	Mismatches int
	Elapsed    time.Duration
}

// Union fills two pairing heaps with left and right keys, merges the second
// into the first and checks the size bookkeeping and the full extraction
// against a loser-tree merge of both sorted inputs.
func (h *Harness) Union(ctx context.Context, left, right int) (*UnionReport, error) {
	const check = "union"
	if left < 0 || right < 0 {
		return nil, errors.Errorf("%s: sizes must not be negative, got %d and %d", check, left, right)
	}
	start := time.Now()
	rep := &UnionReport{
		RunID: newRunID(),
		Left:  left,
		Right: right,
	}
	c := newChecker(check, h.opts.stats)

	lkeys, rkeys := h.keys(left), h.keys(right)
	a, b := pairing.New[int, struct{}](), pairing.New[int, struct{}]()
	for _, k := range lkeys {
		a.Push(k, struct{}{})
	}
	for _, k := range rkeys {
		b.Push(k, struct{}{})
	}
	h.opts.stats.RecordOps(queuePairing, "insert", left+right)

	a.Merge(b)
	h.opts.stats.RecordOps(queuePairing, "merge", 1)
	rep.Merged, rep.DonorLen = a.Len(), b.Len()
	if rep.Merged != left+right {
		c.mismatch("merged size %d, want %d", rep.Merged, left+right)
	}
	if rep.DonorLen != 0 {
		c.mismatch("donor size %d after merge, want 0", rep.DonorLen)
	}
	if _, err := b.DeleteMin(); !errors.Is(err, pairing.ErrEmpty) {
		c.mismatch("donor delete-min returned %v, want %v", err, pairing.ErrEmpty)
	}

	slices.Sort(lkeys)
	slices.Sort(rkeys)
	want := loser.New(lessInt, slices.Values(lkeys), slices.Values(rkeys))

	i := 0
	for w := range want.All() {
		if err := interrupted(ctx, i); err != nil {
			return nil, errors.Wrap(err, check)
		}
		got, _, err := a.Pop()
		if err != nil {
			c.mismatch("position %d: %v, want %d", i, err, w)
			break
		}
		if got != w {
			c.mismatch("position %d: got %d, want %d", i, got, w)
		}
		i++
	}
	if a.Len() != 0 {
		c.mismatch("%d keys left after extraction", a.Len())
	}
	h.opts.stats.RecordOps(queuePairing, "delete_min", i)

	rep.Mismatches = c.count
	rep.Elapsed = time.Since(start)
	h.opts.stats.RecordLinks(a.Links() + b.Links())
	h.opts.stats.RecordTrial(check, rep.Elapsed)
	h.log.Info("union finished",
		zap.String("run", rep.RunID),
		zap.Int("left", left),
		zap.Int("right", right),
		zap.Int("mismatches", rep.Mismatches),
		zap.Duration("elapsed", rep.Elapsed))

	return rep, c.err()
}
