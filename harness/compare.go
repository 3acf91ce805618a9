package harness

import (
	"context"
	"time"

	"github.com/google/btree"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/davidvella/pairheap/pairing"
	"github.com/davidvella/pairheap/priority"
)

// CompareReport summarizes a Compare run.
type CompareReport struct {
	RunID      string
	Count      int
	Mismatches int
	Links      uint64
	Elapsed    time.Duration
}

// oracleItem is a multiset element; seq keeps duplicate keys distinct.
type oracleItem struct {
	key int
	seq int
}

func newOracle() *btree.BTreeG[oracleItem] {
	return btree.NewG[oracleItem](32, func(a, b oracleItem) bool {
		if a.key != b.key {
			return a.key < b.key
		}
		return a.seq < b.seq
	})
}

func lessInt(a, b int) bool { return a < b }

// Compare pushes the same keys into the pairing heap, the reference binary
// heap and a B-tree, then checks that all three release the same keys in the
// same order and end up empty together.
func (h *Harness) Compare(ctx context.Context) (*CompareReport, error) {
	const check = "compare"
	start := time.Now()
	rep := &CompareReport{
		RunID: newRunID(),
		Count: h.opts.count,
	}
	c := newChecker(check, h.opts.stats)

	keys := h.keys(h.opts.count)
	ph := pairing.New[int, int]()
	ref := priority.NewQueue[int, int](lessInt)
	oracle := newOracle()
	for i, k := range keys {
		if err := interrupted(ctx, i); err != nil {
			return nil, errors.Wrap(err, check)
		}
		ph.Push(k, i)
		ref.Push(k, i)
		oracle.ReplaceOrInsert(oracleItem{key: k, seq: i})
	}
	h.recordInserts(len(keys))

	for i := range keys {
		if err := interrupted(ctx, i); err != nil {
			return nil, errors.Wrap(err, check)
		}
		pk, _, err := ph.Pop()
		if err != nil {
			c.mismatch("position %d: pairing heap: %v", i, err)
			break
		}
		rk, _, ok := ref.Pop()
		if !ok {
			c.mismatch("position %d: reference queue empty", i)
			break
		}
		ok2, _ := oracle.DeleteMin()
		if pk != rk || pk != ok2.key {
			c.mismatch("position %d: pairing %d, reference %d, oracle %d", i, pk, rk, ok2.key)
		}
	}
	h.recordDeletes(len(keys))

	if _, err := ph.DeleteMin(); !errors.Is(err, pairing.ErrEmpty) {
		c.mismatch("pairing heap not empty after %d deletions (len %d)", len(keys), ph.Len())
	}
	if ref.Len() != 0 || oracle.Len() != 0 {
		c.mismatch("references not empty: reference %d, oracle %d", ref.Len(), oracle.Len())
	}

	rep.Mismatches = c.count
	rep.Links = ph.Links()
	rep.Elapsed = time.Since(start)
	h.opts.stats.RecordLinks(rep.Links)
	h.opts.stats.RecordTrial(check, rep.Elapsed)
	h.log.Info("compare finished",
		zap.String("run", rep.RunID),
		zap.Int("count", rep.Count),
		zap.Int("mismatches", rep.Mismatches),
		zap.Uint64("links", rep.Links),
		zap.Duration("elapsed", rep.Elapsed))

	return rep, c.err()
}

func (h *Harness) recordInserts(n int) {
	h.opts.stats.RecordOps(queuePairing, "insert", n)
	h.opts.stats.RecordOps(queueReference, "insert", n)
	h.opts.stats.RecordOps(queueOracle, "insert", n)
}

func (h *Harness) recordDeletes(n int) {
	h.opts.stats.RecordOps(queuePairing, "delete_min", n)
	h.opts.stats.RecordOps(queueReference, "delete_min", n)
	h.opts.stats.RecordOps(queueOracle, "delete_min", n)
}
