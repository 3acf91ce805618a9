package harness

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/davidvella/pairheap/pairing"
	"github.com/davidvella/pairheap/priority"
)

// StressReport summarizes a Stress run.
type StressReport struct {
	RunID      string
	Count      int
	Pairing    []Entry // first minima released by the pairing heap
	Reference  []Entry // first minima released by the reference queue
	Mismatches int
	Elapsed    time.Duration
}

// Stress fills both queues with keys and generated payloads, reports the
// first minima of each and checks that the full extraction agrees on keys.
func (h *Harness) Stress(ctx context.Context) (*StressReport, error) {
	const check = "stress"
	start := time.Now()
	rep := &StressReport{
		RunID: newRunID(),
		Count: h.opts.count,
	}
	c := newChecker(check, h.opts.stats)
	faker := gofakeit.New(h.opts.seed)

	keys := h.keys(h.opts.count)
	ph := pairing.New[int, string]()
	ref := priority.NewQueue[int, string](lessInt)
	for i, k := range keys {
		if err := interrupted(ctx, i); err != nil {
			return nil, errors.Wrap(err, check)
		}
		payload := faker.Name()
		ph.Push(k, payload)
		ref.Push(k, payload)
	}
	h.opts.stats.RecordOps(queuePairing, "insert", len(keys))
	h.opts.stats.RecordOps(queueReference, "insert", len(keys))

	for i := 0; ph.Len() > 0 || ref.Len() > 0; i++ {
		if err := interrupted(ctx, i); err != nil {
			return nil, errors.Wrap(err, check)
		}
		pk, pp, perr := ph.Pop()
		rk, rp, rok := ref.Pop()
		switch {
		case perr != nil || !rok:
			c.mismatch("position %d: pairing len %d, reference len %d", i, ph.Len(), ref.Len())
			continue
		case pk != rk:
			c.mismatch("position %d: pairing %d, reference %d", i, pk, rk)
		}
		if i < h.opts.peek {
			rep.Pairing = append(rep.Pairing, Entry{Key: pk, Payload: pp})
			rep.Reference = append(rep.Reference, Entry{Key: rk, Payload: rp})
		}
	}
	h.opts.stats.RecordOps(queuePairing, "delete_min", len(keys))
	h.opts.stats.RecordOps(queueReference, "delete_min", len(keys))

	rep.Mismatches = c.count
	rep.Elapsed = time.Since(start)
	h.opts.stats.RecordLinks(ph.Links())
	h.opts.stats.RecordTrial(check, rep.Elapsed)
	h.log.Info("stress finished",
		zap.String("run", rep.RunID),
		zap.Int("count", rep.Count),
		zap.Int("mismatches", rep.Mismatches),
		zap.Duration("elapsed", rep.Elapsed))

	return rep, c.err()
}
