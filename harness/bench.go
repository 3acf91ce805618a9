package harness

import (
	"context"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/davidvella/pairheap/pairing"
	"github.com/davidvella/pairheap/priority"
)

// BenchReport holds per-round timings of both queues.
type BenchReport struct {
	RunID     string
	Count     int
	Rounds    int
	Pairing   *tachymeter.Metrics
	Reference *tachymeter.Metrics
}

// Bench times rounds of pushing count keys and draining them again, once
// with the pairing heap and once with the reference queue. Both queues see
// the same keys in each round.
func (h *Harness) Bench(ctx context.Context) (*BenchReport, error) {
	const check = "bench"
	rep := &BenchReport{
		RunID:  newRunID(),
		Count:  h.opts.count,
		Rounds: h.opts.rounds,
	}

	pt := tachymeter.New(&tachymeter.Config{Size: h.opts.rounds})
	rt := tachymeter.New(&tachymeter.Config{Size: h.opts.rounds})
	var pwall, rwall time.Duration

	ph := pairing.New[int, struct{}]()
	ref := priority.NewQueue[int, struct{}](lessInt)
	for round := 0; round < h.opts.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, check)
		}
		keys := h.keys(h.opts.count)

		start := time.Now()
		for _, k := range keys {
			ph.Push(k, struct{}{})
		}
		for ph.Len() > 0 {
			_, _ = ph.DeleteMin()
		}
		d := time.Since(start)
		pt.AddTime(d)
		pwall += d

		start = time.Now()
		for _, k := range keys {
			ref.Push(k, struct{}{})
		}
		for ref.Len() > 0 {
			ref.Pop()
		}
		d = time.Since(start)
		rt.AddTime(d)
		rwall += d

		h.opts.stats.RecordOps(queuePairing, "insert", len(keys))
		h.opts.stats.RecordOps(queuePairing, "delete_min", len(keys))
		h.opts.stats.RecordOps(queueReference, "insert", len(keys))
		h.opts.stats.RecordOps(queueReference, "delete_min", len(keys))
	}
	pt.SetWallTime(pwall)
	rt.SetWallTime(rwall)
	h.opts.stats.RecordLinks(ph.Links())
	h.opts.stats.RecordTrial(check, pwall+rwall)

	rep.Pairing = pt.Calc()
	rep.Reference = rt.Calc()
	h.log.Info("bench finished",
		zap.String("run", rep.RunID),
		zap.Int("count", rep.Count),
		zap.Int("rounds", rep.Rounds),
		zap.Duration("pairing_p50", rep.Pairing.Time.P50),
		zap.Duration("reference_p50", rep.Reference.Time.P50))

	return rep, nil
}
