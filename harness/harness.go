package harness

import (
	"context"
	"math"
	"math/rand"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/xid"
	"go.uber.org/zap"

	"github.com/davidvella/pairheap/monitoring"
)

const (
	// Only the first mismatches of a check are kept as errors; the rest are counted.
	maxReportedMismatches = 10
	// Cancellation is polled once per this many elements.
	pollEvery = 4096
)

const (
	queuePairing   = "pairing"
	queueReference = "reference"
	queueOracle    = "oracle"
)

// Entry is a key and payload released by a queue.
type Entry struct {
	Key     int
	Payload string
}

// Harness runs checks with a fixed configuration. It is not safe for
// concurrent use.
type Harness struct {
	opts options
	rng  *rand.Rand
	log  *zap.Logger
}

// New creates a harness with the given options.
func New(opts ...Option) (*Harness, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.count < 0:
		return nil, errors.Errorf("harness: count must not be negative, got %d", o.count)
	case o.minKey > o.maxKey:
		return nil, errors.Errorf("harness: empty key range [%d, %d]", o.minKey, o.maxKey)
	case o.peek < 0:
		return nil, errors.Errorf("harness: peek must not be negative, got %d", o.peek)
	case o.rounds < 1:
		return nil, errors.Errorf("harness: rounds must be at least 1, got %d", o.rounds)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.stats == nil {
		o.stats = monitoring.NewStats(prometheus.NewRegistry())
	}

	return &Harness{
		opts: o,
		rng:  rand.New(rand.NewSource(o.seed)),
		log:  o.logger,
	}, nil
}

// keys draws n keys uniformly from the configured range.
func (h *Harness) keys(n int) []int {
	lo, hi := h.opts.minKey, h.opts.maxKey
	span := uint64(hi) - uint64(lo)

	ks := make([]int, n)
	for i := range ks {
		r := h.rng.Uint64()
		if span != math.MaxUint64 {
			r %= span + 1
		}
		ks[i] = lo + int(r)
	}
	return ks
}

func newRunID() string {
	return xid.New().String()
}

// interrupted polls ctx every pollEvery elements.
func interrupted(ctx context.Context, i int) error {
	if i%pollEvery != 0 {
		return nil
	}
	return ctx.Err()
}

// checker collects the disagreements of one check.
type checker struct {
	check string
	stats monitoring.Stats
	errs  *multierror.Error
	count int
}

func newChecker(check string, stats monitoring.Stats) *checker {
	return &checker{
		check: check,
		stats: stats,
	}
}

func (c *checker) mismatch(format string, args ...interface{}) {
	c.count++
	c.stats.RecordMismatch(c.check)
	if c.count <= maxReportedMismatches {
		c.errs = multierror.Append(c.errs, errors.Errorf(format, args...))
	}
}

func (c *checker) err() error {
	if c.count == 0 {
		return nil
	}
	return errors.Wrapf(c.errs.ErrorOrNil(), "%s: %d mismatches", c.check, c.count)
}
