package harness

import (
	"go.uber.org/zap"

	"github.com/davidvella/pairheap/monitoring"
)

// options defines all configuration options for a harness.
type options struct {
	seed   int64 // Seed of the key and payload generators
	count  int   // Elements per trial
	minKey int   // Smallest generated key
	maxKey int   // Largest generated key
	peek   int   // Minima reported by Stress
	rounds int   // Timed rounds in Bench

	logger *zap.Logger
	stats  monitoring.Stats
}

// Option is a function that configures the harness options.
type Option func(*options)

// WithSeed sets the seed of the generators.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithCount sets the number of elements pushed per trial.
func WithCount(n int) Option {
	return func(o *options) {
		o.count = n
	}
}

// WithKeyRange bounds the generated keys, both ends inclusive.
func WithKeyRange(lo, hi int) Option {
	return func(o *options) {
		o.minKey = lo
		o.maxKey = hi
	}
}

// WithPeek sets how many minima Stress reports.
func WithPeek(n int) Option {
	return func(o *options) {
		o.peek = n
	}
}

// WithRounds sets the number of timed rounds in Bench.
func WithRounds(n int) Option {
	return func(o *options) {
		o.rounds = n
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStats sets where operation counts and mismatches are recorded.
func WithStats(s monitoring.Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		seed:   1,
		count:  1000,
		minKey: -1_000_000,
		maxKey: 1_000_000,
		peek:   5,
		rounds: 10,
		logger: zap.NewNop(),
	}
}
