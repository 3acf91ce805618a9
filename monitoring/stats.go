package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stats records what a harness run did to each queue.
type Stats interface {
	RecordOps(queue, op string, n int)
	RecordLinks(n uint64)
	RecordMismatch(check string)
	RecordTrial(check string, duration time.Duration)
}

type stats struct {
	ops        *prometheus.CounterVec
	links      prometheus.Counter
	mismatches *prometheus.CounterVec
	trials     *prometheus.HistogramVec
}

// NewStats registers the harness collectors on reg.
func NewStats(reg prometheus.Registerer) Stats {
	factory := promauto.With(reg)
	return &stats{
		ops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairheap_queue_operations_total",
				Help: "Queue operations performed by the harness.",
			},
			[]string{"queue", "op"},
		),
		links: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pairheap_links_total",
				Help: "Subtree links performed by pairing heaps.",
			},
		),
		mismatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairheap_mismatches_total",
				Help: "Checks where the pairing heap disagreed with the reference.",
			},
			[]string{"check"},
		),
		trials: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pairheap_trial_duration_seconds",
				Help:    "Wall time of a single harness trial.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"check"},
		),
	}
}

func (s *stats) RecordOps(queue, op string, n int) {
	s.ops.WithLabelValues(queue, op).Add(float64(n))
}

func (s *stats) RecordLinks(n uint64) {
	s.links.Add(float64(n))
}

func (s *stats) RecordMismatch(check string) {
	s.mismatches.WithLabelValues(check).Inc()
}

func (s *stats) RecordTrial(check string, duration time.Duration) {
	s.trials.WithLabelValues(check).Observe(duration.Seconds())
}
