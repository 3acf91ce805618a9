package monitoring_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/davidvella/pairheap/monitoring"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := monitoring.NewStats(reg)

	s.RecordOps("pairing", "insert", 10)
	s.RecordOps("pairing", "insert", 5)
	s.RecordOps("reference", "delete_min", 3)
	s.RecordLinks(14)
	s.RecordMismatch("compare")
	s.RecordTrial("compare", 2*time.Millisecond)

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	var buf bytes.Buffer
	require.NoError(t, monitoring.Dump(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, "pairheap_queue_operations_total{op=insert,queue=pairing} 15\n")
	assert.Contains(t, out, "pairheap_queue_operations_total{op=delete_min,queue=reference} 3\n")
	assert.Contains(t, out, "pairheap_links_total 14\n")
	assert.Contains(t, out, "pairheap_mismatches_total{check=compare} 1\n")
	assert.Contains(t, out, "pairheap_trial_duration_seconds{check=compare} count=1")
}

func TestStats_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	monitoring.NewStats(reg)
	assert.Panics(t, func() {
		monitoring.NewStats(reg)
	})
}
