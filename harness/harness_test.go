package harness_test

import (
	"context"
	"math"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/pairheap/harness"
)

// fakeStats records calls in memory.
type fakeStats struct {
	mu         sync.Mutex
	ops        map[string]int
	links      uint64
	mismatches map[string]int
	trials     map[string]int
}

func newFakeStats() *fakeStats {
	return &fakeStats{
		ops:        make(map[string]int),
		mismatches: make(map[string]int),
		trials:     make(map[string]int),
	}
}

func (s *fakeStats) RecordOps(queue, op string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[queue+"/"+op] += n
}

func (s *fakeStats) RecordLinks(n uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links += n
}

func (s *fakeStats) RecordMismatch(check string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mismatches[check]++
}

func (s *fakeStats) RecordTrial(check string, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trials[check]++
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []harness.Option
	}{
		{
			name: "negative count",
			opts: []harness.Option{harness.WithCount(-1)},
		},
		{
			name: "inverted key range",
			opts: []harness.Option{harness.WithKeyRange(10, -10)},
		},
		{
			name: "negative peek",
			opts: []harness.Option{harness.WithPeek(-2)},
		},
		{
			name: "zero rounds",
			opts: []harness.Option{harness.WithRounds(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := harness.New(tt.opts...)
			assert.Error(t, err)
			assert.Nil(t, h)
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		opts []harness.Option
	}{
		{
			name: "defaults",
		},
		{
			name: "empty",
			opts: []harness.Option{harness.WithCount(0)},
		},
		{
			name: "many duplicates",
			opts: []harness.Option{harness.WithCount(2000), harness.WithKeyRange(-3, 3)},
		},
		{
			name: "full integer range",
			opts: []harness.Option{harness.WithCount(2000), harness.WithKeyRange(math.MinInt, math.MaxInt)},
		},
		{
			name: "single key",
			opts: []harness.Option{harness.WithCount(100), harness.WithKeyRange(7, 7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := newFakeStats()
			h, err := harness.New(append(tt.opts, harness.WithStats(stats))...)
			require.NoError(t, err)

			rep, err := h.Compare(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 0, rep.Mismatches)
			assert.NotEmpty(t, rep.RunID)
			assert.Equal(t, rep.Count, stats.ops["pairing/insert"])
			assert.Equal(t, rep.Count, stats.ops["reference/delete_min"])
			assert.Equal(t, rep.Count, stats.ops["oracle/delete_min"])
			assert.Equal(t, 1, stats.trials["compare"])
			assert.Empty(t, stats.mismatches)
			if rep.Count > 0 {
				// Every insert after the first is one link.
				assert.GreaterOrEqual(t, rep.Links, uint64(rep.Count-1))
			}
		})
	}
}

func TestStress(t *testing.T) {
	h, err := harness.New(
		harness.WithCount(5000),
		harness.WithPeek(5),
		harness.WithSeed(42),
		harness.WithStats(newFakeStats()),
	)
	require.NoError(t, err)

	rep, err := h.Stress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Mismatches)
	require.Len(t, rep.Pairing, 5)
	require.Len(t, rep.Reference, 5)

	for i := range rep.Pairing {
		assert.Equal(t, rep.Reference[i].Key, rep.Pairing[i].Key)
		assert.NotEmpty(t, rep.Pairing[i].Payload)
	}
	assert.True(t, sort.SliceIsSorted(rep.Pairing, func(i, j int) bool {
		return rep.Pairing[i].Key < rep.Pairing[j].Key
	}))
}

func TestStress_PeekLargerThanCount(t *testing.T) {
	h, err := harness.New(harness.WithCount(3), harness.WithPeek(10))
	require.NoError(t, err)

	rep, err := h.Stress(context.Background())
	require.NoError(t, err)
	assert.Len(t, rep.Pairing, 3)
	assert.Len(t, rep.Reference, 3)
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name        string
		left, right int
	}{
		{"both populated", 300, 200},
		{"left empty", 0, 50},
		{"right empty", 50, 0},
		{"both empty", 0, 0},
		{"single elements", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := newFakeStats()
			h, err := harness.New(harness.WithKeyRange(-20, 20), harness.WithStats(stats))
			require.NoError(t, err)

			rep, err := h.Union(context.Background(), tt.left, tt.right)
			require.NoError(t, err)
			assert.Equal(t, tt.left+tt.right, rep.Merged)
			assert.Equal(t, 0, rep.DonorLen)
			assert.Equal(t, 0, rep.Mismatches)
			assert.Equal(t, 1, stats.ops["pairing/merge"])
			assert.Equal(t, tt.left+tt.right, stats.ops["pairing/delete_min"])
		})
	}
}

func TestUnion_NegativeSize(t *testing.T) {
	h, err := harness.New()
	require.NoError(t, err)

	_, err = h.Union(context.Background(), -1, 2)
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	stats := newFakeStats()
	h, err := harness.New(harness.WithCount(500), harness.WithRounds(3), harness.WithStats(stats))
	require.NoError(t, err)

	rep, err := h.Bench(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Rounds)
	require.NotNil(t, rep.Pairing)
	require.NotNil(t, rep.Reference)
	assert.Equal(t, 3, rep.Pairing.Count)
	assert.Equal(t, 3, rep.Reference.Count)
	assert.Equal(t, 1500, stats.ops["pairing/insert"])
	assert.Equal(t, 1500, stats.ops["reference/delete_min"])
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h, err := harness.New(harness.WithCount(10))
	require.NoError(t, err)

	_, err = h.Compare(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = h.Stress(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = h.Union(ctx, 10, 10)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = h.Bench(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSameSeedSameKeys(t *testing.T) {
	run := func() []harness.Entry {
		h, err := harness.New(harness.WithSeed(9), harness.WithCount(100), harness.WithPeek(10))
		require.NoError(t, err)
		rep, err := h.Stress(context.Background())
		require.NoError(t, err)
		return rep.Pairing
	}
	assert.Equal(t, run(), run())
}
