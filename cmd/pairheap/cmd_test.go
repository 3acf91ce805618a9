package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{out: &out, log: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCmd_Compare(t *testing.T) {
	out, err := run(t, "compare", "--count", "500", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Mismatches")
	assert.Contains(t, out, "500")
}

func TestCmd_Stress(t *testing.T) {
	out, err := run(t, "stress", "--count", "2000", "--peek", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Pairing Payload")
	assert.Contains(t, out, "Reference Key")
}

func TestCmd_Merge(t *testing.T) {
	out, err := run(t, "merge", "--left", "20", "--right", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "50")
}

func TestCmd_Bench(t *testing.T) {
	out, err := run(t, "bench", "--count", "100", "--rounds", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "pairing")
	assert.Contains(t, out, "reference")
}

func TestCmd_Dijkstra(t *testing.T) {
	out, err := run(t, "dijkstra")
	require.NoError(t, err)
	assert.Contains(t, out, "Mystical Forest")
	assert.Contains(t, out, "74")
}

func TestCmd_Metrics(t *testing.T) {
	out, err := run(t, "compare", "--count", "10", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "pairheap_queue_operations_total{op=insert,queue=pairing} 10")
}

func TestCmd_InvalidConfig(t *testing.T) {
	_, err := run(t, "compare", "--min-key", "5", "--max-key", "1")
	assert.Error(t, err)
}

func TestCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairheap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("left: 7\nright: 8\n"), 0o600))

	out, err := run(t, "merge", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "15")
}

func TestCmd_Env(t *testing.T) {
	t.Setenv("PAIRHEAP_MIN_KEY", "9")
	t.Setenv("PAIRHEAP_MAX_KEY", "3")

	_, err := run(t, "compare")
	assert.Error(t, err)
}

func TestCmd_Version(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pairheap")
}

func TestCmd_ExitCode(t *testing.T) {
	assert.Equal(t, 1, Cmd(context.Background(), []string{"nope"}))
}
