package pairing_test

import (
	"testing"

	"github.com/davidvella/pairheap/pairing"
	"github.com/stretchr/testify/assert"
)

func TestNode(t *testing.T) {
	n := pairing.NewNode(12, "payload")

	assert.Equal(t, 12, n.Key())
	assert.Equal(t, "payload", n.Payload())
	assert.Equal(t, 0, n.Len())

	assert.NoError(t, n.SetKey(-3))
	assert.Equal(t, -3, n.Key())
	assert.Equal(t, "payload", n.Payload())
}

func TestNode_ChildrenStopsEarly(t *testing.T) {
	h := pairing.New[int, string]()
	for _, k := range []int{0, 1, 2, 3} {
		h.Push(k, "")
	}
	root, err := h.FindMin()
	assert.NoError(t, err)
	assert.Equal(t, 3, root.Len())

	var seen []int
	for c := range root.Children() {
		seen = append(seen, c.Key())
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}
