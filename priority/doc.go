// Package priority implements a binary-heap priority queue of key/payload
// pairs. It is the reference implementation the pairing heap is checked and
// timed against, so it favours simplicity over features.
//
// The ordering is determined by a user-provided comparison function. Duplicate
// keys are allowed; items with equal keys leave the queue in the order they
// were pushed.
//
// Key features:
//   - Generic implementation supporting any key and payload type
//   - O(log n) insertion and deletion
//   - O(1) peek operations
//
// Basic usage:
//
//	// Create a min-heap priority queue
//	pq := priority.NewQueue[int, string](func(a, b int) bool {
//	    return a < b
//	})
//
//	// Add items
//	pq.Push(5, "task1")
//	pq.Push(3, "task2")
//	pq.Push(7, "task3")
//
//	// Get highest priority item
//	key, payload, exists := pq.Peek()
//	if exists {
//	    fmt.Printf("Highest priority: %s = %d\n", payload, key)
//	}
//
//	// Remove and return highest priority item
//	key, payload, exists = pq.Pop()
//	if exists {
//	    fmt.Printf("Popped: %s = %d\n", payload, key)
//	}
//
// The less function should return true if a has higher priority than b.
package priority
