// Package loser implements a tournament tree (also known as a loser tree) for
// merging multiple sorted sequences into one.
//
// A loser tree is a binary tree structure where each internal node holds the
// "loser" of a comparison between its children, and the root holds the
// overall "winner". After the winner is consumed, only the games on the path
// from its leaf to the root are replayed, which makes it cheaper than
// repeatedly scanning every sequence head.
//
// Basic usage:
//
//	tree := loser.New(
//	    func(a, b int) bool { return a < b },
//	    slices.Values([]int{1, 3, 5}),
//	    slices.Values([]int{2, 4, 6}),
//	)
//
//	for v := range tree.All() {
//	    fmt.Println(v) // 1, 2, 3, 4, 5, 6
//	}
//
// Implementation Details:
// The loser tree is implemented as a binary tree laid out in an array where:
//   - For node N, its children are at positions 2N and 2N+1
//   - Leaf nodes are stored in positions M to 2M-1 (where M is the number of sequences)
//   - Internal nodes are stored in positions 1 to M-1
//   - Node 0 is special, containing the current winner
//
// An exhausted sequence loses every game, so no sentinel maximum value is
// needed. Merging stops once the winner itself is exhausted.
package loser
