package loser_test

import (
	"fmt"
	"slices"

	"github.com/davidvella/pairheap/loser"
)

// ExampleNew_basic demonstrates basic usage of a loser tree to merge sorted sequences.
func ExampleNew_basic() {
	tree := loser.New(
		func(a, b int) bool { return a < b },
		slices.Values([]int{1, 4, 7}),
		slices.Values([]int{2, 5, 8}),
		slices.Values([]int{3, 6, 9}),
	)

	for v := range tree.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 1 2 3 4 5 6 7 8 9
}

// ExampleNew_strings shows how to use the loser tree with string sequences.
func ExampleNew_strings() {
	tree := loser.New(
		func(a, b string) bool { return a < b },
		slices.Values([]string{"apple", "dog", "zebra"}),
		slices.Values([]string{"banana", "elephant"}),
		slices.Values([]string{"cat", "fish"}),
	)

	for v := range tree.All() {
		fmt.Printf("%s ", v)
	}

	// Output: apple banana cat dog elephant fish zebra
}
