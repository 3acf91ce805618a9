// Package harness checks and times the pairing heap against independent
// references.
//
// Every run draws keys from a seeded generator, so a run is reproducible from
// its options. Four runs are available:
//
//   - Compare pushes the same keys into the pairing heap, the binary heap in
//     package priority and a B-tree multiset, and checks that all three
//     release identical key sequences.
//   - Stress does the same with generated payloads at a larger size and
//     reports the first few minima of each queue.
//   - Union builds two pairing heaps, merges them and checks the result
//     against a loser-tree merge of both sorted inputs.
//   - Bench times insert-then-drain rounds of both queues.
//
// Disagreements are collected rather than aborting the run. They are counted
// on the report and returned together as a single error.
package harness
