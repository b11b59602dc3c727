// Package rbtree provides an augmented, arena-backed, value-semantic
// red-black tree parameterized by a user-supplied key scheme.
//
// # Overview
//
// A [Tree] stores its nodes in a single contiguous, growable slice (the
// "arena") and addresses them by a stable, dense [Handle] rather than by
// pointer. Every node additionally caches a monoid-valued [Summary] of its
// subtree, computed as
//
//	summary(node) = summary(left) ⊕ head(node) ⊕ summary(right)
//
// This single mechanism lets one tree implementation express three
// unrelated-looking lookup modes:
//
//   - an ordinary ordered map, by making Head the comparable key and
//     Summary the trivial (zero-size) monoid,
//   - an order-statistic tree, by making Summary a running element count
//     and deriving the key from the running prefix count, and
//   - a weighted-position tree, by making Summary a running sum of
//     per-node weights.
//
// See the [KeyScheme] documentation and the package examples for all
// three, and the "scheme" subpackage for ready-made implementations.
//
// # Handles and the arena
//
// Handles are stable across every mutation except removal: removing a node
// moves the arena's last live node into the removed node's slot to keep
// the arena dense (no tombstones), which changes that node's handle. Code
// that must track a node across a removal should use
// [Tree.RemoveReturningSuccessor], which re-expresses the tracked neighbor
// after the compaction.
//
// # Concurrency
//
// A Tree has value semantics and is not safe for concurrent mutation; see
// [Tree.Clone] for a copy-on-write snapshot that is cheap to take and safe
// to read concurrently with the original, as long as neither copy is
// mutated concurrently with the read.
//
// # Error handling
//
// Nearly every operation in this package follows contract-by-precondition:
// misuse (an out-of-tree handle, a non-predecessor handle passed to a
// positional insert, overlapping ranges passed to [Tree.Append]) is an
// assertion failure under the "debug" build tag and undefined behavior
// otherwise. The only two exceptions are [Tree.Validate], a diagnostic
// invariant checker meant for tests, and [TryFromOrdered], a checked
// constructor that reports ordering violations instead of asserting.
package rbtree
