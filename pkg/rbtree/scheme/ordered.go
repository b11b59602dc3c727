// Package scheme provides the three canonical [rbtree.KeyScheme]
// implementations named in the package's design: an ordinary ordered
// map, an order-statistic tree, and a weighted-position tree.
package scheme

import "github.com/flier/rbtree/pkg/rbtree"

// ZeroSummary is the trivial monoid: it carries no information, so every
// Combine is a no-op. It implements [rbtree.ZeroSized], letting every
// position-independent query in rbtree short-circuit to O(1).
type ZeroSummary struct{}

// Combine implements [rbtree.Summary].
func (ZeroSummary) Combine(ZeroSummary) ZeroSummary { return ZeroSummary{} }

// IsZeroSized implements [rbtree.ZeroSized].
func (ZeroSummary) IsZeroSized() bool { return true }

// Ordered is the ordinary ordered-map scheme: Head is the comparable key
// itself, and InsertionKey ignores the running prefix summary entirely,
// since an ordered map's shape never depends on position.
type Ordered[K rbtree.Ordered[K]] struct{}

// Seed implements [rbtree.KeyScheme].
func (Ordered[K]) Seed(K) ZeroSummary { return ZeroSummary{} }

// InsertionKey implements [rbtree.KeyScheme]: the head is already the key.
func (Ordered[K]) InsertionKey(_ ZeroSummary, head K) K { return head }
