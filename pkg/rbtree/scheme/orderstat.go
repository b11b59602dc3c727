package scheme

// Count is the running element-count monoid used by [OrderStat]. It also
// serves as that scheme's InsertionKey, since a node's index is exactly
// the count of nodes before it.
type Count int

// Combine implements [rbtree.Summary].
func (c Count) Combine(other Count) Count { return c + other }

// Compare implements [rbtree.Ordered].
func (c Count) Compare(other Count) int { return int(c) - int(other) }

// OrderStat is the order-statistic tree scheme: Head carries arbitrary
// per-element data, and InsertionKey is the number of elements strictly
// before it, i.e. its index. Searching by a target [Count] is therefore
// searching by position: find(k) locates the k-th element.
type OrderStat[H any] struct{}

// Seed implements [rbtree.KeyScheme]: every element counts for one.
func (OrderStat[H]) Seed(H) Count { return 1 }

// InsertionKey implements [rbtree.KeyScheme]: a node's index is the count
// of everything before it.
func (OrderStat[H]) InsertionKey(prefix Count, _ H) Count { return prefix }
