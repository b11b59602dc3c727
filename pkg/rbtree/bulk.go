package rbtree

import (
	"fmt"

	"github.com/flier/rbtree/internal/debug"
	"github.com/flier/rbtree/pkg/opt"
	"github.com/flier/rbtree/pkg/res"
)

// NotStrictlyIncreasingError reports that pairs passed to
// [TryFromOrdered] were not strictly increasing by InsertionKey.
type NotStrictlyIncreasingError struct {
	// Index is the position of the first pair found out of order.
	Index int
}

func (e *NotStrictlyIncreasingError) Error() string {
	return fmt.Sprintf("rbtree: TryFromOrdered: pairs[%d] does not sort strictly after its predecessor", e.Index)
}

// TryFromOrdered is the checked variant of [FromOrdered]: instead of
// trusting the caller and asserting under the "debug" build tag, it
// verifies pairs is strictly increasing by InsertionKey and reports the
// first violation it finds.
func TryFromOrdered[H any, S Summary[S], K Ordered[K], P any, Sch KeyScheme[H, S, K]](
	scheme Sch, pairs []HeadPayload[H, P],
) res.Result[*Tree[H, S, K, P, Sch]] {
	t := New[H, S, K, P, Sch](scheme)
	t.nodes.reserve(len(pairs))

	tail := NoHandle

	var prefix S

	for i, hp := range pairs {
		key := scheme.InsertionKey(prefix, hp.Head)

		if tail.Valid() && t.keyAt(tail).Compare(key) >= 0 {
			return res.Err[*Tree[H, S, K, P, Sch]](&NotStrictlyIncreasingError{Index: i})
		}

		tail = t.insertAfter(hp.Head, hp.Payload, opt.Some(tail))
		prefix = combine(prefix, t.scheme.Seed(hp.Head))
	}

	return res.Ok(t)
}

// Append concatenates other onto the end of t, inserting every element
// of other, in order, after t's current last element (§4.9).
//
// Precondition: every element of other must sort after every element of
// t under the scheme; debug-asserted, undefined behavior otherwise.
func (t *Tree[H, S, K, P, Sch]) Append(other *Tree[H, S, K, P, Sch]) {
	t.detach()

	if debug.Enabled && !t.IsEmpty() && !other.IsEmpty() {
		debug.Assert(t.keyAt(t.rightmost).Compare(other.keyAt(other.leftmost)) < 0,
			"Append: receiver's last key does not sort strictly before other's first key")
	}

	tail := t.rightmost
	for h := other.leftmost; h.Valid(); h = other.stepDir(h, Right) {
		tail = t.insertAfter(other.HeadAt(h), other.PayloadAt(h), opt.Some(tail))
	}
}

// Merge re-inserts every (head, payload) pair from other into t by key,
// interleaving them per the scheme rather than assuming any ordering
// relationship between the two trees.
func (t *Tree[H, S, K, P, Sch]) Merge(other *Tree[H, S, K, P, Sch]) {
	t.detach()

	for h := other.leftmost; h.Valid(); h = other.stepDir(h, Right) {
		t.Insert(other.HeadAt(h), other.PayloadAt(h), other.keyAt(h))
	}
}
