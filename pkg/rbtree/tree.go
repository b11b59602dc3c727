package rbtree

import (
	"sync/atomic"

	"github.com/flier/rbtree/internal/debug"
	"github.com/flier/rbtree/internal/xsync"
	"github.com/flier/rbtree/pkg/opt"
)

// Tree is an augmented, arena-backed red-black tree parameterized by a
// [KeyScheme]. See the package documentation for the three canonical
// lookup modes this supports.
//
// Trees are built with [New] (or [FromOrdered]); the zero Tree has no
// arena and is not usable.
type Tree[H any, S Summary[S], K Ordered[K], P any, Sch KeyScheme[H, S, K]] struct {
	scheme Sch

	nodes *arena[H, S, P]
	refs  *atomic.Int32 // nil means uniquely owned; see Clone.

	root, leftmost, rightmost Handle

	cursors *xsync.Pool[Cursor[H, S, K, P, Sch]] // lazily built; see Generate.
}

// New returns an empty tree using the given key scheme.
func New[H any, S Summary[S], K Ordered[K], P any, Sch KeyScheme[H, S, K]](scheme Sch) *Tree[H, S, K, P, Sch] {
	return &Tree[H, S, K, P, Sch]{
		scheme:    scheme,
		nodes:     &arena[H, S, P]{},
		root:      NoHandle,
		leftmost:  NoHandle,
		rightmost: NoHandle,
	}
}

// FromOrdered builds a tree from a collection already sorted by
// InsertionKey and known to be free of shape-affecting duplicates the
// caller cares about.
//
// Precondition: pairs is strictly increasing by the key each (head,
// payload) would derive once inserted. Debug-asserted; see [TryFromOrdered]
// for a checked variant.
func FromOrdered[H any, S Summary[S], K Ordered[K], P any, Sch KeyScheme[H, S, K]](scheme Sch, pairs []HeadPayload[H, P]) *Tree[H, S, K, P, Sch] {
	t := New[H, S, K, P, Sch](scheme)
	t.nodes.reserve(len(pairs))

	tail := NoHandle
	for _, hp := range pairs {
		tail = t.insertAfter(hp.Head, hp.Payload, opt.Some(tail))

		if debug.Enabled && tail != NoHandle {
			prev := t.predecessor(tail)
			if prev.Valid() {
				debug.Assert(t.keyAt(prev).Compare(t.keyAt(tail)) < 0,
					"FromOrdered: input is not strictly increasing by InsertionKey")
			}
		}
	}

	return t
}

// HeadPayload is a (head, payload) pair, the shape [FromOrdered] and
// [TryFromOrdered] consume.
type HeadPayload[H, P any] struct {
	Head    H
	Payload P
}

// Len returns the number of nodes in the tree.
func (t *Tree[H, S, K, P, Sch]) Len() int { return t.nodes.len() }

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[H, S, K, P, Sch]) IsEmpty() bool { return t.Len() == 0 }

// Root returns the handle of the root node, or [NoHandle] if empty.
func (t *Tree[H, S, K, P, Sch]) Root() Handle { return t.root }

// Leftmost returns the handle of the leftmost (minimum) node.
func (t *Tree[H, S, K, P, Sch]) Leftmost() Handle { return t.leftmost }

// Rightmost returns the handle of the rightmost (maximum) node.
func (t *Tree[H, S, K, P, Sch]) Rightmost() Handle { return t.rightmost }

// PayloadAt returns the payload stored at h.
func (t *Tree[H, S, K, P, Sch]) PayloadAt(h Handle) P { return t.nodes.at(h).payload }

// HeadAt returns the head stored at h.
func (t *Tree[H, S, K, P, Sch]) HeadAt(h Handle) H { return t.nodes.at(h).head }

// SummaryUnder is the §4.4 O(1) `summary_under`: the cached subtree
// summary rooted at h, or the identity if h is [NoHandle].
func (t *Tree[H, S, K, P, Sch]) SummaryUnder(h Handle) S {
	if !h.Valid() {
		var zero S

		return zero
	}

	return t.nodes.at(h).summary
}

// KeyAt derives the InsertionKey of h from its position in the tree.
func (t *Tree[H, S, K, P, Sch]) KeyAt(h Handle) K { return t.keyAt(h) }

func (t *Tree[H, S, K, P, Sch]) keyAt(h Handle) K {
	return t.scheme.InsertionKey(t.summaryBefore(h), t.nodes.at(h).head)
}

// ElementAt returns the (key, payload) pair stored at h.
func (t *Tree[H, S, K, P, Sch]) ElementAt(h Handle) Element[K, P] {
	return Element[K, P]{Key: t.keyAt(h), Payload: t.nodes.at(h).payload}
}

// Scheme returns the key scheme the tree was constructed with.
func (t *Tree[H, S, K, P, Sch]) Scheme() Sch { return t.scheme }

// Clear empties the tree. When keepCapacity is true the arena's backing
// storage is retained for reuse by future insertions (§5).
func (t *Tree[H, S, K, P, Sch]) Clear(keepCapacity bool) {
	t.detach()
	t.nodes.clear(keepCapacity)
	t.root, t.leftmost, t.rightmost = NoHandle, NoHandle, NoHandle
}

// Clone returns a copy-on-write snapshot of t: it shares t's arena until
// the first mutating call on either t or the returned tree, at which point
// that tree deep-copies the arena before mutating it (§5, §12).
//
// The returned tree is logically independent of t from the caller's
// perspective: handles obtained from one remain valid against the other
// until one of them is mutated.
func (t *Tree[H, S, K, P, Sch]) Clone() *Tree[H, S, K, P, Sch] {
	if t.refs == nil {
		t.refs = new(atomic.Int32)
		t.refs.Store(1)
	}

	t.refs.Add(1)

	clone := *t

	return &clone
}

// detach ensures the tree uniquely owns its arena, deep-copying it first
// if it is currently shared with a sibling produced by [Clone]. Every
// mutating entry point calls this before touching t.nodes.
func (t *Tree[H, S, K, P, Sch]) detach() {
	if t.refs == nil || t.refs.Load() <= 1 {
		return
	}

	cloned := t.nodes.clone()
	t.nodes = &cloned
	t.refs.Add(-1)
	t.refs = new(atomic.Int32)
	t.refs.Store(1)
}

// Element is a (key, payload) pair, as returned by [Tree.ElementAt].
type Element[K, P any] struct {
	Key     K
	Payload P
}
