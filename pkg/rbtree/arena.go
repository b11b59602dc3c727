package rbtree

import "github.com/flier/rbtree/internal/debug"

// arena is the contiguous, growable vector of node records backing a
// [Tree], addressed by [Handle]. Allocation always appends; removal keeps
// the vector dense by swapping the last live node into the freed slot
// (§4.8, Step D) rather than leaving a tombstone.
type arena[H any, S Summary[S], P any] struct {
	nodes []node[H, S, P]
}

// reserve is the §4.2 `reserve_capacity` hint.
func (a *arena[H, S, P]) reserve(n int) {
	if cap(a.nodes) < n {
		grown := make([]node[H, S, P], len(a.nodes), n)
		copy(grown, a.nodes)
		a.nodes = grown
	}
}

func (a *arena[H, S, P]) len() int { return len(a.nodes) }

// alloc appends a new node record and returns its Handle.
func (a *arena[H, S, P]) alloc(n node[H, S, P]) Handle {
	h := Handle(len(a.nodes))
	a.nodes = append(a.nodes, n)

	return h
}

// at returns a pointer to the node record for h.
//
// The pointer is invalidated by the next call to alloc (which may
// reallocate the backing slice) or by any removal (which may move the
// record at a different handle into h's slot).
func (a *arena[H, S, P]) at(h Handle) *node[H, S, P] {
	debug.Assert(h.Valid() && int(h) < len(a.nodes), "handle %v out of bounds for arena of length %d", h, len(a.nodes))

	return &a.nodes[h]
}

// last returns the handle of the arena's last live node.
func (a *arena[H, S, P]) last() Handle {
	return Handle(len(a.nodes) - 1)
}

// popLast removes and returns the node record at the arena's last slot,
// shrinking the arena by one.
func (a *arena[H, S, P]) popLast() node[H, S, P] {
	n := a.nodes[len(a.nodes)-1]
	a.nodes = a.nodes[:len(a.nodes)-1]

	return n
}

// clear empties the arena. When keepCapacity is false the backing slice is
// released entirely; otherwise its capacity is retained for reuse (§5's
// "clear(keep_capacity) offers the standard two-mode reset").
func (a *arena[H, S, P]) clear(keepCapacity bool) {
	if keepCapacity {
		a.nodes = a.nodes[:0]
	} else {
		a.nodes = nil
	}
}

// clone makes an independent copy of the arena's backing storage.
func (a *arena[H, S, P]) clone() arena[H, S, P] {
	cloned := make([]node[H, S, P], len(a.nodes))
	copy(cloned, a.nodes)

	return arena[H, S, P]{nodes: cloned}
}
