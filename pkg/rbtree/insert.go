package rbtree

import (
	"github.com/flier/rbtree/internal/debug"
	"github.com/flier/rbtree/pkg/opt"
)

// Insert locates (head, payload)'s position by comparing key against the
// InsertionKey of each node visited during the descent (§4.6). Existing
// nodes whose key equals key are not disturbed; the new node lands to
// their right.
func (t *Tree[H, S, K, P, Sch]) Insert(head H, payload P, key K) Handle {
	t.detach()

	slot := t.slotForKey(key)

	return t.insertAt(head, payload, slot)
}

func (t *Tree[H, S, K, P, Sch]) slotForKey(key K) Slot {
	if !t.root.Valid() {
		return rootSlot()
	}

	h := t.root

	var prefix S

	for {
		n := t.nodes.at(h)
		nodeKey := t.scheme.InsertionKey(prefix, n.head)

		var dir Dir

		if key.Compare(nodeKey) < 0 {
			dir = Left
		} else {
			dir = Right
			prefix = combine(prefix, combine(t.SummaryUnder(n.left), t.scheme.Seed(n.head)))
		}

		next := n.child(dir)
		if !next.Valid() {
			return towardSlot(dir, h)
		}

		h = next
	}
}

// InsertAfter places (head, payload) immediately after the node at after in
// in-order position, without consulting InsertionKey to choose where to
// attach (§4.7). Passing [NoHandle] for after inserts at the very
// beginning of the tree.
//
// Precondition: after must be rightmost_before(key) or share its key,
// where key is the InsertionKey head would derive on its own (§4.6's
// point 2); debug-asserted for schemes whose InsertionKey does not depend
// on position, undefined behavior otherwise.
func (t *Tree[H, S, K, P, Sch]) InsertAfter(head H, payload P, after Handle) Handle {
	return t.insertAfter(head, payload, opt.Some(after))
}

// InsertBefore places (head, payload) immediately before the node at
// before in in-order position (§4.7). Passing [NoHandle] for before
// inserts at the very end of the tree.
//
// Precondition: mirror of [Tree.InsertAfter]'s, with before in place of
// after and leftmost_after in place of rightmost_before.
func (t *Tree[H, S, K, P, Sch]) InsertBefore(head H, payload P, before Handle) Handle {
	return t.insertBefore(head, payload, opt.Some(before))
}

func (t *Tree[H, S, K, P, Sch]) insertAfter(head H, payload P, after opt.Option[Handle]) Handle {
	t.detach()

	if debug.Enabled {
		t.assertValidAfter(head, after)
	}

	var slot Slot

	switch {
	case !t.root.Valid():
		slot = rootSlot()
	case after.IsNone() || !after.Unwrap().Valid():
		slot = towardSlot(Left, t.leftmost)
	default:
		h := after.Unwrap()
		if right := t.nodes.at(h).right; right.Valid() {
			slot = towardSlot(Left, t.furthestUnder(right, Left))
		} else {
			slot = towardSlot(Right, h)
		}
	}

	return t.insertAt(head, payload, slot)
}

func (t *Tree[H, S, K, P, Sch]) insertBefore(head H, payload P, before opt.Option[Handle]) Handle {
	t.detach()

	if debug.Enabled {
		t.assertValidBefore(head, before)
	}

	var slot Slot

	switch {
	case !t.root.Valid():
		slot = rootSlot()
	case before.IsNone() || !before.Unwrap().Valid():
		slot = towardSlot(Right, t.rightmost)
	default:
		h := before.Unwrap()
		if left := t.nodes.at(h).left; left.Valid() {
			slot = towardSlot(Right, t.furthestUnder(left, Right))
		} else {
			slot = towardSlot(Left, h)
		}
	}

	return t.insertAt(head, payload, slot)
}

// assertValidAfter checks the §4.6 point 2 precondition for InsertAfter:
// after must equal rightmost_before(key) or share its key, where key is
// the InsertionKey head would derive independent of position. Schemes
// whose InsertionKey depends on the running prefix (Summary carries
// information) have no intrinsic ordering to violate — any position is
// valid by construction — so the check is skipped for them.
func (t *Tree[H, S, K, P, Sch]) assertValidAfter(head H, after opt.Option[Handle]) {
	if !isZeroSized[S]() {
		return
	}

	var zero S

	key := t.scheme.InsertionKey(zero, head)
	want := t.RightmostBefore(key)

	h := NoHandle
	if after.IsSome() {
		h = after.Unwrap()
	}

	debug.Assert(h == want || (h.Valid() && t.keyAt(h).Compare(key) == 0),
		"insertAfter: %v is not rightmost_before(%v) (%v) and does not share its key", h, key, want)
}

// assertValidBefore mirrors [Tree.assertValidAfter] for InsertBefore.
func (t *Tree[H, S, K, P, Sch]) assertValidBefore(head H, before opt.Option[Handle]) {
	if !isZeroSized[S]() {
		return
	}

	var zero S

	key := t.scheme.InsertionKey(zero, head)
	want := t.LeftmostAfter(key)

	h := NoHandle
	if before.IsSome() {
		h = before.Unwrap()
	}

	debug.Assert(h == want || (h.Valid() && t.keyAt(h).Compare(key) == 0),
		"insertBefore: %v is not leftmost_after(%v) (%v) and does not share its key", h, key, want)
}

// insertAt allocates a new red leaf, wires it into slot, repairs cached
// summaries and the red-black invariants, and refreshes the tree's
// leftmost/rightmost cache.
func (t *Tree[H, S, K, P, Sch]) insertAt(head H, payload P, slot Slot) Handle {
	h := t.nodes.alloc(node[H, S, P]{
		parent: NoHandle,
		left:   NoHandle,
		right:  NoHandle,
		color:  Red,
		head:   head,
		payload: payload,
	})

	t.attach(h, slot)
	t.updateSummariesAtAndAbove(h)
	t.fixupAfterInsert(h)

	t.leftmost = t.furthestUnder(t.root, Left)
	t.rightmost = t.furthestUnder(t.root, Right)

	return h
}

// attach wires the node at h into the parent/child links slot names,
// without touching color, summary, or the leftmost/rightmost cache.
func (t *Tree[H, S, K, P, Sch]) attach(h Handle, slot Slot) {
	if slot.HasLeft() {
		t.root = h
		t.nodes.at(h).parent = NoHandle

		return
	}

	toward := slot.UnwrapRight()
	t.nodes.at(h).parent = toward.Parent
	t.nodes.at(toward.Parent).setChild(toward.Dir, h)
}

// fixupAfterInsert restores the red-black invariants after z has been
// attached as a red leaf, per the standard three-case walk up the tree.
func (t *Tree[H, S, K, P, Sch]) fixupAfterInsert(z Handle) {
	for {
		p := t.nodes.at(z).parent
		if !p.Valid() || t.colorOf(p) == Black {
			break
		}

		g := t.nodes.at(p).parent
		debug.Assert(g.Valid(), "fixupAfterInsert: red node %v has no grandparent", z)

		parentDir := t.dirOf(g, p)
		uncle := t.nodes.at(g).child(parentDir.Opposite())

		if t.colorOf(uncle) == Red {
			// Case 1: parent and uncle are both red, push blackness down
			// from the grandparent and recheck at the grandparent.
			debug.Log(nil, "fixupAfterInsert", "case 1: recolor parent=%v uncle=%v grandparent=%v", p, uncle, g)

			t.setColor(p, Black)
			t.setColor(uncle, Black)
			t.setColor(g, Red)

			z = g

			continue
		}

		if t.dirOf(p, z) != parentDir {
			// Case 2: z is the inner child; rotate it into the outer
			// position so case 3 can finish with a single rotation.
			debug.Log(nil, "fixupAfterInsert", "case 2: inner child %v rotated toward %v", z, parentDir)

			z = p
			t.rotate(z, parentDir)
		}

		// Case 3: z (or its case-2 replacement) is the outer child of a
		// red parent with a black uncle; one rotation at the grandparent
		// finishes the repair.
		debug.Log(nil, "fixupAfterInsert", "case 3: rotate grandparent=%v opposite %v", g, parentDir)

		p = t.nodes.at(z).parent
		t.setColor(p, Black)
		t.setColor(g, Red)
		t.rotate(g, parentDir.Opposite())

		break
	}

	t.setColor(t.root, Black)
}

// rotate performs a single tree rotation pivoting on x: for dir == Left,
// the standard left-rotation promoting x's right child; for dir == Right,
// the mirrored right-rotation. It returns the handle that took x's former
// place.
//
// Per §4.6, cached summaries are recomputed for the demoted node before
// the promoted one, since the promoted node's summary depends on it.
func (t *Tree[H, S, K, P, Sch]) rotate(x Handle, dir Dir) Handle {
	xn := t.nodes.at(x)
	y := xn.child(dir.Opposite())
	debug.Assert(y.Valid(), "rotate: %v has no %v child to pivot on", x, dir.Opposite())
	debug.Log(nil, "rotate", "pivot=%v dir=%v promoted=%v", x, dir, y)

	yn := t.nodes.at(y)

	moved := yn.child(dir)
	xn.setChild(dir.Opposite(), moved)

	if moved.Valid() {
		t.nodes.at(moved).parent = x
	}

	parent := xn.parent
	yn.parent = parent

	if !parent.Valid() {
		t.root = y
	} else {
		pn := t.nodes.at(parent)
		if pn.left == x {
			pn.left = y
		} else {
			pn.right = y
		}
	}

	yn.setChild(dir, x)
	xn.parent = y

	t.updateSummaryAt(x)
	t.updateSummaryAt(y)

	return y
}

func (t *Tree[H, S, K, P, Sch]) colorOf(h Handle) Color {
	if !h.Valid() {
		return Black
	}

	return t.nodes.at(h).color
}

func (t *Tree[H, S, K, P, Sch]) setColor(h Handle, c Color) {
	if h.Valid() {
		t.nodes.at(h).color = c
	}
}

func (t *Tree[H, S, K, P, Sch]) dirOf(parent, child Handle) Dir {
	if t.nodes.at(parent).left == child {
		return Left
	}

	return Right
}

// SetPayloadAt replaces the payload stored at h, returning its previous
// value. It does not affect tree shape.
func (t *Tree[H, S, K, P, Sch]) SetPayloadAt(h Handle, payload P) P {
	t.detach()

	n := t.nodes.at(h)
	old := n.payload
	n.payload = payload

	return old
}

// SetHeadAt replaces the head stored at h, recomputes every cached
// summary it affects, and returns the previous head.
//
// Precondition: the new head must not change h's position relative to its
// neighbors' InsertionKeys; debug-asserted, undefined behavior otherwise.
func (t *Tree[H, S, K, P, Sch]) SetHeadAt(h Handle, head H) H {
	t.detach()

	n := t.nodes.at(h)
	old := n.head
	n.head = head

	t.updateSummariesAtAndAbove(h)

	if debug.Enabled {
		if prev := t.predecessor(h); prev.Valid() {
			debug.Assert(t.keyAt(prev).Compare(t.keyAt(h)) < 0,
				"SetHeadAt: new head sorts before predecessor %v", prev)
		}

		if next := t.successor(h); next.Valid() {
			debug.Assert(t.keyAt(h).Compare(t.keyAt(next)) < 0,
				"SetHeadAt: new head sorts after successor %v", next)
		}
	}

	return old
}

// SetPayloadOf finds the topmost node matching key and replaces its
// payload, returning the previous payload and true (§4.6 point 3). If no
// node matches, it inserts (head, payload, key) as a new node instead and
// returns the zero value and false. head is only used on a miss; it is
// ignored when key already has a match.
func (t *Tree[H, S, K, P, Sch]) SetPayloadOf(head H, key K, payload P) (previous P, found bool) {
	if h := t.Find(key); h.Valid() {
		return t.SetPayloadAt(h, payload), true
	}

	t.Insert(head, payload, key)

	return previous, false
}
