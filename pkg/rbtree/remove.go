package rbtree

import "github.com/flier/rbtree/internal/debug"

// Remove deletes the node at h and returns its payload (§4.8).
//
// Removal always keeps the arena dense: the node occupying the arena's
// last slot is moved into h's freed slot (Step D, "swap-with-last"), so
// any Handle other than h may be invalidated by this call. Use
// [Tree.RemoveReturningSuccessor] to keep following the tree afterwards.
func (t *Tree[H, S, K, P, Sch]) Remove(h Handle) P {
	t.detach()

	victim := t.removeAt(h)

	return t.compact(victim)
}

// RemoveReturningSuccessor deletes the node at h and returns the Handle
// its in-order successor holds after compaction, tracking it correctly
// even when the successor is the node relocated by swap-with-last.
func (t *Tree[H, S, K, P, Sch]) RemoveReturningSuccessor(h Handle) (next Handle, payload P) {
	t.detach()

	next = t.successor(h)
	victim := t.removeAt(h)

	if last := t.nodes.last(); next == last && victim != last {
		next = victim
	}

	payload = t.compact(victim)

	return next, payload
}

// removeAt excises the node at z from the tree structure and repairs the
// red-black invariants, returning z unchanged: z's arena slot is always
// what ends up detached and ready for [Tree.compact], even when z has two
// children and its in-order successor is relinked to occupy z's former
// structural position (keeping the successor's own Handle stable).
func (t *Tree[H, S, K, P, Sch]) removeAt(z Handle) Handle {
	var x, xParent Handle

	zn := t.nodes.at(z)
	originalColor := zn.color

	switch {
	case !zn.left.Valid():
		x, xParent = zn.right, zn.parent
		t.transplant(z, zn.right)
	case !zn.right.Valid():
		x, xParent = zn.left, zn.parent
		t.transplant(z, zn.left)
	default:
		y := t.furthestUnder(zn.right, Left)
		yn := t.nodes.at(y)
		originalColor = yn.color
		x = yn.right

		if yn.parent == z {
			xParent = y
		} else {
			xParent = yn.parent
			t.transplant(y, yn.right)
			yn.right = zn.right
			t.nodes.at(yn.right).parent = y
		}

		t.transplant(z, y)
		yn.left = zn.left
		t.nodes.at(yn.left).parent = y
		yn.color = zn.color
	}

	anchor := xParent
	if !anchor.Valid() {
		anchor = t.root
	}

	t.updateSummariesAtAndAbove(anchor)

	if originalColor == Black {
		t.removeFixup(x, xParent)
	}

	if t.root.Valid() {
		t.leftmost = t.furthestUnder(t.root, Left)
		t.rightmost = t.furthestUnder(t.root, Right)
	} else {
		t.leftmost, t.rightmost = NoHandle, NoHandle
	}

	return z
}

// transplant replaces the subtree rooted at u with the subtree rooted at
// v (which may be [NoHandle]) in u's parent's eyes. It does not touch u's
// own fields, leaving u detached and ready for removal.
func (t *Tree[H, S, K, P, Sch]) transplant(u, v Handle) {
	parent := t.nodes.at(u).parent

	if !parent.Valid() {
		t.root = v
	} else {
		pn := t.nodes.at(parent)
		if pn.left == u {
			pn.left = v
		} else {
			pn.right = v
		}
	}

	if v.Valid() {
		t.nodes.at(v).parent = parent
	}
}

// removeFixup restores the red-black invariants after a black node has
// been excised, leaving an imbalance at x (possibly [NoHandle], standing
// in for a "doubly black" absent child of xParent).
func (t *Tree[H, S, K, P, Sch]) removeFixup(x, xParent Handle) {
	for x != t.root && t.colorOf(x) == Black {
		dir := t.dirOf(xParent, x)
		w := t.nodes.at(xParent).child(dir.Opposite())

		if t.colorOf(w) == Red {
			// Case 1: sibling is red; rotate it out of the way so a black
			// sibling remains for the following cases.
			debug.Log(nil, "removeFixup", "case 1: sibling %v is red, rotate at parent=%v", w, xParent)

			t.setColor(w, Black)
			t.setColor(xParent, Red)
			t.rotate(xParent, dir)
			w = t.nodes.at(xParent).child(dir.Opposite())
		}

		wn := t.nodes.at(w)

		if t.colorOf(wn.child(dir)) == Black && t.colorOf(wn.child(dir.Opposite())) == Black {
			// Case 2: both of sibling's children are black; push the
			// extra black up to the parent and recheck there.
			debug.Log(nil, "removeFixup", "case 2: recolor sibling=%v, recheck at parent=%v", w, xParent)

			t.setColor(w, Red)
			x = xParent
			xParent = t.nodes.at(x).parent

			continue
		}

		if t.colorOf(wn.child(dir.Opposite())) == Black {
			// Case 3: sibling's far child is black but its near child is
			// red; rotate the near child into the far position so case 4
			// can finish with a single rotation.
			debug.Log(nil, "removeFixup", "case 3: rotate sibling=%v toward %v", w, dir.Opposite())

			t.setColor(wn.child(dir), Black)
			t.setColor(w, Red)
			t.rotate(w, dir.Opposite())
			w = t.nodes.at(xParent).child(dir.Opposite())
			wn = t.nodes.at(w)
		}

		// Case 4: sibling's far child is red; one rotation at the parent
		// absorbs the extra black and finishes the repair.
		debug.Log(nil, "removeFixup", "case 4: rotate parent=%v dir=%v, done", xParent, dir)

		t.setColor(w, t.colorOf(xParent))
		t.setColor(xParent, Black)
		t.setColor(wn.child(dir.Opposite()), Black)
		t.rotate(xParent, dir)
		x = t.root

		break
	}

	t.setColor(x, Black)
}

// compact frees victim's arena slot via swap-with-last (§4.8, Step D):
// whichever node occupies the arena's last slot is relocated into
// victim's slot and every reference to it is repointed, keeping the
// arena dense without leaving a tombstone.
func (t *Tree[H, S, K, P, Sch]) compact(victim Handle) P {
	last := t.nodes.last()

	if victim == last {
		return t.nodes.popLast().payload
	}

	debug.Log(nil, "compact", "moving last=%v into victim=%v", last, victim)

	removed := t.nodes.at(victim).payload
	moved := t.nodes.popLast()

	*t.nodes.at(victim) = moved

	if moved.parent.Valid() {
		t.nodes.at(moved.parent).setChild(t.dirOf(moved.parent, last), victim)
	} else {
		t.root = victim
	}

	if moved.left.Valid() {
		t.nodes.at(moved.left).parent = victim
	}

	if moved.right.Valid() {
		t.nodes.at(moved.right).parent = victim
	}

	if t.leftmost == last {
		t.leftmost = victim
	}

	if t.rightmost == last {
		t.rightmost = victim
	}

	return removed
}
