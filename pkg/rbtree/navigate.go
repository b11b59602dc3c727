package rbtree

// FurthestUnder walks the dir child chain starting at h as far as it goes,
// returning the furthest descendant in that direction (or h itself if it
// has no dir child).
func (t *Tree[H, S, K, P, Sch]) FurthestUnder(h Handle, dir Dir) Handle {
	return t.furthestUnder(h, dir)
}

func (t *Tree[H, S, K, P, Sch]) furthestUnder(h Handle, dir Dir) Handle {
	for {
		next := t.nodes.at(h).child(dir)
		if !next.Valid() {
			return h
		}

		h = next
	}
}

// FurthestToward returns the extremal node in the given direction: the
// leftmost node for [Left], the rightmost for [Right]. It is the fallback
// §9 describes for `insert(..., after: nil)` meaning "insert at leftmost".
func (t *Tree[H, S, K, P, Sch]) FurthestToward(dir Dir) Handle {
	if dir == Left {
		return t.leftmost
	}

	return t.rightmost
}

// Step moves from h to its dir child. It is a plain O(1) accessor, unlike
// [Tree.Successor]/[Tree.Predecessor] which climb past missing children.
func (t *Tree[H, S, K, P, Sch]) Step(h Handle, dir Dir) Handle {
	return t.nodes.at(h).child(dir)
}

// Successor returns the in-order successor of h, or [NoHandle] if h is the
// rightmost node.
func (t *Tree[H, S, K, P, Sch]) Successor(h Handle) Handle { return t.successor(h) }

// Predecessor returns the in-order predecessor of h, or [NoHandle] if h is
// the leftmost node.
func (t *Tree[H, S, K, P, Sch]) Predecessor(h Handle) Handle { return t.predecessor(h) }

func (t *Tree[H, S, K, P, Sch]) successor(h Handle) Handle   { return t.stepDir(h, Right) }
func (t *Tree[H, S, K, P, Sch]) predecessor(h Handle) Handle { return t.stepDir(h, Left) }

// stepDir implements both Successor (dir=Right) and Predecessor (dir=Left):
// if the dir child exists, descend to the furthest node under it in the
// opposite direction; otherwise climb until arriving at a node via its
// opposite-of-dir child link, and return that node.
func (t *Tree[H, S, K, P, Sch]) stepDir(h Handle, dir Dir) Handle {
	n := t.nodes.at(h)

	if child := n.child(dir); child.Valid() {
		return t.furthestUnder(child, dir.Opposite())
	}

	for {
		parent := n.parent
		if !parent.Valid() {
			return NoHandle
		}

		p := t.nodes.at(parent)
		if p.child(dir.Opposite()) == h {
			return parent
		}

		h, n = parent, p
	}
}

// SlotOf returns where h is attached: [RootSlot] if h is the root, or a
// [TowardSlot] naming its parent and which side it hangs from.
func (t *Tree[H, S, K, P, Sch]) SlotOf(h Handle) Slot {
	n := t.nodes.at(h)
	if !n.parent.Valid() {
		return rootSlot()
	}

	p := t.nodes.at(n.parent)
	if p.left == h {
		return towardSlot(Left, n.parent)
	}

	return towardSlot(Right, n.parent)
}
