package rbtree

import "fmt"

// Handle is an opaque, stable-until-removal index into a [Tree]'s arena.
//
// Handles are dense array indices, not pointers: the zero-cost
// "swap-with-last" compaction performed by [Tree.Remove] (see §4.8 of the
// design) means that removing any node can change the Handle of whichever
// node previously occupied the arena's last slot. Handles obtained before
// a removal must not be used afterwards unless the caller specifically
// tracked them through the removal, e.g. via [Tree.RemoveReturningSuccessor].
type Handle int32

// NoHandle is the sentinel Handle representing "no node". It is the zero
// value of neither Handle nor any valid index; it is returned by lookups
// that miss and by navigation past the edge of the tree, and accepted by
// [Tree.InsertAfter], [Tree.InsertBefore] and [Tree.GenerateFrom] to mean
// "the edge of the tree".
const NoHandle Handle = -1

// Valid reports whether h refers to a node, i.e. is not [NoHandle].
func (h Handle) Valid() bool { return h >= 0 }

// String implements [fmt.Stringer].
func (h Handle) String() string {
	if !h.Valid() {
		return "Handle(none)"
	}

	return fmt.Sprintf("Handle(%d)", int32(h))
}

// Color is the red/black coloring of a node.
type Color bool

const (
	// Black is the color of the root and of every nil leaf.
	Black Color = false
	// Red is the color of a freshly inserted node.
	Red Color = true
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}

	return "Black"
}

// Dir is a left/right child direction.
type Dir bool

const (
	// Left selects a node's left child.
	Left Dir = false
	// Right selects a node's right child.
	Right Dir = true
)

// Opposite returns the other direction.
func (d Dir) Opposite() Dir {
	return !d
}

func (d Dir) String() string {
	if d == Right {
		return "Right"
	}

	return "Left"
}
