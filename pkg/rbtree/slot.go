package rbtree

import "github.com/flier/rbtree/pkg/either"

// RootSlot identifies the root attachment point of a [Tree].
type RootSlot struct{}

// TowardSlot identifies a child attachment point: the Dir child of Parent.
type TowardSlot struct {
	Dir    Dir
	Parent Handle
}

// Slot is where a node may be attached: either the [RootSlot] or a
// [TowardSlot]. See [Tree.SlotOf].
type Slot = either.Either[RootSlot, TowardSlot]

// rootSlot builds the Slot for the tree's root.
func rootSlot() Slot {
	return either.Left[RootSlot, TowardSlot](RootSlot{})
}

// towardSlot builds the Slot for the Dir child of parent.
func towardSlot(dir Dir, parent Handle) Slot {
	return either.Right[RootSlot, TowardSlot](TowardSlot{Dir: dir, Parent: parent})
}
