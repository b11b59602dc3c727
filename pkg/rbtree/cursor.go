package rbtree

import (
	"github.com/flier/rbtree/internal/xsync"
	"github.com/flier/rbtree/pkg/tuple"
)

// Cursor walks a [Tree] in-order from a starting position, yielding
// (key, payload) pairs one at a time (§4.9). Cursors are recycled through
// a per-tree pool; call [Cursor.Release] when done with one.
type Cursor[H any, S Summary[S], K Ordered[K], P any, Sch KeyScheme[H, S, K]] struct {
	tree *Tree[H, S, K, P, Sch]
	cur  Handle
	dir  Dir
}

func (c *Cursor[H, S, K, P, Sch]) reset(t *Tree[H, S, K, P, Sch], start Handle, dir Dir) {
	c.tree = t
	c.cur = start
	c.dir = dir
}

// Next returns the element the cursor points to and then advances past
// it, or reports ok == false once the walk has run past the end.
func (c *Cursor[H, S, K, P, Sch]) Next() (elem tuple.Tuple2[K, P], ok bool) {
	if !c.cur.Valid() {
		return elem, false
	}

	elem = tuple.New2(c.tree.keyAt(c.cur), c.tree.PayloadAt(c.cur))
	c.cur = c.tree.stepDir(c.cur, c.dir)

	return elem, true
}

// Release returns the cursor to its tree's pool. The cursor must not be
// used again afterwards.
func (c *Cursor[H, S, K, P, Sch]) Release() {
	c.tree.releaseCursor(c)
}

func (t *Tree[H, S, K, P, Sch]) cursorPool() *xsync.Pool[Cursor[H, S, K, P, Sch]] {
	if t.cursors == nil {
		t.cursors = &xsync.Pool[Cursor[H, S, K, P, Sch]]{
			Reset: func(c *Cursor[H, S, K, P, Sch]) { *c = Cursor[H, S, K, P, Sch]{} },
		}
	}

	return t.cursors
}

func (t *Tree[H, S, K, P, Sch]) releaseCursor(c *Cursor[H, S, K, P, Sch]) {
	t.cursorPool().Put(c)
}

// Generate returns a [Cursor] walking the entire tree in ascending order.
func (t *Tree[H, S, K, P, Sch]) Generate() *Cursor[H, S, K, P, Sch] {
	return t.GenerateFrom(t.leftmost)
}

// GenerateFrom returns a [Cursor] walking in ascending order starting at
// start, inclusive. Passing [NoHandle] returns an already-exhausted
// cursor.
func (t *Tree[H, S, K, P, Sch]) GenerateFrom(start Handle) *Cursor[H, S, K, P, Sch] {
	c := t.cursorPool().Get()
	c.reset(t, start, Right)

	return c
}

// GenerateReverseFrom returns a [Cursor] walking in descending order
// starting at start, inclusive.
func (t *Tree[H, S, K, P, Sch]) GenerateReverseFrom(start Handle) *Cursor[H, S, K, P, Sch] {
	c := t.cursorPool().Get()
	c.reset(t, start, Left)

	return c
}
