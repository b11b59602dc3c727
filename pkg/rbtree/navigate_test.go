package rbtree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/rbtree/pkg/rbtree"
)

func TestSetPayloadAt(t *testing.T) {
	Convey("Given a tree with a known key", t, func() {
		tr := newOrderedTree()
		h := tr.Insert(strKey("a"), 1, strKey("a"))

		Convey("When SetPayloadAt replaces its payload", func() {
			old := tr.SetPayloadAt(h, 2)

			Convey("Then the previous payload is returned and the new one sticks", func() {
				So(old, ShouldEqual, 1)
				So(tr.PayloadAt(h), ShouldEqual, 2)
				So(tr.Validate(), ShouldBeNil)
			})
		})
	})
}

func TestSetHeadAt(t *testing.T) {
	Convey("Given a tree with neighboring keys", t, func() {
		tr := newOrderedTree()
		tr.Insert(strKey("a"), 1, strKey("a"))
		h := tr.Insert(strKey("m"), 2, strKey("m"))
		tr.Insert(strKey("z"), 3, strKey("z"))

		Convey("When SetHeadAt changes the head without disturbing order", func() {
			old := tr.SetHeadAt(h, strKey("n"))

			Convey("Then the previous head is returned and the new key takes effect", func() {
				So(old, ShouldEqual, strKey("m"))
				So(tr.KeyAt(h), ShouldEqual, strKey("n"))
				So(tr.Validate(), ShouldBeNil)
			})
		})
	})
}

func TestSetPayloadOf(t *testing.T) {
	Convey("Given a tree with one key", t, func() {
		tr := newOrderedTree()
		tr.Insert(strKey("a"), 1, strKey("a"))

		Convey("When SetPayloadOf is called on a matching key", func() {
			old, found := tr.SetPayloadOf(strKey("a"), strKey("a"), 99)

			Convey("Then the previous payload is returned and no insert happens", func() {
				So(found, ShouldBeTrue)
				So(old, ShouldEqual, 1)
				So(tr.Len(), ShouldEqual, 1)
				So(tr.PayloadAt(tr.Find("a")), ShouldEqual, 99)
			})
		})

		Convey("When SetPayloadOf is called on a missing key", func() {
			old, found := tr.SetPayloadOf(strKey("b"), strKey("b"), 42)

			Convey("Then it inserts a new node and reports no previous payload", func() {
				So(found, ShouldBeFalse)
				So(old, ShouldEqual, 0)
				So(tr.Len(), ShouldEqual, 2)

				h := tr.Find("b")
				So(h.Valid(), ShouldBeTrue)
				So(tr.PayloadAt(h), ShouldEqual, 42)
				So(tr.Validate(), ShouldBeNil)
			})
		})
	})
}

func TestGenerateReverseFrom(t *testing.T) {
	Convey("Given a tree with several ordered keys", t, func() {
		tr := newOrderedTree()
		keys := []strKey{"a", "b", "c", "d", "e"}
		for i, k := range keys {
			tr.Insert(k, i, k)
		}

		Convey("When walking in reverse from the rightmost node", func() {
			c := tr.GenerateReverseFrom(tr.Rightmost())
			defer c.Release()

			var seen []strKey
			for {
				elem, ok := c.Next()
				if !ok {
					break
				}
				seen = append(seen, elem.V0)
			}

			Convey("Then keys come back in descending order", func() {
				So(seen, ShouldResemble, []strKey{"e", "d", "c", "b", "a"})
			})
		})
	})
}

func TestFurthestUnderAndToward(t *testing.T) {
	Convey("Given a tree with several ordered keys", t, func() {
		tr := newOrderedTree()
		keys := []strKey{"m", "f", "t", "a", "h"}
		for i, k := range keys {
			tr.Insert(k, i, k)
		}

		Convey("Then FurthestUnder(root, Left/Right) locate the tree's extremes", func() {
			So(tr.KeyAt(tr.FurthestUnder(tr.Root(), rbtree.Left)), ShouldEqual, strKey("a"))
			So(tr.KeyAt(tr.FurthestUnder(tr.Root(), rbtree.Right)), ShouldEqual, strKey("t"))
		})

		Convey("Then FurthestToward mirrors the cached leftmost/rightmost", func() {
			So(tr.FurthestToward(rbtree.Left), ShouldEqual, tr.Leftmost())
			So(tr.FurthestToward(rbtree.Right), ShouldEqual, tr.Rightmost())
		})
	})
}

func TestSlotOf(t *testing.T) {
	Convey("Given a tree with a root and a left child", t, func() {
		tr := newOrderedTree()
		root := tr.Insert(strKey("m"), 0, strKey("m"))
		left := tr.Insert(strKey("a"), 1, strKey("a"))

		Convey("Then SlotOf the root reports the root slot", func() {
			slot := tr.SlotOf(root)
			So(slot.HasLeft(), ShouldBeTrue)
		})

		Convey("Then SlotOf a child reports its parent and side", func() {
			slot := tr.SlotOf(left)
			So(slot.HasRight(), ShouldBeTrue)

			toward := slot.UnwrapRight()
			So(toward.Dir, ShouldEqual, rbtree.Left)
		})
	})
}

func TestTreeIteration(t *testing.T) {
	Convey("Given a tree with several ordered keys", t, func() {
		tr := newOrderedTree()
		keys := []strKey{"c", "a", "b"}
		for i, k := range keys {
			tr.Insert(k, i, k)
		}

		Convey("Then All yields (key, payload) pairs in ascending order", func() {
			var gotKeys []strKey
			var gotPayloads []int
			for k, p := range tr.All() {
				gotKeys = append(gotKeys, k)
				gotPayloads = append(gotPayloads, p)
			}

			So(gotKeys, ShouldResemble, []strKey{"a", "b", "c"})
			So(gotPayloads, ShouldResemble, []int{1, 2, 0})
		})

		Convey("Then Keys and Payloads each project one half of All", func() {
			var gotKeys []strKey
			for k := range tr.Keys() {
				gotKeys = append(gotKeys, k)
			}

			var gotPayloads []int
			for p := range tr.Payloads() {
				gotPayloads = append(gotPayloads, p)
			}

			So(gotKeys, ShouldResemble, []strKey{"a", "b", "c"})
			So(gotPayloads, ShouldResemble, []int{1, 2, 0})
		})
	})
}
