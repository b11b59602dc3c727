//go:build go1.23

package rbtree

import (
	"iter"

	"github.com/flier/rbtree/pkg/xiter"
)

// All returns an iterator over every (key, payload) pair in the tree, in
// ascending order (§4.9).
func (t *Tree[H, S, K, P, Sch]) All() iter.Seq2[K, P] {
	return func(yield func(K, P) bool) {
		for h := t.leftmost; h.Valid(); h = t.stepDir(h, Right) {
			if !yield(t.keyAt(h), t.PayloadAt(h)) {
				return
			}
		}
	}
}

// Keys returns an iterator over every key in the tree, in ascending
// order.
func (t *Tree[H, S, K, P, Sch]) Keys() iter.Seq[K] {
	return xiter.Keys(t.All())
}

// Payloads returns an iterator over every payload in the tree, in
// ascending order.
func (t *Tree[H, S, K, P, Sch]) Payloads() iter.Seq[P] {
	return xiter.Values(t.All())
}
