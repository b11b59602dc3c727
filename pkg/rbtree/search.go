package rbtree

// Match is the three-way result of comparing a query key against a node's
// derived key during a descent (§4.5).
type Match int

const (
	// Before means the query key sorts before the node's derived key.
	Before Match = iota
	// Matching means the query key equals the node's derived key.
	Matching
	// After means the query key sorts after the node's derived key.
	After
)

func (m Match) String() string {
	switch m {
	case Before:
		return "Before"
	case After:
		return "After"
	default:
		return "Matching"
	}
}

// Action is what a [Descend] callback asks the descent to do next.
type Action int

const (
	// GoLeft continues the descent into the current node's left child.
	GoLeft Action = iota
	// GoRight continues the descent into the current node's right child,
	// extending the running prefix summary by the current node's
	// contribution first.
	GoRight
	// Stop ends the descent, returning the current node.
	Stop
)

// Descend is the single generic search driver that every search operation
// in this package is built from (§4.5). It walks from the root, deriving
// each visited node's key from qs and the summary accumulated strictly
// before it, and calls onNode with the three-way comparison against key.
// onNode's returned [Action] decides where the descent goes next.
//
// Descend returns the handle the descent stopped on, or [NoHandle] if it
// ran off a missing child without stopping.
func Descend[H any, S Summary[S], K Ordered[K], P any, Sch KeyScheme[H, S, K], QK Ordered[QK], QSch QueryScheme[H, S, QK]](
	t *Tree[H, S, K, P, Sch], qs QSch, key QK, onNode func(m Match, h Handle) Action,
) Handle {
	h := t.root

	var prefix S

	for h.Valid() {
		n := t.nodes.at(h)
		nodeKey := qs.Key(prefix, n.head)

		var m Match

		switch cmp := key.Compare(nodeKey); {
		case cmp < 0:
			m = Before
		case cmp > 0:
			m = After
		default:
			m = Matching
		}

		switch onNode(m, h) {
		case Stop:
			return h
		case GoLeft:
			h = n.left
		case GoRight:
			prefix = combine(prefix, combine(t.SummaryUnder(n.left), t.scheme.Seed(n.head)))
			h = n.right
		}
	}

	return NoHandle
}

// Find performs the ordinary search of §4.5: `find(k)`/`topmost_matching(k)`,
// stopping on the first node whose derived key matches.
func Find[H any, S Summary[S], K Ordered[K], P any, Sch KeyScheme[H, S, K], QK Ordered[QK], QSch QueryScheme[H, S, QK]](
	t *Tree[H, S, K, P, Sch], qs QSch, key QK,
) Handle {
	return Descend(t, qs, key, func(m Match, _ Handle) Action {
		switch m {
		case Before:
			return GoLeft
		case After:
			return GoRight
		default:
			return Stop
		}
	})
}

// LeftmostMatching returns the leftmost node whose derived key matches
// key, by continuing the descent leftward past every match found.
func LeftmostMatching[H any, S Summary[S], K Ordered[K], P any, Sch KeyScheme[H, S, K], QK Ordered[QK], QSch QueryScheme[H, S, QK]](
	t *Tree[H, S, K, P, Sch], qs QSch, key QK,
) Handle {
	best := NoHandle

	Descend(t, qs, key, func(m Match, h Handle) Action {
		switch m {
		case Before:
			return GoLeft
		case After:
			return GoRight
		default:
			best = h

			return GoLeft
		}
	})

	return best
}

// RightmostMatching returns the rightmost node whose derived key matches
// key, by continuing the descent rightward past every match found.
func RightmostMatching[H any, S Summary[S], K Ordered[K], P any, Sch KeyScheme[H, S, K], QK Ordered[QK], QSch QueryScheme[H, S, QK]](
	t *Tree[H, S, K, P, Sch], qs QSch, key QK,
) Handle {
	best := NoHandle

	Descend(t, qs, key, func(m Match, h Handle) Action {
		switch m {
		case Before:
			return GoLeft
		case After:
			return GoRight
		default:
			best = h

			return GoRight
		}
	})

	return best
}

// RightmostBefore returns the rightmost node whose derived key sorts
// strictly before key, or [NoHandle] if none does.
func RightmostBefore[H any, S Summary[S], K Ordered[K], P any, Sch KeyScheme[H, S, K], QK Ordered[QK], QSch QueryScheme[H, S, QK]](
	t *Tree[H, S, K, P, Sch], qs QSch, key QK,
) Handle {
	best := NoHandle

	Descend(t, qs, key, func(m Match, h Handle) Action {
		if m == After {
			best = h

			return GoRight
		}

		return GoLeft
	})

	return best
}

// LeftmostAfter returns the leftmost node whose derived key sorts
// strictly after key, or [NoHandle] if none does.
func LeftmostAfter[H any, S Summary[S], K Ordered[K], P any, Sch KeyScheme[H, S, K], QK Ordered[QK], QSch QueryScheme[H, S, QK]](
	t *Tree[H, S, K, P, Sch], qs QSch, key QK,
) Handle {
	best := NoHandle

	Descend(t, qs, key, func(m Match, h Handle) Action {
		if m == Before {
			best = h

			return GoLeft
		}

		return GoRight
	})

	return best
}

// Find searches by the tree's own InsertionKey type, returning the
// topmost match.
func (t *Tree[H, S, K, P, Sch]) Find(key K) Handle {
	return Find(t, AsQueryScheme[H, S, K](t.scheme), key)
}

// TopmostMatching is an alias for [Tree.Find].
func (t *Tree[H, S, K, P, Sch]) TopmostMatching(key K) Handle { return t.Find(key) }

// LeftmostMatching searches by the tree's own InsertionKey type, returning
// the leftmost match.
func (t *Tree[H, S, K, P, Sch]) LeftmostMatching(key K) Handle {
	return LeftmostMatching(t, AsQueryScheme[H, S, K](t.scheme), key)
}

// RightmostMatching searches by the tree's own InsertionKey type,
// returning the rightmost match.
func (t *Tree[H, S, K, P, Sch]) RightmostMatching(key K) Handle {
	return RightmostMatching(t, AsQueryScheme[H, S, K](t.scheme), key)
}

// RightmostBefore searches by the tree's own InsertionKey type, returning
// the rightmost node strictly before key.
func (t *Tree[H, S, K, P, Sch]) RightmostBefore(key K) Handle {
	return RightmostBefore(t, AsQueryScheme[H, S, K](t.scheme), key)
}

// LeftmostAfter searches by the tree's own InsertionKey type, returning
// the leftmost node strictly after key.
func (t *Tree[H, S, K, P, Sch]) LeftmostAfter(key K) Handle {
	return LeftmostAfter(t, AsQueryScheme[H, S, K](t.scheme), key)
}
