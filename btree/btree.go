/*
Package btree implements an in-memory B-tree of unique, totally ordered keys.

A tree of minimum degree t keeps every non-root node between t-1 and 2t-1 keys
and all leaves at the same depth. Insertion splits full nodes on the way down,
deletion repairs under-full children (borrow or merge) on the way down, so a
node is never entered while it violates its occupancy bounds.

The tree is not safe for concurrent use.
*/
package btree

import "cmp"

// LessFunc reports whether a sorts strictly before b. It must define a strict
// weak ordering; keys for which neither is less than the other are equal.
type LessFunc[K any] func(a, b K) bool

// Less returns the natural ordering of an ordered type. Floating-point NaN
// sorts before every other value and equals only itself.
func Less[K cmp.Ordered]() LessFunc[K] {
	return cmp.Less[K]
}

// order carries the per-tree parameters every node needs. All nodes of a tree
// share the same *order.
type order[K any] struct {
	degree int // minimum degree t
	less   LessFunc[K]
}

func (o *order[K]) maxKeys() int { return 2*o.degree - 1 }
func (o *order[K]) minKeys() int { return o.degree - 1 }
func (o *order[K]) maxChildren() int { return 2 * o.degree }

// newNode allocates a node whose key (and, for internal nodes, child) buffers
// already have their final capacity, so shifts never reallocate.
func (o *order[K]) newNode(leaf bool) *node[K] {
	n := &node[K]{
		keys: make([]K, 0, o.maxKeys()),
		ord:  o,
	}
	if !leaf {
		n.children = make([]*node[K], 0, o.maxChildren())
	}
	return n
}
