package btree

import "fmt"

// Check verifies every structural invariant of the tree: occupancy bounds,
// key ordering inside and across nodes, child counts, uniform leaf depth and the
// cached length. It returns an error wrapping ErrCorrupt describing the first
// violation found.
func (t *Tree[K]) Check() error {
	if t.root == nil {
		return fmt.Errorf("%w: nil root", ErrCorrupt)
	}
	if !t.root.leaf() && len(t.root.keys) == 0 {
		return fmt.Errorf("%w: internal root without keys", ErrCorrupt)
	}

	c := checker[K]{ord: t.ord, leafDepth: -1}
	if err := c.walk(t.root, 0, nil, nil); err != nil {
		return err
	}

	keys := t.root.appendInOrder(make([]K, 0, t.length))
	if len(keys) != t.length {
		return fmt.Errorf("%w: tree holds %d keys, length is %d", ErrCorrupt, len(keys), t.length)
	}
	for i := 1; i < len(keys); i++ {
		if !t.ord.less(keys[i-1], keys[i]) {
			return fmt.Errorf("%w: in-order sequence not ascending at %v, %v", ErrCorrupt, keys[i-1], keys[i])
		}
	}
	return nil
}

type checker[K any] struct {
	ord       *order[K]
	leafDepth int
}

// walk checks n and its subtree; lo and hi are the exclusive bounds inherited
// from the parent's separators, nil when open.
func (c *checker[K]) walk(n *node[K], depth int, lo, hi *K) error {
	if len(n.keys) > c.ord.maxKeys() {
		return fmt.Errorf("%w: node at depth %d holds %d keys, max %d", ErrCorrupt, depth, len(n.keys), c.ord.maxKeys())
	}
	if depth > 0 && len(n.keys) < c.ord.minKeys() {
		return fmt.Errorf("%w: node at depth %d holds %d keys, min %d", ErrCorrupt, depth, len(n.keys), c.ord.minKeys())
	}

	for i, key := range n.keys {
		if i > 0 && !c.ord.less(n.keys[i-1], key) {
			return fmt.Errorf("%w: keys %v, %v out of order at depth %d", ErrCorrupt, n.keys[i-1], key, depth)
		}
		if lo != nil && !c.ord.less(*lo, key) {
			return fmt.Errorf("%w: key %v not above separator %v", ErrCorrupt, key, *lo)
		}
		if hi != nil && !c.ord.less(key, *hi) {
			return fmt.Errorf("%w: key %v not below separator %v", ErrCorrupt, key, *hi)
		}
	}

	if n.leaf() {
		if c.leafDepth == -1 {
			c.leafDepth = depth
		} else if c.leafDepth != depth {
			return fmt.Errorf("%w: leaf at depth %d, expected %d", ErrCorrupt, depth, c.leafDepth)
		}
		return nil
	}

	if len(n.children) != len(n.keys)+1 {
		return fmt.Errorf("%w: node at depth %d has %d keys and %d children", ErrCorrupt, depth, len(n.keys), len(n.children))
	}
	for i, child := range n.children {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		}
		if err := c.walk(child, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
