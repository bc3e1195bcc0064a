package btree

import "sort"

type node[K any] struct {
	// keys and children are allocated once with capacity 2t-1 and 2t and then
	// shifted in place. A leaf has no children.
	keys     []K
	children []*node[K]
	ord      *order[K]
}

func (n *node[K]) leaf() bool {
	return len(n.children) == 0
}

func (n *node[K]) isFull() bool {
	return len(n.keys) == n.ord.maxKeys()
}

// successorIndex returns the first position j with key < keys[j], or len(keys).
// On an internal node it is the child to follow, on a leaf the insertion slot.
func (n *node[K]) successorIndex(key K) int {
	return sort.Search(len(n.keys), func(j int) bool {
		return n.ord.less(key, n.keys[j])
	})
}

// predecessorIndex returns the last position j with key > keys[j], or -1.
func (n *node[K]) predecessorIndex(key K) int {
	return sort.Search(len(n.keys), func(j int) bool {
		return !n.ord.less(n.keys[j], key)
	}) - 1
}

/*
If key is found in node n, return its index i.
Else, return the index where the key would have resided if it was present in the node,
which coincides with the child pointer to follow.
*/
func (n *node[K]) search(key K) (int, bool) {
	i := n.predecessorIndex(key) + 1
	if i < len(n.keys) && n.ord.equal(n.keys[i], key) {
		return i, true
	}
	return i, false
}

func (n *node[K]) insertKeyAt(pos int, key K) {
	n.keys = append(n.keys, key)
	copy(n.keys[pos+1:], n.keys[pos:len(n.keys)-1])
	n.keys[pos] = key
}

func (n *node[K]) insertChildAt(pos int, child *node[K]) {
	n.children = append(n.children, child)
	copy(n.children[pos+1:], n.children[pos:len(n.children)-1])
	n.children[pos] = child
}

func (n *node[K]) removeKeyAt(pos int) K {
	key := n.keys[pos]
	last := len(n.keys) - 1
	copy(n.keys[pos:], n.keys[pos+1:])
	var zero K
	n.keys[last] = zero
	n.keys = n.keys[:last]
	return key
}

func (n *node[K]) removeChildAt(pos int) *node[K] {
	child := n.children[pos]
	last := len(n.children) - 1
	copy(n.children[pos:], n.children[pos+1:])
	n.children[last] = nil
	n.children = n.children[:last]
	return child
}

// max returns the largest key of the subtree rooted at n.
func (n *node[K]) max() K {
	for !n.leaf() {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1]
}

// min returns the smallest key of the subtree rooted at n.
func (n *node[K]) min() K {
	for !n.leaf() {
		n = n.children[0]
	}
	return n.keys[0]
}

/*
splitChild splits the full child at position i.
The median key moves up into n at position i, and the upper half of the child's keys
(and children) move into a new right sibling linked at position i+1.
Note: This doesn't include growing the root. For that check splitRoot() in tree.go
*/
func (n *node[K]) splitChild(i int) {
	t := n.ord.degree
	left := n.children[i]
	if !left.isFull() {
		panic("btree: splitChild called on a child that is not full")
	}

	right := n.ord.newNode(left.leaf())
	right.keys = append(right.keys, left.keys[t:]...)
	if !left.leaf() {
		right.children = append(right.children, left.children[t:]...)
		clear(left.children[t:])
		left.children = left.children[:t]
	}

	median := left.keys[t-1]
	clear(left.keys[t-1:])
	left.keys = left.keys[:t-1]

	n.insertKeyAt(i, median)
	n.insertChildAt(i+1, right)
}

/*
insertNonfull walks from n down to the leaf suitable for key, splitting any full
child before stepping into it. The caller guarantees n itself is not full.
Returns false without inserting if key is already present; splits made on the
way down are kept, they never change the set of keys.
*/
func (n *node[K]) insertNonfull(key K) bool {
	if n.isFull() {
		panic("btree: insertNonfull called on a full node")
	}
	for {
		i := n.successorIndex(key)
		// An equal key would sit right before the successor position.
		if i > 0 && n.ord.equal(n.keys[i-1], key) {
			return false
		}
		if n.leaf() {
			n.insertKeyAt(i, key)
			return true
		}
		if n.children[i].isFull() {
			n.splitChild(i)
			// We may need to change direction after promoting the median.
			switch {
			case n.ord.greater(key, n.keys[i]):
				i++
			case n.ord.equal(key, n.keys[i]):
				return false
			}
		}
		n = n.children[i]
	}
}

// mergeChildren folds keys[i] and children[i+1] into children[i] and drops both
// from n. Both children must hold exactly t-1 keys.
func (n *node[K]) mergeChildren(i int) *node[K] {
	left, right := n.children[i], n.children[i+1]
	left.keys = append(left.keys, n.keys[i])
	left.keys = append(left.keys, right.keys...)
	if !left.leaf() {
		left.children = append(left.children, right.children...)
	}
	n.removeKeyAt(i)
	n.removeChildAt(i + 1)
	return left
}

// borrowFromLeft rotates the last key of children[i-1] through keys[i-1] into the
// front of children[i].
func (n *node[K]) borrowFromLeft(i int) {
	child, sibling := n.children[i], n.children[i-1]
	child.insertKeyAt(0, n.keys[i-1])
	n.keys[i-1] = sibling.removeKeyAt(len(sibling.keys) - 1)
	if !sibling.leaf() {
		child.insertChildAt(0, sibling.removeChildAt(len(sibling.children)-1))
	}
}

// borrowFromRight rotates the first key of children[i+1] through keys[i] onto the
// end of children[i].
func (n *node[K]) borrowFromRight(i int) {
	child, sibling := n.children[i], n.children[i+1]
	child.keys = append(child.keys, n.keys[i])
	n.keys[i] = sibling.removeKeyAt(0)
	if !sibling.leaf() {
		child.children = append(child.children, sibling.removeChildAt(0))
	}
}

// fill makes sure children[i] holds at least t keys before the descent enters it
// and returns the position of the child to enter, which moves left after a merge
// with the left sibling.
func (n *node[K]) fill(i int) int {
	t := n.ord.degree
	if len(n.children[i].keys) >= t {
		return i
	}
	switch {
	case i > 0 && len(n.children[i-1].keys) >= t:
		n.borrowFromLeft(i)
	case i < len(n.children)-1 && len(n.children[i+1].keys) >= t:
		n.borrowFromRight(i)
	case i > 0:
		n.mergeChildren(i - 1)
		i--
	default:
		n.mergeChildren(i)
	}
	return i
}

/*
delete removes key from the subtree rooted at n and reports whether it was there.
Every node the walk steps into already holds at least t keys, so removing a key
from a leaf never underflows it. n itself is exempt, which is what lets the tree
call this on its root.
*/
func (n *node[K]) delete(key K) bool {
	t := n.ord.degree
	for {
		i, found := n.search(key)

		if n.leaf() {
			if !found {
				return false
			}
			n.removeKeyAt(i)
			return true
		}

		if !found {
			n = n.children[n.fill(i)]
			continue
		}

		// key sits in this internal node between children y and z.
		y, z := n.children[i], n.children[i+1]
		switch {
		case len(y.keys) >= t:
			pred := y.max()
			n.keys[i] = pred
			n, key = y, pred
		case len(z.keys) >= t:
			succ := z.min()
			n.keys[i] = succ
			n, key = z, succ
		default:
			n = n.mergeChildren(i)
		}
	}
}

// appendInOrder appends the keys of the subtree rooted at n to dst in ascending order.
func (n *node[K]) appendInOrder(dst []K) []K {
	if n.leaf() {
		return append(dst, n.keys...)
	}
	for i, key := range n.keys {
		dst = n.children[i].appendInOrder(dst)
		dst = append(dst, key)
	}
	return n.children[len(n.keys)].appendInOrder(dst)
}
