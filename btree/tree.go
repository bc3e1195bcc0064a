package btree

import (
	"cmp"
	"fmt"
	"strings"
)

/*
Tree only keeps a pointer to the root node of the tree.
A tree is made up of nodes. Each node contains sorted keys.
The root is never nil: an empty tree has an empty leaf as its root.
*/
type Tree[K any] struct {
	root   *node[K]
	ord    *order[K]
	length int
	logger Logger
}

// New returns an empty tree of the given minimum degree ordered by <.
func New[K cmp.Ordered](degree int, opts ...Option) (*Tree[K], error) {
	return NewFunc(degree, Less[K](), opts...)
}

// NewFunc returns an empty tree of the given minimum degree ordered by less.
func NewFunc[K any](degree int, less LessFunc[K], opts ...Option) (*Tree[K], error) {
	if degree < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, degree)
	}
	if less == nil {
		return nil, ErrNilLess
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ord := &order[K]{degree: degree, less: less}
	return &Tree[K]{
		root:   ord.newNode(true),
		ord:    ord,
		logger: o.logger,
	}, nil
}

// Degree returns the minimum degree t of the tree.
func (t *Tree[K]) Degree() int {
	return t.ord.degree
}

// Len returns the number of keys stored in the tree.
func (t *Tree[K]) Len() int {
	return t.length
}

// Height returns the number of levels, 1 for a tree that is a single leaf.
func (t *Tree[K]) Height() int {
	h := 1
	for n := t.root; !n.leaf(); n = n.children[0] {
		h++
	}
	return h
}

// Search walks the tree from the root and returns the stored key equal to key.
func (t *Tree[K]) Search(key K) (K, bool) {
	for next := t.root; ; {
		pos, found := next.search(key)
		if found {
			return next.keys[pos], true
		}
		if next.leaf() {
			var zero K
			return zero, false
		}
		next = next.children[pos]
	}
}

// Min returns the smallest key in the tree.
func (t *Tree[K]) Min() (K, bool) {
	if t.length == 0 {
		var zero K
		return zero, false
	}
	return t.root.min(), true
}

// Max returns the largest key in the tree.
func (t *Tree[K]) Max() (K, bool) {
	if t.length == 0 {
		var zero K
		return zero, false
	}
	return t.root.max(), true
}

/*
Create a new root node.
The existing root then becomes the new root's only child and is split right away,
so the new root ends up with the median key and two children.
*/
func (t *Tree[K]) splitRoot() {
	newRoot := t.ord.newNode(false)
	newRoot.insertChildAt(0, t.root)
	newRoot.splitChild(0)
	t.root = newRoot
	t.logger.Debug("split root", "height", t.Height(), "len", t.length)
}

// Insert adds key to the tree. Keys are unique: inserting a key that is already
// present returns ErrDuplicateKey and leaves the set of keys untouched, although
// full nodes on the path may have been split.
func (t *Tree[K]) Insert(key K) error {
	// The tree root is full, so perform a split on the root.
	if t.root.isFull() {
		t.splitRoot()
	}

	if !t.root.insertNonfull(key) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	t.length++
	return nil
}

// Delete removes key from the tree and reports whether it was present.
// Deleting from an empty tree or deleting an absent key leaves the keys as they are.
func (t *Tree[K]) Delete(key K) bool {
	found := t.root.delete(key)
	if found {
		t.length--
	}

	// Merges on the way down can leave an internal root with no keys even when
	// key was absent, so its only child takes over. An empty leaf root stays.
	if len(t.root.keys) == 0 && !t.root.leaf() {
		t.root = t.root.children[0]
		t.logger.Debug("collapsed root", "height", t.Height(), "len", t.length)
	}
	return found
}

// Clear drops every key and leaves an empty leaf root.
func (t *Tree[K]) Clear() {
	t.root = t.ord.newNode(true)
	t.length = 0
}

// String renders the tree as nested brackets, e.g. [[1 2] 3 [4]].
func (t *Tree[K]) String() string {
	var sb strings.Builder
	t.root.format(&sb)
	return sb.String()
}

func (n *node[K]) format(sb *strings.Builder) {
	sb.WriteByte('[')
	for i, key := range n.keys {
		if !n.leaf() {
			n.children[i].format(sb)
			sb.WriteByte(' ')
		} else if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(sb, key)
		if !n.leaf() {
			sb.WriteByte(' ')
		}
	}
	if !n.leaf() {
		n.children[len(n.keys)].format(sb)
	}
	sb.WriteByte(']')
}
