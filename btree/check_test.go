package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDetectsCorruption(t *testing.T) {
	o := intOrder(2)
	tests := []struct {
		name   string
		root   *node[int]
		length int
	}{
		{
			name:   "unsorted_leaf",
			root:   leafOf(o, 3, 1),
			length: 2,
		},
		{
			name:   "underfull_child",
			root:   internalOf(o, []int{10, 20}, leafOf(o, 5), leafOf(o), leafOf(o, 25)),
			length: 4,
		},
		{
			name:   "key_outside_separator",
			root:   internalOf(o, []int{10}, leafOf(o, 5), leafOf(o, 7)),
			length: 3,
		},
		{
			name:   "uneven_leaf_depth",
			root:   internalOf(o, []int{10}, leafOf(o, 5), internalOf(o, []int{15}, leafOf(o, 12), leafOf(o, 18))),
			length: 5,
		},
		{
			name:   "child_count_mismatch",
			root:   internalOf(o, []int{10, 20}, leafOf(o, 5), leafOf(o, 15)),
			length: 4,
		},
		{
			name:   "stale_length",
			root:   leafOf(o, 1, 2),
			length: 3,
		},
		{
			name:   "internal_root_without_keys",
			root:   internalOf(o, nil, leafOf(o, 1)),
			length: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := &Tree[int]{root: tt.root, ord: o, length: tt.length, logger: DiscardLogger{}}
			assert.ErrorIs(t, tree.Check(), ErrCorrupt)
		})
	}
}

func TestCheckAcceptsValidTree(t *testing.T) {
	o := intOrder(2)
	tree := &Tree[int]{
		root:   internalOf(o, []int{10}, leafOf(o, 5), leafOf(o, 12, 15)),
		ord:    o,
		length: 4,
		logger: DiscardLogger{},
	}
	require.NoError(t, tree.Check())
}
