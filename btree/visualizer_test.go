package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisualize(t *testing.T) {
	tree := newIntTree(t, 2, 10, 20, 5, 6, 12, 30, 7, 17)
	v := &Visualizer[int]{Tree: tree, NoColor: true}

	assert.Equal(t, "L0: [10 20]\nL1: [5 6 7] [12 17] [30]", v.Visualize())
}

func TestVisualizeEmpty(t *testing.T) {
	tree := newIntTree(t, 3)
	v := &Visualizer[int]{Tree: tree, NoColor: true}

	assert.Equal(t, "L0: []", v.Visualize())
}
