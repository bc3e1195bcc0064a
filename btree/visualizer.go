package btree

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Visualizer draws a tree level by level, one line per depth:
//
//	L0: [10 20]
//	L1: [5 6 7] [12 17] [30]
//
// Internal nodes and leaves are printed in different colors.
type Visualizer[K any] struct {
	Tree    *Tree[K]
	NoColor bool
}

func (v *Visualizer[K]) palette() (internal, leaf *color.Color) {
	internal = color.New(color.FgCyan, color.Bold)
	leaf = color.New(color.FgGreen)
	if v.NoColor {
		internal.DisableColor()
		leaf.DisableColor()
	}
	return internal, leaf
}

// Visualize renders the tree, one line per level from the root down.
func (v *Visualizer[K]) Visualize() string {
	internal, leaf := v.palette()

	var lines []string
	level := []*node[K]{v.Tree.root}
	for depth := 0; len(level) > 0; depth++ {
		var next []*node[K]
		parts := make([]string, 0, len(level))
		for _, n := range level {
			c := internal
			if n.leaf() {
				c = leaf
			}
			parts = append(parts, c.Sprint(formatKeys(n.keys)))
			next = append(next, n.children...)
		}
		lines = append(lines, fmt.Sprintf("L%d: %s", depth, strings.Join(parts, " ")))
		level = next
	}
	return strings.Join(lines, "\n")
}

func formatKeys[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprint(key)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
