package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"btree/btree"
)

// Visualizer renders a tree one node per line, depth first, like a directory listing.
type Visualizer struct {
	Tree *btree.Tree[string]

	layer *color.Color
	leaf  *color.Color
	inner *color.Color
}

func NewVisualizer(t *btree.Tree[string]) *Visualizer {
	return &Visualizer{
		Tree:  t,
		layer: color.New(color.FgCyan),
		leaf:  color.New(color.FgGreen),
		inner: color.New(color.FgYellow, color.Bold),
	}
}

// Visualize prints every node with its layer, key count and kind.
func (v *Visualizer) Visualize() string {
	if v.Tree.Empty() {
		return "the tree is empty"
	}

	var sb strings.Builder
	v.Tree.Walk(func(n btree.NodeView[string]) bool {
		kind, paint := "internal", v.inner
		if n.Leaf {
			kind, paint = "leaf", v.leaf
		}
		fmt.Fprintf(&sb, "%s%s %s keys=%d %s\n",
			strings.Repeat("  ", n.Depth),
			v.layer.Sprintf("layer=%d", n.Depth),
			kind,
			len(n.Keys),
			paint.Sprint("[", strings.Join(n.Keys, " "), "]"),
		)
		return true
	})
	return strings.TrimSuffix(sb.String(), "\n")
}

// InOrder lists the keys in ascending order separated by spaces.
func (v *Visualizer) InOrder() string {
	return strings.Join(v.Tree.Keys(), " ")
}
