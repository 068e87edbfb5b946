package btree

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree(t *testing.T, degree int) *Tree[string] {
	t.Helper()
	tr, err := New[string](degree)
	require.NoError(t, err)
	return tr
}

func leafOf[K cmp.Ordered](tr *Tree[K], keys ...K) nodeID {
	id := tr.newNode(true)
	n := tr.node(id)
	n.keys = append(n.keys, keys...)
	return id
}

func branchOf[K cmp.Ordered](tr *Tree[K], keys []K, children ...nodeID) nodeID {
	id := tr.newNode(false)
	n := tr.node(id)
	n.keys = append(n.keys, keys...)
	n.children = append(n.children, children...)
	return id
}

// plant swaps the empty initial root for a hand-built one.
func plant[K cmp.Ordered](tr *Tree[K], root nodeID) {
	tr.freeNode(tr.root)
	tr.root = root
	tr.length = 0
	tr.Traverse(func(K) { tr.length++ })
}

// shape renders the tree depth first, one entry per node, indented by depth.
func shape(tr *Tree[string]) []string {
	var out []string
	tr.Walk(func(v NodeView[string]) bool {
		out = append(out, strings.Repeat(" ", v.Depth)+strings.Join(v.Keys, ""))
		return true
	})
	return out
}

func TestNodeSearch(t *testing.T) {
	n := &node[int]{keys: []int{10, 20, 20, 30}}

	tests := []struct {
		name  string
		key   int
		pos   int
		found bool
		upper int
	}{
		{name: "less_than_all", key: 5, pos: 0, found: false, upper: 0},
		{name: "equal_first", key: 10, pos: 0, found: true, upper: 1},
		{name: "between", key: 15, pos: 1, found: false, upper: 1},
		{name: "duplicate_run", key: 20, pos: 1, found: true, upper: 3},
		{name: "equal_last", key: 30, pos: 3, found: true, upper: 4},
		{name: "greater_than_all", key: 40, pos: 4, found: false, upper: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, found := n.search(tt.key)
			assert.Equal(t, tt.pos, pos)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.upper, n.upperBound(tt.key))
		})
	}
}

func TestNodeKeyAndChildShifts(t *testing.T) {
	n := &node[string]{}
	n.insertKeyAt(0, "B")
	n.insertKeyAt(0, "A")
	n.insertKeyAt(2, "D")
	n.insertKeyAt(2, "C")
	assert.Equal(t, []string{"A", "B", "C", "D"}, n.keys)

	assert.Equal(t, "A", n.removeKeyAt(0))
	assert.Equal(t, "D", n.removeKeyAt(2))
	assert.Equal(t, []string{"B", "C"}, n.keys)

	n.insertChildAt(0, 7)
	n.insertChildAt(0, 5)
	n.insertChildAt(1, 6)
	assert.Equal(t, []nodeID{5, 6, 7}, n.children)
	assert.Equal(t, nodeID(6), n.removeChildAt(1))
	assert.Equal(t, []nodeID{5, 7}, n.children)
}

func TestArenaReusesFreedSlots(t *testing.T) {
	tr := newTestTree(t, 2)
	a := tr.newNode(true)
	b := tr.newNode(false)
	assert.Equal(t, 3, tr.liveNodes())

	tr.freeNode(a)
	assert.Equal(t, 2, tr.liveNodes())
	assert.Nil(t, tr.nodes[a])

	c := tr.newNode(true)
	assert.Equal(t, a, c)
	assert.NotEqual(t, b, c)
	assert.Len(t, tr.nodes, 3)
	assert.Equal(t, 4, cap(tr.node(b).children))
	assert.Equal(t, 3, cap(tr.node(c).keys))
}

func TestSplitChildLeaf(t *testing.T) {
	tr := newTestTree(t, 3)
	full := leafOf(tr, "A", "B", "C", "D", "E")
	plant(tr, branchOf(tr, nil, full))

	tr.splitChild(tr.root, 0)

	assert.Equal(t, []string{"C", " AB", " DE"}, shape(tr))
	require.NoError(t, tr.Verify())
}

func TestSplitChildInternal(t *testing.T) {
	tr := newTestTree(t, 2)
	full := branchOf(tr, []string{"B", "D", "F"},
		leafOf(tr, "A"), leafOf(tr, "C"), leafOf(tr, "E"), leafOf(tr, "G"))
	plant(tr, branchOf(tr, []string{"H"}, full, leafOf(tr, "I")))

	tr.splitChild(tr.root, 0)

	assert.Equal(t, []string{"DH", " B", "  A", "  C", " F", "  E", "  G", " I"}, shape(tr))
}

func TestSplitChildRequiresFullNode(t *testing.T) {
	tr := newTestTree(t, 3)
	plant(tr, branchOf(tr, nil, leafOf(tr, "A", "B")))

	assert.Panics(t, func() { tr.splitChild(tr.root, 0) })
}
