package btree

import "cmp"

// nodeID addresses a slot in the tree's node arena.
type nodeID int32

const nilNode nodeID = -1

type node[K cmp.Ordered] struct {
	// keys is sorted ascending and never grows past 2*degree-1 entries.
	keys []K
	// children is empty for leaves and holds len(keys)+1 slots otherwise.
	children []nodeID
	leaf     bool
}

func (t *Tree[K]) node(id nodeID) *node[K] {
	return t.nodes[id]
}

/*
newNode allocates a node with room for a full set of keys and children.
Slots released by freeNode are reused before the arena grows.
*/
func (t *Tree[K]) newNode(leaf bool) nodeID {
	n := &node[K]{
		keys: make([]K, 0, t.maxKeys()),
		leaf: leaf,
	}
	if !leaf {
		n.children = make([]nodeID, 0, t.maxKeys()+1)
	}

	if last := len(t.free) - 1; last >= 0 {
		id := t.free[last]
		t.free = t.free[:last]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return nodeID(len(t.nodes) - 1)
}

// freeNode releases a slot. The caller must already have moved its keys and children.
func (t *Tree[K]) freeNode(id nodeID) {
	t.nodes[id] = nil
	t.free = append(t.free, id)
}

// liveNodes is the number of arena slots currently owned by the tree.
func (t *Tree[K]) liveNodes() int {
	return len(t.nodes) - len(t.free)
}

/*
search returns the smallest index i with key <= n.keys[i] and whether n.keys[i] equals key.
When the key is absent, i is also the index of the child subtree that would contain it.
*/
func (n *node[K]) search(key K) (int, bool) {
	low, high := 0, len(n.keys)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if n.keys[mid] < key {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low, low < len(n.keys) && n.keys[low] == key
}

// upperBound returns the number of keys <= key. Equal keys route to the right.
func (n *node[K]) upperBound(key K) int {
	low, high := 0, len(n.keys)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if key < n.keys[mid] {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low
}

// helper method to insert a key at an arbitrary position of a node
func (n *node[K]) insertKeyAt(pos int, key K) {
	var zero K
	n.keys = append(n.keys, zero)
	copy(n.keys[pos+1:], n.keys[pos:])
	n.keys[pos] = key
}

// helper method to remove the key at an arbitrary position of a node
func (n *node[K]) removeKeyAt(pos int) K {
	key := n.keys[pos]
	copy(n.keys[pos:], n.keys[pos+1:])

	var zero K
	n.keys[len(n.keys)-1] = zero
	n.keys = n.keys[:len(n.keys)-1]
	return key
}

// helper method to insert a child slot at an arbitrary position of a node
func (n *node[K]) insertChildAt(pos int, child nodeID) {
	n.children = append(n.children, nilNode)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = child
}

// helper method to remove the child slot at an arbitrary position of a node
func (n *node[K]) removeChildAt(pos int) nodeID {
	child := n.children[pos]
	copy(n.children[pos:], n.children[pos+1:])

	n.children[len(n.children)-1] = nilNode
	n.children = n.children[:len(n.children)-1]
	return child
}

/*
splitChild splits the full child at index i of parent.
The upper degree-1 keys (and upper degree children) move into a new right sibling,
and the median key moves up into parent at index i.
Note: Growing the tree by splitting the root is handled by Insert in tree.go.
*/
func (t *Tree[K]) splitChild(parentID nodeID, i int) {
	parent := t.node(parentID)
	left := t.node(parent.children[i])
	if len(left.keys) != t.maxKeys() {
		panic("btree: splitChild called on a node that is not full")
	}

	rightID := t.newNode(left.leaf)
	right := t.node(rightID)
	mid := t.degree - 1
	median := left.keys[mid]

	right.keys = append(right.keys, left.keys[mid+1:]...)
	clear(left.keys[mid:])
	left.keys = left.keys[:mid]

	if !left.leaf {
		right.children = append(right.children, left.children[mid+1:]...)
		for j := mid + 1; j < len(left.children); j++ {
			left.children[j] = nilNode
		}
		left.children = left.children[:mid+1]
	}

	parent.insertKeyAt(i, median)
	parent.insertChildAt(i+1, rightID)
}
