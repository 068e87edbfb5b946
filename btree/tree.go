package btree

import "cmp"

/*
Insert adds key to the tree. Inserting a key that is already present stores
another occurrence next to the existing one.

If the root is full it is split first: a new root is created with the old
root as its only child, which grows the tree by one level.
*/
func (t *Tree[K]) Insert(key K) {
	// The tree was emptied by Delete, so start over with a fresh leaf.
	if t.root == nilNode {
		t.root = t.newNode(true)
	}

	if len(t.node(t.root).keys) == t.maxKeys() {
		old := t.root
		t.root = t.newNode(false)
		t.node(t.root).children = append(t.node(t.root).children, old)
		t.splitChild(t.root, 0)
		t.log.Debug("btree: root split", "height", t.Height())
	}

	t.insertNonFull(t.root, key)
	t.length++
}

/*
insertNonFull places key in the subtree rooted at id, which must not be full.
Any full child on the path is split before we step into it, so the leaf we
finally reach always has room.
*/
func (t *Tree[K]) insertNonFull(id nodeID, key K) {
	n := t.node(id)
	pos := n.upperBound(key)

	if n.leaf {
		n.insertKeyAt(pos, key)
		return
	}

	if len(t.node(n.children[pos]).keys) == t.maxKeys() {
		t.splitChild(id, pos)
		// The promoted median now sits at pos; keys not below it belong to the new right sibling.
		if key >= n.keys[pos] {
			pos++
		}
	}
	t.insertNonFull(n.children[pos], key)
}

// Has reports whether at least one occurrence of key is stored.
func (t *Tree[K]) Has(key K) bool {
	for id := t.root; id != nilNode; {
		n := t.node(id)
		pos, found := n.search(key)
		if found {
			return true
		}
		if n.leaf {
			return false
		}
		id = n.children[pos]
	}
	return false
}

// Min returns the smallest key, or false if the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.Empty() {
		return zero, false
	}
	n := t.node(t.root)
	for !n.leaf {
		n = t.node(n.children[0])
	}
	return n.keys[0], true
}

// Max returns the largest key, or false if the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.Empty() {
		return zero, false
	}
	n := t.node(t.root)
	for !n.leaf {
		n = t.node(n.children[len(n.children)-1])
	}
	return n.keys[len(n.keys)-1], true
}

// Traverse calls visit once per key in ascending order.
func (t *Tree[K]) Traverse(visit func(key K)) {
	if t.root == nilNode {
		return
	}
	t.traverse(t.root, visit)
}

func (t *Tree[K]) traverse(id nodeID, visit func(key K)) {
	n := t.node(id)
	for i, key := range n.keys {
		if !n.leaf {
			t.traverse(n.children[i], visit)
		}
		visit(key)
	}
	if !n.leaf {
		t.traverse(n.children[len(n.keys)], visit)
	}
}

// Keys returns every key in ascending order.
func (t *Tree[K]) Keys() []K {
	out := make([]K, 0, t.length)
	t.Traverse(func(key K) {
		out = append(out, key)
	})
	return out
}

// NodeView is a read-only snapshot of one node, handed out by Walk.
type NodeView[K cmp.Ordered] struct {
	Depth int
	Keys  []K
	Leaf  bool
}

/*
Walk visits nodes depth first, parent before children, left to right.
It stops early when visit returns false. Keys in a NodeView are a copy,
so holding on to them never exposes the tree's storage.
*/
func (t *Tree[K]) Walk(visit func(NodeView[K]) bool) {
	if t.root == nilNode {
		return
	}
	t.walk(t.root, 0, visit)
}

func (t *Tree[K]) walk(id nodeID, depth int, visit func(NodeView[K]) bool) bool {
	n := t.node(id)
	view := NodeView[K]{
		Depth: depth,
		Keys:  append([]K(nil), n.keys...),
		Leaf:  n.leaf,
	}
	if !visit(view) {
		return false
	}
	for _, child := range n.children {
		if !t.walk(child, depth+1, visit) {
			return false
		}
	}
	return true
}
