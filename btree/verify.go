package btree

import (
	"cmp"
	"fmt"
)

/*
Verify walks the whole tree and checks the structural invariants:
node occupancy, child counts, key order within and across nodes, equal leaf depth,
the stored key count and that every live arena slot is reachable from the root.
It returns an error wrapping ErrCorrupt on the first violation found.
*/
func (t *Tree[K]) Verify() error {
	if t.root == nilNode {
		if t.length != 0 {
			return fmt.Errorf("%w: no root but %d keys recorded", ErrCorrupt, t.length)
		}
		if live := t.liveNodes(); live != 0 {
			return fmt.Errorf("%w: no root but %d nodes still allocated", ErrCorrupt, live)
		}
		return nil
	}

	v := verifier[K]{tree: t, leafDepth: -1}
	if err := v.check(t.root, 0, nil, nil); err != nil {
		return err
	}
	if v.keys != t.length {
		return fmt.Errorf("%w: found %d keys, recorded %d", ErrCorrupt, v.keys, t.length)
	}
	if live := t.liveNodes(); v.nodes != live {
		return fmt.Errorf("%w: reached %d nodes, %d allocated", ErrCorrupt, v.nodes, live)
	}
	return nil
}

type verifier[K cmp.Ordered] struct {
	tree      *Tree[K]
	leafDepth int
	keys      int
	nodes     int
}

// check verifies the subtree at id. lo and hi bound its keys inclusively when non-nil.
func (v *verifier[K]) check(id nodeID, depth int, lo, hi *K) error {
	t := v.tree
	if id < 0 || int(id) >= len(t.nodes) || t.nodes[id] == nil {
		return fmt.Errorf("%w: dangling child slot %d", ErrCorrupt, id)
	}
	n := t.node(id)
	v.nodes++
	v.keys += len(n.keys)

	if len(n.keys) > t.maxKeys() {
		return fmt.Errorf("%w: node %d holds %d keys, max %d", ErrCorrupt, id, len(n.keys), t.maxKeys())
	}
	if id != t.root && len(n.keys) < t.minKeys() {
		return fmt.Errorf("%w: node %d holds %d keys, min %d", ErrCorrupt, id, len(n.keys), t.minKeys())
	}
	for i, key := range n.keys {
		if i > 0 && key < n.keys[i-1] {
			return fmt.Errorf("%w: node %d keys out of order at %d", ErrCorrupt, id, i)
		}
		if (lo != nil && key < *lo) || (hi != nil && key > *hi) {
			return fmt.Errorf("%w: node %d key %v outside its parent's range", ErrCorrupt, id, key)
		}
	}

	if n.leaf {
		if len(n.children) != 0 {
			return fmt.Errorf("%w: leaf %d has %d children", ErrCorrupt, id, len(n.children))
		}
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return fmt.Errorf("%w: leaf %d at depth %d, expected %d", ErrCorrupt, id, depth, v.leafDepth)
		}
		return nil
	}

	if len(n.keys) == 0 {
		return fmt.Errorf("%w: internal node %d has no keys", ErrCorrupt, id)
	}
	if len(n.children) != len(n.keys)+1 {
		return fmt.Errorf("%w: node %d has %d keys and %d children", ErrCorrupt, id, len(n.keys), len(n.children))
	}
	for i, child := range n.children {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		}
		if err := v.check(child, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
