package btree

import "fmt"

type removeMode int

const (
	removeKey removeMode = iota
	removeMin
	removeMax
)

/*
Delete removes one occurrence of key.

It returns ErrEmptyTree when there is nothing to delete and ErrKeyNotFound
when no occurrence exists. A miss may still rebalance nodes along the search
path, but the set of stored keys is left untouched.
*/
func (t *Tree[K]) Delete(key K) error {
	if t.Empty() {
		return ErrEmptyTree
	}

	if _, ok := t.deleteKey(t.root, key, removeKey); !ok {
		t.log.Warn("btree: cannot delete missing key", "key", key)
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	t.length--
	return nil
}

/*
deleteKey removes a key from the subtree rooted at id and returns it.
In removeMin and removeMax mode the smallest or largest key of the subtree is
removed instead and key is ignored.

Before stepping into a child we make sure it holds at least degree keys, so
whatever we take out of it below can never leave it under-full.
*/
func (t *Tree[K]) deleteKey(id nodeID, key K, mode removeMode) (K, bool) {
	n := t.node(id)

	var pos int
	var found bool
	switch mode {
	case removeMin:
		if n.leaf {
			return t.removeFromLeaf(id, 0), true
		}
	case removeMax:
		if n.leaf {
			return t.removeFromLeaf(id, len(n.keys)-1), true
		}
		pos = len(n.keys)
	default:
		pos, found = n.search(key)
	}

	if found {
		if n.leaf {
			return t.removeFromLeaf(id, pos), true
		}

		out := n.keys[pos]
		leftID, rightID := n.children[pos], n.children[pos+1]
		switch {
		case len(t.node(leftID).keys) >= t.degree:
			// Replace the key with its predecessor, then remove the predecessor below.
			n.keys[pos], _ = t.deleteKey(leftID, key, removeMax)
			return out, true
		case len(t.node(rightID).keys) >= t.degree:
			// Same with the successor.
			n.keys[pos], _ = t.deleteKey(rightID, key, removeMin)
			return out, true
		default:
			// Both neighbours are thin: fold key and right sibling into the left one.
			t.mergeChildren(id, pos)
			return t.deleteKey(leftID, key, mode)
		}
	}

	// Not in this node and nowhere left to look.
	if n.leaf {
		var zero K
		return zero, false
	}

	child := t.fillChild(id, pos)
	return t.deleteKey(child, key, mode)
}

// removeFromLeaf drops the key at pos. A root leaf left with no keys is released.
func (t *Tree[K]) removeFromLeaf(id nodeID, pos int) K {
	n := t.node(id)
	out := n.removeKeyAt(pos)

	if len(n.keys) == 0 && id == t.root {
		t.freeNode(id)
		t.root = nilNode
		t.log.Debug("btree: tree emptied")
	}
	return out
}

type lender int

const (
	lendNone lender = iota
	lendLeft
	lendRight
)

/*
pickLender decides which sibling gives up a key. Only a sibling with at least
degree keys can lend. When both can, the one with strictly more keys lends and
the right sibling wins a tie.
*/
func (t *Tree[K]) pickLender(left, right *node[K]) lender {
	leftRich := left != nil && len(left.keys) >= t.degree
	rightRich := right != nil && len(right.keys) >= t.degree

	switch {
	case leftRich && rightRich:
		if len(left.keys) > len(right.keys) {
			return lendLeft
		}
		return lendRight
	case rightRich:
		return lendRight
	case leftRich:
		return lendLeft
	}
	return lendNone
}

/*
fillChild makes sure the child at pos holds at least degree keys before the
delete descends into it, and returns the id of the node to descend into.
It borrows through the parent when a sibling has a key to spare, and merges
with a sibling (left first) otherwise.
*/
func (t *Tree[K]) fillChild(parentID nodeID, pos int) nodeID {
	parent := t.node(parentID)
	childID := parent.children[pos]
	if len(t.node(childID).keys) >= t.degree {
		return childID
	}

	var left, right *node[K]
	if pos > 0 {
		left = t.node(parent.children[pos-1])
	}
	if pos < len(parent.keys) {
		right = t.node(parent.children[pos+1])
	}

	switch t.pickLender(left, right) {
	case lendRight:
		t.borrowFromRight(parentID, pos)
		return childID
	case lendLeft:
		t.borrowFromLeft(parentID, pos)
		return childID
	}

	if left != nil {
		leftID := parent.children[pos-1]
		t.mergeChildren(parentID, pos-1)
		return leftID
	}
	t.mergeChildren(parentID, pos)
	return childID
}

/*
borrowFromRight rotates one key to the left across the parent:
the separator drops to the end of the child, the right sibling's first key
becomes the new separator, and its first child moves over with it.
*/
func (t *Tree[K]) borrowFromRight(parentID nodeID, pos int) {
	parent := t.node(parentID)
	child := t.node(parent.children[pos])
	right := t.node(parent.children[pos+1])

	child.keys = append(child.keys, parent.keys[pos])
	parent.keys[pos] = right.removeKeyAt(0)
	if !child.leaf {
		child.children = append(child.children, right.removeChildAt(0))
	}
}

// borrowFromLeft is the mirror image of borrowFromRight.
func (t *Tree[K]) borrowFromLeft(parentID nodeID, pos int) {
	parent := t.node(parentID)
	child := t.node(parent.children[pos])
	left := t.node(parent.children[pos-1])

	child.insertKeyAt(0, parent.keys[pos-1])
	parent.keys[pos-1] = left.removeKeyAt(len(left.keys) - 1)
	if !child.leaf {
		child.insertChildAt(0, left.removeChildAt(len(left.children)-1))
	}
}

/*
mergeChildren folds the separator at pos and the child at pos+1 into the child at pos,
then releases the right child. If that leaves the root without keys, the merged
node becomes the new root and the tree loses one level.
*/
func (t *Tree[K]) mergeChildren(parentID nodeID, pos int) {
	parent := t.node(parentID)
	leftID, rightID := parent.children[pos], parent.children[pos+1]
	left, right := t.node(leftID), t.node(rightID)
	if len(left.keys)+len(right.keys)+1 > t.maxKeys() {
		panic("btree: mergeChildren would overfill a node")
	}

	left.keys = append(left.keys, parent.removeKeyAt(pos))
	left.keys = append(left.keys, right.keys...)
	if !left.leaf {
		left.children = append(left.children, right.children...)
	}
	parent.removeChildAt(pos + 1)
	t.freeNode(rightID)

	if len(parent.keys) == 0 && parentID == t.root {
		t.root = leftID
		t.freeNode(parentID)
		t.log.Debug("btree: root collapsed", "height", t.Height())
	}
}
