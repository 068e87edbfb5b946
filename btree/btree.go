// Package btree implements an in-memory B-tree of configurable minimum degree.
//
// Every non-root node holds between degree-1 and 2*degree-1 keys and all leaves
// sit at the same depth. Full nodes are split on the way down during insertion
// and thin nodes are refilled (borrow or merge) on the way down during deletion,
// so each mutation is a single root-to-leaf pass.
//
// A Tree is not safe for concurrent use. Callers that share one must hold an
// exclusive lock around Insert and Delete; reads may run together only while no
// mutation is in flight.
package btree

import (
	"cmp"
	"fmt"
)

// DefaultDegree is the minimum degree used by the CLI when none is given.
const DefaultDegree = 3

/*
Tree keeps the root of the tree and the arena that owns every node.
Nodes refer to their children by arena slot, never by pointer, so a node
has exactly one owner: its parent, or the tree itself for the root.
*/
type Tree[K cmp.Ordered] struct {
	root   nodeID
	degree int

	nodes []*node[K]
	free  []nodeID

	length int
	log    Logger
}

type options struct {
	logger Logger
}

// Option configures a Tree at construction time.
type Option func(*options)

// WithLogger sets the logger used for structural events and delete misses.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates an empty tree whose root is a single empty leaf.
func New[K cmp.Ordered](degree int, opts ...Option) (*Tree[K], error) {
	if degree < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}

	o := options{logger: DiscardLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tree[K]{degree: degree, log: o.logger}
	t.root = t.newNode(true)
	return t, nil
}

func (t *Tree[K]) maxKeys() int { return 2*t.degree - 1 }
func (t *Tree[K]) minKeys() int { return t.degree - 1 }

// Degree returns the minimum degree the tree was created with.
func (t *Tree[K]) Degree() int { return t.degree }

// Len returns the number of keys stored, counting duplicates.
func (t *Tree[K]) Len() int { return t.length }

// Empty reports whether the tree holds no keys.
func (t *Tree[K]) Empty() bool {
	return t.root == nilNode || len(t.node(t.root).keys) == 0
}

// Height returns the number of levels, 0 once the root is gone.
func (t *Tree[K]) Height() int {
	h := 0
	for id := t.root; id != nilNode; h++ {
		n := t.node(id)
		if n.leaf {
			return h + 1
		}
		id = n.children[0]
	}
	return h
}
