package btree

import "errors"

var (
	ErrInvalidDegree = errors.New("btree: minimum degree must be at least 2")
	ErrEmptyTree     = errors.New("btree: tree is empty")
	ErrKeyNotFound   = errors.New("btree: key not found")
	ErrCorrupt       = errors.New("btree: invariant violated")
)
