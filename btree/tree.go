package btree

import "cmp"

// Tree is an in-memory B-tree of fixed order holding entries sorted by key.
//
// K is the key type, V the type of values associated with keys. Keys are
// ordered by the Config.Compare function. Equal keys are allowed.
type Tree[K, V any] struct {
	cfg    Config[K]
	root   treeNode[K, V]
	height int // 0 means empty tree
	count  int // number of entries
	nodes  int // number of allocated nodes
	minKey K
	maxKey K
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree of the given order for a key type with a
// natural order. An order of 0 selects DefaultOrder.
func NewOrdered[K cmp.Ordered, V any](order int) (*Tree[K, V], error) {
	return New[K, V](Config[K]{
		Order:   order,
		Compare: cmp.Compare[K],
	})
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Order returns the maximum number of entries per node.
func (t *Tree[K, V]) Order() int {
	return t.cfg.Order
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// NodeCount returns the number of nodes allocated by the tree. Nodes are never
// freed, so the count only grows.
func (t *Tree[K, V]) NodeCount() int {
	if t == nil {
		return 0
	}
	return t.nodes
}

// MinKey returns the smallest key inserted so far. ok is false for an empty tree.
func (t *Tree[K, V]) MinKey() (key K, ok bool) {
	if t.IsEmpty() {
		return key, false
	}
	return t.minKey, true
}

// MaxKey returns the largest key inserted so far. ok is false for an empty tree.
func (t *Tree[K, V]) MaxKey() (key K, ok bool) {
	if t.IsEmpty() {
		return key, false
	}
	return t.maxKey, true
}
