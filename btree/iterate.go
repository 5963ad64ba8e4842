package btree

import "slices"

// Ascend walks entries in key order.
//
// Iteration stops early if callback returns false. Ascend does not modify the
// tree, so repeated walks yield identical sequences.
func (t *Tree[K, V]) Ascend(fn func(e Entry[K, V]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.ascendNode(t.root, fn)
}

func (t *Tree[K, V]) ascendNode(n treeNode[K, V], fn func(e Entry[K, V]) bool) bool {
	assert(n != nil, "ascendNode called with nil node")
	if n.isLeaf() {
		for _, e := range n.base().entries {
			if !fn(e) {
				return false
			}
		}
		return true
	}
	inner := n.(*innerNode[K, V])
	for i, child := range inner.children {
		if !t.ascendNode(child, fn) {
			return false
		}
		if i < len(inner.entries) && !fn(inner.entries[i]) {
			return false
		}
	}
	return true
}

// Entries returns all entries in key order.
func (t *Tree[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.Len())
	t.Ascend(func(e Entry[K, V]) bool {
		out = append(out, e)
		return true
	})
	return out
}

// NodeInfo is a read-only view of a single tree node, as delivered by Walk.
type NodeInfo[K, V any] struct {
	ID      int           // pre-order number of the node, the root is 1
	Parent  int           // ID of the parent node, 0 for the root
	Slot    int           // child slot within the parent
	Depth   int           // distance from the root
	Leaf    bool          // true for leaf nodes
	Entries []Entry[K, V] // copy of the node's entries
}

// Walk visits all nodes in pre-order, parents before children and children
// from left to right. Walk stops early if fn returns false.
func (t *Tree[K, V]) Walk(fn func(info NodeInfo[K, V]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	id := 0
	var walk func(n treeNode[K, V], parent, slot, depth int) bool
	walk = func(n treeNode[K, V], parent, slot, depth int) bool {
		id++
		info := NodeInfo[K, V]{
			ID:      id,
			Parent:  parent,
			Slot:    slot,
			Depth:   depth,
			Leaf:    n.isLeaf(),
			Entries: slices.Clone(n.base().entries),
		}
		if !fn(info) {
			return false
		}
		if inner, ok := n.(*innerNode[K, V]); ok {
			for i, child := range inner.children {
				if !walk(child, info.ID, i, depth+1) {
					return false
				}
			}
		}
		return true
	}
	walk(t.root, 0, 0, 0)
}
