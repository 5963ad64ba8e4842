package btree

import "fmt"

// Check validates structural tree invariants:
//   - all leaves are at the same depth, which matches Height,
//   - every node holds at most Order entries, every non-root node at least
//     ceil(Order/2)-1,
//   - internal nodes have exactly one child more than entries,
//   - keys are in non-decreasing order within nodes and across separators,
//   - cached entry count, node count and min/max keys match the tree content.
//
// Check is meant for tests and debugging; it visits every node.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		if t.height != 0 || t.count != 0 || t.nodes != 0 {
			return fmt.Errorf("%w: empty tree with height=%d len=%d nodes=%d",
				ErrInvariant, t.height, t.count, t.nodes)
		}
		return nil
	}
	if !t.root.isLeaf() && len(t.root.base().entries) == 0 {
		return fmt.Errorf("%w: internal root without entries", ErrInvariant)
	}
	st := &checkState[K, V]{tree: t, leafDepth: -1}
	if err := st.checkNode(t.root, 0, nil, nil); err != nil {
		return err
	}
	if st.leafDepth+1 != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, st.leafDepth+1, t.height)
	}
	if st.entries != t.count {
		return fmt.Errorf("%w: entry count mismatch (%d != %d)", ErrInvariant, st.entries, t.count)
	}
	if st.nodes != t.nodes {
		return fmt.Errorf("%w: node count mismatch (%d != %d)", ErrInvariant, st.nodes, t.nodes)
	}
	if t.cfg.Compare(st.first, t.minKey) != 0 {
		return fmt.Errorf("%w: cached minimum key %v differs from smallest key %v",
			ErrInvariant, t.minKey, st.first)
	}
	if t.cfg.Compare(st.last, t.maxKey) != 0 {
		return fmt.Errorf("%w: cached maximum key %v differs from largest key %v",
			ErrInvariant, t.maxKey, st.last)
	}
	return nil
}

type checkState[K, V any] struct {
	tree        *Tree[K, V]
	leafDepth   int
	entries     int
	nodes       int
	first, last K
}

// checkNode validates subtree n. lo and hi, if non-nil, are the separator keys
// enclosing n in its parent.
func (st *checkState[K, V]) checkNode(n treeNode[K, V], depth int, lo, hi *K) error {
	t := st.tree
	if n == nil {
		return fmt.Errorf("%w: nil node at depth %d", ErrInvariant, depth)
	}
	st.nodes++
	entries := n.base().entries
	if len(entries) > t.cfg.Order {
		return fmt.Errorf("%w: node holds %d entries, order is %d", ErrInvariant, len(entries), t.cfg.Order)
	}
	if !t.isRoot(n) {
		if minFill := ceilDiv(t.cfg.Order, 2) - 1; len(entries) < minFill {
			return fmt.Errorf("%w: node holds %d entries, minimum is %d", ErrInvariant, len(entries), minFill)
		}
	}
	for i, e := range entries {
		if i > 0 && t.cfg.Compare(entries[i-1].Key, e.Key) > 0 {
			return fmt.Errorf("%w: keys out of order at slot %d", ErrInvariant, i)
		}
		if lo != nil && t.cfg.Compare(*lo, e.Key) > 0 {
			return fmt.Errorf("%w: key %v below separator %v", ErrInvariant, e.Key, *lo)
		}
		if hi != nil && t.cfg.Compare(e.Key, *hi) > 0 {
			return fmt.Errorf("%w: key %v above separator %v", ErrInvariant, e.Key, *hi)
		}
	}
	if n.isLeaf() {
		if st.leafDepth < 0 {
			st.leafDepth = depth
		} else if st.leafDepth != depth {
			return fmt.Errorf("%w: leaves at depths %d and %d", ErrInvariant, st.leafDepth, depth)
		}
		for _, e := range entries {
			st.visit(e.Key)
		}
		return nil
	}
	inner := n.(*innerNode[K, V])
	if len(inner.children) != len(entries)+1 {
		return fmt.Errorf("%w: internal node has %d children for %d entries",
			ErrInvariant, len(inner.children), len(entries))
	}
	for i, child := range inner.children {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &entries[i-1].Key
		}
		if i < len(entries) {
			childHi = &entries[i].Key
		}
		if err := st.checkNode(child, depth+1, childLo, childHi); err != nil {
			return err
		}
		if i < len(entries) {
			st.visit(entries[i].Key)
		}
	}
	return nil
}

// visit records keys in traversal order.
func (st *checkState[K, V]) visit(key K) {
	if st.entries == 0 {
		st.first = key
	}
	st.last = key
	st.entries++
}
