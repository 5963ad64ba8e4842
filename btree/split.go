package btree

// split splits a full node. With borrow = ceil(n/2), the entry at borrow-1 is
// the median and is returned to the caller. Entries from borrow on, and for
// internal nodes the children from borrow on, move to a new right sibling.
// The source keeps borrow-1 entries (and borrow children), the sibling gets
// n-borrow entries (and n-borrow+1 children).
//
// split returns ok == false and leaves n untouched if n is not full.
func (t *Tree[K, V]) split(n treeNode[K, V]) (median Entry[K, V], sibling treeNode[K, V], ok bool) {
	if !t.isFull(n) {
		return median, nil, false
	}
	borrow := ceilDiv(t.cfg.Order, 2)
	switch n := n.(type) {
	case *leafNode[K, V]:
		right := t.newLeaf()
		median = n.entries[borrow-1]
		right.entries = append(right.entries, n.entries[borrow:]...)
		n.entries = truncate(n.entries, borrow-1)
		sibling = right
	case *innerNode[K, V]:
		assert(len(n.children) == len(n.entries)+1, "split: child count does not match entry count")
		right := t.newInner()
		median = n.entries[borrow-1]
		right.entries = append(right.entries, n.entries[borrow:]...)
		right.children = append(right.children, n.children[borrow:]...)
		n.entries = truncate(n.entries, borrow-1)
		n.children = truncate(n.children, borrow)
		sibling = right
	default:
		panic("unknown tree node type")
	}
	tracer().Debugf("btree: split node of order %d, %d entries stay, %d move",
		t.cfg.Order, len(n.base().entries), len(sibling.base().entries))
	return median, sibling, true
}
