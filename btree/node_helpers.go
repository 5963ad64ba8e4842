package btree

import "sort"

// newLeaf allocates an empty leaf with room for a full node's entries.
func (t *Tree[K, V]) newLeaf() *leafNode[K, V] {
	t.nodes++
	return &leafNode[K, V]{
		entrySet: entrySet[K, V]{entries: make([]Entry[K, V], 0, t.cfg.Order)},
	}
}

// newInner allocates an empty internal node.
func (t *Tree[K, V]) newInner() *innerNode[K, V] {
	t.nodes++
	return &innerNode[K, V]{
		entrySet: entrySet[K, V]{entries: make([]Entry[K, V], 0, t.cfg.Order)},
		children: make([]treeNode[K, V], 0, t.cfg.Order+1),
	}
}

func (t *Tree[K, V]) isFull(n treeNode[K, V]) bool {
	size := len(n.base().entries)
	assert(size <= t.cfg.Order, "node holds more entries than the tree order")
	return size == t.cfg.Order
}

func (t *Tree[K, V]) isRoot(n treeNode[K, V]) bool {
	return n != nil && n == t.root
}

// nextChildIndex returns the number of entries of n with a key less than or
// equal to key. For an internal node this is the child slot to descend into,
// for a leaf it is the slot a new entry is inserted at. Equal keys route to the
// right, so new entries land after existing entries with an equal key.
func (t *Tree[K, V]) nextChildIndex(n treeNode[K, V], key K) int {
	entries := n.base().entries
	return sort.Search(len(entries), func(i int) bool {
		return t.cfg.Compare(key, entries[i].Key) < 0
	})
}

// insertEntry places e into n at its sorted position and returns that slot.
// n must not be full.
func (t *Tree[K, V]) insertEntry(n treeNode[K, V], e Entry[K, V]) int {
	assert(!t.isFull(n), "insertEntry called on a full node")
	slot := t.nextChildIndex(n, e.Key)
	s := n.base()
	s.entries = insertAt(s.entries, slot, e)
	return slot
}

// insertAt inserts v into s at idx, shifting subsequent elements to the right.
// It works in place whenever s has spare capacity.
func insertAt[T any](s []T, idx int, v T) []T {
	assert(idx >= 0 && idx <= len(s), "insertAt index out of range")
	var zero T
	s = append(s, zero)
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}

// truncate shortens s to idx elements and zeroes the cut-off slots, so the
// backing array no longer references moved entries or children.
func truncate[T any](s []T, idx int) []T {
	assert(idx >= 0 && idx <= len(s), "truncate index out of range")
	var zero T
	for i := idx; i < len(s); i++ {
		s[i] = zero
	}
	return s[:idx]
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
