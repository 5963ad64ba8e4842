package btree

import "fmt"

// Insert adds an entry for key to the tree. Entries with a key equal to an
// existing one are accepted and placed after all existing equal keys.
//
// Full nodes are split on the way down, so the node an entry is finally placed
// in always has room. If the root is full it is split first and a new root is
// installed, growing the tree by one level.
//
// Insert fails only if the tree has a node budget (Config.MaxNodes) and the
// insert would exceed it. In this case ErrNodeLimit is returned and the tree
// is not modified.
func (t *Tree[K, V]) Insert(key K, value V) error {
	if t.cfg.MaxNodes > 0 {
		if need := t.allocationsFor(key); t.nodes+need > t.cfg.MaxNodes {
			return fmt.Errorf("%w: insert needs %d new nodes, %d of %d in use",
				ErrNodeLimit, need, t.nodes, t.cfg.MaxNodes)
		}
	}
	e := Entry[K, V]{Key: key, Value: value}
	if t.root == nil {
		leaf := t.newLeaf()
		t.insertEntry(leaf, e)
		t.root = leaf
		t.height = 1
		t.count = 1
		t.minKey, t.maxKey = key, key
		return nil
	}
	t.growRoot()
	node := t.root
	for !node.isLeaf() {
		inner := node.(*innerNode[K, V])
		slot := t.nextChildIndex(inner, key)
		if median, sibling, ok := t.split(inner.children[slot]); ok {
			// the median separates the two halves of children[slot]
			assert(!t.isFull(inner), "Insert: no room for median in parent")
			inner.entries = insertAt(inner.entries, slot, median)
			inner.children = insertAt(inner.children, slot+1, sibling)
			slot = t.nextChildIndex(inner, key)
		}
		node = inner.children[slot]
	}
	t.insertEntry(node, e)
	t.count++
	t.updateExtrema(key)
	return nil
}

// growRoot splits a full root and installs a new root holding the median and
// two children. It is the only operation increasing the tree height.
func (t *Tree[K, V]) growRoot() {
	for t.isFull(t.root) {
		old := t.root
		median, sibling, ok := t.split(old)
		assert(ok, "growRoot: full root did not split")
		root := t.newInner()
		root.entries = append(root.entries, median)
		root.children = append(root.children, old, sibling)
		t.root = root
		t.height++
		tracer().Debugf("btree: root split, height is now %d", t.height)
	}
	assert(t.isRoot(t.root), "growRoot: lost tree root")
}

// allocationsFor returns the number of nodes an insert of key will allocate.
//
// Splitting a node on the descent path does not change the route below it, as
// children move between nodes as whole subtrees. The route can therefore be
// evaluated on the unmodified tree.
func (t *Tree[K, V]) allocationsFor(key K) int {
	if t.root == nil {
		return 1
	}
	need := 0
	if t.isFull(t.root) {
		need += 2
	}
	node := t.root
	for !node.isLeaf() {
		inner := node.(*innerNode[K, V])
		child := inner.children[t.nextChildIndex(inner, key)]
		if t.isFull(child) {
			need++
		}
		node = child
	}
	return need
}

func (t *Tree[K, V]) updateExtrema(key K) {
	if t.cfg.Compare(key, t.minKey) < 0 {
		t.minKey = key
	}
	if t.cfg.Compare(key, t.maxKey) > 0 {
		t.maxKey = key
	}
}
