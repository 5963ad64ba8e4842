package btree

import (
	"slices"
	"testing"
)

// Retained and moved entry counts are pinned for both parities of the order:
// the source keeps ceil(n/2)-1 entries, the sibling gets n-ceil(n/2).
var splitCounts = []struct {
	order, retained, moved int
}{
	{2, 0, 1},
	{3, 1, 1},
	{4, 1, 2},
	{5, 2, 2},
	{6, 2, 3},
	{7, 3, 3},
	{8, 3, 4},
	{9, 4, 4},
	{16, 7, 8},
	{17, 8, 8},
}

func fullLeaf(tree *Tree[int, string]) *leafNode[int, string] {
	leaf := tree.newLeaf()
	for i := 0; i < tree.Order(); i++ {
		tree.insertEntry(leaf, Entry[int, string]{Key: i * 10})
	}
	return leaf
}

func fullInner(tree *Tree[int, string]) *innerNode[int, string] {
	inner := tree.newInner()
	for i := 0; i < tree.Order(); i++ {
		tree.insertEntry(inner, Entry[int, string]{Key: i * 10})
	}
	for i := 0; i <= tree.Order(); i++ {
		inner.children = append(inner.children, tree.newLeaf())
	}
	return inner
}

func TestSplitLeafCounts(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	for _, tt := range splitCounts {
		tree := newIntTree(t, tt.order)
		leaf := fullLeaf(tree)
		median, sibling, ok := tree.split(leaf)
		if !ok {
			t.Fatalf("order %d: full leaf did not split", tt.order)
		}
		right, isLeaf := sibling.(*leafNode[int, string])
		if !isLeaf {
			t.Fatalf("order %d: sibling of a leaf is not a leaf", tt.order)
		}
		if len(leaf.entries) != tt.retained || len(right.entries) != tt.moved {
			t.Fatalf("order %d: expected %d/%d entries, got %d/%d", tt.order,
				tt.retained, tt.moved, len(leaf.entries), len(right.entries))
		}
		if len(leaf.entries)+len(right.entries) != tt.order-1 {
			t.Fatalf("order %d: combined entry count is not n-1", tt.order)
		}
		borrow := ceilDiv(tt.order, 2)
		if median.Key != (borrow-1)*10 {
			t.Fatalf("order %d: expected median %d, got %d", tt.order, (borrow-1)*10, median.Key)
		}
		for i, e := range right.entries {
			if e.Key != (borrow+i)*10 {
				t.Fatalf("order %d: sibling entry %d has key %d", tt.order, i, e.Key)
			}
		}
		stale := leaf.entries[:tt.order]
		for i := tt.retained; i < tt.order; i++ {
			if stale[i] != (Entry[int, string]{}) {
				t.Fatalf("order %d: moved slot %d not cleared", tt.order, i)
			}
		}
		if tree.NodeCount() != 2 {
			t.Fatalf("order %d: expected split to allocate one node, have %d", tt.order, tree.NodeCount())
		}
	}
}

func TestSplitInnerCounts(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	for _, tt := range splitCounts {
		tree := newIntTree(t, tt.order)
		inner := fullInner(tree)
		children := append([]treeNode[int, string](nil), inner.children...)
		_, sibling, ok := tree.split(inner)
		if !ok {
			t.Fatalf("order %d: full internal node did not split", tt.order)
		}
		right, isInner := sibling.(*innerNode[int, string])
		if !isInner {
			t.Fatalf("order %d: sibling of an internal node is a leaf", tt.order)
		}
		if len(inner.entries) != tt.retained || len(right.entries) != tt.moved {
			t.Fatalf("order %d: expected %d/%d entries, got %d/%d", tt.order,
				tt.retained, tt.moved, len(inner.entries), len(right.entries))
		}
		if len(inner.children) != len(inner.entries)+1 || len(right.children) != len(right.entries)+1 {
			t.Fatalf("order %d: child counts %d/%d do not match entries", tt.order,
				len(inner.children), len(right.children))
		}
		if len(inner.children)+len(right.children) != tt.order+1 {
			t.Fatalf("order %d: combined child count is not n+1", tt.order)
		}
		moved := append(append([]treeNode[int, string](nil), inner.children...), right.children...)
		for i := range children {
			if moved[i] != children[i] {
				t.Fatalf("order %d: child %d moved out of order", tt.order, i)
			}
		}
		stale := inner.children[:tt.order+1]
		for i := len(inner.children); i <= tt.order; i++ {
			if stale[i] != nil {
				t.Fatalf("order %d: moved child slot %d not cleared", tt.order, i)
			}
		}
	}
}

func TestSplitIgnoresNodesWithRoom(t *testing.T) {
	tree := newIntTree(t, 4)
	leaf := tree.newLeaf()
	for _, k := range []int{1, 2, 3} {
		tree.insertEntry(leaf, Entry[int, string]{Key: k})
	}
	if _, sibling, ok := tree.split(leaf); ok || sibling != nil {
		t.Fatalf("split of a non-full node should be a no-op")
	}
	if !slices.Equal(nodeKeys(leaf), []int{1, 2, 3}) || tree.NodeCount() != 1 {
		t.Fatalf("non-full node changed by split: %v", nodeKeys(leaf))
	}
}

func TestRootGrowth(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	for _, order := range []int{2, 3, 4, 5, 6} {
		tree := newIntTree(t, order)
		growths := 0
		for key := 0; key < 400; key++ {
			rootFull := tree.root != nil && tree.isFull(tree.root)
			height := tree.Height()
			insertKeys(t, tree, key)
			switch {
			case height == 0:
				if tree.Height() != 1 {
					t.Fatalf("order %d: first insert yields height %d", order, tree.Height())
				}
			case rootFull:
				growths++
				if tree.Height() != height+1 {
					t.Fatalf("order %d: insert into full root kept height %d", order, tree.Height())
				}
				root := tree.root.(*innerNode[int, string])
				if len(root.entries) != 1 || len(root.children) != 2 {
					t.Fatalf("order %d: new root has %d entries and %d children",
						order, len(root.entries), len(root.children))
				}
			default:
				if tree.Height() != height {
					t.Fatalf("order %d: height changed from %d to %d without a full root",
						order, height, tree.Height())
				}
			}
		}
		if growths < 2 {
			t.Fatalf("order %d: expected the root to grow repeatedly, grew %d times", order, growths)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
	}
}
