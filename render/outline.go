package render

import (
	"github.com/npillmayer/kvtree/btree"
	"github.com/xlab/treeprint"
)

// Outline builds a treeprint outline of a tree, one line per node.
func Outline[K, V any](tree *btree.Tree[K, V]) treeprint.Tree {
	out := treeprint.New()
	if tree.IsEmpty() {
		out.SetValue("(empty)")
		return out
	}
	branches := make(map[int]treeprint.Tree)
	tree.Walk(func(info btree.NodeInfo[K, V]) bool {
		if info.Parent == 0 {
			out.SetValue(label(info))
			branches[info.ID] = out
			return true
		}
		parent := branches[info.Parent]
		if info.Leaf {
			parent.AddNode(label(info))
		} else {
			branches[info.ID] = parent.AddBranch(label(info))
		}
		return true
	})
	return out
}

// OutlineString returns the outline of a tree as a multi-line string.
func OutlineString[K, V any](tree *btree.Tree[K, V]) string {
	return Outline(tree).String()
}
