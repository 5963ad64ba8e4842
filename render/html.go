package render

import (
	"fmt"
	"io"

	"github.com/npillmayer/kvtree/btree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes a tree as nested unordered lists. Every list item carries the
// keys of one node and a class of "leaf" or "inner".
func HTML[K, V any](tree *btree.Tree[K, V], w io.Writer) error {
	return html.Render(w, HTMLNode(tree))
}

// HTMLNode builds the HTML outline of a tree as an html.Node, rooted at a
// <ul class="btree"> element.
func HTMLNode[K, V any](tree *btree.Tree[K, V]) *html.Node {
	root := element(atom.Ul, "btree")
	root.Attr = append(root.Attr, html.Attribute{
		Key: "data-order",
		Val: fmt.Sprint(tree.Order()),
	})
	lists := map[int]*html.Node{0: root}
	tree.Walk(func(info btree.NodeInfo[K, V]) bool {
		class := "inner"
		if info.Leaf {
			class = "leaf"
		}
		li := element(atom.Li, class)
		li.AppendChild(&html.Node{Type: html.TextNode, Data: label(info)})
		lists[info.Parent].AppendChild(li)
		if !info.Leaf {
			ul := element(atom.Ul, "")
			li.AppendChild(ul)
			lists[info.ID] = ul
		}
		return true
	})
	return root
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
