package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/kvtree/btree"
)

// Dot outputs the internal structure of a tree in Graphviz DOT format.
//
// Every node is drawn as a record with one field per key. Edges connect a
// parent to its children from left to right.
func Dot[K, V any](tree *btree.Tree[K, V], w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	var nodelist, edgelist strings.Builder
	count := 0
	tree.Walk(func(info btree.NodeInfo[K, V]) bool {
		count++
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\",%s];\n", info.ID, recordLabel(info), dotStyles(info))
		if info.Parent > 0 {
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", info.Parent, info.ID)
		}
		return true
	})
	bw.WriteString(nodelist.String())
	bw.WriteString(edgelist.String())
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("btree DOT: %s", err.Error())
		return err
	}
	tracer().Debugf("btree DOT: wrote %d nodes", count)
	return nil
}

func recordLabel[K, V any](info btree.NodeInfo[K, V]) string {
	keys := keyStrings(info)
	if len(keys) == 0 {
		return " "
	}
	for i, k := range keys {
		keys[i] = dotEscaper.Replace(k)
	}
	return strings.Join(keys, "|")
}

// dotEscaper escapes characters with a special meaning in record labels.
var dotEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`,
)

func dotStyles[K, V any](info btree.NodeInfo[K, V]) string {
	if info.Leaf {
		return "style=filled,fillcolor=\"#e8f4e8\""
	}
	return "style=filled,fillcolor=\"#dde6f7\""
}
