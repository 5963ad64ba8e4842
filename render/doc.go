/*
Package render outputs the structure of a B-tree for debugging and inspection.

Renderers work on the read-only node view delivered by btree.Tree.Walk and
never modify a tree. Available formats are Graphviz DOT (Dot), a nested HTML
outline (HTML), a tree outline for terminals (Outline) and a colored,
column-aligned console listing (Console).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package render

import (
	"fmt"
	"strings"

	"github.com/npillmayer/kvtree/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// keyStrings formats the keys of a node.
func keyStrings[K, V any](info btree.NodeInfo[K, V]) []string {
	keys := make([]string, len(info.Entries))
	for i, e := range info.Entries {
		keys[i] = fmt.Sprint(e.Key)
	}
	return keys
}

// label is the default single-line label of a node, e.g. "[10 20 30]".
func label[K, V any](info btree.NodeInfo[K, V]) string {
	return "[" + strings.Join(keyStrings(info), " ") + "]"
}
