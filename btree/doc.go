/*
Package btree implements ordered insertion into an in-memory B-tree of fixed
order.

A tree of order n keeps sorted key/value entries in nodes holding at most n
entries. Every node except the root holds at least ceil(n/2)-1 entries, and all
leaves are at the same depth. Insertion splits full nodes on the way down
(split-on-descent): a node about to be entered always has room, so an insert
never has to walk back up the tree. The root is split before descending, which
is the only place the tree grows in height.

The package is intentionally not a generic ordered-map API. It covers the write
path (Insert), a read-only in-order traversal (Ascend), a structural view for
debugging output (Walk) and an invariant checker (Check). There is no deletion
and no key lookup.

Trees are not safe for concurrent use. Clients with more than one writer have to
serialize inserts, as package kvload does with a single inserting goroutine.

Status:
  - distinct `leafNode` and `innerNode` representations,
  - split engine with fixed retained/moved counts for even and odd orders,
  - explicit-loop descent with proactive child splits and root growth,
  - optional node budget (`Config.MaxNodes`) checked before any mutation,
  - cached minimum and maximum keys, updated on every insert.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
