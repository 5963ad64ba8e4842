package btree

// Entry is a key with its associated value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// treeNode is either a *leafNode or an *innerNode. There is no node type with
// partially filled child slots.
type treeNode[K, V any] interface {
	isLeaf() bool
	base() *entrySet[K, V]
}

// entrySet holds the sorted entries of a node. entries has a capacity of the
// tree's order and never grows beyond it.
type entrySet[K, V any] struct {
	entries []Entry[K, V]
}

func (s *entrySet[K, V]) base() *entrySet[K, V] { return s }

type leafNode[K, V any] struct {
	entrySet[K, V]
}

func (l *leafNode[K, V]) isLeaf() bool { return true }

type innerNode[K, V any] struct {
	entrySet[K, V]
	// children must satisfy len(children) == len(entries)+1. children[i] holds
	// keys between entries[i-1] and entries[i].
	children []treeNode[K, V]
}

func (n *innerNode[K, V]) isLeaf() bool { return false }
