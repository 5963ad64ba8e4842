package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrNodeLimit signals that an insert would allocate more nodes than the
	// tree's node budget allows. The tree is left unchanged.
	ErrNodeLimit = errors.New("btree: node limit exceeded")
	// ErrInvariant signals a violated structural tree invariant (see Check).
	ErrInvariant = errors.New("btree: invariant violated")
)
