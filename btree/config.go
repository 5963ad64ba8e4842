package btree

import "fmt"

const (
	// DefaultOrder is the order used when Config.Order is left zero.
	DefaultOrder = 5
	// MinOrder is the smallest supported order.
	MinOrder = 2
)

// Config configures a B-tree.
type Config[K any] struct {
	// Order is the maximum number of entries per node. It is fixed for the
	// lifetime of a tree. Zero selects DefaultOrder.
	Order int
	// Compare orders keys. It returns a negative number if a < b, zero if
	// a == b and a positive number if a > b.
	Compare func(a, b K) int
	// MaxNodes limits the number of nodes the tree may allocate. Zero means
	// unlimited.
	MaxNodes int
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Order == 0 {
		cfg.Order = DefaultOrder
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Order < MinOrder {
		return fmt.Errorf("%w: order %d is less than %d", ErrInvalidConfig, cfg.Order, MinOrder)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	if cfg.MaxNodes < 0 {
		return fmt.Errorf("%w: negative node limit %d", ErrInvalidConfig, cfg.MaxNodes)
	}
	return nil
}
