package bstree

import "fmt"

// Balancing selects the balancing strategy of a tree. It is fixed when a tree
// is created.
type Balancing int8

// Balancing strategies. The zero value is RedBlack.
const (
	RedBlack   Balancing = iota // Red-Black tree
	AVL                         // height balanced AVL tree
	Splay                       // self-adjusting splay tree
	Unbalanced                  // plain binary search tree
)

func (b Balancing) String() string {
	switch b {
	case RedBlack:
		return "red-black"
	case AVL:
		return "AVL"
	case Splay:
		return "splay"
	case Unbalanced:
		return "unbalanced"
	}
	return fmt.Sprintf("Balancing(%d)", int8(b))
}

// Config configures a search tree.
type Config[K any] struct {
	// Balancing is the balancing strategy.
	Balancing Balancing
	// Compare orders keys. If it is nil, keys are ordered by CompareDynamic.
	Compare CompareFunc[K]
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Compare == nil {
		cfg.Compare = func(a, b K) (int, error) {
			return CompareDynamic(any(a), any(b))
		}
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Balancing < RedBlack || cfg.Balancing > Unbalanced {
		return fmt.Errorf("%w: unknown balancing strategy %d", ErrInvalidConfig, cfg.Balancing)
	}
	return nil
}
