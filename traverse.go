package bstree

import (
	"fmt"
	"iter"
)

// Order is a traversal order.
type Order int8

// Traversal orders. In-, pre- and post-order traverse depth-first, level-order
// breadth-first.
const (
	InOrder    Order = iota // keys in ascending order
	PreOrder                // node before its subtrees
	PostOrder               // node after its subtrees
	LevelOrder              // top to bottom, left to right
)

var orderTags = map[string]Order{
	"in":    InOrder,
	"pre":   PreOrder,
	"post":  PostOrder,
	"level": LevelOrder,
	"lvl":   LevelOrder,
}

// ParseOrder converts a traversal tag ("in", "pre", "post", "level") into an
// Order.
func ParseOrder(tag string) (Order, error) {
	if o, ok := orderTags[tag]; ok {
		return o, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, tag)
}

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in"
	case PreOrder:
		return "pre"
	case PostOrder:
		return "post"
	case LevelOrder:
		return "level"
	}
	return fmt.Sprintf("Order(%d)", int8(o))
}

// Traverse returns the keys of t in the given order.
func (t *Tree[K]) Traverse(order Order) ([]K, error) {
	nodes, err := t.TraverseNodes(order)
	if err != nil {
		return nil, err
	}
	keys := make([]K, len(nodes))
	for i, n := range nodes {
		keys[i] = n.key
	}
	return keys, nil
}

// TraverseNodes returns the nodes of t in the given order.
func (t *Tree[K]) TraverseNodes(order Order) ([]*Node[K], error) {
	if order < InOrder || order > LevelOrder {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOrder, order)
	}
	path := make([]*Node[K], 0, t.Size())
	if t.IsEmpty() {
		return path, nil
	}
	switch order {
	case InOrder:
		path = inorder(t.root, path)
	case PreOrder:
		path = preorder(t.root, path)
	case PostOrder:
		path = postorder(t.root, path)
	case LevelOrder:
		path = levelorder(t.root, path)
	}
	return path, nil
}

// All returns an iterator over the keys of t in ascending order.
//
// The tree must not be modified during iteration.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.IsEmpty() {
			return
		}
		for n := t.root.Min(); n != nil; n = n.Next() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Backward returns an iterator over the keys of t in descending order.
func (t *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.IsEmpty() {
			return
		}
		for n := t.root.Max(); n != nil; n = n.Prev() {
			if !yield(n.key) {
				return
			}
		}
	}
}

func inorder[K any](n *Node[K], path []*Node[K]) []*Node[K] {
	if n.left != nil {
		path = inorder(n.left, path)
	}
	path = append(path, n)
	if n.right != nil {
		path = inorder(n.right, path)
	}
	return path
}

func preorder[K any](n *Node[K], path []*Node[K]) []*Node[K] {
	path = append(path, n)
	if n.left != nil {
		path = preorder(n.left, path)
	}
	if n.right != nil {
		path = preorder(n.right, path)
	}
	return path
}

func postorder[K any](n *Node[K], path []*Node[K]) []*Node[K] {
	if n.left != nil {
		path = postorder(n.left, path)
	}
	if n.right != nil {
		path = postorder(n.right, path)
	}
	return append(path, n)
}

func levelorder[K any](n *Node[K], path []*Node[K]) []*Node[K] {
	queue := []*Node[K]{n}
	for len(queue) > 0 {
		n, queue = queue[0], queue[1:]
		path = append(path, n)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return path
}
