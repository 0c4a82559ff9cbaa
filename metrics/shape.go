package metrics

import (
	"github.com/npillmayer/bstree"
)

// Shape collects structural properties of a (sub-)tree.
type Shape struct {
	Height   int  // height of the subtree; −1 for an empty subtree
	Balanced bool // heights of the children of every node differ by at most 1
	Perfect  bool // every node has two subtrees of the same height
	Complete bool // every node has either two children or none
}

// ShapeMetric calculates the Shape of a tree.
type ShapeMetric[K any] struct{}

// Nil is part of interface bstree.Metric.
func (ShapeMetric[K]) Nil() Shape {
	return Shape{Height: -1, Balanced: true, Perfect: true, Complete: true}
}

// Apply is part of interface bstree.Metric.
func (ShapeMetric[K]) Apply(n *bstree.Node[K], left, right Shape) Shape {
	diff := left.Height - right.Height
	twoOrNone := (n.Left() == nil) == (n.Right() == nil)
	return Shape{
		Height:   1 + max(left.Height, right.Height),
		Balanced: left.Balanced && right.Balanced && diff >= -1 && diff <= 1,
		Perfect:  left.Perfect && right.Perfect && diff == 0,
		Complete: left.Complete && right.Complete && twoOrNone,
	}
}

// ShapeOf calculates the Shape of a tree.
func ShapeOf[K any](tree *bstree.Tree[K]) Shape {
	return bstree.ApplyMetric[K, Shape](tree, ShapeMetric[K]{})
}

// Height returns the height of a tree. An empty tree has height −1.
func Height[K any](tree *bstree.Tree[K]) int {
	return ShapeOf(tree).Height
}

// IsBalanced reports whether, for every node of a tree, the heights of its
// left and right subtree differ by at most 1. Every AVL tree is balanced.
func IsBalanced[K any](tree *bstree.Tree[K]) bool {
	return ShapeOf(tree).Balanced
}

// IsPerfect reports whether all leaves of a tree are on the same level and
// every inner node has two children. A perfect tree of height h has
// 2^(h+1) − 1 nodes.
func IsPerfect[K any](tree *bstree.Tree[K]) bool {
	return ShapeOf(tree).Perfect
}

// IsComplete reports whether every node of a tree has either two children or
// none. (Textbooks sometimes call this a full binary tree.)
func IsComplete[K any](tree *bstree.Tree[K]) bool {
	return ShapeOf(tree).Complete
}

// --- Black-height ----------------------------------------------------------

type blackHeight struct {
	height  int
	uniform bool
}

type blackHeightMetric[K any] struct{}

func (blackHeightMetric[K]) Nil() blackHeight {
	return blackHeight{height: 1, uniform: true} // nil leaves are black
}

func (blackHeightMetric[K]) Apply(n *bstree.Node[K], left, right blackHeight) blackHeight {
	bh := blackHeight{
		height:  max(left.height, right.height),
		uniform: left.uniform && right.uniform && left.height == right.height,
	}
	if n.Color() == bstree.Black {
		bh.height++
	}
	return bh
}

// BlackHeight returns the number of black nodes on a path from the root of a
// Red-Black tree down to a nil leaf, counting the nil leaf. If paths differ
// in their number of black nodes, uniform is false and the maximum is returned.
func BlackHeight[K any](tree *bstree.Tree[K]) (height int, uniform bool) {
	bh := bstree.ApplyMetric[K, blackHeight](tree, blackHeightMetric[K]{})
	if !bh.uniform {
		tracer().Infof("metrics: tree has paths of differing black-height")
	}
	return bh.height, bh.uniform
}
