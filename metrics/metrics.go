package metrics

import (
	"github.com/npillmayer/bstree"
)

// CountingMetric is a metric that counts nodes of a tree. Possible items may
// be red nodes, leaves, keys in a range, …
type CountingMetric[K any] struct {
	match func(*bstree.Node[K]) bool
}

// Counting creates a metric counting all nodes for which match returns true.
func Counting[K any](match func(*bstree.Node[K]) bool) CountingMetric[K] {
	return CountingMetric[K]{match: match}
}

// Nil is part of interface bstree.Metric.
func (m CountingMetric[K]) Nil() int {
	return 0
}

// Apply is part of interface bstree.Metric.
func (m CountingMetric[K]) Apply(n *bstree.Node[K], left, right int) int {
	if m.match(n) {
		return left + right + 1
	}
	return left + right
}

// Count applies a counting metric to a tree.
func Count[K any](tree *bstree.Tree[K], metric CountingMetric[K]) int {
	cnt := bstree.ApplyMetric[K, int](tree, metric)
	tracer().Debugf("metrics: counted %d of %d nodes", cnt, tree.Size())
	return cnt
}

// CountRed counts the red nodes of a Red-Black tree.
func CountRed[K any](tree *bstree.Tree[K]) int {
	return Count(tree, Counting(func(n *bstree.Node[K]) bool {
		return n.IsRed()
	}))
}

// CountBlack counts the black nodes of a Red-Black tree, excluding nil leaves.
func CountBlack[K any](tree *bstree.Tree[K]) int {
	return Count(tree, Counting(func(n *bstree.Node[K]) bool {
		return n.Color() == bstree.Black
	}))
}

// Leaves counts the nodes without children.
func Leaves[K any](tree *bstree.Tree[K]) int {
	return Count(tree, Counting((*bstree.Node[K]).IsLeaf))
}
