package bstree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Metric is a metric to calculate on a tree. Many properties of a tree, like
// its height or whether it is balanced, are found by computing a value for
// every node from the values of its two subtrees and propagating these values
// upwards to the root.
//
// Nil returns the metric value of an empty subtree. Apply combines the values
// of the left and right subtree of a node into the value of the subtree rooted
// at the node.
//
// An example of a (very simplistic) metric would be to count the nodes of a
// tree: Nil returns 0, Apply returns left + right + 1.
type Metric[K, V any] interface {
	Nil() V
	Apply(node *Node[K], left, right V) V
}

// ApplyMetric calculates a metric for a whole tree.
func ApplyMetric[K, V any](t *Tree[K], metric Metric[K, V]) V {
	if t == nil {
		return metric.Nil()
	}
	return ApplyNodeMetric(t.root, metric)
}

// ApplyNodeMetric calculates a metric for the subtree rooted at n.
func ApplyNodeMetric[K, V any](n *Node[K], metric Metric[K, V]) V {
	if n == nil {
		return metric.Nil()
	}
	left := ApplyNodeMetric(n.left, metric)
	right := ApplyNodeMetric(n.right, metric)
	return metric.Apply(n, left, right)
}

// heightMetric calculates the height of a tree, with empty subtrees having
// height −1.
type heightMetric[K any] struct{}

func (heightMetric[K]) Nil() int { return -1 }

func (heightMetric[K]) Apply(_ *Node[K], left, right int) int {
	return 1 + max(left, right)
}
