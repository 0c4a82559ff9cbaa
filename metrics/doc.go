/*
Package metrics provides some pre-manufactured metrics on search trees.

Metrics are folded bottom-up over a tree with bstree.ApplyMetric. Shape
metrics answer questions about the form of a tree, like its height or whether
it is perfect, independent of the balancing strategy. Counting metrics count
nodes with a certain property.

	tree := bstree.NewOrdered[int](bstree.AVL)
	…
	if metrics.IsBalanced(tree) { … }

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}
