/*
Package bstree implements self-balancing ordered search trees.

All trees share one binary search tree node model: every node carries a key, a
back-reference to its parent and links to its left and right child. Balancing
strategies are layered on top of this node model:

  - Red-Black trees keep a color bit per node and restore their invariants with
    an insert-fixup and a delete-fixup state machine.
  - AVL trees keep a height and a balance factor per node and rebalance with
    single and double rotations on the path to the root.
  - Splay trees move recently accessed nodes to the root.
  - Unbalanced trees do plain binary search tree insertion and deletion.

The strategy is chosen when a tree is constructed:

	tree := bstree.NewOrdered[int](bstree.RedBlack)
	tree.Insert(7)
	tree.Insert(3)
	keys, _ := tree.Traverse(bstree.InOrder)   // [3 7]

Trees are in-memory, synchronous data structures. A tree has exactly one
logical owner; clients sharing a tree between goroutines have to guard it
themselves.

Keys

Keys are ordered by a CompareFunc. For Go's ordered types Ordered[K]() is the
natural choice. Trees of heterogeneous keys (K = any) use CompareDynamic, which
reports keys that cannot be ordered against each other with ErrTypeComparison.
Insertion compares the new key before any node is touched, so a failed
comparison leaves a tree unchanged.

Neighbour queries

FindLT and FindGT use strict comparisons, FindLE and FindGE non-strict ones:

	FindLT(k)  greatest key  < k
	FindLE(k)  greatest key <= k
	FindGT(k)  least key     > k
	FindGE(k)  least key    >= k

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package bstree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the bstree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrNotFound is flagged whenever a key to delete is not present in a tree.
const ErrNotFound = TreeError("key not found")

// ErrTypeComparison is flagged whenever a key cannot be ordered against the
// keys of a tree.
const ErrTypeComparison = TreeError("keys not comparable")

// ErrUnknownOrder is flagged for traversal orders other than in-, pre-,
// post- and level-order.
const ErrUnknownOrder = TreeError("unknown traversal order")

// ErrEmptyTree is flagged when popping from an empty tree.
const ErrEmptyTree = TreeError("tree is empty")

// ErrIndexOutOfBounds is flagged whenever a positional index does not
// address a key of a tree.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("invalid tree configuration")

// ErrInvariantViolation is reported by Check if a tree is structurally broken.
const ErrInvariantViolation = TreeError("tree invariant violated")

// invariant panics for conditions which may only be false because of an
// implementation error.
func invariant(condition bool, msg string) {
	if !condition {
		panic(ErrInvariantViolation.Error() + ": " + msg)
	}
}
