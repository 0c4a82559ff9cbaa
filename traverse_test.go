package bstree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTraverseOrders(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	//         4
	//       /   \
	//      2     6
	//     / \   / \
	//    1   3 5   7
	tree := buildUnbalanced(t, 4, 2, 6, 1, 3, 5, 7)
	for order, want := range map[Order][]int{
		InOrder:    {1, 2, 3, 4, 5, 6, 7},
		PreOrder:   {4, 2, 1, 3, 6, 5, 7},
		PostOrder:  {1, 3, 2, 5, 7, 6, 4},
		LevelOrder: {4, 2, 6, 1, 3, 5, 7},
	} {
		keys, err := tree.Traverse(order)
		if err != nil {
			t.Fatalf("%v: %v", order, err)
		}
		if !slices.Equal(keys, want) {
			t.Errorf("%s-order: expected %v, have %v", order, want, keys)
		}
	}
}

func TestTraverseUnknownOrder(t *testing.T) {
	tree := buildUnbalanced(t, 1)
	if _, err := tree.Traverse(Order(9)); !errors.Is(err, ErrUnknownOrder) {
		t.Errorf("expected ErrUnknownOrder, have %v", err)
	}
	empty := NewOrdered[int](AVL)
	if _, err := empty.Traverse(Order(-2)); !errors.Is(err, ErrUnknownOrder) {
		t.Errorf("expected ErrUnknownOrder for empty tree, have %v", err)
	}
}

func TestParseOrder(t *testing.T) {
	for tag, want := range map[string]Order{
		"in": InOrder, "pre": PreOrder, "post": PostOrder, "level": LevelOrder, "lvl": LevelOrder,
	} {
		if o, err := ParseOrder(tag); err != nil || o != want {
			t.Errorf("ParseOrder(%q): expected %v, have %v / %v", tag, want, o, err)
		}
	}
	if _, err := ParseOrder("sideways"); !errors.Is(err, ErrUnknownOrder) {
		t.Errorf("expected ErrUnknownOrder, have %v", err)
	}
	if LevelOrder.String() != "level" {
		t.Errorf("unexpected name for level-order: %s", LevelOrder)
	}
}

func TestIterators(t *testing.T) {
	tree := NewOrdered[int](AVL)
	for _, k := range []int{5, 2, 8, 1, 9, 3} {
		tree.Insert(k)
	}
	if keys := slices.Collect(tree.All()); !slices.Equal(keys, []int{1, 2, 3, 5, 8, 9}) {
		t.Errorf("unexpected forward iteration: %v", keys)
	}
	if keys := slices.Collect(tree.Backward()); !slices.Equal(keys, []int{9, 8, 5, 3, 2, 1}) {
		t.Errorf("unexpected backward iteration: %v", keys)
	}
	var first []int
	for k := range tree.All() {
		if k > 3 {
			break
		}
		first = append(first, k)
	}
	if !slices.Equal(first, []int{1, 2, 3}) {
		t.Errorf("unexpected early termination: %v", first)
	}
	empty := NewOrdered[int](RedBlack)
	for range empty.All() {
		t.Errorf("empty tree must not yield keys")
	}
}
