package bstree

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplayInsertMovesToRoot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := NewOrdered[int](Splay)
	for _, k := range []int{50, 20, 80, 10, 30, 60, 90, 25} {
		if err := tree.Insert(k); err != nil {
			t.Fatal(err)
		}
		if tree.Root().Key() != k {
			t.Errorf("expected %d splayed to root, have %v", k, tree.Root())
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSplayFind(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree := NewOrdered[int](Splay)
	for i := 1; i <= 31; i++ {
		tree.Insert(i)
	}
	// ascending insertion leaves a left spine
	if tree.Height() != 30 {
		t.Errorf("expected degenerated tree of height 30, have %d", tree.Height())
	}
	n, err := tree.Find(1)
	if err != nil || n == nil || tree.Root() != n {
		t.Fatalf("expected 1 to be found and splayed to root")
	}
	// zig-zig steps roughly halve the depth of the path
	if h := tree.Height(); h >= 30 {
		t.Errorf("expected splaying to shorten the tree, height is %d", h)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.Contains(17) && tree.Root().Key() == 17 {
		t.Errorf("Contains must not restructure a splay tree")
	}
	n, _ = tree.FindGE(17)
	if tree.Root() != n || n.Key() != 17 {
		t.Errorf("expected neighbour query result at root, have %v", tree.Root())
	}
	tree.FindMax()
	if tree.Root().Key() != 31 {
		t.Errorf("expected max at root, have %v", tree.Root())
	}
}

func TestSplayZigZag(t *testing.T) {
	tree := NewOrdered[int](Unbalanced)
	for _, k := range []int{50, 20, 30} {
		tree.Insert(k)
	}
	tree.cfg.Balancing = Splay
	n, _ := tree.Find(30)
	if tree.Root() != n {
		t.Fatalf("expected 30 at root")
	}
	if n.Left().Key() != 20 || n.Right().Key() != 50 {
		t.Errorf("zig-zag must leave 20 and 50 as children of 30")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestSplayDelete(t *testing.T) {
	tree := NewOrdered[int](Splay)
	for _, k := range []int{40, 20, 60, 10, 30, 50, 70} {
		tree.Insert(k)
	}
	for _, k := range []int{30, 40, 10, 70} {
		if err := tree.Delete(k); err != nil {
			t.Fatal(err)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after delete of %d: %v", k, err)
		}
		if tree.Contains(k) {
			t.Errorf("deleted key %d still present", k)
		}
	}
	keys, _ := tree.Traverse(InOrder)
	expectKeys(t, keys, []int{20, 50, 60})
}
