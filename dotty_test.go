package bstree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := NewOrdered[int](RedBlack)
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k)
	}
	var out strings.Builder
	if err := Tree2Dot(tree, &out); err != nil {
		t.Fatal(err)
	}
	dot := out.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("expected DOT digraph, have %q", dot)
	}
	if strings.Count(dot, "->") != 6 {
		t.Errorf("expected 6 edges (including nil children), have %d", strings.Count(dot, "->"))
	}
	if !strings.Contains(dot, "\"1\" -> \"2\"") || !strings.Contains(dot, "\"1\" -> \"3\"") {
		t.Errorf("expected edges from root to its children")
	}
	if !strings.Contains(dot, "#cc2222") {
		t.Errorf("expected red nodes to be drawn red")
	}
}

func TestTree2DotAVL(t *testing.T) {
	tree := NewOrdered[int](AVL)
	tree.Insert(1)
	tree.Insert(2)
	var out strings.Builder
	if err := Tree2Dot(tree, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "h=1 b=+1") {
		t.Errorf("expected AVL annotation for root, have %q", out.String())
	}
}
