package bstree

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomOperations runs random sequences of inserts and deletes against
// every balancing strategy and compares the result to a plain set.
func TestRandomOperations(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, b := range allBalancings {
		t.Run(b.String(), func(t *testing.T) {
			rnd := rand.New(rand.NewPCG(17, uint64(b)))
			tree := NewOrdered[int](b)
			set := make(map[int]bool)
			for i := range 3000 {
				k := rnd.IntN(500)
				if rnd.IntN(3) == 0 {
					err := tree.Delete(k)
					if set[k] {
						require.NoError(t, err, "op #%d: delete %d", i, k)
					} else {
						require.ErrorIs(t, err, ErrNotFound, "op #%d: delete %d", i, k)
					}
					delete(set, k)
				} else {
					require.NoError(t, tree.Insert(k), "op #%d: insert %d", i, k)
					set[k] = true
				}
				require.NoError(t, tree.Check(), "op #%d on key %d", i, k)
				require.Equal(t, len(set), tree.Size())
			}
			keys, err := tree.Traverse(InOrder)
			require.NoError(t, err)
			want := make([]int, 0, len(set))
			for k := range set {
				want = append(want, k)
			}
			slices.Sort(want)
			assert.Equal(t, want, keys)
			for k := range 500 {
				assert.Equal(t, set[k], tree.Contains(k), "key %d", k)
			}
		})
	}
}

func TestRandomHeightBounds(t *testing.T) {
	rnd := rand.New(rand.NewPCG(4711, 42))
	perm := rnd.Perm(2000)
	rb := NewOrdered[int](RedBlack)
	avl := NewOrdered[int](AVL)
	for _, k := range perm {
		rb.Insert(k)
		avl.Insert(k)
		n := float64(rb.Size())
		assert.LessOrEqual(t, float64(rb.Height()), 2*math.Log2(n+1))
		assert.LessOrEqual(t, float64(avl.Height()), 1.45*math.Log2(n+2)-1)
	}
	for _, k := range perm[:1500] {
		require.NoError(t, rb.Delete(k))
		require.NoError(t, avl.Delete(k))
		n := float64(rb.Size())
		assert.LessOrEqual(t, float64(rb.Height()), 2*math.Log2(n+1))
		assert.LessOrEqual(t, float64(avl.Height()), 1.45*math.Log2(n+2)-1)
	}
	require.NoError(t, rb.Check())
	require.NoError(t, avl.Check())
}

func TestTraversalsAgree(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for _, b := range allBalancings {
		tree := NewOrdered[int](b)
		for _, k := range rnd.Perm(100) {
			tree.Insert(k)
		}
		for _, order := range []Order{PreOrder, PostOrder, LevelOrder} {
			keys, err := tree.Traverse(order)
			require.NoError(t, err)
			require.Len(t, keys, 100)
			slices.Sort(keys)
			in, _ := tree.Traverse(InOrder)
			assert.Equal(t, in, keys, "%v: %s-order is no permutation of in-order", b, order)
		}
		pre, _ := tree.Traverse(PreOrder)
		lvl, _ := tree.Traverse(LevelOrder)
		post, _ := tree.Traverse(PostOrder)
		assert.Equal(t, tree.Root().Key(), pre[0])
		assert.Equal(t, tree.Root().Key(), lvl[0])
		assert.Equal(t, tree.Root().Key(), post[len(post)-1])
	}
}
