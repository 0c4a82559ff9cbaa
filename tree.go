package bstree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"errors"
	"fmt"
)

// Tree is an ordered search tree of keys.
//
// A tree created by
//
//	Tree[K]{}
//
// is a valid, empty Red-Black tree ordering its keys by CompareDynamic.
//
// Duplicate keys are not stored: inserting a key already present is a no-op.
//
//	Operation      |  Red-Black  |  AVL       |  Splay (amortized)
//	---------------+-------------+------------+-------------------
//	Insert         |  O(log n)   |  O(log n)  |  O(log n)
//	Delete         |  O(log n)   |  O(log n)  |  O(log n)
//	Find           |  O(log n)   |  O(log n)  |  O(log n)
//	Traverse       |  O(n)       |  O(n)      |  O(n)
//
// Splay trees restructure themselves on successful lookups, i.e. Find and
// friends modify the shape (never the contents) of a splay tree.
type Tree[K any] struct {
	cfg  Config[K]
	root *Node[K]
	size int
}

// New creates an empty tree with validated configuration.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K]{cfg: cfg.normalized()}, nil
}

// NewOrdered creates an empty tree for one of Go's ordered key types.
// It panics for an unknown balancing strategy.
func NewOrdered[K cmp.Ordered](b Balancing) *Tree[K] {
	t, err := New(Config[K]{Balancing: b, Compare: Ordered[K]()})
	if err != nil {
		panic(err.Error())
	}
	return t
}

// Build creates a tree from a list of values, inserting one value after the
// other.
func Build[K any](cfg Config[K], values ...K) (*Tree[K], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if err := t.Insert(v); err != nil {
			return nil, fmt.Errorf("building tree, value #%d: %w", i, err)
		}
	}
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg.normalized()
}

// Balancing returns the balancing strategy of t.
func (t *Tree[K]) Balancing() Balancing {
	return t.cfg.Balancing
}

// Root returns the root node of t, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	if t == nil {
		return nil
	}
	return t.root
}

// Size returns the number of keys in t.
func (t *Tree[K]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether t has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the height of t. An empty tree has height −1, a tree
// consisting of a single node height 0.
func (t *Tree[K]) Height() int {
	return ApplyMetric[K, int](t, heightMetric[K]{})
}

// compare orders two keys, making sure every failure is flagged as
// ErrTypeComparison. A zero-value tree has no comparison function and orders
// its keys by CompareDynamic; t is never modified.
func (t *Tree[K]) compare(a, b K) (int, error) {
	var c int
	var err error
	if t.cfg.Compare == nil {
		c, err = CompareDynamic(any(a), any(b))
	} else {
		c, err = t.cfg.Compare(a, b)
	}
	if err != nil && !errors.Is(err, ErrTypeComparison) {
		err = fmt.Errorf("%w: %w", ErrTypeComparison, err)
	}
	return c, err
}

// Insert adds key to t. Inserting a key already present is a no-op.
//
// If key cannot be ordered against the keys of t, Insert returns an error
// wrapping ErrTypeComparison and t is left unchanged.
func (t *Tree[K]) Insert(key K) error {
	if t.root == nil {
		// validate key on its own, as there is nothing to compare it to
		if _, err := t.compare(key, key); err != nil {
			return err
		}
		t.root = newNode(key, nil)
		t.size = 1
		t.rebalanceInsert(t.root)
		return nil
	}
	n, err := t.root.insert(key, t.compare)
	if err != nil {
		T().Debugf("bstree: insert of %v rejected: %v", key, err)
		return err
	}
	if n == nil {
		return nil
	}
	t.size++
	t.rebalanceInsert(n)
	return nil
}

func (t *Tree[K]) rebalanceInsert(n *Node[K]) {
	switch t.cfg.Balancing {
	case RedBlack:
		t.redBlackInsertFixup(n)
	case AVL:
		t.avlRetrace(n)
	case Splay:
		t.splay(n)
	}
}

// Delete removes key from t.
//
// If key is not present, Delete returns an error wrapping ErrNotFound and t is
// left unchanged.
func (t *Tree[K]) Delete(key K) error {
	n, err := t.lookup(key)
	if err != nil {
		return err
	}
	if n == nil {
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	t.remove(n)
	return nil
}

// remove deletes n's key from t and restores t's invariants.
func (t *Tree[K]) remove(n *Node[K]) {
	rm := n.deleteToLeaf()
	T().Debugf("bstree: unlinked %v, parent %v, child %v", rm.node, rm.parent, rm.child)
	if rm.parent == nil {
		t.root = rm.child
	}
	t.size--
	switch t.cfg.Balancing {
	case RedBlack:
		t.redBlackDeleteFixup(rm)
	case AVL:
		t.avlRetrace(rm.parent)
	case Splay:
		if rm.parent != nil {
			t.splay(rm.parent)
		}
	}
}

// lookup finds the node for key without restructuring the tree.
func (t *Tree[K]) lookup(key K) (*Node[K], error) {
	if t == nil || t.root == nil {
		return nil, nil
	}
	return t.root.find(key, t.compare)
}

// accessed is called for every node found by a query. Splay trees move it to
// the root.
func (t *Tree[K]) accessed(n *Node[K]) *Node[K] {
	if n != nil && t.cfg.Balancing == Splay {
		t.splay(n)
	}
	return n
}

// Find returns the node holding key, or nil if key is not present.
func (t *Tree[K]) Find(key K) (*Node[K], error) {
	n, err := t.lookup(key)
	if err != nil {
		return nil, err
	}
	return t.accessed(n), nil
}

// Contains reports whether key is present in t. Keys which cannot be ordered
// against the keys of t are not present.
func (t *Tree[K]) Contains(key K) bool {
	n, err := t.lookup(key)
	return err == nil && n != nil
}

// FindMin returns the node with the smallest key, or nil for an empty tree.
func (t *Tree[K]) FindMin() *Node[K] {
	if t == nil {
		return nil
	}
	return t.accessed(t.root.Min())
}

// FindMax returns the node with the greatest key, or nil for an empty tree.
func (t *Tree[K]) FindMax() *Node[K] {
	if t == nil {
		return nil
	}
	return t.accessed(t.root.Max())
}

// PopTarget selects the key removed by Pop.
type PopTarget int8

// Pop either removes the smallest or the greatest key.
const (
	PopMin PopTarget = iota
	PopMax
)

// Pop removes the smallest or greatest key from t and returns it.
// Popping from an empty tree returns an error wrapping ErrEmptyTree.
func (t *Tree[K]) Pop(which PopTarget) (K, error) {
	var zero K
	if t.IsEmpty() {
		return zero, ErrEmptyTree
	}
	n := t.root.Min()
	if which == PopMax {
		n = t.root.Max()
	}
	key := n.key
	t.remove(n)
	return key, nil
}

// PopKey removes key from t and returns the key as stored in the tree.
func (t *Tree[K]) PopKey(key K) (K, error) {
	var zero K
	if t.IsEmpty() {
		return zero, ErrEmptyTree
	}
	n, err := t.lookup(key)
	if err != nil {
		return zero, err
	}
	if n == nil {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	stored := n.key
	t.remove(n)
	return stored, nil
}

// At returns the key at position i of the in-order sequence of keys.
// Negative indices count from the end, i.e. At(-1) returns the greatest key.
func (t *Tree[K]) At(i int) (K, error) {
	n, err := t.nodeAt(i)
	if err != nil {
		var zero K
		return zero, err
	}
	return n.key, nil
}

// DeleteAt removes the key at position i of the in-order sequence of keys
// and returns it. Indices are interpreted as for At.
func (t *Tree[K]) DeleteAt(i int) (K, error) {
	n, err := t.nodeAt(i)
	if err != nil {
		var zero K
		return zero, err
	}
	key := n.key
	t.remove(n)
	return key, nil
}

// ReplaceAt removes the key at position i and inserts key instead. The new key
// takes its place in the order of keys, which is not necessarily position i.
// If key is already present, the tree shrinks by one.
//
// If key cannot be ordered against the keys of t, the removed key is restored
// and an error wrapping ErrTypeComparison is returned.
func (t *Tree[K]) ReplaceAt(i int, key K) error {
	old, err := t.DeleteAt(i)
	if err != nil {
		return err
	}
	if err = t.Insert(key); err != nil {
		if rerr := t.Insert(old); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	return nil
}

func (t *Tree[K]) nodeAt(i int) (*Node[K], error) {
	size := t.Size()
	if i < 0 {
		i += size
	}
	if i < 0 || i >= size {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, i)
	}
	n := t.root.Min()
	for ; i > 0; i-- {
		n = n.Next()
	}
	return n, nil
}

// Clear removes all keys from t.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}
