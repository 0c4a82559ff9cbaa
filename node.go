package bstree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Color is the color bit of a node in a Red-Black tree.
type Color uint8

// Nodes are either red or black. New nodes start out red.
const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

// Node is a node of a binary search tree.
//
// Every node holds a key and links to its left and right child. A parent owns
// its children, the parent link is a back-reference only. Balancing strategies
// keep additional information in a node: Red-Black trees use the color bit,
// AVL trees the height and the balance factor.
//
// Clients may hold on to nodes returned from queries, but must not keep them
// across modifications of the tree: deletion may move keys between nodes.
type Node[K any] struct {
	key     K
	parent  *Node[K]
	left    *Node[K]
	right   *Node[K]
	color   Color
	height  int // height of the subtree; a leaf has height 0
	balance int // height(right) - height(left)
}

func newNode[K any](key K, parent *Node[K]) *Node[K] {
	return &Node[K]{key: key, parent: parent, color: Red}
}

// Key returns the key of a node.
func (n *Node[K]) Key() K {
	return n.key
}

// Parent returns the parent of a node, or nil for the root.
func (n *Node[K]) Parent() *Node[K] {
	return n.parent
}

// Left returns the left child of a node.
func (n *Node[K]) Left() *Node[K] {
	return n.left
}

// Right returns the right child of a node.
func (n *Node[K]) Right() *Node[K] {
	return n.right
}

// Color returns the color of a node. It is meaningful for Red-Black trees only.
func (n *Node[K]) Color() Color {
	return n.color
}

// IsRed is true for red nodes. nil nodes are black.
func (n *Node[K]) IsRed() bool {
	return n != nil && n.color == Red
}

// Height returns the height of the subtree rooted at n, as maintained by an
// AVL tree. Leafs have height 0.
func (n *Node[K]) Height() int {
	return n.height
}

// BalanceFactor returns height(right) − height(left), as maintained by an
// AVL tree.
func (n *Node[K]) BalanceFactor() int {
	return n.balance
}

// IsLeaf is true if n has no children.
func (n *Node[K]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Grandparent returns the parent of n's parent, if any.
func (n *Node[K]) Grandparent() *Node[K] {
	if n.parent == nil {
		return nil
	}
	return n.parent.parent
}

// Sibling returns the other child of n's parent, if any.
func (n *Node[K]) Sibling() *Node[K] {
	if n.parent == nil {
		return nil
	}
	if n.parent.left == n {
		return n.parent.right
	}
	return n.parent.left
}

// Uncle returns the sibling of n's parent, if any.
func (n *Node[K]) Uncle() *Node[K] {
	if n.parent == nil {
		return nil
	}
	return n.parent.Sibling()
}

// Min returns the node with the smallest key in the subtree rooted at n.
func (n *Node[K]) Min() *Node[K] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Max returns the node with the greatest key in the subtree rooted at n.
func (n *Node[K]) Max() *Node[K] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Next returns the in-order successor of n, or nil if n holds the greatest key.
func (n *Node[K]) Next() *Node[K] {
	if n.right != nil {
		return n.right.Min()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// Prev returns the in-order predecessor of n, or nil if n holds the smallest key.
func (n *Node[K]) Prev() *Node[K] {
	if n.left != nil {
		return n.left.Max()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

func (n *Node[K]) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%v)", n.key)
}

// --- Sides -----------------------------------------------------------------

// side addresses one of the two child slots of a node. Balancers use it to
// write mirrored cases once.
type side int8

const (
	leftSide side = iota
	rightSide
)

func (s side) other() side {
	return 1 - s
}

func (n *Node[K]) child(s side) *Node[K] {
	if s == leftSide {
		return n.left
	}
	return n.right
}

// sideOf returns the slot of n's parent which n occupies.
func (n *Node[K]) sideOf() side {
	invariant(n.parent != nil, "side of root node requested")
	if n.parent.left == n {
		return leftSide
	}
	return rightSide
}

// --- Structural operations -------------------------------------------------

// insert descends from n and links a new leaf for key. It returns the new
// node, or nil if key is already present.
//
// Every comparison happens before the new leaf is linked. If compare fails,
// the tree is left untouched.
func (n *Node[K]) insert(key K, compare CompareFunc[K]) (*Node[K], error) {
	for {
		c, err := compare(key, n.key)
		if err != nil {
			return nil, err
		}
		switch {
		case c == 0:
			return nil, nil
		case c < 0:
			if n.left == nil {
				n.left = newNode(key, n)
				return n.left, nil
			}
			n = n.left
		default:
			if n.right == nil {
				n.right = newNode(key, n)
				return n.right, nil
			}
			n = n.right
		}
	}
}

// find returns the node of the subtree rooted at n holding key, or nil.
func (n *Node[K]) find(key K, compare CompareFunc[K]) (*Node[K], error) {
	for n != nil {
		c, err := compare(key, n.key)
		if err != nil {
			return nil, err
		}
		switch {
		case c == 0:
			return n, nil
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil, nil
}

// removal describes the node physically unlinked by a structural delete.
type removal[K any] struct {
	node   *Node[K] // the unlinked node
	parent *Node[K] // former parent of node; nil if node was the root
	side   side     // slot of parent which node occupied
	child  *Node[K] // child moved into node's former slot, if any
}

// deleteToLeaf removes n's key from the tree, ignoring colors and heights.
//
// A node with two children takes over the key of its in-order successor and
// the successor is removed instead. The returned record describes the node
// which has physically been unlinked. If that node has been the root, the
// caller has to make removal.child the new root.
func (n *Node[K]) deleteToLeaf() removal[K] {
	if n.left != nil && n.right != nil {
		succ := n.right.Min()
		n.key = succ.key
		return succ.deleteToLeaf()
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	rm := removal[K]{node: n, parent: n.parent, child: child}
	if p := n.parent; p != nil {
		if p.left == n {
			p.left = child
			rm.side = leftSide
		} else {
			p.right = child
			rm.side = rightSide
		}
	}
	if child != nil {
		child.parent = n.parent
	}
	n.parent, n.left, n.right = nil, nil, nil
	return rm
}
