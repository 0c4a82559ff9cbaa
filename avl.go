package bstree

// AVL trees keep, for every node, the heights of its two subtrees within a
// difference of 1. A missing child has height −1, a leaf height 0.

func heightOf[K any](n *Node[K]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// updateHeight recomputes height and balance factor of n from its children.
func (n *Node[K]) updateHeight() {
	lh, rh := heightOf(n.left), heightOf(n.right)
	n.height = 1 + max(lh, rh)
	n.balance = rh - lh
}

// avlRetrace walks from n up to the root, updating heights and balance factors
// and rebalancing every node which has become unbalanced.
func (t *Tree[K]) avlRetrace(n *Node[K]) {
	for ; n != nil; n = n.parent {
		n.updateHeight()
		if n.balance < -1 || n.balance > 1 {
			n = t.avlRebalance(n)
		}
	}
}

// avlRebalance rotates an unbalanced node n and returns the node now on top
// of n's former subtree.
func (t *Tree[K]) avlRebalance(n *Node[K]) *Node[K] {
	var top *Node[K]
	switch n.balance {
	case -2: // left heavy
		if n.left.balance <= 0 { // left-left
			top = t.rotateRight(n)
		} else { // left-right
			t.rotateLeft(n.left)
			top = t.rotateRight(n)
		}
	case +2: // right heavy
		if n.right.balance >= 0 { // right-right
			top = t.rotateLeft(n)
		} else { // right-left
			t.rotateRight(n.right)
			top = t.rotateLeft(n)
		}
	default:
		invariant(false, "AVL balance factor out of range")
	}
	T().Debugf("bstree: AVL rebalance at %v, %v on top", n, top)
	// subtrees below top's children are unchanged
	top.left.updateHeight()
	top.right.updateHeight()
	top.updateHeight()
	return top
}
