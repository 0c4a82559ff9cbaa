package bstree

// Rotations preserve the in-order sequence of keys. They neither check nor
// restore colors or heights; balancers decide when to rotate.
//
//	     p                               p
//	     |                               |
//	     n                               r
//	    / \       rotate left           / \
//	   a   r     - - - - - - - >       n   c
//	      / \    < - - - - - - -      / \
//	     b   c    rotate right       a   b

// rotateLeft promotes n's right child into n's position and returns it.
// n may be the root, i.e. have no parent.
func (n *Node[K]) rotateLeft() *Node[K] {
	r := n.right
	invariant(r != nil, "rotate left without right child")
	p := n.parent
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.left = n
	n.parent = r
	r.parent = p
	if p != nil {
		if p.left == n {
			p.left = r
		} else {
			p.right = r
		}
	}
	return r
}

// rotateRight promotes n's left child into n's position and returns it.
// n may be the root, i.e. have no parent.
func (n *Node[K]) rotateRight() *Node[K] {
	l := n.left
	invariant(l != nil, "rotate right without left child")
	p := n.parent
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.right = n
	n.parent = l
	l.parent = p
	if p != nil {
		if p.left == n {
			p.left = l
		} else {
			p.right = l
		}
	}
	return l
}

// --- Tree level rotations --------------------------------------------------

// The following wrappers re-seat the tree's root whenever a rotation promotes
// a node to the top.

func (t *Tree[K]) rotateLeft(n *Node[K]) *Node[K] {
	return t.promoted(n.rotateLeft())
}

func (t *Tree[K]) rotateRight(n *Node[K]) *Node[K] {
	return t.promoted(n.rotateRight())
}

// rotateToward rotates n down into its child slot s. The child on the opposite
// side is promoted and returned.
func (t *Tree[K]) rotateToward(n *Node[K], s side) *Node[K] {
	if s == leftSide {
		return t.rotateLeft(n)
	}
	return t.rotateRight(n)
}

// rotateUp rotates n above its parent.
func (t *Tree[K]) rotateUp(n *Node[K]) {
	p := n.parent
	invariant(p != nil, "rotate up of root node")
	if p.left == n {
		t.rotateRight(p)
	} else {
		t.rotateLeft(p)
	}
}

func (t *Tree[K]) promoted(top *Node[K]) *Node[K] {
	if top.parent == nil {
		T().Debugf("bstree: rotation promotes %v to root", top)
		t.root = top
	}
	return top
}
