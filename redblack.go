package bstree

// Red-Black trees keep the following invariants:
//
//  1. the root is black
//  2. a red node never has a red child
//  3. every path from a node down to a nil leaf has the same number of
//     black nodes (the black-height)
//
// Insertion links a red node and repairs violations of (2) on the way up.
// Deletion of a black node without a red child to absorb the loss leaves a
// "double black" slot, which has to be repaired to restore (3).

// redBlackInsertFixup restores the Red-Black invariants after n has been
// linked into the tree.
func (t *Tree[K]) redBlackInsertFixup(n *Node[K]) {
	n.color = Red
	for {
		p := n.parent
		if p == nil || p.color == Black {
			break
		}
		g := p.parent
		invariant(g != nil, "red node at root")
		if u := p.Sibling(); u.IsRed() {
			// red uncle: push blackness down from the grandparent
			T().Debugf("bstree: insert fixup at %v, red uncle %v", n, u)
			p.color, u.color, g.color = Black, Black, Red
			n = g
			continue
		}
		// black uncle: straighten a corner, then rotate the grandparent
		// against the lean of the line
		if p == g.left {
			if n == p.right {
				t.rotateLeft(p)
				n, p = p, n
			}
			t.rotateRight(g)
		} else {
			if n == p.left {
				t.rotateRight(p)
				n, p = p, n
			}
			t.rotateLeft(g)
		}
		T().Debugf("bstree: insert fixup rotated %v to top", p)
		p.color = Black
		n.color, g.color = Red, Red
		break
	}
	t.root.color = Black
}

// redBlackDeleteFixup restores the Red-Black invariants after a structural
// delete.
func (t *Tree[K]) redBlackDeleteFixup(rm removal[K]) {
	switch {
	case rm.node.color == Red:
		// black-heights unchanged
	case rm.child.IsRed():
		rm.child.color = Black
	case rm.parent == nil:
		// the root has been removed, all paths lost the same black node
	default:
		t.resolveDoubleBlack(rm.parent, rm.side)
	}
	if t.root != nil {
		t.root.color = Black
	}
}

// resolveDoubleBlack repairs a black-height deficit in child slot s of p.
// The slot may be empty or hold a black node.
func (t *Tree[K]) resolveDoubleBlack(p *Node[K], s side) {
	for {
		sib := p.child(s.other())
		invariant(sib != nil, "double black slot without sibling")
		if sib.color == Red {
			// red sibling: make it black and the parent's parent, then retry
			// with a black sibling
			T().Debugf("bstree: delete fixup at %v, red sibling %v", p, sib)
			t.rotateToward(p, s)
			sib.color = Black
			p.color = Red
			continue
		}
		near, far := sib.child(s), sib.child(s.other())
		if near.IsRed() || far.IsRed() {
			// black sibling with a red child: borrow a black node from the
			// sibling's side
			pcolor := p.color
			if !far.IsRed() {
				t.rotateToward(sib, s.other())
			}
			top := t.rotateToward(p, s)
			T().Debugf("bstree: delete fixup rotated %v to top", top)
			top.color = pcolor
			top.left.color = Black
			top.right.color = Black
			return
		}
		// black sibling with black children
		sib.color = Red
		if p.color == Red {
			p.color = Black
			return
		}
		if p.parent == nil {
			return
		}
		s, p = p.sideOf(), p.parent
	}
}
