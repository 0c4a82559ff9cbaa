package bstree

// splay moves n to the root of the tree by a series of zig, zig-zig and
// zig-zag steps.
func (t *Tree[K]) splay(n *Node[K]) {
	for n.parent != nil {
		p := n.parent
		g := p.parent
		switch {
		case g == nil: // zig
			t.rotateUp(n)
		case (g.left == p) == (p.left == n): // zig-zig
			t.rotateUp(p)
			t.rotateUp(n)
		default: // zig-zag
			t.rotateUp(n)
			t.rotateUp(n)
		}
	}
}
