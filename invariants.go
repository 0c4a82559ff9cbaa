package bstree

import "fmt"

// Check validates the structural invariants of t:
//
//   - keys are in strict binary search tree order
//   - parent links agree with child links
//   - the number of nodes equals Size()
//   - Red-Black trees obey the color rules and have a uniform black-height
//   - AVL trees are height balanced and their stored heights and balance
//     factors are up to date
//
// Violations are reported as errors wrapping ErrInvariantViolation. Check is
// intended for tests and debugging.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree with size %d", ErrInvariantViolation, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has parent %v", ErrInvariantViolation, t.root, t.root.parent)
	}
	count, err := t.checkOrder(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariantViolation, count, t.size)
	}
	switch t.cfg.Balancing {
	case RedBlack:
		if t.root.color != Black {
			return fmt.Errorf("%w: red root %v", ErrInvariantViolation, t.root)
		}
		_, err = checkRedBlack(t.root)
	case AVL:
		_, err = checkAVL(t.root)
	}
	return err
}

// checkOrder checks BST order and parent links of the subtree rooted at n.
// All keys have to lie strictly between the keys of lo and hi, if present.
func (t *Tree[K]) checkOrder(n, lo, hi *Node[K]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil {
		if c, err := t.compare(lo.key, n.key); err != nil || c >= 0 {
			return 0, fmt.Errorf("%w: key order broken at %v (lower bound %v)", ErrInvariantViolation, n, lo)
		}
	}
	if hi != nil {
		if c, err := t.compare(n.key, hi.key); err != nil || c >= 0 {
			return 0, fmt.Errorf("%w: key order broken at %v (upper bound %v)", ErrInvariantViolation, n, hi)
		}
	}
	if n.left != nil && n.left.parent != n {
		return 0, fmt.Errorf("%w: stale parent link at %v", ErrInvariantViolation, n.left)
	}
	if n.right != nil && n.right.parent != n {
		return 0, fmt.Errorf("%w: stale parent link at %v", ErrInvariantViolation, n.right)
	}
	l, err := t.checkOrder(n.left, lo, n)
	if err != nil {
		return 0, err
	}
	r, err := t.checkOrder(n.right, n, hi)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}

// checkRedBlack returns the black-height of the subtree rooted at n.
func checkRedBlack[K any](n *Node[K]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.color == Red && (n.left.IsRed() || n.right.IsRed()) {
		return 0, fmt.Errorf("%w: red node %v has red child", ErrInvariantViolation, n)
	}
	lh, err := checkRedBlack(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkRedBlack(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black-heights differ at %v (%d != %d)", ErrInvariantViolation, n, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}

// checkAVL returns the height of the subtree rooted at n.
func checkAVL[K any](n *Node[K]) (int, error) {
	if n == nil {
		return -1, nil
	}
	lh, err := checkAVL(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkAVL(n.right)
	if err != nil {
		return 0, err
	}
	h := 1 + max(lh, rh)
	if n.height != h || n.balance != rh-lh {
		return 0, fmt.Errorf("%w: stale height/balance at %v (%d/%d != %d/%d)",
			ErrInvariantViolation, n, n.height, n.balance, h, rh-lh)
	}
	if n.balance < -1 || n.balance > 1 {
		return 0, fmt.Errorf("%w: node %v out of balance (%d)", ErrInvariantViolation, n, n.balance)
	}
	return h, nil
}
