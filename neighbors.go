package bstree

// FindLT returns the node with the greatest key less than key, or nil.
func (t *Tree[K]) FindLT(key K) (*Node[K], error) {
	return t.neighbor(key, below, false)
}

// FindLE returns the node with the greatest key less than or equal to key,
// or nil.
func (t *Tree[K]) FindLE(key K) (*Node[K], error) {
	return t.neighbor(key, below, true)
}

// FindGT returns the node with the least key greater than key, or nil.
func (t *Tree[K]) FindGT(key K) (*Node[K], error) {
	return t.neighbor(key, above, false)
}

// FindGE returns the node with the least key greater than or equal to key,
// or nil.
func (t *Tree[K]) FindGE(key K) (*Node[K], error) {
	return t.neighbor(key, above, true)
}

type direction bool

const (
	below direction = false
	above direction = true
)

// neighbor descends from the root, remembering the last node on the search
// path lying on the requested side of key.
func (t *Tree[K]) neighbor(key K, dir direction, inclusive bool) (*Node[K], error) {
	if t == nil || t.root == nil {
		return nil, nil
	}
	var best *Node[K]
	n := t.root
	for n != nil {
		c, err := t.compare(n.key, key)
		if err != nil {
			return nil, err
		}
		if c == 0 && inclusive {
			best = n
			break
		}
		if dir == below {
			if c < 0 {
				best = n
				n = n.right
			} else {
				n = n.left
			}
		} else {
			if c > 0 {
				best = n
				n = n.left
			} else {
				n = n.right
			}
		}
	}
	return t.accessed(best), nil
}
