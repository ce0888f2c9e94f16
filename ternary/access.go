package ternary

// Get returns the element at position idx, descending recursively.
// idx must satisfy 0 ≤ idx < n.Len().
func (n *Node[T]) Get(idx int) T {
	switch n.kind {
	case Leaf:
		if idx != 0 {
			panic(outOfBounds("Get", idx, 1))
		}
		return n.value
	case Branch2:
		if idx < n.left.size {
			return n.left.Get(idx)
		}
		return n.middle.Get(idx - n.left.size)
	}
	if idx < n.left.size {
		return n.left.Get(idx)
	}
	idx -= n.left.size
	if idx < n.middle.size {
		return n.middle.Get(idx)
	}
	return n.right.Get(idx - n.middle.size)
}

// LoopGet returns the element at position idx. It takes the same decisions
// as Get, but walks down the tree with a cursor instead of recursing, which
// makes it the better choice for iteration.
func (n *Node[T]) LoopGet(idx int) T {
	if idx < 0 || idx >= n.size {
		panic(outOfBounds("LoopGet", idx, n.size))
	}
	cur := n
	for {
		switch cur.kind {
		case Leaf:
			return cur.value
		case Branch2:
			if idx < cur.left.size {
				cur = cur.left
			} else {
				idx -= cur.left.size
				cur = cur.middle
			}
		case Branch3:
			if idx < cur.left.size {
				cur = cur.left
				continue
			}
			idx -= cur.left.size
			if idx < cur.middle.size {
				cur = cur.middle
				continue
			}
			idx -= cur.middle.size
			cur = cur.right
		}
	}
}

// First returns the leftmost element.
func (n *Node[T]) First() T {
	cur := n
	for cur.kind != Leaf {
		cur = cur.left
	}
	return cur.value
}

// Last returns the rightmost element.
func (n *Node[T]) Last() T {
	cur := n
	for {
		switch cur.kind {
		case Leaf:
			return cur.value
		case Branch2:
			cur = cur.middle
		case Branch3:
			cur = cur.right
		}
	}
}
