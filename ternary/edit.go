package ternary

// Assoc returns a tree with the element at idx replaced by value.
// Size and shape are unchanged; only the path to idx is copied.
func (n *Node[T]) Assoc(idx int, value T) *Node[T] {
	switch n.kind {
	case Leaf:
		if idx != 0 {
			panic(outOfBounds("Assoc", idx, 1))
		}
		return NewLeaf(value)
	case Branch2:
		if idx < n.left.size {
			return branch2(n.left.Assoc(idx, value), n.middle)
		}
		return branch2(n.left, n.middle.Assoc(idx-n.left.size, value))
	}
	if idx < n.left.size {
		return branch3(n.left.Assoc(idx, value), n.middle, n.right)
	}
	if idx < n.left.size+n.middle.size {
		return branch3(n.left, n.middle.Assoc(idx-n.left.size, value), n.right)
	}
	return branch3(n.left, n.middle, n.right.Assoc(idx-n.left.size-n.middle.size, value))
}

// Dissoc returns a tree without the element at idx. A child which would
// become empty is dropped, contracting a Branch3 to a Branch2 or a Branch2
// to its remaining child. Dissoc of the single element of a leaf yields nil.
func (n *Node[T]) Dissoc(idx int) *Node[T] {
	if idx < 0 || idx >= n.size {
		panic(outOfBounds("Dissoc", idx, n.size))
	}
	return n.dissoc(idx)
}

func (n *Node[T]) dissoc(idx int) *Node[T] {
	switch n.kind {
	case Leaf:
		return nil
	case Branch2:
		if idx < n.left.size {
			if n.left.size == 1 {
				return n.middle
			}
			return branch2(n.left.dissoc(idx), n.middle)
		}
		if n.middle.size == 1 {
			return n.left
		}
		return branch2(n.left, n.middle.dissoc(idx-n.left.size))
	}
	if idx < n.left.size {
		if n.left.size == 1 {
			return branch2(n.middle, n.right)
		}
		return branch3(n.left.dissoc(idx), n.middle, n.right)
	}
	idx -= n.left.size
	if idx < n.middle.size {
		if n.middle.size == 1 {
			return branch2(n.left, n.right)
		}
		return branch3(n.left, n.middle.dissoc(idx), n.right)
	}
	idx -= n.middle.size
	if n.right.size == 1 {
		return branch2(n.left, n.middle)
	}
	return branch3(n.left, n.middle, n.right.dissoc(idx))
}

// Rest returns the tree without its first element, or nil for a leaf.
func (n *Node[T]) Rest() *Node[T] {
	return n.dissoc(0)
}

// ButLast returns the tree without its last element, or nil for a leaf.
func (n *Node[T]) ButLast() *Node[T] {
	return n.dissoc(n.size - 1)
}
