package ternary

// Insert returns a tree with value inserted next to the element at idx:
// before it if after is false, behind it otherwise.
//
// Trees of one or two elements are handled by explicit enumeration, keeping
// their results canonical. For larger trees, inserting in front of the first
// element when the left child is the largest of three (or behind the last
// element when the right child is) wraps the whole tree one level down
// instead of descending. This keeps repeated inserts at the ends cheap.
// A Branch2 gets its vacant slot filled at the matching end if its outer
// child is not the smaller one. Everything else recurses into the child
// spanning idx.
func (n *Node[T]) Insert(idx int, value T, after bool) *Node[T] {
	if idx < 0 || idx >= n.size {
		panic(outOfBounds("Insert", idx, n.size))
	}
	return n.insert(idx, NewLeaf(value), after)
}

// Prepend inserts value in front of the first element.
func (n *Node[T]) Prepend(value T) *Node[T] {
	return n.insert(0, NewLeaf(value), false)
}

// Append inserts value behind the last element. Unlike PushRight it does
// not aim at amortized O(1).
func (n *Node[T]) Append(value T) *Node[T] {
	return n.insert(n.size-1, NewLeaf(value), true)
}

func (n *Node[T]) insert(idx int, item *Node[T], after bool) *Node[T] {
	switch n.size {
	case 1: // always a leaf
		if after {
			return branch2(n, item)
		}
		return branch2(item, n)
	case 2: // always a Branch2 of two leaves
		switch {
		case idx == 0 && !after:
			return branch3(item, n.left, n.middle)
		case idx == 1 && after:
			return branch3(n.left, n.middle, item)
		}
		return branch3(n.left, item, n.middle)
	}
	if n.kind == Branch2 {
		return n.insert2(idx, item, after)
	}
	return n.insert3(idx, item, after)
}

func (n *Node[T]) insert2(idx int, item *Node[T], after bool) *Node[T] {
	if idx == 0 && !after && n.left.size >= n.middle.size {
		return branch3(item, n.left, n.middle)
	}
	if idx == n.size-1 && after && n.middle.size >= n.left.size {
		return branch3(n.left, n.middle, item)
	}
	if idx < n.left.size {
		return branch2(n.left.insert(idx, item, after), n.middle)
	}
	return branch2(n.left, n.middle.insert(idx-n.left.size, item, after))
}

func (n *Node[T]) insert3(idx int, item *Node[T], after bool) *Node[T] {
	l, m, r := n.left.size, n.middle.size, n.right.size
	if idx == 0 && !after && l >= m && l >= r {
		tracer().Debugf("ternary: insert wraps tree of size %d from the left", n.size)
		return branch2(item, n)
	}
	if idx == n.size-1 && after && r >= m && r >= l {
		tracer().Debugf("ternary: insert wraps tree of size %d from the right", n.size)
		return branch2(n, item)
	}
	if idx < l {
		return branch3(n.left.insert(idx, item, after), n.middle, n.right)
	}
	if idx < l+m {
		return branch3(n.left, n.middle.insert(idx-l, item, after), n.right)
	}
	return branch3(n.left, n.middle, n.right.insert(idx-l-m, item, after))
}
