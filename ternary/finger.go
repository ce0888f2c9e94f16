package ternary

// Tricks for cheap operations at both ends, learnt from finger trees: keep
// the branches near either end shallow and let the middle of the tree be the
// deepest part. Finger trees encode this shape in their types; here it is
// detected dynamically from branch sizes while pushing, so it needs no extra
// state in the nodes.

// fingerMark classifies a node during a push. Main(n) nodes lie on the spine
// from the root down the middle children; their middle may grow up to 3^n
// elements and their boundary child up to 3^(n-1) before items move one
// level deeper. Side nodes are boundary branches and are packed as compact
// as possible, by comparing sibling sizes only.
type fingerMark struct {
	side bool
	n    int
}

func mainMark(n int) fingerMark { return fingerMark{n: n} }

var sideMark = fingerMark{side: true}

// PushRight returns a tree with value appended. A sequence of N pushes costs
// O(N) in total; a single push may take O(log n) when boundary items move
// down the main spine.
func (n *Node[T]) PushRight(value T) *Node[T] {
	return n.pushRight(NewLeaf(value), mainMark(rootFingerFactor))
}

// PushLeft returns a tree with value prepended. It mirrors PushRight.
func (n *Node[T]) PushLeft(value T) *Node[T] {
	return n.pushLeft(NewLeaf(value), mainMark(rootFingerFactor))
}

// pushRight appends item, which may be a subtree, to n.
func (n *Node[T]) pushRight(item *Node[T], mark fingerMark) *Node[T] {
	if mark.side || n.size+item.size <= triple(mark.n) {
		return n.pushRightSide(item)
	}
	switch n.kind {
	case Leaf:
		return n.pushRightSide(item)
	case Branch2:
		if n.middle.size+item.size > triple(mark.n) {
			return branch3(n.left, n.middle, item)
		}
		return branch2(n.left, n.middle.pushRight(item, sideMark))
	}
	if n.right.size+item.size > triple(mark.n-1) {
		// the right boundary is full: move it down the main spine as a whole
		// and start a fresh boundary with item
		middle := n.middle.pushRight(n.right, mainMark(mark.n+1))
		return branch3(n.left, middle, item)
	}
	return branch3(n.left, n.middle, n.right.pushRight(item, sideMark))
}

// pushRightSide piles item onto n in the most compact way, producing
// complete ternary subtrees from left to right.
func (n *Node[T]) pushRightSide(item *Node[T]) *Node[T] {
	switch n.kind {
	case Leaf:
		return branch2(n, item)
	case Branch2:
		if n.middle.size+item.size > n.left.size {
			return branch3(n.left, n.middle, item)
		}
		return branch2(n.left, n.middle.pushRightSide(item))
	}
	if n.right.size+item.size > n.middle.size {
		return branch2(n, item)
	}
	return branch3(n.left, n.middle, n.right.pushRightSide(item))
}

// pushLeft prepends item, which may be a subtree, to n.
func (n *Node[T]) pushLeft(item *Node[T], mark fingerMark) *Node[T] {
	if mark.side || n.size+item.size <= triple(mark.n) {
		return n.pushLeftSide(item)
	}
	switch n.kind {
	case Leaf:
		return n.pushLeftSide(item)
	case Branch2:
		if n.left.size+item.size > triple(mark.n) {
			return branch3(item, n.left, n.middle)
		}
		return branch2(n.left.pushLeft(item, sideMark), n.middle)
	}
	if n.left.size+item.size > triple(mark.n-1) {
		middle := n.middle.pushLeft(n.left, mainMark(mark.n+1))
		return branch3(item, middle, n.right)
	}
	return branch3(n.left.pushLeft(item, sideMark), n.middle, n.right)
}

func (n *Node[T]) pushLeftSide(item *Node[T]) *Node[T] {
	switch n.kind {
	case Leaf:
		return branch2(item, n)
	case Branch2:
		if n.left.size+item.size > n.middle.size {
			return branch3(item, n.left, n.middle)
		}
		return branch2(n.left.pushLeftSide(item), n.middle)
	}
	if n.left.size+item.size > n.middle.size {
		return branch2(item, n)
	}
	return branch3(n.left.pushLeftSide(item), n.middle, n.right)
}

// --- Dropping --------------------------------------------------------------

// Drops see a branch of the main spine as a boundary, a body and an opposite
// part. At the left end the boundary is the first child and the body the
// second one. At the right end the boundary is the last child and the body
// the one before it. A Branch2 has no opposite part. At main level k the boundary holds up to 3^(k-1) elements.
// A drop consuming the boundary refills it with a piece split off the body,
// the main branch of level k+1. Every level is refilled three times less
// often than the level above, so N drops at one end cost O(N) in total.

// leftParts splits a branch of main level k into left boundary, body and
// opposite part. A boundary beyond capacity, as produced by even builds, is
// cut down to capacity; the excess moves in front of the body, one level
// deeper, where it is cut again when it is reached.
func (n *Node[T]) leftParts(k int) (boundary, body, opposite *Node[T]) {
	boundary, body = n.left, n.middle
	if n.kind == Branch3 {
		opposite = n.right
	}
	if capacity := triple(k - 1); boundary.size > capacity {
		var excess *Node[T]
		boundary, excess = boundary.splitOffLeftSide(capacity)
		body = branch2(excess, body)
	}
	return boundary, body, opposite
}

// rightParts mirrors leftParts.
func (n *Node[T]) rightParts(k int) (opposite, body, boundary *Node[T]) {
	if n.kind == Branch3 {
		opposite, body, boundary = n.left, n.middle, n.right
	} else {
		body, boundary = n.left, n.middle
	}
	if capacity := triple(k - 1); boundary.size > capacity {
		var excess *Node[T]
		excess, boundary = boundary.splitOffRightSide(capacity)
		body = branch2(body, excess)
	}
	return opposite, body, boundary
}

// DropLeft returns the tree without its first element, or nil if n is a
// leaf. Inside the left boundary it descends the left spine; when the
// consumed child held a single element, its siblings are re-attached one
// level up. A consumed boundary is refilled from the middle of the tree.
func (n *Node[T]) DropLeft() *Node[T] {
	return n.dropLeft(rootFingerFactor)
}

func (n *Node[T]) dropLeft(k int) *Node[T] {
	if n.kind == Leaf {
		return nil
	}
	boundary, body, opposite := n.leftParts(k)
	if boundary.size > 1 {
		return join(boundary.dropLeftSide(), body, opposite)
	}
	refill, deeper := body.splitFront(triple(k-1), k+1)
	if deeper == nil {
		return reattachLeft(body, opposite)
	}
	return join(refill, deeper, opposite)
}

// reattachLeft lifts the children of m in front of opposite.
func reattachLeft[T any](m, opposite *Node[T]) *Node[T] {
	if opposite == nil {
		return m
	}
	switch m.kind {
	case Branch2:
		return branch3(m.left, m.middle, opposite)
	case Branch3:
		return branch3(m.left, branch2(m.middle, m.right), opposite)
	}
	return branch2(m, opposite)
}

func (n *Node[T]) dropLeftSide() *Node[T] {
	switch n.kind {
	case Leaf:
		return nil
	case Branch2:
		if n.left.size == 1 {
			return n.middle
		}
		changed := n.left.dropLeftSide()
		switch changed.kind {
		case Branch2:
			return branch3(changed.left, changed.middle, n.middle)
		case Branch3:
			return branch3(changed.left, branch2(changed.middle, changed.right), n.middle)
		}
		return branch2(changed, n.middle)
	}
	if n.left.size == 1 {
		return reattachLeft(n.middle, n.right)
	}
	return branch3(n.left.dropLeftSide(), n.middle, n.right)
}

// DropRight returns the tree without its last element, or nil if n is a
// leaf. It mirrors DropLeft.
func (n *Node[T]) DropRight() *Node[T] {
	return n.dropRight(rootFingerFactor)
}

func (n *Node[T]) dropRight(k int) *Node[T] {
	if n.kind == Leaf {
		return nil
	}
	opposite, body, boundary := n.rightParts(k)
	if boundary.size > 1 {
		return join(opposite, body, boundary.dropRightSide())
	}
	deeper, refill := body.splitBack(triple(k-1), k+1)
	if deeper == nil {
		return reattachRight(opposite, body)
	}
	return join(opposite, deeper, refill)
}

func reattachRight[T any](opposite, m *Node[T]) *Node[T] {
	if opposite == nil {
		return m
	}
	switch m.kind {
	case Branch2:
		return branch3(opposite, m.left, m.middle)
	case Branch3:
		return branch3(opposite, branch2(m.left, m.middle), m.right)
	}
	return branch2(opposite, m)
}

func (n *Node[T]) dropRightSide() *Node[T] {
	switch n.kind {
	case Leaf:
		return nil
	case Branch2:
		if n.middle.size == 1 {
			return n.left
		}
		changed := n.middle.dropRightSide()
		switch changed.kind {
		case Branch2:
			return branch3(n.left, changed.left, changed.middle)
		case Branch3:
			return branch3(n.left, branch2(changed.left, changed.middle), changed.right)
		}
		return branch2(n.left, changed)
	}
	if n.right.size == 1 {
		return reattachRight(n.left, n.middle)
	}
	return branch3(n.left, n.middle, n.right.dropRightSide())
}
