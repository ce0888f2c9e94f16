package ternary

import "fmt"

// SplitOffLeft peels off a leading piece of at least one and at most bound
// elements and returns it together with the remainder. rest is nil if the
// whole tree fits into bound.
//
// The piece is taken from the left boundary of the tree, so it may hold
// fewer than bound elements. A boundary used up by the piece is refilled from
// the middle, where the bound is multiplied by 3 on every level of the main
// spine. This keeps the work of N consecutive calls in O(N). With bound 1
// the piece is the first element.
func (n *Node[T]) SplitOffLeft(bound int) (piece, rest *Node[T]) {
	if bound < 1 {
		panic(fmt.Sprintf("ternary: SplitOffLeft with bound %d", bound))
	}
	piece, rest = n.splitFront(bound, rootFingerFactor)
	tracer().Debugf("ternary: split off %d leading of %d elements", piece.size, n.size)
	return piece, rest
}

// splitFront splits up to bound elements off n, a branch of main level k.
func (n *Node[T]) splitFront(bound, k int) (*Node[T], *Node[T]) {
	if n.size <= bound {
		return n, nil
	}
	boundary, body, opposite := n.leftParts(k)
	if boundary.size > bound {
		piece, remainder := boundary.splitOffLeftSide(bound)
		return piece, join(remainder, body, opposite)
	}
	refill, deeper := body.splitFront(3*bound, k+1)
	return boundary, join(refill, deeper, opposite)
}

// splitOffLeftSide cuts a piece of at most bound elements off the front of a
// boundary branch, taking whole subtrees along the left spine. It relinks
// one node per level.
func (n *Node[T]) splitOffLeftSide(bound int) (*Node[T], *Node[T]) {
	if n.size <= bound {
		return n, nil
	}
	// n is a branch, as a leaf always fits
	cs := n.Children()
	var taken [2]*Node[T]
	i := 0
	for cs[i].size <= bound {
		bound -= cs[i].size
		taken[i] = cs[i]
		i++
	}
	var head *Node[T]
	tail := cs[i]
	if bound > 0 {
		head, tail = cs[i].splitOffLeftSide(bound)
	}
	piece := join(taken[0], taken[1], head)
	var rest *Node[T]
	switch len(cs) - i {
	case 1:
		rest = tail
	case 2:
		rest = join(tail, cs[i+1])
	default:
		rest = join(tail, cs[i+1], cs[i+2])
	}
	return piece, rest
}

// SplitOffRight peels off a trailing piece of at least one and at most bound
// elements. It mirrors SplitOffLeft and returns the remainder first, keeping
// the order of the sequence. rest is nil if the whole tree fits into bound.
func (n *Node[T]) SplitOffRight(bound int) (rest, piece *Node[T]) {
	if bound < 1 {
		panic(fmt.Sprintf("ternary: SplitOffRight with bound %d", bound))
	}
	rest, piece = n.splitBack(bound, rootFingerFactor)
	tracer().Debugf("ternary: split off %d trailing of %d elements", piece.size, n.size)
	return rest, piece
}

func (n *Node[T]) splitBack(bound, k int) (*Node[T], *Node[T]) {
	if n.size <= bound {
		return nil, n
	}
	opposite, body, boundary := n.rightParts(k)
	if boundary.size > bound {
		remainder, piece := boundary.splitOffRightSide(bound)
		return join(opposite, body, remainder), piece
	}
	deeper, refill := body.splitBack(3*bound, k+1)
	return join(opposite, deeper, refill), boundary
}

func (n *Node[T]) splitOffRightSide(bound int) (*Node[T], *Node[T]) {
	if n.size <= bound {
		return nil, n
	}
	cs := n.Children()
	var taken [2]*Node[T] // in reverse order
	i := len(cs) - 1
	k := 0
	for cs[i].size <= bound {
		bound -= cs[i].size
		taken[k] = cs[i]
		k++
		i--
	}
	var tail *Node[T]
	head := cs[i]
	if bound > 0 {
		head, tail = cs[i].splitOffRightSide(bound)
	}
	piece := join(tail, taken[1], taken[0])
	var rest *Node[T]
	switch i {
	case 0:
		rest = head
	case 1:
		rest = join(cs[0], head)
	default:
		rest = join(cs[0], cs[1], head)
	}
	return rest, piece
}

// DropLeftShallow removes the first element like DropLeft, but cuts the
// path inside the left boundary instead of re-attaching siblings. It returns
// nil for a leaf.
func (n *Node[T]) DropLeftShallow() *Node[T] {
	_, rest := n.splitFront(1, rootFingerFactor)
	return rest
}

// DropRightShallow removes the last element, mirroring DropLeftShallow.
func (n *Node[T]) DropRightShallow() *Node[T] {
	rest, _ := n.splitBack(1, rootFingerFactor)
	return rest
}

// Split partitions the tree at idx into a tree of the first idx elements and
// a tree of the remaining ones. idx must satisfy 0 < idx < n.Len(). The
// pieces are recombined directly for every branch shape, without a rebuild.
func (n *Node[T]) Split(idx int) (*Node[T], *Node[T]) {
	if idx <= 0 || idx >= n.size {
		panic(outOfBounds("Split", idx, n.size))
	}
	return n.split(idx)
}

func (n *Node[T]) split(idx int) (*Node[T], *Node[T]) {
	l := n.left.size
	if n.kind == Branch2 {
		switch {
		case idx < l:
			a, b := n.left.split(idx)
			return a, branch2(b, n.middle)
		case idx == l:
			return n.left, n.middle
		}
		a, b := n.middle.split(idx - l)
		return branch2(n.left, a), b
	}
	m := n.middle.size
	switch {
	case idx < l:
		a, b := n.left.split(idx)
		return a, branch3(b, n.middle, n.right)
	case idx == l:
		return n.left, branch2(n.middle, n.right)
	case idx < l+m:
		a, b := n.middle.split(idx - l)
		return branch2(n.left, a), branch2(b, n.right)
	case idx == l+m:
		return branch2(n.left, n.middle), n.right
	}
	a, b := n.right.split(idx - l - m)
	return branch3(n.left, n.middle, a), b
}
