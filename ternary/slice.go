package ternary

// Slice returns the elements [start, end) as a tree. The range must be
// non-empty and inside the tree: 0 ≤ start < end ≤ n.Len().
//
// Slice descends to the smallest subtree spanning the range. Where the range
// straddles child boundaries, the overlapping children are cut and the
// pieces, together with fully covered children, are handed to Concat, which
// is responsible for the resulting balance.
func (n *Node[T]) Slice(start, end int) *Node[T] {
	if start < 0 || end > n.size || start >= end {
		panic(outOfBounds("Slice", start, n.size))
	}
	return n.slice(start, end)
}

func (n *Node[T]) slice(start, end int) *Node[T] {
	if start == 0 && end == n.size {
		return n
	}
	// n cannot be a leaf here
	var pieces [3]*Node[T]
	k := 0
	offset := 0
	for _, c := range n.Children() {
		from, to := max(start-offset, 0), min(end-offset, c.size)
		if from < to {
			pieces[k] = c.slice(from, to)
			k++
		}
		offset += c.size
	}
	if k == 1 {
		return pieces[0]
	}
	return Concat(pieces[:k]...)
}

// TakeLeft returns the first end elements, 0 < end ≤ n.Len().
func (n *Node[T]) TakeLeft(end int) *Node[T] {
	if end <= 0 || end > n.size {
		panic(outOfBounds("TakeLeft", end, n.size))
	}
	return n.slice(0, end)
}

// TakeRight returns the elements from position start on, 0 ≤ start < n.Len().
func (n *Node[T]) TakeRight(start int) *Node[T] {
	if start < 0 || start >= n.size {
		panic(outOfBounds("TakeRight", start, n.size))
	}
	return n.slice(start, n.size)
}
