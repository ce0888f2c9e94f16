package ternary

// rootFingerFactor is the finger factor of a root. Its boundary branches may
// hold up to 3^(2-1) = 3 elements.
const rootFingerFactor = 2

// FromValues builds a tree holding values in order. It panics for an empty
// argument list, as the engine cannot represent empty sequences.
func FromValues[T any](values ...T) *Node[T] {
	if len(values) == 0 {
		panic(ErrEmptyInput.Error())
	}
	leaves := make([]*Node[T], len(values))
	for i, v := range values {
		leaves[i] = NewLeaf(v)
	}
	return Build(leaves)
}

// Build turns an ordered list of subtrees (often leaves) into a single tree.
// Branches near either end are kept shallow: the two boundary branches of a
// level may hold 3^(f-1) elements, where f is 2 at the root and grows by one
// with every level of the middle spine. Only the middle gets deeper.
//
// The input slice is not retained, and xs must not be empty.
func Build[T any](xs []*Node[T]) *Node[T] {
	if len(xs) == 0 {
		panic(ErrEmptyInput.Error())
	}
	return buildFinger(xs, rootFingerFactor)
}

func buildFinger[T any](xs []*Node[T], factor int) *Node[T] {
	size := len(xs)
	if size <= 3 {
		return buildEven(xs)
	}
	sideCapacity := triple(factor - 1)
	if sideCapacity > size/2 || 2*sideCapacity >= size { // first test keeps 2*cap from overflowing
		return buildEven(xs)
	}
	left := buildEven(xs[:sideCapacity])
	middle := buildFinger(xs[sideCapacity:size-sideCapacity], factor+1)
	right := buildEven(xs[size-sideCapacity:])
	return branch3(left, middle, right)
}

// buildEven builds a depth-optimal tree without shallow boundaries, dividing
// the input into three nearly equal parts on every level.
func buildEven[T any](xs []*Node[T]) *Node[T] {
	switch len(xs) {
	case 0:
		panic(ErrEmptyInput.Error())
	case 1:
		return xs[0]
	case 2:
		return branch2(xs[0], xs[1])
	case 3:
		return branch3(xs[0], xs[1], xs[2])
	}
	l, m, _ := divideTernary(len(xs))
	return branch3(
		buildEven(xs[:l]),
		buildEven(xs[l:l+m]),
		buildEven(xs[l+m:]),
	)
}
