package ternary

import (
	"fmt"
	"math"
)

// Kind tags the three node variants.
type Kind uint8

const (
	// Leaf holds exactly one element.
	Leaf Kind = iota
	// Branch2 has a left and a middle child.
	Branch2
	// Branch3 has left, middle and right children. It is the preferred shape.
	Branch3
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "Leaf"
	case Branch2:
		return "Branch2"
	case Branch3:
		return "Branch3"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Node is a node of a ternary tree, and at the same time the tree rooted
// there. A node is never empty.
//
// Nodes are immutable after construction and may be shared between any
// number of trees. The zero value is not a valid node; use the constructors
// or the bulk builder.
type Node[T any] struct {
	kind   Kind
	size   int
	depth  int
	value  T        // leaf only
	left   *Node[T] // branches only
	middle *Node[T] // branches only
	right  *Node[T] // Branch3 only
}

// NewLeaf creates a single-element tree.
func NewLeaf[T any](value T) *Node[T] {
	return &Node[T]{kind: Leaf, size: 1, value: value}
}

func branch2[T any](left, middle *Node[T]) *Node[T] {
	return &Node[T]{
		kind:   Branch2,
		size:   left.size + middle.size,
		depth:  1 + max(left.depth, middle.depth),
		left:   left,
		middle: middle,
	}
}

func branch3[T any](left, middle, right *Node[T]) *Node[T] {
	return &Node[T]{
		kind:   Branch3,
		size:   left.size + middle.size + right.size,
		depth:  1 + max(left.depth, middle.depth, right.depth),
		left:   left,
		middle: middle,
		right:  right,
	}
}

// join builds the smallest branch over 1, 2 or 3 non-nil nodes, skipping
// nils. It returns nil if all nodes are nil.
func join[T any](nodes ...*Node[T]) *Node[T] {
	var xs [3]*Node[T]
	k := 0
	for _, n := range nodes {
		if n != nil {
			xs[k] = n
			k++
		}
	}
	switch k {
	case 0:
		return nil
	case 1:
		return xs[0]
	case 2:
		return branch2(xs[0], xs[1])
	}
	return branch3(xs[0], xs[1], xs[2])
}

// Len returns the number of elements in the tree.
func (n *Node[T]) Len() int {
	return n.size
}

// Depth returns the height of the tree, where a leaf has depth 0.
// Depth is maintained bottom-up by every edit and is read in O(1).
func (n *Node[T]) Depth() int {
	return n.depth
}

// Kind returns the variant of n.
func (n *Node[T]) Kind() Kind {
	return n.kind
}

// IsLeaf is true for single-element nodes.
func (n *Node[T]) IsLeaf() bool {
	return n.kind == Leaf
}

// Value returns the element of a leaf. It panics for branches.
func (n *Node[T]) Value() T {
	if n.kind != Leaf {
		panic("ternary: Value called on a branch")
	}
	return n.value
}

// Children returns the children of a branch in order. Leaves have none.
func (n *Node[T]) Children() []*Node[T] {
	switch n.kind {
	case Branch2:
		return []*Node[T]{n.left, n.middle}
	case Branch3:
		return []*Node[T]{n.left, n.middle, n.right}
	}
	return nil
}

// --- Arithmetic ------------------------------------------------------------

// triple returns 3^k, saturating at math.MaxInt. Negative exponents yield 1.
func triple(k int) int {
	r := 1
	for ; k > 0; k-- {
		if r > math.MaxInt/3 {
			return math.MaxInt
		}
		r *= 3
	}
	return r
}

// divideTernary splits size into three nearly equal parts. A remainder of 1
// goes to the middle, a remainder of 2 to the sides.
func divideTernary(size int) (int, int, int) {
	g := size / 3
	switch size % 3 {
	case 1:
		return g, g + 1, g
	case 2:
		return g + 1, g, g + 1
	}
	return g, g, g
}

func outOfBounds(op string, idx, size int) string {
	return fmt.Sprintf("%v: %s(%d) on tree of size %d", ErrIndexOutOfBounds, op, idx, size)
}
