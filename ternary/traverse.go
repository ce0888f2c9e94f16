package ternary

import (
	"fmt"
	"strings"
)

// Leaves returns the leaf nodes of the tree in order.
func (n *Node[T]) Leaves() []*Node[T] {
	acc := make([]*Node[T], 0, n.size)
	n.EachNode(func(node *Node[T], _ int) bool {
		if node.kind == Leaf {
			acc = append(acc, node)
		}
		return true
	})
	return acc
}

// ToSlice returns the elements of the tree in order.
func (n *Node[T]) ToSlice() []T {
	xs := make([]T, 0, n.size)
	n.Each(func(v T) bool {
		xs = append(xs, v)
		return true
	})
	return xs
}

// Each calls f for every element in order until f returns false.
// It reports whether the traversal ran to completion.
func (n *Node[T]) Each(f func(T) bool) bool {
	switch n.kind {
	case Leaf:
		return f(n.value)
	case Branch2:
		return n.left.Each(f) && n.middle.Each(f)
	}
	return n.left.Each(f) && n.middle.Each(f) && n.right.Each(f)
}

// EachNode visits all nodes in pre-order, passing their distance from n.
// Children of a node are skipped if f returns false for it.
func (n *Node[T]) EachNode(f func(node *Node[T], level int) bool) {
	n.eachNode(f, 0)
}

func (n *Node[T]) eachNode(f func(*Node[T], int) bool, level int) {
	if !f(n, level) {
		return
	}
	for _, c := range n.Children() {
		c.eachNode(f, level+1)
	}
}

// FindIndex returns the position of the first element satisfying pred,
// or -1.
func (n *Node[T]) FindIndex(pred func(T) bool) int {
	switch n.kind {
	case Leaf:
		if pred(n.value) {
			return 0
		}
		return -1
	}
	offset := 0
	for _, c := range n.Children() {
		if i := c.FindIndex(pred); i >= 0 {
			return offset + i
		}
		offset += c.size
	}
	return -1
}

// Reverse returns a tree with the elements in reverse order and the mirrored
// shape.
func (n *Node[T]) Reverse() *Node[T] {
	switch n.kind {
	case Leaf:
		return n
	case Branch2:
		return branch2(n.middle.Reverse(), n.left.Reverse())
	}
	return branch3(n.right.Reverse(), n.middle.Reverse(), n.left.Reverse())
}

// Map returns a tree of the same shape with f applied to every element.
func Map[T, U any](n *Node[T], f func(T) U) *Node[U] {
	switch n.kind {
	case Leaf:
		return NewLeaf(f(n.value))
	case Branch2:
		return branch2(Map(n.left, f), Map(n.middle, f))
	}
	return branch3(Map(n.left, f), Map(n.middle, f), Map(n.right, f))
}

// EqShape reports whether n and other have the same shape and equal
// elements, as decided by eq.
func (n *Node[T]) EqShape(other *Node[T], eq func(T, T) bool) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil || n.kind != other.kind || n.size != other.size {
		return false
	}
	switch n.kind {
	case Leaf:
		return eq(n.value, other.value)
	case Branch2:
		return n.left.EqShape(other.left, eq) && n.middle.EqShape(other.middle, eq)
	}
	return n.left.EqShape(other.left, eq) && n.middle.EqShape(other.middle, eq) &&
		n.right.EqShape(other.right, eq)
}

// --- Formatting ------------------------------------------------------------

// FormatInline renders the tree as nested parentheses, e.g. "((1 2) 3 (4 5))".
// Elements are formatted with %v.
func (n *Node[T]) FormatInline() string {
	var sb strings.Builder
	n.formatInline(&sb)
	return sb.String()
}

func (n *Node[T]) formatInline(sb *strings.Builder) {
	if n.kind == Leaf {
		fmt.Fprintf(sb, "%v", n.value)
		return
	}
	sb.WriteByte('(')
	for i, c := range n.Children() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		c.formatInline(sb)
	}
	sb.WriteByte(')')
}

// String is a short description, not a rendering of the elements.
func (n *Node[T]) String() string {
	return fmt.Sprintf("TernaryTree[%d, ...]", n.size)
}
