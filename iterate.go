package tritree

import (
	"cmp"
	"iter"

	"github.com/npillmayer/tritree/ternary"
)

// All iterates over the positions and items of l, in order.
func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range l.Len() {
			if !yield(i, l.root.LoopGet(i)) {
				return
			}
		}
	}
}

// Backward iterates over the positions and items of l, from the last item
// to the first one.
func (l List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := l.Len() - 1; i >= 0; i-- {
			if !yield(i, l.root.LoopGet(i)) {
				return
			}
		}
	}
}

// Values iterates over the items of l. It walks the tree once and is
// faster than All for complete traversals.
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.root == nil {
			return
		}
		l.root.Each(yield)
	}
}

// ToSlice returns the items of l in a freshly allocated slice.
func (l List[T]) ToSlice() []T {
	if l.root == nil {
		return []T{}
	}
	return l.root.ToSlice()
}

// FindIndex returns the position of the first item satisfying pred, or -1.
func (l List[T]) FindIndex(pred func(T) bool) int {
	if l.root == nil {
		return -1
	}
	return l.root.FindIndex(pred)
}

// IndexOf returns the position of the first item equal to v, or -1.
func IndexOf[T comparable](l List[T], v T) int {
	return l.FindIndex(func(x T) bool { return x == v })
}

// Equal reports whether a and b hold the same items in the same order.
// The shapes of the underlying trees do not matter.
func Equal[T comparable](a, b List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.root == b.root {
		return true
	}
	next, stop := iter.Pull(b.Values())
	defer stop()
	for x := range a.Values() {
		y, _ := next()
		if x != y {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically, item by item. The empty
// list is less than any other list. The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b List[T]) int {
	next, stop := iter.Pull(b.Values())
	defer stop()
	for x := range a.Values() {
		y, ok := next()
		if !ok {
			return +1
		}
		if c := cmp.Compare(x, y); c != 0 {
			return c
		}
	}
	if _, ok := next(); ok {
		return -1
	}
	return 0
}

// Map returns a list of f applied to every item of l. The result has the
// same tree shape as l.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	if l.root == nil {
		return List[U]{}
	}
	return List[U]{root: ternary.Map(l.root, f)}
}
