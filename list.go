package tritree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/tritree/ternary"
)

// List is a persistent sequence of values of type T.
//
// The zero value is the empty list, ready to use. Lists are values: every
// method returns a new list. The only method with a pointer receiver is
// ForceRebalance, which replaces the tree of the list variable but never
// modifies a tree.
type List[T any] struct {
	root *ternary.Node[T] // nil for the empty list
}

// FromSlice creates a list holding the items of xs in order. xs is not
// retained.
func FromSlice[T any](xs []T) List[T] {
	if len(xs) == 0 {
		return List[T]{}
	}
	return List[T]{root: ternary.FromValues(xs...)}
}

// Of creates a list from its arguments.
func Of[T any](xs ...T) List[T] {
	return FromSlice(xs)
}

func wrap[T any](root *ternary.Node[T]) List[T] {
	return List[T]{root: root.MaybeRebalance()}
}

// Len returns the number of items in the list.
func (l List[T]) Len() int {
	if l.root == nil {
		return 0
	}
	return l.root.Len()
}

// IsEmpty is a predicate to check for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.root == nil
}

// Depth returns the height of the underlying tree. The empty list and lists
// of a single item have depth 0.
func (l List[T]) Depth() int {
	if l.root == nil {
		return 0
	}
	return l.root.Depth()
}

func (l List[T]) checkIndex(i int) error {
	if i < 0 || i >= l.Len() {
		return fmt.Errorf("%w: index %d for list of length %d", ErrIndexOutOfBounds, i, l.Len())
	}
	return nil
}

// --- Access ----------------------------------------------------------------

// Get returns the item at position i.
func (l List[T]) Get(i int) (T, error) {
	if err := l.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return l.root.LoopGet(i), nil
}

// First returns the first item of the list.
func (l List[T]) First() (T, error) {
	if l.root == nil {
		var zero T
		return zero, fmt.Errorf("%w: no first item", ErrEmptyList)
	}
	return l.root.First(), nil
}

// Last returns the last item of the list.
func (l List[T]) Last() (T, error) {
	if l.root == nil {
		var zero T
		return zero, fmt.Errorf("%w: no last item", ErrEmptyList)
	}
	return l.root.Last(), nil
}

// --- Point edits -----------------------------------------------------------

// Assoc returns a list with the item at position i replaced by v.
func (l List[T]) Assoc(i int, v T) (List[T], error) {
	if err := l.checkIndex(i); err != nil {
		return l, err
	}
	return List[T]{root: l.root.Assoc(i, v)}, nil
}

// Dissoc returns a list without the item at position i.
func (l List[T]) Dissoc(i int) (List[T], error) {
	if err := l.checkIndex(i); err != nil {
		return l, err
	}
	return wrap(l.root.Dissoc(i)), nil
}

// Insert returns a list where v has been inserted at position i, shifting
// the items from i on to the right. i may be equal to l.Len(), which
// appends v.
func (l List[T]) Insert(i int, v T) (List[T], error) {
	switch {
	case i < 0 || i > l.Len():
		return l, fmt.Errorf("%w: insert at %d into list of length %d", ErrIndexOutOfBounds, i, l.Len())
	case l.root == nil:
		return List[T]{root: ternary.NewLeaf(v)}, nil
	case i == l.Len():
		return wrap(l.root.Insert(i-1, v, true)), nil
	}
	return wrap(l.root.Insert(i, v, false)), nil
}

// InsertBefore returns a list with v inserted right before the item at
// position i.
func (l List[T]) InsertBefore(i int, v T) (List[T], error) {
	if err := l.checkIndex(i); err != nil {
		return l, err
	}
	return wrap(l.root.Insert(i, v, false)), nil
}

// InsertAfter returns a list with v inserted right after the item at
// position i.
func (l List[T]) InsertAfter(i int, v T) (List[T], error) {
	if err := l.checkIndex(i); err != nil {
		return l, err
	}
	return wrap(l.root.Insert(i, v, true)), nil
}

// Prepend inserts v in front of the list, using the general insert
// algorithm. For repeated prepending, PushLeft is faster.
func (l List[T]) Prepend(v T) List[T] {
	if l.root == nil {
		return List[T]{root: ternary.NewLeaf(v)}
	}
	return wrap(l.root.Prepend(v))
}

// Append adds v at the end of the list, using the general insert algorithm.
// For repeated appending, PushRight is faster.
func (l List[T]) Append(v T) List[T] {
	if l.root == nil {
		return List[T]{root: ternary.NewLeaf(v)}
	}
	return wrap(l.root.Append(v))
}

// --- Both ends -------------------------------------------------------------

// PushLeft adds v in front of the list. It is amortized O(1).
func (l List[T]) PushLeft(v T) List[T] {
	if l.root == nil {
		return List[T]{root: ternary.NewLeaf(v)}
	}
	return wrap(l.root.PushLeft(v))
}

// PushRight adds v at the end of the list. It is amortized O(1).
func (l List[T]) PushRight(v T) List[T] {
	if l.root == nil {
		return List[T]{root: ternary.NewLeaf(v)}
	}
	return wrap(l.root.PushRight(v))
}

// DropLeft removes the first item. Dropping from the empty list yields the
// empty list.
func (l List[T]) DropLeft() List[T] {
	if l.root == nil {
		return l
	}
	return wrap(l.root.DropLeft())
}

// DropRight removes the last item. Dropping from the empty list yields the
// empty list.
func (l List[T]) DropRight() List[T] {
	if l.root == nil {
		return l
	}
	return wrap(l.root.DropRight())
}

// Rest returns the list without its first item. Other than DropLeft, it
// flags an error for the empty list.
func (l List[T]) Rest() (List[T], error) {
	if l.root == nil {
		return l, fmt.Errorf("%w: rest of empty list", ErrEmptyList)
	}
	return wrap(l.root.Rest()), nil
}

// ButLast returns the list without its last item. It flags an error for the
// empty list.
func (l List[T]) ButLast() (List[T], error) {
	if l.root == nil {
		return l, fmt.Errorf("%w: butlast of empty list", ErrEmptyList)
	}
	return wrap(l.root.ButLast()), nil
}

// --- Ranges ----------------------------------------------------------------

// Slice returns the items [start, end) as a new list. An empty range
// results in the empty list.
func (l List[T]) Slice(start, end int) (List[T], error) {
	if start < 0 || start > end || end > l.Len() {
		return l, fmt.Errorf("%w: [%d, %d) for list of length %d", ErrInvalidRange, start, end, l.Len())
	}
	if start == end {
		return List[T]{}, nil
	}
	return wrap(l.root.Slice(start, end)), nil
}

// Take returns the first n items.
func (l List[T]) Take(n int) (List[T], error) {
	return l.Slice(0, n)
}

// Skip returns the list without its first n items.
func (l List[T]) Skip(n int) (List[T], error) {
	return l.Slice(n, l.Len())
}

// SplitAt splits the list into the items before position i and the items
// from i on. i may be 0 or l.Len(), resulting in an empty part.
func (l List[T]) SplitAt(i int) (List[T], List[T], error) {
	switch {
	case i < 0 || i > l.Len():
		return l, List[T]{}, fmt.Errorf("%w: split at %d of list of length %d",
			ErrIndexOutOfBounds, i, l.Len())
	case i == 0:
		return List[T]{}, l, nil
	case i == l.Len():
		return l, List[T]{}, nil
	}
	a, b := l.root.Split(i)
	return wrap(a), wrap(b), nil
}

// Concat returns a list of the items of l, followed by the items of all
// others.
func (l List[T]) Concat(others ...List[T]) List[T] {
	trees := make([]*ternary.Node[T], 0, len(others)+1)
	trees = append(trees, l.root)
	for _, o := range others {
		trees = append(trees, o.root)
	}
	return List[T]{root: ternary.Concat(trees...)}
}

// Reverse returns a list of the items of l in reverse order.
func (l List[T]) Reverse() List[T] {
	if l.root == nil {
		return l
	}
	return List[T]{root: l.root.Reverse()}
}

// --- Balance ---------------------------------------------------------------

// Rebalanced returns l, or a rebuilt copy of l if the depth of its tree has
// gotten out of proportion to its length. All edits do this already, so
// clients will rarely need to call it.
func (l List[T]) Rebalanced() List[T] {
	return wrap(l.root)
}

// ForceRebalance rebuilds the tree of l to optimal depth and makes l refer
// to the rebuilt tree. Lists derived from l earlier keep their own trees and
// do not see any change.
func (l *List[T]) ForceRebalance() {
	if l.root == nil {
		return
	}
	l.root = l.root.ForceRebuild()
}

// Check validates the internal structure of the list, for debugging.
func (l List[T]) Check() error {
	if l.root == nil {
		return nil
	}
	return l.root.Check()
}

// --- Formatting ------------------------------------------------------------

// FormatInline renders the tree structure of the list in parentheses,
// e.g. "((1 2) 3 (4 5))". The empty list renders as "()".
func (l List[T]) FormatInline() string {
	if l.root == nil {
		return "()"
	}
	return l.root.FormatInline()
}

// String is a short description of the list, which does not list its items.
func (l List[T]) String() string {
	if l.root == nil {
		return "Empty"
	}
	return l.root.String()
}
