package tritree

import (
	"github.com/npillmayer/tritree/ternary"
)

// Builder incrementally stages items and finalizes them into a List.
//
// Builder collects items in slices and materializes the list only when
// List() is called, with a single run of the bulk builder. This is faster
// than pushing items one by one and results in a tree of optimal shape.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[T any] struct {
	// front keeps prepended items in reverse logical order.
	front []T
	// back keeps appended items in logical order.
	back []T

	done  bool
	dirty bool
	list  List[T]
}

// NewBuilder creates a new and empty list builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// List returns the list built from all staged items.
//
// It is illegal to continue adding items after List has been called, but
// List may be called multiple times.
func (b *Builder[T]) List() List[T] {
	if b == nil {
		return List[T]{}
	}
	if b.dirty {
		b.list = b.buildList()
		b.dirty = false
	}
	b.done = true
	if b.list.IsEmpty() {
		tracer().Debugf("list builder: list is empty")
	}
	return b.list
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	if b == nil {
		return
	}
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.list = List[T]{}
}

// Len returns the number of staged items.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.front) + len(b.back)
}

// Append appends items to the staged build.
func (b *Builder[T]) Append(items ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrListCompleted
	}
	b.back = append(b.back, items...)
	if len(items) > 0 {
		b.dirty = true
	}
	return nil
}

// Prepend prepends items to the staged build. The items keep their order,
// i.e. Prepend(1, 2) followed by Prepend(0) stages 0, 1, 2.
func (b *Builder[T]) Prepend(items ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrListCompleted
	}
	// front is stored in reverse logical order.
	for i := len(items) - 1; i >= 0; i-- {
		b.front = append(b.front, items[i])
	}
	if len(items) > 0 {
		b.dirty = true
	}
	return nil
}

// AppendList appends all items of l.
func (b *Builder[T]) AppendList(l List[T]) error {
	return b.Append(l.ToSlice()...)
}

func (b *Builder[T]) buildList() List[T] {
	items := b.orderedItems()
	if len(items) == 0 {
		return List[T]{}
	}
	tracer().Debugf("list builder: building list of %d items", len(items))
	return List[T]{root: ternary.FromValues(items...)}
}

func (b *Builder[T]) orderedItems() []T {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]T, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}
