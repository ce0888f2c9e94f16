package tritree

import "fmt"

// Cursor navigates a list item by item, in both directions.
//
// The cursor is bound to one list snapshot; edits to lists derived from it
// are not visible. The position of a cursor is the index of the item which
// Next will return, i.e. it lies between the items Prev and Next return.
type Cursor[T any] struct {
	list List[T]
	pos  int
}

// Cursor creates a cursor positioned in front of the first item of l.
func (l List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: l}
}

// Pos returns the current cursor position, 0 ≤ pos ≤ Len().
func (c *Cursor[T]) Pos() int {
	if c == nil {
		return 0
	}
	return c.pos
}

// List returns the list the cursor is bound to.
func (c *Cursor[T]) List() List[T] {
	if c == nil {
		return List[T]{}
	}
	return c.list
}

// Seek moves the cursor to absolute position pos. pos may be equal to the
// length of the list, placing the cursor at the end.
func (c *Cursor[T]) Seek(pos int) error {
	if c == nil {
		return ErrIllegalArguments
	}
	if pos < 0 || pos > c.list.Len() {
		return fmt.Errorf("%w: seek to %d in list of length %d", ErrIndexOutOfBounds, pos, c.list.Len())
	}
	c.pos = pos
	return nil
}

// Next returns the item at the current cursor position and advances by one.
//
// If the cursor is at the end of the list, ok is false.
func (c *Cursor[T]) Next() (item T, ok bool) {
	if c == nil || c.pos >= c.list.Len() {
		return item, false
	}
	item = c.list.root.LoopGet(c.pos)
	c.pos++
	return item, true
}

// Prev returns the item before the current cursor position and moves back
// by one.
//
// If the cursor is at the start of the list, ok is false.
func (c *Cursor[T]) Prev() (item T, ok bool) {
	if c == nil || c.pos == 0 {
		return item, false
	}
	c.pos--
	return c.list.root.LoopGet(c.pos), true
}
