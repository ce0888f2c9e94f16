package ternary

import "errors"

var (
	// ErrMalformed signals a violated structural invariant. It is reported by
	// Check only; edit operations never test for it.
	ErrMalformed = errors.New("ternary: malformed tree")
	// ErrIndexOutOfBounds is used for panics on contract violations.
	ErrIndexOutOfBounds = errors.New("ternary: index out of bounds")
	// ErrEmptyInput signals an attempt to build a tree from no elements.
	ErrEmptyInput = errors.New("ternary: cannot build tree from empty input")
)
