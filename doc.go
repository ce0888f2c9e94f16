/*
Package tritree offers persistent sequences, backed by ternary trees.

Lists

A List is an immutable ordered sequence of values. Every operation which
changes a list returns a new list and leaves the old one untouched; both
versions share all of their structure except the path to the change. This
makes lists cheap to keep around as snapshots, and safe to hand to other
goroutines without synchronization.

Internally a list is a 2-3-way tree (package ternary), where every branch
records the number of elements below it. Access, update, insertion and
deletion at arbitrary positions are logarithmic. Borrowing a trick from
finger trees, the branches near both ends of the sequence are kept shallow,
so pushing or dropping elements at either end is close to constant time
when done repeatedly.

From the paper by Ralf Hinze and Ross Paterson, 2006:

Finger trees: a simple general-purpose data structure

We present 2-3 finger trees, a functional representation of persistent
sequences supporting access to the ends in amortized constant time, and
concatenation and splitting in time logarithmic in the size of the smaller
piece. […]

_________________________________________________________________________

Lists in this package do not go as far as finger trees. Their shape is
tracked dynamically from branch sizes, and trees whose depth gets out of
proportion to their size after a series of edits are rebuilt lazily.

Clients which do not need persistence should stick to slices. For short
sequences, lists will add a performance penalty.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package tritree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tritree'
func tracer() tracing.Trace {
	return tracing.Select("tritree")
}

// ListError is an error type for the tritree module
type ListError string

func (e ListError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a list position is
// not inside the list.
const ErrIndexOutOfBounds = ListError("index out of bounds")

// ErrInvalidRange is flagged for ranges with start > end or end > length.
const ErrInvalidRange = ListError("invalid range")

// ErrEmptyList is flagged for operations which need at least one element.
const ErrEmptyList = ListError("list is empty")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ListError("illegal arguments")

// ErrListCompleted signals that a list builder has already completed a list
// and it's illegal to further add items.
const ErrListCompleted = ListError("forbidden to add items; list has been completed")
