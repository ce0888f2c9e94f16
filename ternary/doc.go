/*
Package ternary implements the engine behind tritree lists: a persistent
2-3-way tree with finger-tree like shallow boundaries.

Nodes are immutable once built. Every edit path-copies the nodes from the
root down to the changed position and shares all untouched siblings, so any
number of goroutines may hold versions with overlapping structure without
locking.

The package never represents an empty sequence. Operations which would
produce one return a nil *Node, and callers (usually package tritree) have to
deal with that. Indices handed to the engine are expected to be valid;
violations are programming errors and will panic.

Shape of a tree built from 0…159 (each level of the main spine may hold
3^n elements in its boundary branches):

	Main(2) ─┬─ Side: up to 3 items
	         ├─ Main(3) ─┬─ Side: up to 9 items
	         │           ├─ Main(4) …
	         │           └─ Side: up to 9 items
	         └─ Side: up to 3 items

Current status:
  - node model, bulk builder with finger factor, recursive/iterative access,
  - assoc/dissoc/insert with canonical small shapes,
  - amortized push/drop at both ends, refilling consumed boundaries from
    the main spine, bounded split-off,
  - slice/split/concat,
  - lazy depth-triggered rebuild and an explicit rebuild,
  - structural checker for tests.
*/
package ternary

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tritree'
func tracer() tracing.Trace {
	return tracing.Select("tritree")
}
