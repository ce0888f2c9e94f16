package ternary

// Concat joins trees in order. Nil trees are skipped; if nothing remains,
// Concat returns nil. Up to three trees become the children of a single new
// branch, more trees are handed to the bulk builder as subtrees. As repeated
// concatenation of unbalanced trees may let the depth grow out of
// proportion, the result is checked by MaybeRebalance.
func Concat[T any](trees ...*Node[T]) *Node[T] {
	xs := make([]*Node[T], 0, len(trees))
	for _, t := range trees {
		if t != nil {
			xs = append(xs, t)
		}
	}
	var joined *Node[T]
	switch len(xs) {
	case 0:
		return nil
	case 1:
		joined = xs[0]
	case 2:
		joined = branch2(xs[0], xs[1])
	case 3:
		joined = branch3(xs[0], xs[1], xs[2])
	default:
		joined = Build(xs)
	}
	return joined.MaybeRebalance()
}
