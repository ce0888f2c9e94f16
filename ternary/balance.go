package ternary

const (
	// rebalanceMinSize is the size below which a tree is never rebuilt lazily.
	rebalanceMinSize = 81
	// rebalanceSlack is the number of levels a tree may exceed its
	// optimal depth of about log₃(size) before a lazy rebuild triggers.
	rebalanceSlack = 20
)

// NeedsRebalance reports whether the depth of n is out of proportion to its
// size, i.e. size ≥ 81 and 3^(depth-20) > size. It is a pure function of
// size and depth and cheap enough to be evaluated after every edit.
func (n *Node[T]) NeedsRebalance() bool {
	if n.size < rebalanceMinSize || n.depth <= rebalanceSlack {
		return false
	}
	return triple(n.depth-rebalanceSlack) > n.size
}

// MaybeRebalance returns n, or a rebuilt copy of n if NeedsRebalance is
// true. It never modifies n.
func (n *Node[T]) MaybeRebalance() *Node[T] {
	if n == nil || !n.NeedsRebalance() {
		return n
	}
	tracer().Infof("ternary: rebuilding tree of size %d and depth %d", n.size, n.depth)
	return buildEven(n.Leaves())
}

// ForceRebuild returns a depth-optimal tree over the elements of n, in the
// same order, whether n needs rebalancing or not. n itself stays untouched,
// as it may be shared as a subtree by other trees. A leaf is returned as is.
func (n *Node[T]) ForceRebuild() *Node[T] {
	if n.kind == Leaf {
		return n
	}
	rebuilt := buildEven(n.Leaves())
	tracer().Debugf("ternary: forced rebuild, depth %d -> %d", n.depth, rebuilt.depth)
	return rebuilt
}
