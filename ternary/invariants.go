package ternary

import "fmt"

// Check validates the structural invariants of the tree: sizes and depths
// of branches match their children, no child slot is empty, and leaves hold
// exactly one element.
//
// Check is a full traversal and is meant for tests and debugging. Edit
// operations never call it.
func (n *Node[T]) Check() error {
	if n == nil {
		return fmt.Errorf("%w: nil tree", ErrMalformed)
	}
	_, _, err := n.checkNode("root")
	return err
}

func (n *Node[T]) checkNode(path string) (size int, depth int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node at %s", ErrMalformed, path)
	}
	switch n.kind {
	case Leaf:
		if n.size != 1 || n.depth != 0 {
			return 0, 0, fmt.Errorf("%w: leaf at %s has size=%d depth=%d",
				ErrMalformed, path, n.size, n.depth)
		}
		if n.left != nil || n.middle != nil || n.right != nil {
			return 0, 0, fmt.Errorf("%w: leaf at %s has children", ErrMalformed, path)
		}
		return 1, 0, nil
	case Branch2:
		if n.right != nil {
			return 0, 0, fmt.Errorf("%w: Branch2 at %s has a right child", ErrMalformed, path)
		}
	case Branch3:
	default:
		return 0, 0, fmt.Errorf("%w: unknown node kind %d at %s", ErrMalformed, n.kind, path)
	}
	names := [...]string{"left", "middle", "right"}
	for i, c := range n.Children() {
		cSize, cDepth, cErr := c.checkNode(path + "." + names[i])
		if cErr != nil {
			return 0, 0, cErr
		}
		size += cSize
		depth = max(depth, cDepth+1)
	}
	if size != n.size {
		return 0, 0, fmt.Errorf("%w: bad size at %s (%d != %d) in %s",
			ErrMalformed, path, n.size, size, n.FormatInline())
	}
	if depth != n.depth {
		return 0, 0, fmt.Errorf("%w: bad depth at %s (%d != %d)",
			ErrMalformed, path, n.depth, depth)
	}
	return size, depth, nil
}
