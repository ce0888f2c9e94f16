package tritree

import (
	"fmt"
	"io"

	"github.com/npillmayer/tritree/ternary"
	"github.com/xlab/treeprint"
)

// Dump writes the tree of l as an indented hierarchy, for debugging.
// Branches show their kind, size and depth, leaves their item.
func (l List[T]) Dump(w io.Writer) error {
	var tree treeprint.Tree
	if l.root == nil {
		tree = treeprint.NewWithRoot("Empty")
	} else {
		tree = treeprint.NewWithRoot(describe(l.root))
		dumpChildren(tree, l.root)
	}
	_, err := w.Write(tree.Bytes())
	if err != nil {
		tracer().Errorf("list dump: %v", err)
	}
	return err
}

func dumpChildren[T any](branch treeprint.Tree, node *ternary.Node[T]) {
	for _, c := range node.Children() {
		if c.IsLeaf() {
			branch.AddNode(fmt.Sprintf("%v", c.Value()))
			continue
		}
		dumpChildren(branch.AddBranch(describe(c)), c)
	}
}

func describe[T any](node *ternary.Node[T]) string {
	if node.IsLeaf() {
		return fmt.Sprintf("%v", node.Value())
	}
	return fmt.Sprintf("%s size=%d depth=%d", node.Kind(), node.Len(), node.Depth())
}
