package tritree

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/tritree/ternary"
)

type nodeids[T any] struct {
	idTable map[*ternary.Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*ternary.Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *ternary.Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *ternary.Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ListToDot outputs the internal structure of a List in Graphviz DOT format
// (for debugging purposes). Branches are labelled with their size, leaves
// with their item.
func ListToDot[T any](l List[T], w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	var edges []string
	if l.root != nil {
		l.root.EachNode(func(node *ternary.Node[T], level int) bool {
			ID := ids.alloc(node)
			styles := nodeDotStyles(node.IsLeaf(), level)
			if node.IsLeaf() {
				label := fmt.Sprintf("%v", node.Value())
				fmt.Fprintf(bw, "\"%d\" [label=%q %s];\n", ID, label, styles)
				return true
			}
			for _, child := range node.Children() {
				edges = append(edges, fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child)))
			}
			fmt.Fprintf(bw, "\"%d\" [label=%d %s];\n", ID, node.Len(), styles)
			return true
		})
	}
	for _, edge := range edges {
		bw.WriteString(edge)
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("list DOT: %s", err.Error())
		return err
	}
	return nil
}

func nodeDotStyles(isleaf bool, level int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(level, len(hexcolors)-1)])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
