package tree

import (
	"fmt"
	"io"
	"strings"
)

// EmptyTreeMarker is printed for a tree without a root, distinct from any
// node label.
const EmptyTreeMarker = "<empty tree>"

// String renders the tree in the classic ID3 indentation style: each
// internal node prints its value-0 branch before its value-1 branch, leaf
// branches inline their label after the colon, and nesting adds one "| "
// marker per depth level. A leaf-only tree is just its label.
func (t *Tree) String() string {
	var b strings.Builder
	if t.root == nil {
		b.WriteString(EmptyTreeMarker + "\n")
		return b.String()
	}
	if t.root.IsLeaf() {
		b.WriteString(t.root.Label + "\n")
		return b.String()
	}
	writeSubtree(&b, t.root, 0)
	return b.String()
}

// WriteIndented writes the String rendering to w.
func (t *Tree) WriteIndented(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

func writeSubtree(b *strings.Builder, node *Node, depth int) {
	indent := strings.Repeat("| ", depth)
	if node.Left != nil {
		if node.Left.IsLeaf() {
			fmt.Fprintf(b, "%s%s = 0 : %s\n", indent, node.Label, node.Left.Label)
		} else {
			fmt.Fprintf(b, "%s%s = 0 :\n", indent, node.Label)
			writeSubtree(b, node.Left, depth+1)
		}
	}
	if node.Right != nil {
		if node.Right.IsLeaf() {
			fmt.Fprintf(b, "%s%s = 1 : %s\n", indent, node.Label, node.Right.Label)
		} else {
			fmt.Fprintf(b, "%s%s = 1 :\n", indent, node.Label)
			writeSubtree(b, node.Right, depth+1)
		}
	}
}
