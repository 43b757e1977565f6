// Package tree implements the indexed binary tree backing ID3 decision
// trees: creation-ordered node indices, branch mutation, deep cloning,
// and row classification by root-to-leaf traversal.
package tree

import (
	"fmt"
	"strconv"

	"github.com/YuminosukeSato/goid3/pkg/errors"
)

// Node represents a single node in a binary decision tree. Internal nodes
// carry the attribute name they branch on; leaves carry the terminal
// classification label "0" or "1". Zeroes and Ones record how many
// negative/positive training examples reached the node, which is what the
// pruner uses to collapse a subtree into a majority leaf.
type Node struct {
	Index  int
	Label  string
	Zeroes int
	Ones   int
	Left   *Node // branch taken when the attribute's value is 0
	Right  *Node // branch taken when the attribute's value is 1
}

// IsLeaf returns true when the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a binary decision tree with creation-ordered node indices.
// The root always has index 0; every child added afterwards increments
// the counter, so indices are unique within a tree and never reused.
type Tree struct {
	root    *Node
	counter int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// AddRoot creates the root node and returns its index. Adding a second
// root is an InvalidStateError.
func (t *Tree) AddRoot(label string, zeroes, ones int) (int, error) {
	if t.root != nil {
		return 0, errors.NewInvalidStateError("AddRoot", "tree already has a root")
	}
	t.root = &Node{Index: t.counter, Label: label, Zeroes: zeroes, Ones: ones}
	return t.counter, nil
}

// AddLeftChild attaches a node under parentIdx on the value-0 branch and
// returns the new node's index.
func (t *Tree) AddLeftChild(parentIdx int, label string, zeroes, ones int) (int, error) {
	parent := t.Find(parentIdx)
	if parent == nil {
		return 0, errors.NewValueError("AddLeftChild", fmt.Sprintf("node with index %d not found", parentIdx))
	}
	t.counter++
	parent.Left = &Node{Index: t.counter, Label: label, Zeroes: zeroes, Ones: ones}
	return t.counter, nil
}

// AddRightChild attaches a node under parentIdx on the value-1 branch and
// returns the new node's index.
func (t *Tree) AddRightChild(parentIdx int, label string, zeroes, ones int) (int, error) {
	parent := t.Find(parentIdx)
	if parent == nil {
		return 0, errors.NewValueError("AddRightChild", fmt.Sprintf("node with index %d not found", parentIdx))
	}
	t.counter++
	parent.Right = &Node{Index: t.counter, Label: label, Zeroes: zeroes, Ones: ones}
	return t.counter, nil
}

// AddChild attaches a node under parentIdx on the branch selected by the
// attribute value: 0 for the left child, 1 for the right. Any other
// branch value is an InvalidArgumentError.
func (t *Tree) AddChild(parentIdx, branch int, label string, zeroes, ones int) (int, error) {
	switch branch {
	case 0:
		return t.AddLeftChild(parentIdx, label, zeroes, ones)
	case 1:
		return t.AddRightChild(parentIdx, label, zeroes, ones)
	default:
		return 0, errors.NewInvalidArgumentError("AddChild", "branch", branch, "must be 0 or 1")
	}
}

// SetNodeLabel overwrites the label and counts stored at the node with
// the given index.
func (t *Tree) SetNodeLabel(idx int, label string, zeroes, ones int) error {
	node := t.Find(idx)
	if node == nil {
		return errors.NewValueError("SetNodeLabel", fmt.Sprintf("node with index %d not found", idx))
	}
	node.Label = label
	node.Zeroes = zeroes
	node.Ones = ones
	return nil
}

// Find returns the node with the given index, or nil when no such node
// exists.
func (t *Tree) Find(idx int) *Node {
	return findNode(t.root, idx)
}

func findNode(node *Node, idx int) *Node {
	if node == nil {
		return nil
	}
	if node.Index == idx {
		return node
	}
	if found := findNode(node.Left, idx); found != nil {
		return found
	}
	return findNode(node.Right, idx)
}

// Size returns the total number of nodes.
func (t *Tree) Size() int {
	return countNodes(t.root)
}

func countNodes(node *Node) int {
	if node == nil {
		return 0
	}
	return 1 + countNodes(node.Left) + countNodes(node.Right)
}

// NonLeaves returns every internal node in preorder (node before its left
// subtree, left before right). The ordering is stable for a given tree
// shape, which keeps seeded pruning runs reproducible.
func (t *Tree) NonLeaves() []*Node {
	var nodes []*Node
	collectNonLeaves(t.root, &nodes)
	return nodes
}

func collectNonLeaves(node *Node, nodes *[]*Node) {
	if node == nil {
		return
	}
	if node.Left != nil || node.Right != nil {
		*nodes = append(*nodes, node)
	}
	collectNonLeaves(node.Left, nodes)
	collectNonLeaves(node.Right, nodes)
}

// NumNonLeaves returns the number of internal nodes.
func (t *Tree) NumNonLeaves() int {
	return len(t.NonLeaves())
}

// Clone returns a deep copy sharing no nodes with the receiver, so the
// copy can be mutated (pruned) without affecting the original. The index
// counter carries over, keeping indices unique across the copy's future
// growth.
func (t *Tree) Clone() *Tree {
	return &Tree{root: cloneNode(t.root), counter: t.counter}
}

func cloneNode(node *Node) *Node {
	if node == nil {
		return nil
	}
	return &Node{
		Index:  node.Index,
		Label:  node.Label,
		Zeroes: node.Zeroes,
		Ones:   node.Ones,
		Left:   cloneNode(node.Left),
		Right:  cloneNode(node.Right),
	}
}

// Classify walks the tree from the root and returns the predicted label
// for the row. At each internal node the row's value for the node's
// attribute selects the branch: 0 goes left, anything else goes right.
// The walk is iterative, so classification cost is bounded by tree depth
// with no stack growth.
func (t *Tree) Classify(row map[string]int) (int, error) {
	if t.root == nil {
		return 0, errors.NewEmptyTreeError("Classify")
	}
	node := t.root
	for !node.IsLeaf() {
		value, ok := row[node.Label]
		if !ok {
			return 0, errors.NewMissingBranchError(node.Label, -1, node.Index)
		}
		if value == 0 {
			if node.Left == nil {
				return 0, errors.NewMissingBranchError(node.Label, 0, node.Index)
			}
			node = node.Left
			continue
		}
		if node.Right == nil {
			return 0, errors.NewMissingBranchError(node.Label, value, node.Index)
		}
		node = node.Right
	}
	label, err := strconv.Atoi(node.Label)
	if err != nil {
		return 0, errors.NewInvalidLeafError(node.Index)
	}
	return label, nil
}
