package newick

import (
	"fmt"
	"strings"
)

// Node is a single node of a parsed Newick tree. A node with no children is
// a leaf (taxon); internal nodes always have at least one child — the parser
// never produces an empty, non-nil Children slice.
type Node struct {
	// ID is a unique identifier assigned sequentially during parsing
	// (node_0, node_1, ...). It carries no semantic meaning.
	ID string

	// Label is the taxon or internal-node name. Empty when the source
	// omits it.
	Label string

	// Length is the branch length parsed from the ":" segment, or nil when
	// no length exists.
	Length *float64

	// Children holds the ordered child subtrees. Nil for leaves.
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Leaves returns the number of leaf descendants. A leaf counts as 1.
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += c.Leaves()
	}
	return total
}

// Count returns the total number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// String renders the tree with indentation indicating depth, one node per
// line. Intended for debugging and log output.
func (n *Node) String() string {
	var b strings.Builder
	var out func(t *Node, depth int)
	out = func(t *Node, depth int) {
		name := t.Label
		if name == "" {
			name = t.ID
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(name)
		if t.Length != nil {
			fmt.Fprintf(&b, " (%g)", *t.Length)
		}
		b.WriteByte('\n')
		for _, c := range t.Children {
			out(c, depth+1)
		}
	}
	out(n, 0)
	return b.String()
}
