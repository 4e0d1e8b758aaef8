// Package tree provides the display tree consumed by the layout engine.
//
// A display tree keeps only what rendering needs: a stable id, a label, and
// ordered children. FromNewick converts parser output into this form,
// stripping parser bookkeeping so the layout engine stays decoupled from
// parser internals.
package tree

import (
	"github.com/phylograph/phylograph/pkg/newick"
)

// Node is a single node of a display tree.
type Node struct {
	// ID is a stable identity for the node within one layout call.
	ID string `json:"id"`

	// Label is the display label, defaulted to ID when the source had none.
	Label string `json:"label"`

	// Children holds the ordered child subtrees. Omitted for leaves.
	Children []*Node `json:"children,omitempty"`
}

// FromNewick converts a parsed Newick tree into a display tree. The
// conversion is pure and idempotent: labels missing in the source are
// substituted with the node id, and the children field is omitted for
// leaves. A nil input yields a nil output, which callers should replace with
// Sample().
func FromNewick(n *newick.Node) *Node {
	if n == nil {
		return nil
	}

	out := &Node{ID: n.ID, Label: n.Label}
	if out.Label == "" {
		out.Label = n.ID
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, FromNewick(c))
	}
	return out
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Depth returns the length of the longest root-to-leaf path. A lone leaf
// has depth 1.
func (n *Node) Depth() int {
	max := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Leaves returns the number of leaf descendants. A leaf alone counts as 1;
// an internal node's count is the sum of its children's counts.
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

// Walk visits every node in pre-order, calling fn with the node and its
// depth (root = 0). Traversal stops early if fn returns false.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) bool {
	if !fn(n, depth) {
		return false
	}
	for _, c := range n.Children {
		if !walk(c, depth+1, fn) {
			return false
		}
	}
	return true
}
