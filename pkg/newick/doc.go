// Package newick parses Newick-formatted phylogenetic trees.
//
// The Newick format is the standard textual encoding for rooted, leaf-labeled
// trees with optional branch lengths, e.g.:
//
//	((A:0.1,B:0.2):0.05,C:0.3);
//
// Parse converts such a string into a *Node tree. Each node carries a
// sequentially assigned identifier (node_0, node_1, ...) used purely for
// structural identity; labels and branch lengths are optional and left unset
// when the source omits them.
//
// The parser handles arbitrary branching factors and unbalanced trees. It is
// a deliberate simplification of the full grammar: embedded whitespace inside
// labels is preserved as-is, quoting and comments are not supported, and
// bootstrap annotations are out of scope.
package newick
