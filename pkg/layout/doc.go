// Package layout assigns 2-D pixel coordinates to display trees.
//
// The engine is a pure function of its inputs: given a tree, a direction,
// and a canvas size it produces positioned nodes and parent-child edges,
// ready for any renderer that accepts a node/edge list with explicit
// coordinates.
//
// Positioning runs in two passes. The measurement pass computes the tree
// depth and leaf count, which determine the spacing between levels and
// between sibling lanes. The placement pass walks the tree once in
// pre-order: leaves consume lanes left to right via a shared counter, an
// internal node's lane is the arithmetic mean of its children's lanes (so
// asymmetric subtrees pull the parent toward the heavier side), and the
// (level, lane) pair maps to pixels according to the direction.
//
// The engine assumes a well-formed tree. Cyclic structures are a caller bug
// and recurse unboundedly; the Newick parser can never produce them.
package layout
