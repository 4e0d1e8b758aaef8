// Package render turns computed layouts into output artifacts.
//
// Three formats are supported:
//
//   - SVG: drawn directly from the layout's pixel coordinates, with edges as
//     lines and nodes as circles sized and colored by kind.
//   - DOT: a structural Graphviz export with rankdir mapped from the layout
//     direction, for downstream tooling.
//   - PNG: the DOT graph rasterized through Graphviz.
//
// The JSON format is the layout's own serialization (see pkg/layout) and
// needs no renderer.
package render
