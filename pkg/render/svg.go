package render

import (
	"bytes"
	"fmt"

	"github.com/phylograph/phylograph/pkg/layout"
)

// Node visuals by kind. Leaves are the data; internal nodes are structure
// and stay visually quiet.
const (
	leafRadius     = 8.0
	internalRadius = 5.0
	leafFill       = "#2f855a"
	internalFill   = "#a0aec0"
	edgeStroke     = "#cbd5e0"
	labelOffset    = 12.0
	fontSize       = 12
)

// SVGOption customizes SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	showLabels bool
	background string
}

// WithLabels draws node labels next to each node.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.showLabels = true } }

// WithBackground fills the canvas with the given color instead of leaving
// it transparent.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG draws a layout as a standalone SVG document. Edges are drawn
// first so nodes sit on top.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{showLabels: true}
	for _, opt := range opts {
		opt(&r)
	}

	byID := make(map[string]layout.Node, len(l.Nodes))
	for _, n := range l.Nodes {
		byID[n.ID] = n
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill=%q/>`+"\n", r.background)
	}

	for _, e := range l.Edges {
		src, ok := byID[e.Source]
		if !ok {
			continue
		}
		dst, ok := byID[e.Target]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke=%q stroke-width="1.5"/>`+"\n",
			src.X, src.Y, dst.X, dst.Y, edgeStroke)
	}

	for _, n := range l.Nodes {
		radius, fill := internalRadius, internalFill
		if n.Kind == layout.KindLeaf {
			radius, fill = leafRadius, leafFill
		}
		fmt.Fprintf(&buf, `  <circle id="node-%s" cx="%.2f" cy="%.2f" r="%.1f" fill=%q/>`+"\n",
			n.ID, n.X, n.Y, radius, fill)

		if r.showLabels && n.Kind == layout.KindLeaf {
			x, anchor := labelAnchor(n, l.Direction)
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-size="%d" text-anchor=%q>%s</text>`+"\n",
				x, n.Y+4, fontSize, anchor, escapeText(n.Label))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// labelAnchor places leaf labels on the outside of the tree so they don't
// collide with edges: after the node for LR, before it for RL, and centered
// for vertical layouts.
func labelAnchor(n layout.Node, d layout.Direction) (x float64, anchor string) {
	switch d {
	case layout.RightLeft:
		return n.X - labelOffset, "end"
	case layout.TopBottom, layout.BottomTop:
		return n.X, "middle"
	default:
		return n.X + labelOffset, "start"
	}
}

// escapeText escapes the XML special characters that can appear in taxon
// labels.
func escapeText(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
