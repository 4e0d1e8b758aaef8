package layout

import (
	"github.com/phylograph/phylograph/pkg/errors"
	"github.com/phylograph/phylograph/pkg/tree"
)

// Direction selects the orientation of the layout: which axis levels grow
// along, and in which sense.
type Direction string

// Layout directions. The first letter is the side the root sits on.
const (
	LeftRight Direction = "LR"
	RightLeft Direction = "RL"
	TopBottom Direction = "TB"
	BottomTop Direction = "BT"
)

// Horizontal reports whether levels grow along the x axis.
func (d Direction) Horizontal() bool { return d == LeftRight || d == RightLeft }

// ParseDirection converts a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case LeftRight, RightLeft, TopBottom, BottomTop:
		return Direction(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidDirection,
		"invalid direction: %q (must be one of: LR, RL, TB, BT)", s)
}

// Node kinds, decided solely by the presence of children. Renderers use the
// kind to pick node size and color.
const (
	KindLeaf     = "leaf"
	KindInternal = "internal"
)

// Default canvas dimensions in pixels.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Margin is the padding kept between the canvas border and the outermost
// node centers, on both axes.
const Margin = 50.0

// Options is the explicit layout configuration record. Unknown directions
// and non-positive extents are rejected rather than passed through.
type Options struct {
	Direction Direction `json:"direction,omitempty"`
	Width     float64   `json:"width,omitempty"`
	Height    float64   `json:"height,omitempty"`
}

// SetDefaults fills zero values with the documented defaults
// (LR, 800 x 600).
func (o *Options) SetDefaults() {
	if o.Direction == "" {
		o.Direction = LeftRight
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
}

// Validate sets defaults and checks the remaining fields.
func (o *Options) Validate() error {
	o.SetDefaults()
	if _, err := ParseDirection(string(o.Direction)); err != nil {
		return err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"canvas must have positive extents, got %gx%g", o.Width, o.Height)
	}
	return nil
}

// Node is a positioned node, produced exactly once per input node.
// Coordinates are pixels with a top-left origin.
type Node struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Edge connects a non-root node to its immediate parent. The root has no
// incoming edge.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Layout is the positioned output of Build: one node per input node, one
// edge per non-root node, plus the configuration it was computed with.
type Layout struct {
	Direction Direction `json:"direction"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Nodes     []Node    `json:"nodes"`
	Edges     []Edge    `json:"edges"`
}

// Build computes a layout for the given display tree. It is deterministic:
// identical arguments produce identical output.
//
// A single-node tree has no second level to spread across, so the lone node
// is centered on the canvas instead of evaluating the undefined spacing
// formula.
func Build(root *tree.Node, opts Options) (Layout, error) {
	if root == nil {
		return Layout{}, errors.New(errors.ErrCodeInvalidTree, "nil tree")
	}
	if err := opts.Validate(); err != nil {
		return Layout{}, err
	}

	out := Layout{
		Direction: opts.Direction,
		Width:     opts.Width,
		Height:    opts.Height,
	}

	depth := root.Depth()
	if depth == 1 {
		out.Nodes = []Node{{
			ID:    root.ID,
			Label: root.Label,
			Kind:  KindLeaf,
			X:     opts.Width / 2,
			Y:     opts.Height / 2,
		}}
		return out, nil
	}

	primary, secondary := opts.Width, opts.Height
	if !opts.Direction.Horizontal() {
		primary, secondary = secondary, primary
	}

	p := &placer{
		direction:    opts.Direction,
		width:        opts.Width,
		height:       opts.Height,
		levelSpacing: (primary - 2*Margin) / float64(depth-1),
		nodeSpacing:  (secondary - 2*Margin) / float64(root.Leaves()),
	}
	p.place(root, 0, "")

	out.Nodes = p.nodes
	out.Edges = p.edges
	return out, nil
}

// placer holds the single placement pass's state: the output lists and the
// shared leaf-lane counter. Each Build call owns its own placer, so nested
// and concurrent layouts cannot interfere.
type placer struct {
	direction    Direction
	width        float64
	height       float64
	levelSpacing float64
	nodeSpacing  float64

	nextLane int
	nodes    []Node
	edges    []Edge
}

// place appends n to the output in pre-order and returns its lane. Leaves
// take the next free lane; an internal node's lane is the arithmetic mean of
// its children's lanes, patched in after the children return.
func (p *placer) place(n *tree.Node, level int, parentID string) float64 {
	idx := len(p.nodes)
	kind := KindInternal
	if n.IsLeaf() {
		kind = KindLeaf
	}
	p.nodes = append(p.nodes, Node{ID: n.ID, Label: n.Label, Kind: kind})
	if parentID != "" {
		p.edges = append(p.edges, Edge{Source: parentID, Target: n.ID})
	}

	var lane float64
	if n.IsLeaf() {
		lane = float64(p.nextLane)
		p.nextLane++
	} else {
		sum := 0.0
		for _, c := range n.Children {
			sum += p.place(c, level+1, n.ID)
		}
		lane = sum / float64(len(n.Children))
	}

	p.nodes[idx].X, p.nodes[idx].Y = p.coords(level, lane)
	return lane
}

// coords maps a (level, lane) pair to pixel coordinates for the configured
// direction.
func (p *placer) coords(level int, lane float64) (x, y float64) {
	along := float64(level)*p.levelSpacing + Margin
	across := lane*p.nodeSpacing + Margin

	switch p.direction {
	case LeftRight:
		return along, across
	case RightLeft:
		return p.width - along, across
	case TopBottom:
		return across, along
	default: // BottomTop
		return across, p.height - along
	}
}
