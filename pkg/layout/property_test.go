package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/phylograph/phylograph/pkg/tree"
)

// buildShape deterministically grows a tree from a shape vector: each entry
// is the number of children (0-3) attached to the next node in breadth-first
// order. Guarantees at least one node and no cycles.
func buildShape(shape []int) *tree.Node {
	seq := 0
	next := func() *tree.Node {
		n := &tree.Node{ID: fmt.Sprintf("n%d", seq), Label: fmt.Sprintf("n%d", seq)}
		seq++
		return n
	}

	root := next()
	queue := []*tree.Node{root}
	for _, k := range shape {
		if len(queue) == 0 {
			break
		}
		parent := queue[0]
		queue = queue[1:]
		for i := 0; i < k; i++ {
			child := next()
			parent.Children = append(parent.Children, child)
			queue = append(queue, child)
		}
	}
	return root
}

// TestLayoutInvariants verifies properties that must hold for every input
// tree, not just hand-picked cases.
func TestLayoutInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	genShape := gen.SliceOf(gen.IntRange(0, 3))
	genDirection := gen.OneConstOf(LeftRight, RightLeft, TopBottom, BottomTop)

	properties.Property("one positioned node per input node, edges = nodes-1", prop.ForAll(
		func(shape []int, dir Direction) bool {
			root := buildShape(shape)
			l, err := Build(root, Options{Direction: dir})
			if err != nil {
				return false
			}
			return len(l.Nodes) == root.Count() && len(l.Edges) == len(l.Nodes)-1
		},
		genShape,
		genDirection,
	))

	properties.Property("layout is deterministic", prop.ForAll(
		func(shape []int, dir Direction) bool {
			root := buildShape(shape)
			opts := Options{Direction: dir}
			a, err := Build(root, opts)
			if err != nil {
				return false
			}
			b, err := Build(root, opts)
			if err != nil {
				return false
			}
			aj, _ := Marshal(a)
			bj, _ := Marshal(b)
			return string(aj) == string(bj)
		},
		genShape,
		genDirection,
	))

	properties.Property("LR and RL are mirror images around width/2", prop.ForAll(
		func(shape []int) bool {
			root := buildShape(shape)
			lr, err := Build(root, Options{Direction: LeftRight})
			if err != nil {
				return false
			}
			rl, err := Build(root, Options{Direction: RightLeft})
			if err != nil {
				return false
			}
			for i := range lr.Nodes {
				if math.Abs(lr.Nodes[i].X+rl.Nodes[i].X-DefaultWidth) > 1e-9 {
					return false
				}
			}
			return true
		},
		genShape,
	))

	properties.Property("all coordinates stay on the canvas", prop.ForAll(
		func(shape []int, dir Direction) bool {
			root := buildShape(shape)
			l, err := Build(root, Options{Direction: dir})
			if err != nil {
				return false
			}
			for _, n := range l.Nodes {
				if n.X < 0 || n.X > DefaultWidth || n.Y < 0 || n.Y > DefaultHeight {
					return false
				}
			}
			return true
		},
		genShape,
		genDirection,
	))

	properties.TestingRun(t)
}
