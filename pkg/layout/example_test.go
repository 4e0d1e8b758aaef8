package layout_test

import (
	"fmt"

	"github.com/phylograph/phylograph/pkg/layout"
	"github.com/phylograph/phylograph/pkg/newick"
	"github.com/phylograph/phylograph/pkg/tree"
)

// ExampleBuild lays out a small parsed tree left-to-right.
func ExampleBuild() {
	parsed, err := newick.Parse("(A,B);")
	if err != nil {
		panic(err)
	}

	l, err := layout.Build(tree.FromNewick(parsed), layout.Options{
		Direction: layout.LeftRight,
		Width:     800,
		Height:    600,
	})
	if err != nil {
		panic(err)
	}

	for _, n := range l.Nodes {
		fmt.Printf("%s %s (%.0f, %.0f)\n", n.Kind, n.Label, n.X, n.Y)
	}
	for _, e := range l.Edges {
		fmt.Printf("%s -> %s\n", e.Source, e.Target)
	}

	// Output:
	// internal node_0 (50, 175)
	// leaf A (750, 50)
	// leaf B (750, 300)
	// node_0 -> node_1
	// node_0 -> node_2
}
