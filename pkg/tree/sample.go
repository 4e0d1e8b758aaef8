package tree

// Sample returns the built-in fallback tree shown before the first
// successful parse. It has exactly 6 leaves, which layout tests use as a
// golden baseline.
func Sample() *Node {
	return &Node{
		ID:    "root",
		Label: "Root",
		Children: []*Node{
			{
				ID:    "clade-a",
				Label: "Clade A",
				Children: []*Node{
					{ID: "taxon-1", Label: "Taxon 1"},
					{ID: "taxon-2", Label: "Taxon 2"},
					{
						ID:    "clade-a1",
						Label: "Clade A1",
						Children: []*Node{
							{ID: "taxon-3", Label: "Taxon 3"},
							{ID: "taxon-4", Label: "Taxon 4"},
						},
					},
				},
			},
			{
				ID:    "clade-b",
				Label: "Clade B",
				Children: []*Node{
					{ID: "taxon-5", Label: "Taxon 5"},
					{ID: "taxon-6", Label: "Taxon 6"},
				},
			},
		},
	}
}
