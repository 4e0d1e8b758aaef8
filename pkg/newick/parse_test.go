package newick

import (
	"testing"

	"github.com/phylograph/phylograph/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, n *Node)
	}{
		{
			name:  "SingleLeaf",
			input: "A;",
			check: func(t *testing.T, n *Node) {
				if n.Label != "A" {
					t.Errorf("Label = %q, want A", n.Label)
				}
				if !n.IsLeaf() {
					t.Error("expected leaf")
				}
				if n.Length != nil {
					t.Errorf("Length = %v, want nil", *n.Length)
				}
			},
		},
		{
			name:  "LeafWithLength",
			input: "A:0.5",
			check: func(t *testing.T, n *Node) {
				if n.Length == nil || *n.Length != 0.5 {
					t.Errorf("Length = %v, want 0.5", n.Length)
				}
			},
		},
		{
			name:  "NestedWithLengths",
			input: "((A:0.1,B:0.2):0.05,C:0.3);",
			check: func(t *testing.T, n *Node) {
				if len(n.Children) != 2 {
					t.Fatalf("root children = %d, want 2", len(n.Children))
				}
				inner, leafC := n.Children[0], n.Children[1]

				if len(inner.Children) != 2 {
					t.Fatalf("inner children = %d, want 2", len(inner.Children))
				}
				if inner.Label != "" {
					t.Errorf("inner Label = %q, want empty", inner.Label)
				}
				if inner.Length == nil || *inner.Length != 0.05 {
					t.Errorf("inner Length = %v, want 0.05", inner.Length)
				}

				a, b := inner.Children[0], inner.Children[1]
				if a.Label != "A" || a.Length == nil || *a.Length != 0.1 {
					t.Errorf("A = {%q %v}, want {A 0.1}", a.Label, a.Length)
				}
				if b.Label != "B" || b.Length == nil || *b.Length != 0.2 {
					t.Errorf("B = {%q %v}, want {B 0.2}", b.Label, b.Length)
				}

				if leafC.Label != "C" || leafC.Length == nil || *leafC.Length != 0.3 {
					t.Errorf("C = {%q %v}, want {C 0.3}", leafC.Label, leafC.Length)
				}
			},
		},
		{
			name:  "Multifurcation",
			input: "(A,B,C,D);",
			check: func(t *testing.T, n *Node) {
				if len(n.Children) != 4 {
					t.Errorf("children = %d, want 4", len(n.Children))
				}
				if n.Leaves() != 4 {
					t.Errorf("Leaves() = %d, want 4", n.Leaves())
				}
			},
		},
		{
			name:  "NamedInternalNode",
			input: "(A,B)root;",
			check: func(t *testing.T, n *Node) {
				if n.Label != "root" {
					t.Errorf("Label = %q, want root", n.Label)
				}
			},
		},
		{
			name:  "UnnamedInternalNodeLeavesLabelUnset",
			input: "(A,B);",
			check: func(t *testing.T, n *Node) {
				if n.Label != "" {
					t.Errorf("Label = %q, want empty", n.Label)
				}
			},
		},
		{
			name:  "WhitespaceInLabelPreserved",
			input: "(Homo sapiens,B);",
			check: func(t *testing.T, n *Node) {
				if n.Children[0].Label != "Homo sapiens" {
					t.Errorf("Label = %q, want %q", n.Children[0].Label, "Homo sapiens")
				}
			},
		},
		{
			name:  "NonNumericLengthYieldsNoLength",
			input: "A:abc;",
			check: func(t *testing.T, n *Node) {
				if n.Label != "A" {
					t.Errorf("Label = %q, want A", n.Label)
				}
				if n.Length != nil {
					t.Errorf("Length = %v, want nil", *n.Length)
				}
			},
		},
		{
			name:  "EmptyLengthYieldsNoLength",
			input: "A:;",
			check: func(t *testing.T, n *Node) {
				if n.Length != nil {
					t.Errorf("Length = %v, want nil", *n.Length)
				}
			},
		},
		{
			name:  "UnbalancedTree",
			input: "(((A,B),C),D);",
			check: func(t *testing.T, n *Node) {
				if n.Leaves() != 4 {
					t.Errorf("Leaves() = %d, want 4", n.Leaves())
				}
				if n.Count() != 7 {
					t.Errorf("Count() = %d, want 7", n.Count())
				}
			},
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "OnlyWhitespace",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "OnlyTerminal",
			input:   ";",
			wantErr: true,
		},
		{
			name:    "TruncatedDescendantList",
			input:   "((A,B",
			wantErr: true,
		},
		{
			name:    "DanglingOpen",
			input:   "(",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, errors.ErrCodeInvalidNewick) {
					t.Errorf("code = %v, want INVALID_NEWICK", errors.GetCode(err))
				}
				if n != nil {
					t.Error("expected nil tree on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if tt.check != nil {
				tt.check(t, n)
			}
		})
	}
}

func TestParseAssignsSequentialIDs(t *testing.T) {
	n, err := Parse("((A,B),C);")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var ids []string
	var walk func(*Node)
	walk = func(n *Node) {
		ids = append(ids, n.ID)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)

	want := []string{"node_0", "node_1", "node_2", "node_3", "node_4"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestParseLeafCountMatchesTokens(t *testing.T) {
	// For valid inputs without internal labels, the leaf count equals the
	// number of comma-separated terminal entries.
	tests := []struct {
		input string
		want  int
	}{
		{"A;", 1},
		{"(A,B);", 2},
		{"(A,(B,C));", 3},
		{"((A,B),(C,D),E);", 5},
		{"(((A:1,B:2):3,C:4):5,(D:6,E:7):8);", 5},
	}
	for _, tt := range tests {
		n, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}
		if got := n.Leaves(); got != tt.want {
			t.Errorf("Leaves(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseIsolatedState(t *testing.T) {
	// Two parses must not share id counters or cursors.
	a, err := Parse("(A,B);")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("(C,D);")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != "node_0" || b.ID != "node_0" {
		t.Errorf("root ids = %q, %q, want node_0 for both", a.ID, b.ID)
	}
}
