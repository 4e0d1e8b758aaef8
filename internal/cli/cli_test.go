package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single", "png", []string{"png"}},
		{"multiple", "svg,dot,png", []string{"svg", "dot", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadNewickLiteral(t *testing.T) {
	got, err := readNewick("((A,B),C);")
	if err != nil {
		t.Fatalf("readNewick: %v", err)
	}
	if got != "((A,B),C);" {
		t.Errorf("readNewick = %q", got)
	}
}

func TestReadNewickFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.nwk")
	if err := os.WriteFile(path, []byte("(A:1,B:2);\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := readNewick(path)
	if err != nil {
		t.Fatalf("readNewick: %v", err)
	}
	if got != "(A:1,B:2);\n" {
		t.Errorf("readNewick = %q", got)
	}
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"explicit output with format ext", "out.svg", "ignored", "out"},
		{"explicit output without format ext", "results/out", "ignored", "results/out"},
		{"literal newick input", "", "((A,B),C);", "tree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputBase(tt.output, tt.input); got != tt.want {
				t.Errorf("outputBase(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputBaseFromInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primates.nwk")
	if err := os.WriteFile(path, []byte("(A,B);"), 0644); err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(filepath.Dir(path), "primates")
	if got := outputBase("", path); got != want {
		t.Errorf("outputBase = %q, want %q", got, want)
	}
}
