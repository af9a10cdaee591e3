package cli

import (
	"testing"

	"github.com/matzehuels/treeview/pkg/tree"
)

// shape renders a tree as value(left,right), with "-" for absent children.
func shape(t *tree.Tree[string]) string {
	if t == nil {
		return "-"
	}
	if t.IsLeaf() {
		return t.Value()
	}
	return t.Value() + "(" + shape(t.Left()) + "," + shape(t.Right()) + ")"
}

func TestBuildDemo(t *testing.T) {
	tests := []struct {
		shape string
		depth int
		want  string
	}{
		{"complete", 1, "1"},
		{"complete", 3, "1(2(3,4),5(6,7))"},
		{"left", 3, "1(2(3,-),-)"},
		{"right", 3, "1(-,2(-,3))"},
		{"zigzag", 4, "1(2(-,3(4,-)),-)"},
	}
	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			root, err := buildDemo(tt.shape, tt.depth, defaultSeed)
			if err != nil {
				t.Fatalf("buildDemo: %v", err)
			}
			if got := shape(root); got != tt.want {
				t.Errorf("buildDemo(%s, %d) = %s, want %s", tt.shape, tt.depth, got, tt.want)
			}
			if root.MaxLeft() != tt.depth {
				t.Errorf("MaxLeft() = %d, want %d", root.MaxLeft(), tt.depth)
			}
		})
	}
}

func TestBuildDemoRandom(t *testing.T) {
	a, err := buildDemo("random", 6, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := buildDemo("random", 6, 7)
	if shape(a) != shape(b) {
		t.Error("same seed produced different trees")
	}
	if a.MaxLeft() > 6 || a.MaxLeft() < 2 {
		t.Errorf("MaxLeft() = %d, want 2..6", a.MaxLeft())
	}
	if a.Left() == nil || a.Right() == nil {
		t.Error("random root should have both children")
	}
}

func TestBuildDemoErrors(t *testing.T) {
	if _, err := buildDemo("complete", 0, 1); err == nil {
		t.Error("depth 0 should fail")
	}
	if _, err := buildDemo("complete", maxDemoDepth+1, 1); err == nil {
		t.Error("depth above the limit should fail")
	}
	if _, err := buildDemo("star", 3, 1); err == nil {
		t.Error("unknown shape should fail")
	}
}
