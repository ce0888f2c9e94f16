package ternary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func seq(from, to int) []int {
	xs := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		xs = append(xs, i)
	}
	return xs
}

func mustCheck(t *testing.T, n *Node[int]) {
	t.Helper()
	if err := n.Check(); err != nil {
		t.Fatalf("structure check failed: %v", err)
	}
}

func TestBuildSmallShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tritree")
	defer teardown()
	//
	cases := []struct {
		values []int
		inline string
	}{
		{[]int{1}, "1"},
		{[]int{1, 2}, "(1 2)"},
		{[]int{1, 2, 3}, "(1 2 3)"},
		{[]int{1, 2, 3, 4}, "(1 (2 3) 4)"},
		{[]int{1, 2, 3, 4, 5}, "((1 2) 3 (4 5))"},
		{seq(0, 10), "((0 1 2) (3 (4 5) 6) (7 8 9))"},
		{seq(1, 12), "((1 2 3) ((4 5) 6 (7 8)) (9 10 11))"},
	}
	for _, c := range cases {
		tree := FromValues(c.values...)
		mustCheck(t, tree)
		if got := tree.FormatInline(); got != c.inline {
			t.Errorf("build %v: expected %s, got %s", c.values, c.inline, got)
		}
	}
}

func TestBuildKeepsOrderAndStructure(t *testing.T) {
	for size := 1; size < 400; size++ {
		xs := seq(0, size)
		tree := FromValues(xs...)
		mustCheck(t, tree)
		if tree.Len() != size {
			t.Fatalf("expected size %d, got %d", size, tree.Len())
		}
		if diff := cmp.Diff(xs, tree.ToSlice()); diff != "" {
			t.Fatalf("build of %d elements out of order (-want +got):\n%s", size, diff)
		}
	}
}

func TestBuildShallowBoundaries(t *testing.T) {
	tree := FromValues(seq(0, 500)...)
	if tree.Kind() != Branch3 {
		t.Fatalf("expected Branch3 root, got %s", tree.Kind())
	}
	cs := tree.Children()
	if cs[0].Len() != 3 || cs[2].Len() != 3 {
		t.Errorf("expected boundary branches of 3 elements, got %d and %d", cs[0].Len(), cs[2].Len())
	}
	if cs[0].Depth() >= cs[1].Depth() || cs[2].Depth() >= cs[1].Depth() {
		t.Errorf("expected boundaries shallower than middle: %d/%d/%d",
			cs[0].Depth(), cs[1].Depth(), cs[2].Depth())
	}
	inner := cs[1].Children()
	if inner[0].Len() != 9 || inner[2].Len() != 9 {
		t.Errorf("expected second level boundaries of 9 elements, got %d and %d",
			inner[0].Len(), inner[2].Len())
	}
}

func TestBuildFromSubtrees(t *testing.T) {
	parts := []*Node[int]{
		FromValues(1, 2),
		FromValues(3),
		FromValues(4, 5, 6),
		FromValues(7, 8),
	}
	tree := Build(parts)
	mustCheck(t, tree)
	if got := tree.FormatInline(); got != "((1 2) (3 (4 5 6)) (7 8))" {
		t.Errorf("unexpected shape %s", got)
	}
}

func TestBuildPanicsOnEmptyInput(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for empty input")
		}
	}()
	Build[int](nil)
}

func TestDivideTernary(t *testing.T) {
	for size, want := range map[int][3]int{
		4:  {1, 2, 1},
		5:  {2, 1, 2},
		6:  {2, 2, 2},
		20: {7, 6, 7},
	} {
		l, m, r := divideTernary(size)
		if [3]int{l, m, r} != want {
			t.Errorf("divideTernary(%d) = %d,%d,%d, want %v", size, l, m, r, want)
		}
	}
	if triple(0) != 1 || triple(3) != 27 || triple(-2) != 1 {
		t.Errorf("unexpected powers of 3")
	}
	if triple(200) <= 0 {
		t.Errorf("expected triple to saturate, got %d", triple(200))
	}
}
