package ternary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplitOffShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tritree")
	defer teardown()
	//
	data := FromValues(1, 2, 3, 4, 5)
	cases := []struct {
		bound       int
		piece, rest string
	}{
		{1, "1", "(2 3 (4 5))"},
		{2, "(1 2)", "(3 (4 5))"},
		{3, "(1 2)", "(3 (4 5))"},
		{4, "(1 2)", "(3 (4 5))"},
	}
	for _, c := range cases {
		piece, rest := data.SplitOffLeft(c.bound)
		if piece.FormatInline() != c.piece || rest.FormatInline() != c.rest {
			t.Errorf("split off left %d: expected %s | %s, got %s | %s",
				c.bound, c.piece, c.rest, piece.FormatInline(), rest.FormatInline())
		}
	}
	rest, piece := data.SplitOffRight(2)
	if rest.FormatInline() != "((1 2) 3)" || piece.FormatInline() != "(4 5)" {
		t.Errorf("split off right 2: got %s | %s", rest.FormatInline(), piece.FormatInline())
	}
	piece, rest = data.SplitOffLeft(5)
	if piece != data || rest != nil {
		t.Errorf("expected the whole tree as piece if it fits into the bound")
	}
}

func TestSplitOffBounds(t *testing.T) {
	trees := []*Node[int]{FromValues(seq(0, 100)...)}
	pushed := NewLeaf(0)
	for i := 1; i < 100; i++ {
		pushed = pushed.PushRight(i)
	}
	trees = append(trees, pushed)
	for _, tree := range trees {
		for _, bound := range []int{1, 2, 3, 5, 9, 27, 40} {
			var got []int
			for rest := tree; rest != nil; {
				var piece *Node[int]
				piece, rest = rest.SplitOffLeft(bound)
				if piece.Len() < 1 || piece.Len() > bound {
					t.Fatalf("bound %d: piece of %d elements", bound, piece.Len())
				}
				mustCheck(t, piece)
				if rest != nil {
					mustCheck(t, rest)
				}
				got = append(got, piece.ToSlice()...)
			}
			if diff := cmp.Diff(seq(0, 100), got); diff != "" {
				t.Fatalf("pieces of bound %d out of order (-want +got):\n%s", bound, diff)
			}
			var rev []int
			for rest := tree; rest != nil; {
				var piece *Node[int]
				rest, piece = rest.SplitOffRight(bound)
				if piece.Len() < 1 || piece.Len() > bound {
					t.Fatalf("bound %d: trailing piece of %d elements", bound, piece.Len())
				}
				rev = append(piece.ToSlice(), rev...)
			}
			if diff := cmp.Diff(seq(0, 100), rev); diff != "" {
				t.Fatalf("trailing pieces of bound %d out of order (-want +got):\n%s", bound, diff)
			}
		}
	}
}

func TestSplitOffPanicsForZeroBound(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for bound 0")
		}
	}()
	FromValues(1, 2).SplitOffLeft(0)
}

func TestDropShallow(t *testing.T) {
	data := FromValues(1, 2, 3, 4, 5)
	if got := data.DropLeftShallow().FormatInline(); got != "(2 3 (4 5))" {
		t.Errorf("drop left shallow: got %s", got)
	}
	if got := data.DropRightShallow().FormatInline(); got != "((1 2) 3 4)" {
		t.Errorf("drop right shallow: got %s", got)
	}
	// a consumed boundary is refilled from the middle without lifting its children
	data4 := FromValues(1, 2, 3, 4)
	if got := data4.DropLeftShallow().FormatInline(); got != "((2 3) 4)" {
		t.Errorf("drop left shallow of (1 (2 3) 4): got %s", got)
	}
	if got := data4.DropRightShallow().FormatInline(); got != "(1 (2 3))" {
		t.Errorf("drop right shallow of (1 (2 3) 4): got %s", got)
	}
	ref := seq(0, 60)
	tree := FromValues(ref...)
	for len(ref) > 1 {
		tree = tree.DropRightShallow()
		ref = ref[:len(ref)-1]
		mustCheck(t, tree)
		if diff := cmp.Diff(ref, tree.ToSlice()); diff != "" {
			t.Fatalf("drop right shallow mismatch (-want +got):\n%s", diff)
		}
	}
	if tree.DropLeftShallow() != nil {
		t.Errorf("expected nil when dropping from a leaf")
	}
}

func TestSplitEveryIndex(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5, 10, 41} {
		ref := seq(0, size)
		tree := FromValues(ref...)
		for idx := 1; idx < size; idx++ {
			a, b := tree.Split(idx)
			mustCheck(t, a)
			mustCheck(t, b)
			if diff := cmp.Diff(ref[:idx], a.ToSlice()); diff != "" {
				t.Fatalf("split(%d) of %d, left part (-want +got):\n%s", idx, size, diff)
			}
			if diff := cmp.Diff(ref[idx:], b.ToSlice()); diff != "" {
				t.Fatalf("split(%d) of %d, right part (-want +got):\n%s", idx, size, diff)
			}
		}
	}
	a, b := FromValues(1, 2, 3, 4, 5).Split(3)
	if a.FormatInline() != "((1 2) 3)" || b.FormatInline() != "(4 5)" {
		t.Errorf("unexpected split shapes %s | %s", a.FormatInline(), b.FormatInline())
	}
}

func TestSplitPanicsAtBorders(t *testing.T) {
	for _, idx := range []int{0, 3} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic for Split(%d)", idx)
				}
			}()
			FromValues(1, 2, 3).Split(idx)
		}()
	}
}

func TestSliceAllRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tritree")
	defer teardown()
	//
	ref := seq(0, 40)
	tree := FromValues(ref...)
	for i := 0; i < len(ref); i++ {
		for j := i + 1; j <= len(ref); j++ {
			s := tree.Slice(i, j)
			mustCheck(t, s)
			if diff := cmp.Diff(ref[i:j], s.ToSlice()); diff != "" {
				t.Fatalf("slice(%d, %d) mismatch (-want +got):\n%s", i, j, diff)
			}
		}
	}
	if tree.Slice(0, 40) != tree {
		t.Errorf("expected the full slice to be the tree itself")
	}
}

func TestTakeLeftAndRight(t *testing.T) {
	data := FromValues(1, 2, 3, 4, 5)
	if got := data.TakeLeft(2).FormatInline(); got != "(1 2)" {
		t.Errorf("take left 2: got %s", got)
	}
	if got := data.TakeLeft(4).FormatInline(); got != "((1 2) 3 4)" {
		t.Errorf("take left 4: got %s", got)
	}
	if got := data.TakeRight(1).FormatInline(); got != "(2 3 (4 5))" {
		t.Errorf("take right 1: got %s", got)
	}
	if got := data.TakeRight(3).FormatInline(); got != "(4 5)" {
		t.Errorf("take right 3: got %s", got)
	}
}

func TestSlicePanicsForEmptyRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for empty range")
		}
	}()
	FromValues(1, 2, 3).Slice(2, 2)
}
