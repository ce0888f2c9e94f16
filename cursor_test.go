package tritree

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCursorNextPrevRoundtrip(t *testing.T) {
	l := Of("a", "b", "c", "d", "e", "f", "g")
	cc := l.Cursor()
	var got []string
	for {
		x, ok := cc.Next()
		if !ok {
			break
		}
		got = append(got, x)
	}
	if diff := cmp.Diff(l.ToSlice(), got); diff != "" {
		t.Fatalf("forward mismatch (-want +got):\n%s", diff)
	}
	if cc.Pos() != l.Len() {
		t.Errorf("expected cursor at end, is at %d", cc.Pos())
	}
	var back []string
	for {
		x, ok := cc.Prev()
		if !ok {
			break
		}
		back = append(back, x)
	}
	want := l.ToSlice()
	slices.Reverse(want)
	if diff := cmp.Diff(want, back); diff != "" {
		t.Fatalf("backward mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorSeek(t *testing.T) {
	cc := FromSlice(seq(10)).Cursor()
	if err := cc.Seek(4); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	if x, ok := cc.Next(); !ok || x != 4 {
		t.Errorf("expected 4 after seek, got %d", x)
	}
	if x, ok := cc.Prev(); !ok || x != 4 {
		t.Errorf("expected 4 when moving back, got %d", x)
	}
	if err := cc.Seek(10); err != nil {
		t.Errorf("seeking to the end should be valid: %v", err)
	}
	if _, ok := cc.Next(); ok {
		t.Errorf("expected no item at the end")
	}
	if err := cc.Seek(11); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected out of bounds error, got %v", err)
	}
	var nilCursor *Cursor[int]
	if err := nilCursor.Seek(0); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected illegal arguments error, got %v", err)
	}
	if _, ok := (List[int]{}).Cursor().Next(); ok {
		t.Errorf("cursor on empty list yields items")
	}
}
