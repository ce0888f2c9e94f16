package ternary

import "testing"

func BenchmarkPushRight(b *testing.B) {
	for range b.N {
		tree := NewLeaf(0)
		for i := 1; i < 10000; i++ {
			tree = tree.PushRight(i)
		}
	}
}

func BenchmarkAppend(b *testing.B) {
	for range b.N {
		tree := NewLeaf(0)
		for i := 1; i < 10000; i++ {
			tree = tree.Append(i)
		}
	}
}

func BenchmarkDropLeft(b *testing.B) {
	base := FromValues(seq(0, 10000)...)
	b.ResetTimer()
	for range b.N {
		for tree := base; tree != nil; {
			tree = tree.DropLeft()
		}
	}
}

func BenchmarkGet(b *testing.B) {
	tree := FromValues(seq(0, 10000)...)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < 10000; i += 7 {
			_ = tree.Get(i)
		}
	}
}

func BenchmarkLoopGet(b *testing.B) {
	tree := FromValues(seq(0, 10000)...)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < 10000; i += 7 {
			_ = tree.LoopGet(i)
		}
	}
}

func BenchmarkSlice(b *testing.B) {
	tree := FromValues(seq(0, 10000)...)
	b.ResetTimer()
	for range b.N {
		_ = tree.Slice(1234, 8765)
	}
}
