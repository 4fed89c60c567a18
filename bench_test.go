package treemap

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
)

func BenchmarkInsert(b *testing.B) {
	keys := rand.New(rand.NewSource(1)).Perm(max(b.N, 1))
	tree := New[int, int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(keys[i], i)
	}
}

func BenchmarkSearch(b *testing.B) {
	const n = 1 << 20
	tree := New[int, int]()
	keys := rand.New(rand.NewSource(2)).Perm(n)
	for i, k := range keys {
		tree.Insert(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Search(keys[i&(n-1)])
	}
}

func BenchmarkDelete(b *testing.B) {
	keys := rand.New(rand.NewSource(3)).Perm(max(b.N, 1))
	tree := New[int, int]()
	for i, k := range keys {
		tree.Insert(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Delete(keys[i])
	}
}

func BenchmarkInOrder(b *testing.B) {
	const n = 1 << 16
	tree := New[int, int]()
	for _, k := range rand.New(rand.NewSource(4)).Perm(n) {
		tree.Insert(k, k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for k := range tree.InOrder() {
			sum += k
		}
		_ = sum
	}
}

// Baseline against google/btree for the same workload.
func BenchmarkInsertBTreeBaseline(b *testing.B) {
	keys := rand.New(rand.NewSource(1)).Perm(max(b.N, 1))
	bt := btree.NewOrderedG[int](32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bt.ReplaceOrInsert(keys[i])
	}
}

func BenchmarkSearchBTreeBaseline(b *testing.B) {
	const n = 1 << 20
	bt := btree.NewOrderedG[int](32)
	keys := rand.New(rand.NewSource(2)).Perm(n)
	for _, k := range keys {
		bt.ReplaceOrInsert(k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bt.Get(keys[i&(n-1)])
	}
}
