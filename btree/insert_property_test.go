package btree

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./btree -run TestInsertRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test ./btree -run '^$' -fuzz FuzzInsert -fuzztime=10s

type modelEntry struct {
	key, seq int
}

// sortedModel returns the expected in-order key sequence: ascending by key,
// ties in insertion order.
func sortedModel(model []modelEntry) []modelEntry {
	out := slices.Clone(model)
	slices.SortStableFunc(out, func(a, b modelEntry) int {
		return cmp.Compare(a.key, b.key)
	})
	return out
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[int, int], model []modelEntry) {
	t.Helper()
	want := sortedModel(model)
	got := tree.Entries()
	if len(got) != len(want) || tree.Len() != len(want) {
		t.Fatalf("model length mismatch: got=%d len=%d want=%d", len(got), tree.Len(), len(want))
	}
	for i := range want {
		if got[i].Key != want[i].key || got[i].Value != want[i].seq {
			t.Fatalf("model mismatch at %d: got=%d/%d want=%d/%d",
				i, got[i].Key, got[i].Value, want[i].key, want[i].seq)
		}
	}
}

func TestInsertRandomizedProperty(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	r := rand.New(rand.NewSource(4711))
	for order := MinOrder; order <= 10; order++ {
		tree, err := NewOrdered[int, int](order)
		if err != nil {
			t.Fatal(err)
		}
		var model []modelEntry
		for seq := 0; seq < 600; seq++ {
			key := r.Intn(250)
			nodes := tree.NodeCount()
			predicted := tree.allocationsFor(key)
			if err := tree.Insert(key, seq); err != nil {
				t.Fatalf("order %d: Insert failed: %v", order, err)
			}
			model = append(model, modelEntry{key: key, seq: seq})
			if tree.NodeCount()-nodes != predicted {
				t.Fatalf("order %d: insert allocated %d nodes, predicted %d",
					order, tree.NodeCount()-nodes, predicted)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("order %d, after %d inserts: %v", order, seq+1, err)
			}
		}
		assertTreeMatchesModel(t, tree, model)
	}
}

func TestInsertSequentialAndReverse(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	for _, order := range []int{2, 3, 4, 7, 8} {
		for _, reverse := range []bool{false, true} {
			tree, err := NewOrdered[int, int](order)
			if err != nil {
				t.Fatal(err)
			}
			var model []modelEntry
			for i := 0; i < 300; i++ {
				key := i
				if reverse {
					key = 300 - i
				}
				if err := tree.Insert(key, i); err != nil {
					t.Fatal(err)
				}
				model = append(model, modelEntry{key: key, seq: i})
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("order %d, reverse=%v: %v", order, reverse, err)
			}
			assertTreeMatchesModel(t, tree, model)
		}
	}
}

func FuzzInsert(f *testing.F) {
	f.Add(uint8(3), []byte{10, 20, 30, 40})
	f.Add(uint8(4), []byte{9, 9, 9, 9, 9, 1, 2, 3})
	f.Add(uint8(0), []byte{255, 0, 128, 64, 32, 16, 8, 4, 2, 1})
	f.Fuzz(func(t *testing.T, o uint8, keys []byte) {
		teardown := redirectTracing(t)
		defer teardown()
		order := MinOrder + int(o%15)
		tree, err := NewOrdered[int, int](order)
		if err != nil {
			t.Fatal(err)
		}
		var model []modelEntry
		for seq, k := range keys {
			if err := tree.Insert(int(k), seq); err != nil {
				t.Fatal(err)
			}
			model = append(model, modelEntry{key: int(k), seq: seq})
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		assertTreeMatchesModel(t, tree, model)
	})
}
