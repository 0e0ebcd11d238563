package rbtree

import (
	"math"
	"math/rand"
	"testing"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// checkInvariants walks the whole tree and fails the test on any violation
// of the search order, the red-black rules, parent links, or the count.
func checkInvariants[V any](t *testing.T, tr *Tree[int, V]) {
	t.Helper()
	if tr.root != Null {
		if tr.nodes[tr.root].red {
			t.Fatal("root is red")
		}
		if tr.nodes[tr.root].parent != Null {
			t.Fatal("root has a parent")
		}
	}
	count, _ := checkSubtree(t, tr, tr.root)
	if count != tr.count {
		t.Fatalf("count %d, reachable nodes %d", tr.count, count)
	}
}

func checkSubtree[V any](t *testing.T, tr *Tree[int, V], x Ptr) (count, blackHeight int) {
	t.Helper()
	if x == Null {
		return 0, 1
	}
	n := tr.nodes[x]
	if n.red && (tr.nodes[n.left].red || tr.nodes[n.right].red) {
		t.Fatalf("red node %d has a red child", n.key)
	}
	if n.left != Null {
		if tr.nodes[n.left].parent != x {
			t.Fatalf("bad parent link under %d", n.key)
		}
		if tr.cmp(tr.nodes[n.left].key, n.key) >= 0 {
			t.Fatalf("left child of %d out of order", n.key)
		}
	}
	if n.right != Null {
		if tr.nodes[n.right].parent != x {
			t.Fatalf("bad parent link under %d", n.key)
		}
		if tr.cmp(n.key, tr.nodes[n.right].key) >= 0 {
			t.Fatalf("right child of %d out of order", n.key)
		}
	}
	lc, lb := checkSubtree(t, tr, n.left)
	rc, rb := checkSubtree(t, tr, n.right)
	if lb != rb {
		t.Fatalf("black height mismatch under %d: %d vs %d", n.key, lb, rb)
	}
	if !n.red {
		lb++
	}
	return lc + rc + 1, lb
}

func ascending[V any](tr *Tree[int, V]) []int {
	var out []int
	for x := tr.Min(); x != Null; x = tr.Next(x) {
		out = append(out, tr.Key(x))
	}
	return out
}

func TestUpsertDeleteRandom(t *testing.T) {
	const N = 1000
	tr := New[int, int](intCmp)
	perm := rand.Perm(N)
	for i, k := range perm {
		if _, replaced := tr.Upsert(k, k*10); replaced {
			t.Fatalf("unexpected replacement of %d", k)
		}
		if got := tr.Len(); got != i+1 {
			t.Fatalf("expected len %d, got %d", i+1, got)
		}
	}
	checkInvariants(t, tr)

	keys := ascending(tr)
	for i, k := range keys {
		if k != i {
			t.Fatalf("expected key %d at position %d, got %d", i, i, k)
		}
	}

	var deleted []int
	for _, k := range rand.Perm(N) {
		if rand.Float64() < .5 {
			continue
		}
		if v, found := tr.Delete(k); !found || v != k*10 {
			t.Fatalf("delete %d: found=%t v=%d", k, found, v)
		}
		deleted = append(deleted, k)
	}
	checkInvariants(t, tr)
	if got := tr.Len(); got != N-len(deleted) {
		t.Fatalf("expected len %d, got %d", N-len(deleted), got)
	}
	for _, k := range deleted {
		if _, found := tr.Get(k); found {
			t.Fatalf("deleted key %d still present", k)
		}
		if _, found := tr.Delete(k); found {
			t.Fatalf("second delete of %d found something", k)
		}
	}

	// Deleted slots are recycled; re-inserting must restore the full order.
	for _, k := range deleted {
		tr.Upsert(k, k*10)
	}
	checkInvariants(t, tr)
	if keys := ascending(tr); len(keys) != N {
		t.Fatalf("expected %d keys after re-insert, got %d", N, len(keys))
	}
}

func TestUpsertReplacesInPlace(t *testing.T) {
	tr := New[int, string](intCmp)
	tr.Upsert(1, "a")
	gen := tr.Gen()
	prev, replaced := tr.Upsert(1, "b")
	if !replaced || prev != "a" {
		t.Fatalf("expected replacement of %q, got %q/%t", "a", prev, replaced)
	}
	if tr.Len() != 1 {
		t.Fatalf("expected len 1, got %d", tr.Len())
	}
	if tr.Gen() != gen {
		t.Fatal("value replacement advanced the structural stamp")
	}
	if v, _ := tr.Get(1); v != "b" {
		t.Fatalf("expected %q, got %q", "b", v)
	}
}

func TestHeightBound(t *testing.T) {
	const N = 1024
	bound := func(n int) int {
		return int(2 * math.Log2(float64(n+1)))
	}
	orders := map[string]func(i int) int{
		"sorted":  func(i int) int { return i },
		"reverse": func(i int) int { return N - i },
	}
	shuffled := rand.Perm(N)
	orders["random"] = func(i int) int { return shuffled[i] }

	for name, key := range orders {
		t.Run(name, func(t *testing.T) {
			tr := New[int, struct{}](intCmp)
			for i := 0; i < N; i++ {
				tr.Upsert(key(i), struct{}{})
			}
			checkInvariants(t, tr)
			if h, max := tr.Height(), bound(N); h > max {
				t.Fatalf("height %d exceeds %d after %d inserts", h, max, N)
			}
			for i := 0; i < N/2; i++ {
				tr.Delete(key(i))
			}
			checkInvariants(t, tr)
			if h, max := tr.Height(), bound(N); h > max {
				t.Fatalf("height %d exceeds %d after deletions", h, max)
			}
		})
	}
}

func TestSearches(t *testing.T) {
	tr := New[int, struct{}](intCmp)
	for _, k := range []int{10, 20, 30, 40} {
		tr.Upsert(k, struct{}{})
	}
	keyOf := func(x Ptr) int {
		if x == Null {
			return -1
		}
		return tr.Key(x)
	}
	cases := []struct {
		name      string
		search    func(int) Ptr
		key, want int
	}{
		{"ge-hit", tr.SearchGE, 20, 20},
		{"ge-between", tr.SearchGE, 25, 30},
		{"ge-past", tr.SearchGE, 41, -1},
		{"gt-hit", tr.SearchGT, 20, 30},
		{"gt-past", tr.SearchGT, 40, -1},
		{"le-hit", tr.SearchLE, 20, 20},
		{"le-between", tr.SearchLE, 25, 20},
		{"le-before", tr.SearchLE, 9, -1},
		{"lt-hit", tr.SearchLT, 20, 10},
		{"lt-before", tr.SearchLT, 10, -1},
	}
	for _, c := range cases {
		if got := keyOf(c.search(c.key)); got != c.want {
			t.Errorf("%s: search(%d) = %d, want %d", c.name, c.key, got, c.want)
		}
	}
}

func TestBuild(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 15, 16, 17, 33, 1000} {
		keys := make([]int, n)
		values := make([]int, n)
		for i := range keys {
			keys[i] = i * 2
			values[i] = i
		}
		tr := New[int, int](intCmp)
		tr.Upsert(99, 99) // Build must discard prior contents
		tr.Build(keys, values)
		checkInvariants(t, tr)
		if tr.Len() != n {
			t.Fatalf("n=%d: len %d", n, tr.Len())
		}
		got := ascending(tr)
		for i, k := range got {
			if k != i*2 {
				t.Fatalf("n=%d: key %d at position %d", n, k, i)
			}
		}
		if n > 0 {
			if v, ok := tr.Get(keys[n/2]); !ok || v != n/2 {
				t.Fatalf("n=%d: lookup of %d gave %d/%t", n, keys[n/2], v, ok)
			}
		}
	}
}

func TestBuildThenUpsert(t *testing.T) {
	// A built tree must accept further mutation; in particular a
	// single-entry build leaves the root at the deepest level, and the
	// root must still come out black for insertFixup to work.
	for _, n := range []int{1, 2, 3, 7, 8, 100} {
		keys := make([]int, n)
		values := make([]int, n)
		for i := range keys {
			keys[i] = i * 2
			values[i] = i
		}
		tr := New[int, int](intCmp)
		tr.Build(keys, values)
		for i := -1; i <= n*2; i++ {
			tr.Upsert(i, i)
			checkInvariants(t, tr)
		}
		for _, k := range keys {
			if v, ok := tr.Get(k); !ok || v != k {
				t.Fatalf("n=%d: key %d lost after upserts (got %d/%t)", n, k, v, ok)
			}
		}
	}
}

func TestClear(t *testing.T) {
	tr := New[int, int](intCmp)
	for i := 0; i < 100; i++ {
		tr.Upsert(i, i)
	}
	gen := tr.Gen()
	tr.Clear()
	if tr.Len() != 0 || tr.Min() != Null || tr.Max() != Null {
		t.Fatal("clear left entries behind")
	}
	if tr.Gen() == gen {
		t.Fatal("clear did not advance the structural stamp")
	}
	tr.Upsert(7, 7)
	checkInvariants(t, tr)
	if v, ok := tr.Get(7); !ok || v != 7 {
		t.Fatal("tree unusable after clear")
	}
}

func TestGenAdvancesOnStructuralChange(t *testing.T) {
	tr := New[int, int](intCmp)
	gen := tr.Gen()
	tr.Upsert(1, 1)
	if tr.Gen() == gen {
		t.Fatal("insert did not advance the stamp")
	}
	gen = tr.Gen()
	tr.Delete(1)
	if tr.Gen() == gen {
		t.Fatal("delete did not advance the stamp")
	}
	gen = tr.Gen()
	tr.Delete(1)
	if tr.Gen() != gen {
		t.Fatal("no-op delete advanced the stamp")
	}
}
