// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package rbtree implements the red-black tree engine backing the public
// ordered containers. Nodes live in a slice arena owned by the tree;
// index 0 is a shared black sentinel leaf.
//
// The tree maintains the usual red-black discipline: the root is black,
// a red node has no red child, and every root-to-leaf path crosses the
// same number of black nodes, which bounds the height by 2*log2(n+1).
package rbtree

// Tree is a key-sorted mapping with O(log n) point operations.
//
// Write operations are not safe for concurrent use by multiple
// goroutines; readers are only safe in the absence of writers.
type Tree[K, V any] struct {
	cmp   func(K, K) int
	nodes []node[K, V]
	root  Ptr
	free  Ptr
	count int
	gen   uint64
}

// New returns an empty tree ordered by cmp. The comparator must define a
// strict total order over keys and is fixed for the life of the tree.
func New[K, V any](cmp func(K, K) int) *Tree[K, V] {
	return &Tree[K, V]{
		cmp:   cmp,
		nodes: make([]node[K, V], 1), // nodes[0] is the sentinel leaf
	}
}

// Len returns the number of entries currently in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// Gen returns the structural generation stamp. It advances on every
// insert, delete, and clear, but not on in-place value replacement.
// Iterators compare stamps to detect that they have been invalidated.
func (t *Tree[K, V]) Gen() uint64 {
	return t.gen
}

// Cmp compares two keys under the tree's ordering.
func (t *Tree[K, V]) Cmp(a, b K) int {
	return t.cmp(a, b)
}

// CmpFunc returns the tree's comparator, for constructing derived trees
// that must share an equivalent ordering.
func (t *Tree[K, V]) CmpFunc() func(K, K) int {
	return t.cmp
}

// Clear drops every entry. Arena capacity is retained for reuse.
func (t *Tree[K, V]) Clear() {
	t.nodes = t.nodes[:1]
	t.nodes[0] = node[K, V]{}
	t.root = Null
	t.free = Null
	t.count = 0
	t.gen++
}

// Get returns the value associated with key.
func (t *Tree[K, V]) Get(key K) (v V, ok bool) {
	if x := t.search(key); x != Null {
		return t.nodes[x].value, true
	}
	return v, false
}

func (t *Tree[K, V]) search(key K) Ptr {
	x := t.root
	for x != Null {
		c := t.cmp(key, t.nodes[x].key)
		if c == 0 {
			return x
		}
		if c < 0 {
			x = t.nodes[x].left
		} else {
			x = t.nodes[x].right
		}
	}
	return Null
}

// Upsert inserts key or, if an equal key is present, replaces that entry's
// value in place. It returns the previous value, if any. Replacement is
// not a structural change and does not disturb the node or the stamp.
func (t *Tree[K, V]) Upsert(key K, value V) (prev V, replaced bool) {
	x, p := t.root, Null
	var c int
	for x != Null {
		p = x
		c = t.cmp(key, t.nodes[x].key)
		if c == 0 {
			prev = t.nodes[x].value
			t.nodes[x].value = value
			return prev, true
		}
		if c < 0 {
			x = t.nodes[x].left
		} else {
			x = t.nodes[x].right
		}
	}
	z := t.alloc(key, value)
	t.nodes[z].parent = p
	switch {
	case p == Null:
		t.root = z
	case c < 0:
		t.nodes[p].left = z
	default:
		t.nodes[p].right = z
	}
	t.count++
	t.gen++
	t.insertFixup(z)
	return prev, false
}

// insertFixup restores the red-black discipline after hanging the red
// node z off the tree. The sentinel's red flag is never set, so reaching
// the root (whose parent is the sentinel) terminates the loop.
func (t *Tree[K, V]) insertFixup(z Ptr) {
	ns := t.nodes
	for ns[ns[z].parent].red {
		p := ns[z].parent
		g := ns[p].parent
		if p == ns[g].left {
			if u := ns[g].right; ns[u].red {
				ns[p].red = false
				ns[u].red = false
				ns[g].red = true
				z = g
				continue
			}
			if z == ns[p].right {
				z = p
				t.rotateLeft(z)
				p = ns[z].parent
				g = ns[p].parent
			}
			ns[p].red = false
			ns[g].red = true
			t.rotateRight(g)
		} else {
			if u := ns[g].left; ns[u].red {
				ns[p].red = false
				ns[u].red = false
				ns[g].red = true
				z = g
				continue
			}
			if z == ns[p].left {
				z = p
				t.rotateRight(z)
				p = ns[z].parent
				g = ns[p].parent
			}
			ns[p].red = false
			ns[g].red = true
			t.rotateLeft(g)
		}
	}
	ns[t.root].red = false
}

// Delete removes the entry with the given key and returns its value.
func (t *Tree[K, V]) Delete(key K) (removed V, found bool) {
	z := t.search(key)
	if z == Null {
		return removed, false
	}
	removed = t.nodes[z].value
	t.deleteNode(z)
	return removed, true
}

// deleteNode unlinks z. When z has two children its in-order successor is
// spliced into z's position, taking over z's links and color, and the
// successor's old slot is the one rebalanced.
func (t *Tree[K, V]) deleteNode(z Ptr) {
	ns := t.nodes
	y := z
	yRed := ns[y].red
	var x Ptr
	switch {
	case ns[z].left == Null:
		x = ns[z].right
		t.transplant(z, x)
	case ns[z].right == Null:
		x = ns[z].left
		t.transplant(z, x)
	default:
		y = t.subtreeMin(ns[z].right)
		yRed = ns[y].red
		x = ns[y].right
		if ns[y].parent == z {
			// x may be the sentinel; fixup walks up from its parent.
			ns[x].parent = y
		} else {
			t.transplant(y, x)
			ns[y].right = ns[z].right
			ns[ns[y].right].parent = y
		}
		t.transplant(z, y)
		ns[y].left = ns[z].left
		ns[ns[y].left].parent = y
		ns[y].red = ns[z].red
	}
	t.release(z)
	t.count--
	t.gen++
	if !yRed {
		t.deleteFixup(x)
	}
}

// transplant replaces the subtree rooted at u with the one rooted at v.
// v's parent is set unconditionally, sentinel included.
func (t *Tree[K, V]) transplant(u, v Ptr) {
	ns := t.nodes
	switch p := ns[u].parent; {
	case p == Null:
		t.root = v
	case ns[p].left == u:
		ns[p].left = v
	default:
		ns[p].right = v
	}
	ns[v].parent = ns[u].parent
}

// deleteFixup compensates for the black node removed above x, pushing the
// missing blackness up the tree until it can be absorbed by a recoloring
// or discharged by a rotation.
func (t *Tree[K, V]) deleteFixup(x Ptr) {
	ns := t.nodes
	for x != t.root && !ns[x].red {
		p := ns[x].parent
		if x == ns[p].left {
			w := ns[p].right
			if ns[w].red {
				ns[w].red = false
				ns[p].red = true
				t.rotateLeft(p)
				w = ns[p].right
			}
			if !ns[ns[w].left].red && !ns[ns[w].right].red {
				ns[w].red = true
				x = p
				continue
			}
			if !ns[ns[w].right].red {
				ns[ns[w].left].red = false
				ns[w].red = true
				t.rotateRight(w)
				w = ns[p].right
			}
			ns[w].red = ns[p].red
			ns[p].red = false
			ns[ns[w].right].red = false
			t.rotateLeft(p)
			x = t.root
		} else {
			w := ns[p].left
			if ns[w].red {
				ns[w].red = false
				ns[p].red = true
				t.rotateRight(p)
				w = ns[p].left
			}
			if !ns[ns[w].left].red && !ns[ns[w].right].red {
				ns[w].red = true
				x = p
				continue
			}
			if !ns[ns[w].left].red {
				ns[ns[w].right].red = false
				ns[w].red = true
				t.rotateLeft(w)
				w = ns[p].left
			}
			ns[w].red = ns[p].red
			ns[p].red = false
			ns[ns[w].left].red = false
			t.rotateRight(p)
			x = t.root
		}
	}
	ns[x].red = false
}

// rotateLeft rotates the subtree rooted at x,
// turning (x a (y b c)) into (y (x a b) c).
func (t *Tree[K, V]) rotateLeft(x Ptr) {
	ns := t.nodes
	y := ns[x].right
	ns[x].right = ns[y].left
	if ns[y].left != Null {
		ns[ns[y].left].parent = x
	}
	ns[y].parent = ns[x].parent
	switch p := ns[x].parent; {
	case p == Null:
		t.root = y
	case ns[p].left == x:
		ns[p].left = y
	default:
		ns[p].right = y
	}
	ns[y].left = x
	ns[x].parent = y
}

// rotateRight rotates the subtree rooted at y,
// turning (y (x a b) c) into (x a (y b c)).
func (t *Tree[K, V]) rotateRight(y Ptr) {
	ns := t.nodes
	x := ns[y].left
	ns[y].left = ns[x].right
	if ns[x].right != Null {
		ns[ns[x].right].parent = y
	}
	ns[x].parent = ns[y].parent
	switch p := ns[y].parent; {
	case p == Null:
		t.root = x
	case ns[p].left == y:
		ns[p].left = x
	default:
		ns[p].right = x
	}
	ns[x].right = y
	ns[y].parent = x
}

// Build replaces the tree's contents with the given entries, whose keys
// must be strictly ascending under the tree's comparator. It runs in
// O(n): the entries are assembled into a height-balanced tree whose
// deepest level is colored red (except the root, which is always
// black), which satisfies the red-black rules directly. Callers use it
// to materialize merge results without paying n log n for repeated
// insertion.
func (t *Tree[K, V]) Build(keys []K, values []V) {
	t.Clear()
	n := len(keys)
	if n == 0 {
		return
	}
	bottom := 0 // depth of the deepest level: floor(log2(n))
	for 1<<(bottom+1) <= n {
		bottom++
	}
	t.root = t.build(keys, values, Null, 0, bottom)
	// With a single entry the root is also the deepest level; the root
	// must be black regardless.
	t.nodes[t.root].red = false
	t.count = n
}

func (t *Tree[K, V]) build(keys []K, values []V, parent Ptr, depth, bottom int) Ptr {
	if len(keys) == 0 {
		return Null
	}
	mid := len(keys) / 2
	x := t.alloc(keys[mid], values[mid])
	// alloc may grow the arena, so link through t.nodes, not a saved slice.
	t.nodes[x].parent = parent
	t.nodes[x].red = depth == bottom
	t.nodes[x].left = t.build(keys[:mid], values[:mid], x, depth+1, bottom)
	t.nodes[x].right = t.build(keys[mid+1:], values[mid+1:], x, depth+1, bottom)
	return x
}
