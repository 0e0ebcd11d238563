package rbtree

// Ptr addresses a node in a tree's arena. Links between nodes are stored
// as arena indices rather than pointers so that rotations and fixups can
// rewire parent references without cyclic pointer bookkeeping.
type Ptr = int32

// Null is the index of the sentinel leaf. The sentinel is always black and
// stands in for every absent child, so the fixup routines never have to
// special-case nil. Its parent field is scratch space during delete fixup.
const Null Ptr = 0

type node[K, V any] struct {
	left, right, parent Ptr
	red                 bool
	key                 K
	value               V
}

// alloc returns a red node holding the given entry, reusing a freed slot
// when one is available.
func (t *Tree[K, V]) alloc(key K, value V) Ptr {
	if t.free != Null {
		x := t.free
		t.free = t.nodes[x].right
		t.nodes[x] = node[K, V]{key: key, value: value, red: true}
		return x
	}
	t.nodes = append(t.nodes, node[K, V]{key: key, value: value, red: true})
	return Ptr(len(t.nodes) - 1)
}

// release clears the slot so the old entry can be collected and threads it
// onto the free list through its right link.
func (t *Tree[K, V]) release(x Ptr) {
	t.nodes[x] = node[K, V]{right: t.free}
	t.free = x
}

// Key returns the key stored at x. x must be a live node, not Null.
func (t *Tree[K, V]) Key(x Ptr) K {
	return t.nodes[x].key
}

// Value returns the value stored at x. x must be a live node, not Null.
func (t *Tree[K, V]) Value(x Ptr) V {
	return t.nodes[x].value
}
