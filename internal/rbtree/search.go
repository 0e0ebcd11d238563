package rbtree

// Min returns the node with the smallest key, or Null if the tree is empty.
func (t *Tree[K, V]) Min() Ptr {
	if t.root == Null {
		return Null
	}
	return t.subtreeMin(t.root)
}

// Max returns the node with the largest key, or Null if the tree is empty.
func (t *Tree[K, V]) Max() Ptr {
	if t.root == Null {
		return Null
	}
	x := t.root
	for t.nodes[x].right != Null {
		x = t.nodes[x].right
	}
	return x
}

func (t *Tree[K, V]) subtreeMin(x Ptr) Ptr {
	for t.nodes[x].left != Null {
		x = t.nodes[x].left
	}
	return x
}

// Next returns the in-order successor of x, or Null if x holds the
// largest key. x must be a live node.
func (t *Tree[K, V]) Next(x Ptr) Ptr {
	ns := t.nodes
	if ns[x].right != Null {
		return t.subtreeMin(ns[x].right)
	}
	p := ns[x].parent
	for p != Null && x == ns[p].right {
		x, p = p, ns[p].parent
	}
	return p
}

// Prev returns the in-order predecessor of x, or Null if x holds the
// smallest key. x must be a live node.
func (t *Tree[K, V]) Prev(x Ptr) Ptr {
	ns := t.nodes
	if ns[x].left != Null {
		x = ns[x].left
		for ns[x].right != Null {
			x = ns[x].right
		}
		return x
	}
	p := ns[x].parent
	for p != Null && x == ns[p].left {
		x, p = p, ns[p].parent
	}
	return p
}

// SearchGE returns the node with the least key greater than or equal to
// key, or Null.
func (t *Tree[K, V]) SearchGE(key K) Ptr {
	x, best := t.root, Null
	for x != Null {
		if t.cmp(key, t.nodes[x].key) <= 0 {
			best = x
			x = t.nodes[x].left
		} else {
			x = t.nodes[x].right
		}
	}
	return best
}

// SearchGT returns the node with the least key strictly greater than key,
// or Null.
func (t *Tree[K, V]) SearchGT(key K) Ptr {
	x, best := t.root, Null
	for x != Null {
		if t.cmp(key, t.nodes[x].key) < 0 {
			best = x
			x = t.nodes[x].left
		} else {
			x = t.nodes[x].right
		}
	}
	return best
}

// SearchLE returns the node with the greatest key less than or equal to
// key, or Null.
func (t *Tree[K, V]) SearchLE(key K) Ptr {
	x, best := t.root, Null
	for x != Null {
		if t.cmp(t.nodes[x].key, key) <= 0 {
			best = x
			x = t.nodes[x].right
		} else {
			x = t.nodes[x].left
		}
	}
	return best
}

// SearchLT returns the node with the greatest key strictly less than key,
// or Null.
func (t *Tree[K, V]) SearchLT(key K) Ptr {
	x, best := t.root, Null
	for x != Null {
		if t.cmp(t.nodes[x].key, key) < 0 {
			best = x
			x = t.nodes[x].right
		} else {
			x = t.nodes[x].left
		}
	}
	return best
}

// Height returns the number of nodes on the longest root-to-leaf path.
// It is O(n) and exists for balance verification in tests.
func (t *Tree[K, V]) Height() int {
	return t.height(t.root)
}

func (t *Tree[K, V]) height(x Ptr) int {
	if x == Null {
		return 0
	}
	l, r := t.height(t.nodes[x].left), t.height(t.nodes[x].right)
	if r > l {
		l = r
	}
	return l + 1
}
