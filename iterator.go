package ordmap

import "github.com/ajwerner/ordmap/internal/rbtree"

// bound is one end of a key window. An absent bound matches every key.
type bound[K any] struct {
	key       K
	present   bool
	inclusive bool
}

func including[K any](k K) bound[K] { return bound[K]{key: k, present: true, inclusive: true} }
func excluding[K any](k K) bound[K] { return bound[K]{key: k, present: true} }

// Iterator walks the entries of a Map (or a View of it) in key order.
// It captures the tree's structural generation stamp whenever it is
// positioned; if the tree's structure changes mid-traversal, the
// iterator becomes invalid and continued stepping reports
// ErrConcurrentModification through Err. Repositioning resynchronizes.
type Iterator[K, V any] struct {
	t      *rbtree.Tree[K, V]
	lo, hi bound[K]
	cur    rbtree.Ptr
	gen    uint64
	err    error
}

// rewind resynchronizes the iterator with the tree ahead of a
// repositioning call.
func (it *Iterator[K, V]) rewind() {
	it.gen = it.t.Gen()
	it.err = nil
	it.cur = rbtree.Null
}

// stale reports, and records, that the tree changed structurally under a
// positioned iterator.
func (it *Iterator[K, V]) stale() bool {
	if it.err != nil {
		return true
	}
	if it.gen != it.t.Gen() {
		it.err = ErrConcurrentModification
		it.cur = rbtree.Null
		return true
	}
	return false
}

// First positions the iterator at the smallest key within bounds.
func (it *Iterator[K, V]) First() {
	it.rewind()
	switch {
	case !it.lo.present:
		it.cur = it.t.Min()
	case it.lo.inclusive:
		it.cur = it.t.SearchGE(it.lo.key)
	default:
		it.cur = it.t.SearchGT(it.lo.key)
	}
	it.checkHi()
}

// Last positions the iterator at the largest key within bounds.
func (it *Iterator[K, V]) Last() {
	it.rewind()
	switch {
	case !it.hi.present:
		it.cur = it.t.Max()
	case it.hi.inclusive:
		it.cur = it.t.SearchLE(it.hi.key)
	default:
		it.cur = it.t.SearchLT(it.hi.key)
	}
	it.checkLo()
}

// SeekGE positions the iterator at the first in-bounds key greater than
// or equal to key.
func (it *Iterator[K, V]) SeekGE(key K) {
	it.rewind()
	it.cur = it.t.SearchGE(key)
	if it.cur != rbtree.Null && it.belowLo(it.t.Key(it.cur)) {
		it.First()
		return
	}
	it.checkHi()
}

// SeekLT positions the iterator at the last in-bounds key strictly less
// than key.
func (it *Iterator[K, V]) SeekLT(key K) {
	it.rewind()
	it.cur = it.t.SearchLT(key)
	if it.cur != rbtree.Null && it.aboveHi(it.t.Key(it.cur)) {
		it.Last()
		return
	}
	it.checkLo()
}

// Next advances to the key immediately following the current position.
func (it *Iterator[K, V]) Next() {
	if it.cur == rbtree.Null || it.stale() {
		return
	}
	it.cur = it.t.Next(it.cur)
	it.checkHi()
}

// Prev steps back to the key immediately preceding the current position.
func (it *Iterator[K, V]) Prev() {
	if it.cur == rbtree.Null || it.stale() {
		return
	}
	it.cur = it.t.Prev(it.cur)
	it.checkLo()
}

// Valid returns whether the iterator is positioned at an entry. It turns
// false when traversal passes either bound, exhausts the tree, or the
// tree is structurally modified out from under the iterator.
func (it *Iterator[K, V]) Valid() bool {
	return it.err == nil && it.cur != rbtree.Null && it.gen == it.t.Gen()
}

// Err returns ErrConcurrentModification if the iterator was stepped after
// being invalidated, and nil otherwise.
func (it *Iterator[K, V]) Err() error {
	return it.err
}

// Key returns the key at the current position. It is illegal to call Key
// if the iterator is not valid.
func (it *Iterator[K, V]) Key() K {
	return it.t.Key(it.cur)
}

// Value returns the value at the current position. It is illegal to call
// Value if the iterator is not valid.
func (it *Iterator[K, V]) Value() V {
	return it.t.Value(it.cur)
}

func (it *Iterator[K, V]) belowLo(key K) bool {
	if !it.lo.present {
		return false
	}
	c := it.t.Cmp(key, it.lo.key)
	return c < 0 || (c == 0 && !it.lo.inclusive)
}

func (it *Iterator[K, V]) aboveHi(key K) bool {
	if !it.hi.present {
		return false
	}
	c := it.t.Cmp(key, it.hi.key)
	return c > 0 || (c == 0 && !it.hi.inclusive)
}

func (it *Iterator[K, V]) checkHi() {
	if it.cur != rbtree.Null && it.aboveHi(it.t.Key(it.cur)) {
		it.cur = rbtree.Null
	}
}

func (it *Iterator[K, V]) checkLo() {
	if it.cur != rbtree.Null && it.belowLo(it.t.Key(it.cur)) {
		it.cur = rbtree.Null
	}
}
