// Package ordmap provides ordered associative containers backed by a
// red-black tree: Map, its keys-only projection Set, and live range
// views over either. All operations are O(log n) point work or ordered
// traversal; none are safe for concurrent mutation.
package ordmap

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/ordmap/internal/rbtree"
)

// Compare is a comparison function for any naturally ordered type.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// Map is a mapping from K to V sorted by key. The zero value is not
// usable; construct with NewMap or NewMapFunc.
type Map[K, V any] struct {
	t *rbtree.Tree[K, V]
}

// NewMap returns an empty map ordered by K's natural ordering.
func NewMap[K constraints.Ordered, V any]() *Map[K, V] {
	return NewMapFunc[K, V](Compare[K])
}

// NewMapFunc returns an empty map ordered by cmp. The comparator must
// implement a strict total order over K and is fixed for the life of the
// map. Keys that compare equal are the same key for container purposes,
// so cmp must be consistent with whatever equality callers rely on;
// supplying an inconsistent or non-transitive comparator is a contract
// violation that is not detected at runtime.
func NewMapFunc[K, V any](cmp func(K, K) int) *Map[K, V] {
	return &Map[K, V]{t: rbtree.New[K, V](cmp)}
}

// Upsert inserts key with the given value, or replaces the value of an
// existing equal key in place. It returns the previous value, if any.
// A key the comparator cannot order fails with ErrIncomparableKey and
// leaves the map unmodified.
func (m *Map[K, V]) Upsert(key K, value V) (prev V, replaced bool, err error) {
	if m.t.Cmp(key, key) != 0 {
		return prev, false, errors.Wrapf(ErrIncomparableKey, "upsert %v", key)
	}
	prev, replaced = m.t.Upsert(key, value)
	return prev, replaced, nil
}

// Get returns the value associated with key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.t.Get(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.t.Get(key)
	return ok
}

// Delete removes key and returns the value it was mapped to. Deleting an
// absent key is a no-op miss.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	return m.t.Delete(key)
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.t.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.t.Len() == 0
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.t.Clear()
}

// FirstKey returns the smallest key under the comparator, or
// ErrEmptyContainer if the map is empty.
func (m *Map[K, V]) FirstKey() (K, error) {
	x := m.t.Min()
	if x == rbtree.Null {
		var zero K
		return zero, ErrEmptyContainer
	}
	return m.t.Key(x), nil
}

// LastKey returns the largest key under the comparator, or
// ErrEmptyContainer if the map is empty.
func (m *Map[K, V]) LastKey() (K, error) {
	x := m.t.Max()
	if x == rbtree.Null {
		var zero K
		return zero, ErrEmptyContainer
	}
	return m.t.Key(x), nil
}

// MakeIter returns a new Iterator over the whole map. The iterator is
// lazy and restartable: repositioning it with First, Last, SeekGE, or
// SeekLT resynchronizes it with the tree after any mutations.
func (m *Map[K, V]) MakeIter() Iterator[K, V] {
	return Iterator[K, V]{t: m.t}
}
