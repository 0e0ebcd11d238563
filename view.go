package ordmap

import "github.com/pkg/errors"

// View is a live window over a Map restricted to keys within a bound.
// A view shares the backing tree with its map: mutations through either
// are visible through the other, and a view never copies entries.
// Reads of keys outside the bounds miss; writes of such keys fail with
// ErrKeyOutOfRange and leave the tree unmodified.
type View[K, V any] struct {
	m      *Map[K, V]
	lo, hi bound[K]
}

// Head returns a view of the entries with keys strictly less than to.
func (m *Map[K, V]) Head(to K) *View[K, V] {
	return &View[K, V]{m: m, hi: excluding(to)}
}

// Tail returns a view of the entries with keys greater than or equal to
// from.
func (m *Map[K, V]) Tail(from K) *View[K, V] {
	return &View[K, V]{m: m, lo: including(from)}
}

// Sub returns a view of the entries with keys in [from, to). It fails
// with ErrInvalidRange if from compares greater than to.
func (m *Map[K, V]) Sub(from, to K) (*View[K, V], error) {
	if m.t.Cmp(from, to) > 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "sub view [%v, %v)", from, to)
	}
	return &View[K, V]{m: m, lo: including(from), hi: excluding(to)}, nil
}

func (v *View[K, V]) inBounds(key K) bool {
	cmp := v.m.t.Cmp
	if v.lo.present {
		c := cmp(key, v.lo.key)
		if c < 0 || (c == 0 && !v.lo.inclusive) {
			return false
		}
	}
	if v.hi.present {
		c := cmp(key, v.hi.key)
		if c > 0 || (c == 0 && !v.hi.inclusive) {
			return false
		}
	}
	return true
}

// Get returns the value for key if key is present and inside the view's
// bounds.
func (v *View[K, V]) Get(key K) (val V, ok bool) {
	if !v.inBounds(key) {
		return val, false
	}
	return v.m.Get(key)
}

// Contains reports whether key is present and inside the view's bounds.
func (v *View[K, V]) Contains(key K) bool {
	_, ok := v.Get(key)
	return ok
}

// Upsert inserts or replaces an entry through the view. Keys outside the
// view's bounds fail with ErrKeyOutOfRange; the backing map is untouched.
func (v *View[K, V]) Upsert(key K, value V) (prev V, replaced bool, err error) {
	if !v.inBounds(key) {
		return prev, false, errors.Wrapf(ErrKeyOutOfRange, "upsert %v", key)
	}
	return v.m.Upsert(key, value)
}

// Delete removes key from the backing map if it lies inside the view's
// bounds. Out-of-bounds keys are a miss, not an error.
func (v *View[K, V]) Delete(key K) (val V, ok bool) {
	if !v.inBounds(key) {
		return val, false
	}
	return v.m.Delete(key)
}

// Len returns the number of entries inside the view's bounds. It counts
// by bounded traversal, so it is O(k) in the size of the window.
func (v *View[K, V]) Len() int {
	n := 0
	it := v.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		n++
	}
	return n
}

// IsEmpty reports whether the view's window contains no entries.
func (v *View[K, V]) IsEmpty() bool {
	it := v.MakeIter()
	it.First()
	return !it.Valid()
}

// FirstKey returns the smallest key inside the view's bounds, or
// ErrEmptyContainer if the window is empty.
func (v *View[K, V]) FirstKey() (K, error) {
	it := v.MakeIter()
	it.First()
	if !it.Valid() {
		var zero K
		return zero, ErrEmptyContainer
	}
	return it.Key(), nil
}

// LastKey returns the largest key inside the view's bounds, or
// ErrEmptyContainer if the window is empty.
func (v *View[K, V]) LastKey() (K, error) {
	it := v.MakeIter()
	it.Last()
	if !it.Valid() {
		var zero K
		return zero, ErrEmptyContainer
	}
	return it.Key(), nil
}

// MakeIter returns an Iterator confined to the view's bounds, with the
// same invalidation contract as a map iterator.
func (v *View[K, V]) MakeIter() Iterator[K, V] {
	return Iterator[K, V]{t: v.m.t, lo: v.lo, hi: v.hi}
}
