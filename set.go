package ordmap

import "golang.org/x/exp/constraints"

// Set is an ordered collection of unique keys: a projection of a Map
// whose value type is the unit type. The zero value is not usable;
// construct with NewSet or NewSetFunc.
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet returns an empty set ordered by K's natural ordering.
func NewSet[K constraints.Ordered]() *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}]()}
}

// NewSetFunc returns an empty set ordered by cmp. The comparator contract
// is the same as for NewMapFunc.
func NewSetFunc[K any](cmp func(K, K) int) *Set[K] {
	return &Set[K]{m: NewMapFunc[K, struct{}](cmp)}
}

// Add inserts key. Adding a present key is a no-op. A key the comparator
// cannot order fails with ErrIncomparableKey.
func (s *Set[K]) Add(key K) error {
	_, _, err := s.m.Upsert(key, struct{}{})
	return err
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	return s.m.Contains(key)
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, ok := s.m.Delete(key)
	return ok
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// IsEmpty reports whether the set has no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Clear removes all keys.
func (s *Set[K]) Clear() {
	s.m.Clear()
}

// First returns the smallest key, or ErrEmptyContainer if the set is
// empty.
func (s *Set[K]) First() (K, error) {
	return s.m.FirstKey()
}

// Last returns the largest key, or ErrEmptyContainer if the set is empty.
func (s *Set[K]) Last() (K, error) {
	return s.m.LastKey()
}

// Slice returns the keys in ascending order.
func (s *Set[K]) Slice() []K {
	out := make([]K, 0, s.Len())
	it := s.m.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		out = append(out, it.Key())
	}
	return out
}

// SetIterator walks a set's keys in ascending order.
type SetIterator[K any] struct {
	it Iterator[K, struct{}]
}

// MakeIter returns a new SetIterator over the whole set.
func (s *Set[K]) MakeIter() SetIterator[K] {
	return SetIterator[K]{it: s.m.MakeIter()}
}

func (it *SetIterator[K]) First()      { it.it.First() }
func (it *SetIterator[K]) Last()       { it.it.Last() }
func (it *SetIterator[K]) Next()       { it.it.Next() }
func (it *SetIterator[K]) Prev()       { it.it.Prev() }
func (it *SetIterator[K]) SeekGE(k K)  { it.it.SeekGE(k) }
func (it *SetIterator[K]) SeekLT(k K)  { it.it.SeekLT(k) }
func (it *SetIterator[K]) Valid() bool { return it.it.Valid() }
func (it *SetIterator[K]) Err() error  { return it.it.Err() }
func (it *SetIterator[K]) Key() K      { return it.it.Key() }

// Union returns a new set holding every key present in s or o. Both
// operands must share an equivalent ordering. The result is produced by
// an ordered merge of the two ascending key sequences in O(n + m).
func (s *Set[K]) Union(o *Set[K]) *Set[K] {
	cmp := s.m.t.CmpFunc()
	keys := make([]K, 0, s.Len()+o.Len())
	a, b := s.m.MakeIter(), o.m.MakeIter()
	a.First()
	b.First()
	for a.Valid() && b.Valid() {
		switch c := cmp(a.Key(), b.Key()); {
		case c < 0:
			keys = append(keys, a.Key())
			a.Next()
		case c > 0:
			keys = append(keys, b.Key())
			b.Next()
		default:
			keys = append(keys, a.Key())
			a.Next()
			b.Next()
		}
	}
	for ; a.Valid(); a.Next() {
		keys = append(keys, a.Key())
	}
	for ; b.Valid(); b.Next() {
		keys = append(keys, b.Key())
	}
	return setFromSorted(cmp, keys)
}

// Intersect returns a new set holding the keys present in both s and o,
// by ordered merge in O(n + m).
func (s *Set[K]) Intersect(o *Set[K]) *Set[K] {
	cmp := s.m.t.CmpFunc()
	var keys []K
	a, b := s.m.MakeIter(), o.m.MakeIter()
	a.First()
	b.First()
	for a.Valid() && b.Valid() {
		switch c := cmp(a.Key(), b.Key()); {
		case c < 0:
			a.Next()
		case c > 0:
			b.Next()
		default:
			keys = append(keys, a.Key())
			a.Next()
			b.Next()
		}
	}
	return setFromSorted(cmp, keys)
}

// Difference returns a new set holding the keys present in s but not in
// o, by ordered merge in O(n + m).
func (s *Set[K]) Difference(o *Set[K]) *Set[K] {
	cmp := s.m.t.CmpFunc()
	var keys []K
	a, b := s.m.MakeIter(), o.m.MakeIter()
	a.First()
	b.First()
	for a.Valid() && b.Valid() {
		switch c := cmp(a.Key(), b.Key()); {
		case c < 0:
			keys = append(keys, a.Key())
			a.Next()
		case c > 0:
			b.Next()
		default:
			a.Next()
			b.Next()
		}
	}
	for ; a.Valid(); a.Next() {
		keys = append(keys, a.Key())
	}
	return setFromSorted(cmp, keys)
}

// Equal reports whether s and o contain exactly the same keys, by a
// paired walk of both ascending sequences.
func (s *Set[K]) Equal(o *Set[K]) bool {
	if s.Len() != o.Len() {
		return false
	}
	cmp := s.m.t.CmpFunc()
	a, b := s.m.MakeIter(), o.m.MakeIter()
	a.First()
	b.First()
	for a.Valid() && b.Valid() {
		if cmp(a.Key(), b.Key()) != 0 {
			return false
		}
		a.Next()
		b.Next()
	}
	return !a.Valid() && !b.Valid()
}

// setFromSorted materializes a set from strictly ascending keys in O(n).
func setFromSorted[K any](cmp func(K, K) int, keys []K) *Set[K] {
	out := NewSetFunc[K](cmp)
	out.m.t.Build(keys, make([]struct{}, len(keys)))
	return out
}
