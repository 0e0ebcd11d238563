package ordmap

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIteratorAscending(t *testing.T) {
	assert := assert.New(t)
	const n = 500
	m := NewMap[int, int]()
	for _, k := range rand.Perm(n) {
		m.Upsert(k, k)
	}
	it := m.MakeIter()
	prev := -1
	count := 0
	for it.First(); it.Valid(); it.Next() {
		assert.Greater(it.Key(), prev)
		assert.Equal(it.Key(), it.Value())
		prev = it.Key()
		count++
	}
	assert.Equal(n, count)
	assert.NoError(it.Err())
}

func TestIteratorDescending(t *testing.T) {
	assert := assert.New(t)
	m := NewMap[int, struct{}]()
	for _, k := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		m.Upsert(k, struct{}{})
	}
	var got []int
	it := m.MakeIter()
	for it.Last(); it.Valid(); it.Prev() {
		got = append(got, it.Key())
	}
	assert.Equal([]int{9, 6, 5, 4, 3, 2, 1}, got)
}

func TestIteratorSeek(t *testing.T) {
	assert := assert.New(t)
	m := NewMap[int, struct{}]()
	for _, k := range []int{10, 20, 30} {
		m.Upsert(k, struct{}{})
	}
	it := m.MakeIter()

	it.SeekGE(20)
	assert.True(it.Valid())
	assert.Equal(20, it.Key())

	it.SeekGE(21)
	assert.True(it.Valid())
	assert.Equal(30, it.Key())

	it.SeekGE(31)
	assert.False(it.Valid())

	it.SeekLT(20)
	assert.True(it.Valid())
	assert.Equal(10, it.Key())

	it.SeekLT(10)
	assert.False(it.Valid())
}

func TestIteratorInvalidation(t *testing.T) {
	assert := assert.New(t)
	m := NewMap[int, int]()
	for i := 0; i < 10; i++ {
		m.Upsert(i, i)
	}
	it := m.MakeIter()
	it.First()
	assert.True(it.Valid())

	m.Delete(5)
	assert.False(it.Valid())
	it.Next()
	assert.True(errors.Is(it.Err(), ErrConcurrentModification))

	// Repositioning resynchronizes the iterator.
	it.First()
	assert.NoError(it.Err())
	assert.True(it.Valid())
	assert.Equal(0, it.Key())
}

func TestIteratorSurvivesValueReplacement(t *testing.T) {
	assert := assert.New(t)
	m := NewMap[int, string]()
	m.Upsert(1, "a")
	m.Upsert(2, "b")

	it := m.MakeIter()
	it.First()
	m.Upsert(2, "bb") // value replacement is not a structural change
	it.Next()
	assert.True(it.Valid())
	assert.NoError(it.Err())
	assert.Equal("bb", it.Value())
}

func TestIteratorPartialConsumption(t *testing.T) {
	assert := assert.New(t)
	m := NewMap[int, int]()
	for i := 0; i < 100; i++ {
		m.Upsert(i, i)
	}
	it := m.MakeIter()
	it.First()
	for i := 0; i < 10; i++ {
		it.Next()
	}
	assert.Equal(10, it.Key())
	// Discarding a half-consumed iterator and starting a fresh one is fine.
	it2 := m.MakeIter()
	it2.First()
	assert.Equal(0, it2.Key())
}
