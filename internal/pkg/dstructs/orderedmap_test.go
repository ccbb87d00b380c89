package dstructs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int](4)

	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestOrderedMapOverwriteKeepsFirstPosition(t *testing.T) {
	m := NewOrderedMap[string, int](0)

	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, 2, m.Len())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestOrderedMapEachVisitsInOrder(t *testing.T) {
	m := NewOrderedMap[int, string](2)
	m.Set(3, "three")
	m.Set(1, "one")
	m.Set(2, "two")

	var keys []int
	var values []string
	m.Each(func(k int, v string) {
		keys = append(keys, k)
		values = append(values, v)
	})

	assert.Equal(t, []int{3, 1, 2}, keys)
	assert.Equal(t, []string{"three", "one", "two"}, values)
}

func TestOrderedMapGrowsPastSizeHint(t *testing.T) {
	m := NewOrderedMap[int, int](1)
	for i := 0; i < 100; i++ {
		m.Set(i, i*i)
	}

	assert.Equal(t, 100, m.Len())
	v, ok := m.Get(99)
	assert.True(t, ok)
	assert.Equal(t, 99*99, v)
}

func TestOrderedMapNegativeSizeHint(t *testing.T) {
	m := NewOrderedMap[string, int](-1)
	m.Set("a", 1)

	assert.Equal(t, 1, m.Len())
}
