package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/labelsight/labelsight/pkg/collection"
)

func TestCountBy(t *testing.T) {
	words := []string{"ant", "bee", "axolotl", "bat"}
	counts := collection.CountBy(words, func(w string) string { return w[:1] })
	assert.Equal(t, map[string]int{"a": 2, "b": 2}, counts)
}

func TestSortByIsStableAndCopies(t *testing.T) {
	type row struct {
		Name  string
		Count int
	}
	in := []row{{"a", 2}, {"b", 5}, {"c", 2}, {"d", 5}}

	out := collection.SortBy(in, func(x, y row) bool { return x.Count > y.Count })

	// Descending by count, ties in input order.
	assert.Equal(t, []row{{"b", 5}, {"d", 5}, {"a", 2}, {"c", 2}}, out)
	// The input slice is untouched.
	assert.Equal(t, []row{{"a", 2}, {"b", 5}, {"c", 2}, {"d", 5}}, in)
}

func TestTake(t *testing.T) {
	s := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2}, collection.Take(s, 2))
	assert.Equal(t, []int{1, 2, 3}, collection.Take(s, 10))
	assert.Empty(t, collection.Take(s, 0))
}

func TestFilterAndMap(t *testing.T) {
	evens := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	doubled := collection.Map(evens, func(n int) int { return n * 2 })
	assert.Equal(t, []int{4, 8}, doubled)
}

func TestCountWhere(t *testing.T) {
	n := collection.CountWhere([]int{1, 2, 3, 4, 5}, func(n int) bool { return n > 2 })
	assert.Equal(t, 3, n)
}

func TestFirst(t *testing.T) {
	v, ok := collection.First([]int{1, 2, 3}, func(n int) bool { return n > 1 })
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = collection.First([]int{1}, func(n int) bool { return n > 5 })
	assert.False(t, ok)
}
