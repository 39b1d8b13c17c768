package sets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlgebra(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(3, 4, 5)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, Sorted(a.Union(b)))
	assert.Equal(t, []int{3, 4}, Sorted(a.Intersect(b)))
	assert.Equal(t, []int{1, 2}, Sorted(a.Difference(b)))
	assert.Equal(t, []int{5}, Sorted(b.Difference(a)))
}

func TestNew_CollapsesDuplicates(t *testing.T) {
	s := New("x", "x", "y")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("x"))
	assert.False(t, s.Contains("z"))
}

func TestSubsetEqualDisjoint(t *testing.T) {
	a := New("a", "b")
	b := New("a", "b", "c")

	assert.True(t, a.SubsetOf(b))
	assert.False(t, b.SubsetOf(a))
	assert.True(t, New[string]().SubsetOf(a))
	assert.True(t, a.Equal(New("b", "a")))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Disjoint(New("c")))
	assert.False(t, a.Disjoint(b))
}

func TestOperationsDoNotMutate(t *testing.T) {
	a := New(1, 2)
	b := New(2, 3)
	_ = a.Union(b)
	_ = a.Difference(b)
	assert.Equal(t, []int{1, 2}, Sorted(a))
	assert.Equal(t, []int{2, 3}, Sorted(b))
}

func TestMap(t *testing.T) {
	s := Map(New("Bahia", "BAHIA", "Ceará"), strings.ToLower)
	assert.Equal(t, []string{"bahia", "ceará"}, Sorted(s))
}
