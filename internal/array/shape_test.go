package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements(), "scalar has one element")
	assert.Equal(t, 12, Shape{3, 4}.NumElements())
	assert.Equal(t, 0, Shape{3, 0, 4}.NumElements())
}

func TestShape_RowHelpers(t *testing.T) {
	s := Shape{3, 4, 5}
	assert.Equal(t, Shape{4, 5}, s.Row())
	assert.Equal(t, 3, s.RowCount())
	assert.Equal(t, 20, s.RowLen())

	scalar := Shape{}
	assert.Equal(t, 1, scalar.RowCount())
	assert.Equal(t, 1, scalar.RowLen())
}

func TestShape_EndsWith(t *testing.T) {
	assert.True(t, Shape{2, 3, 4}.EndsWith(Shape{3, 4}))
	assert.True(t, Shape{2, 3, 4}.EndsWith(Shape{}))
	assert.False(t, Shape{2, 3, 4}.EndsWith(Shape{2, 3}))
	assert.False(t, Shape{4}.EndsWith(Shape{3, 4}))
}

func TestShape_FlatToDimsRoundTrip(t *testing.T) {
	s := Shape{2, 3, 4}
	var dims []int
	for flat := 0; flat < s.NumElements(); flat++ {
		dims = s.FlatToDims(flat, dims)
		back, ok := s.DimsToFlat(dims)
		assert.True(t, ok)
		assert.Equal(t, flat, back)
	}
}

func TestShape_DimsToFlatOutOfBounds(t *testing.T) {
	_, ok := Shape{2, 3}.DimsToFlat([]int{1, 3})
	assert.False(t, ok)
}

func TestShape_PrefixesMatch(t *testing.T) {
	assert.True(t, PrefixesMatch(Shape{2, 3}, Shape{2, 3, 4}))
	assert.True(t, PrefixesMatch(Shape{}, Shape{9}))
	assert.False(t, PrefixesMatch(Shape{2, 3}, Shape{2, 4}))
}
