package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_MarksStartPositions(t *testing.T) {
	needle := FromSlice([]float64{1, 2})
	haystack := FromSlice([]float64{0, 1, 2, 1, 2, 0})
	out, err := Find(needle, haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{6}, out.Shape())
	assert.Equal(t, []byte{0, 1, 0, 1, 0, 0}, out.(*Array[byte]).Data())
	assert.True(t, out.IsBoolean())
}

func TestFind_TwoDimensional(t *testing.T) {
	needle := New(Shape{2, 2}, []float64{4, 5, 7, 8})
	haystack := New(Shape{3, 3}, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8})
	out, err := Find(needle, haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 3}, out.Shape())
	assert.Equal(t, []byte{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}, out.(*Array[byte]).Data())
}

func TestFind_OversizeNeedleWithoutFill(t *testing.T) {
	needle := FromSlice([]float64{1, 2, 3, 4})
	haystack := FromSlice([]float64{1, 2})
	out, err := Find(needle, haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, out.Shape())
	assert.Equal(t, []byte{0, 0}, out.(*Array[byte]).Data())
}

func TestFind_OversizeNeedleWithFill(t *testing.T) {
	env := NewContext().WithNumFill(0)
	needle := FromSlice([]float64{1, 2, 0})
	haystack := FromSlice([]float64{1, 2})
	out, err := Find(needle, haystack, env)
	require.NoError(t, err)
	// The haystack is padded with the fill so the needle can match at its
	// edge.
	assert.Equal(t, []byte{1, 0, 0}, out.(*Array[byte]).Data())
}

func TestFind_CrossKind(t *testing.T) {
	needle := FromSlice([]byte{1, 2})
	haystack := FromSlice([]float64{0, 1, 2})
	out, err := Find(needle, haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 0}, out.(*Array[byte]).Data())
}

func TestMask_LabelsMatchesInOrder(t *testing.T) {
	needle := FromSlice([]float64{1, 2})
	haystack := FromSlice([]float64{0, 1, 2, 1, 2, 0})
	out, err := Mask(needle, haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{6}, out.Shape())
	assert.Equal(t, []byte{0, 1, 1, 2, 2, 0}, out.(*Array[byte]).Data())
}

func TestMask_OverlapsConsumed(t *testing.T) {
	needle := FromSlice([]float64{1, 1})
	haystack := FromSlice([]float64{1, 1, 1})
	out, err := Mask(needle, haystack, NewContext())
	require.NoError(t, err)
	// The first match consumes its cells; the overlapping one cannot form.
	assert.Equal(t, []byte{1, 1, 0}, out.(*Array[byte]).Data())
	assert.True(t, out.IsBoolean())
}

func TestMask_RefinesFind(t *testing.T) {
	env := NewContext()
	needle := FromSlice([]float64{2, 2})
	haystack := FromSlice([]float64{2, 2, 0, 2, 2, 2})
	found, err := Find(needle, haystack, env)
	require.NoError(t, err)
	masked, err := Mask(needle, haystack, env)
	require.NoError(t, err)

	// Every labeled cell lies inside a region that starts at a find hit.
	foundData := found.(*Array[byte]).Data()
	maskData := masked.(*Array[byte]).Data()
	for i, label := range maskData {
		if label != 0 && (i == 0 || maskData[i-1] != label) {
			assert.Equal(t, byte(1), foundData[i], "mask region start at %d must be a find hit", i)
		}
	}
}

func TestMask_NeedleRankTooHigh(t *testing.T) {
	needle := New(Shape{1, 2}, []float64{1, 2})
	haystack := FromSlice([]float64{1, 2})
	_, err := Mask(needle, haystack, NewContext())
	assert.ErrorIs(t, err, ErrRankMismatch)
}
