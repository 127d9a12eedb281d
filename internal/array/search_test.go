package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMember_Elements(t *testing.T) {
	out, err := Member(FromSlice([]float64{2, 5}), FromSlice([]float64{1, 2, 3, 4}), NewContext())
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0}, out.(*Array[byte]).Data())
	assert.True(t, out.IsBoolean())
}

func TestMember_Characters(t *testing.T) {
	out, err := Member(FromSlice([]rune("dog")), FromSlice([]rune("abcdefg")), NewContext())
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 1}, out.(*Array[byte]).Data())
}

func TestMember_RowInMatrix(t *testing.T) {
	of := New(Shape{3, 2}, []float64{1, 2, 3, 4, 5, 6})
	out, err := Member(FromSlice([]float64{3, 4}), of, NewContext())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rank())
	assert.Equal(t, []byte{1}, out.(*Array[byte]).Data())
}

func TestMember_SuffixMismatch(t *testing.T) {
	of := New(Shape{2, 3}, make([]float64, 6))
	_, err := Member(FromSlice([]float64{1, 2}), of, NewContext())
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMember_HigherRankRecursesRows(t *testing.T) {
	elems := New(Shape{2, 2}, []float64{1, 9, 2, 2})
	of := FromSlice([]float64{1, 2, 3})
	out, err := Member(elems, of, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, out.Shape())
	assert.Equal(t, []byte{1, 0, 1, 1}, out.(*Array[byte]).Data())
}

func TestIndexOf_Elements(t *testing.T) {
	out, err := IndexOf(FromSlice([]float64{3, 1, 9}), FromSlice([]float64{1, 2, 3}), NewContext())
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0, 3}, out.(*Array[float64]).Data(),
		"absent rows map to the haystack's row count")
}

func TestIndexOf_FirstOccurrence(t *testing.T) {
	out, err := IndexOf(FromSlice([]float64{5}), FromSlice([]float64{5, 5, 5}), NewContext())
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, out.(*Array[float64]).Data())
}

func TestIndexOf_RowInMatrix(t *testing.T) {
	haystack := New(Shape{3, 2}, []float64{1, 2, 3, 4, 5, 6})
	out, err := IndexOf(FromSlice([]float64{5, 6}), haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rank())
	assert.Equal(t, []float64{2}, out.(*Array[float64]).Data())
}

func TestIndexOf_SuffixMismatch(t *testing.T) {
	haystack := New(Shape{2, 3}, make([]float64, 6))
	_, err := IndexOf(FromSlice([]float64{1, 2}), haystack, NewContext())
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestIndexOf_MemberAgreement(t *testing.T) {
	env := NewContext()
	needle := FromSlice([]float64{4, 0, 2, 9})
	haystack := FromSlice([]float64{2, 4, 6})
	indices, err := IndexOf(needle, haystack, env)
	require.NoError(t, err)
	members, err := Member(needle, haystack, env)
	require.NoError(t, err)

	// A row is a member exactly when its index is in range.
	idx := indices.(*Array[float64]).Data()
	mem := members.(*Array[byte]).Data()
	for i := range idx {
		found := idx[i] < float64(haystack.RowCount())
		assert.Equal(t, found, mem[i] == 1, "row %d", i)
	}
}

func TestCoordinate_EqualRankAppendsUnitAxis(t *testing.T) {
	out, err := Coordinate(FromSlice([]float64{3, 9}), FromSlice([]float64{1, 2, 3}), NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 1}, out.Shape())
	assert.Equal(t, []float64{2, 3}, out.(*Array[float64]).Data())
}

func TestCoordinate_ScalarInMatrix(t *testing.T) {
	haystack := New(Shape{2, 3}, []float64{0, 1, 2, 3, 4, 5})
	out, err := Coordinate(Scalar(5.0), haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, out.Shape())
	assert.Equal(t, []float64{1, 2}, out.(*Array[float64]).Data())
}

func TestCoordinate_RowInMatrix(t *testing.T) {
	haystack := New(Shape{2, 3}, []float64{0, 1, 2, 3, 4, 5})
	out, err := Coordinate(FromSlice([]float64{3, 4, 5}), haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rank())
	assert.Equal(t, []float64{1}, out.(*Array[float64]).Data())
}

func TestCoordinate_NotFoundIsOuterShape(t *testing.T) {
	haystack := New(Shape{2, 3}, []float64{0, 1, 2, 3, 4, 5})
	out, err := Coordinate(Scalar(9.0), haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, out.(*Array[float64]).Data())
}

func TestProgressiveIndexOf_ConsumesMatches(t *testing.T) {
	needle := FromSlice([]float64{1, 1, 2})
	haystack := FromSlice([]float64{1, 2, 1})
	out, err := ProgressiveIndexOf(needle, haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 1}, out.(*Array[float64]).Data())
}

func TestProgressiveIndexOf_ExhaustedMapsToRowCount(t *testing.T) {
	needle := FromSlice([]float64{1, 1, 1})
	haystack := FromSlice([]float64{1, 1})
	out, err := ProgressiveIndexOf(needle, haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, out.(*Array[float64]).Data())
}

func TestProgressiveIndexOf_Rows(t *testing.T) {
	needle := New(Shape{3, 2}, []float64{1, 2, 1, 2, 9, 9})
	haystack := New(Shape{3, 2}, []float64{1, 2, 5, 6, 1, 2})
	out, err := ProgressiveIndexOf(needle, haystack, NewContext())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 3}, out.(*Array[float64]).Data())
}
