package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRerank_PositiveFoldsLeading(t *testing.T) {
	v := New(Shape{2, 3, 4}, make([]float64, 24))
	out, err := Rerank(Scalar(1.0), v, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{6, 4}, out.Shape())
}

func TestRerank_PositiveInsertsUnitAxes(t *testing.T) {
	v := New(Shape{2, 3}, make([]float64, 6))
	out, err := Rerank(Scalar(3.0), v, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 1, 2, 3}, out.Shape())
}

func TestRerank_NegativeFoldsLeading(t *testing.T) {
	v := New(Shape{2, 3, 4}, make([]float64, 24))
	out, err := Rerank(Scalar(-2.0), v, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{6, 4}, out.Shape())
}

func TestRerank_NegativeTooDeep(t *testing.T) {
	v := New(Shape{2, 3, 4}, make([]float64, 24))
	_, err := Rerank(Scalar(-4.0), v, NewContext())
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestRerank_PreservesBuffer(t *testing.T) {
	v := New(Shape{2, 2}, []float64{1, 2, 3, 4})
	out, err := Rerank(Scalar(1.0), v, NewContext())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, out.(*Array[float64]).Data())
}

func TestUndoRerank_RoundTrip(t *testing.T) {
	env := NewContext()
	v := New(Shape{2, 3, 4}, make([]float64, 24))
	reranked, err := Rerank(Scalar(1.0), v, env)
	require.NoError(t, err)

	back, err := UndoRerank(Scalar(1.0), FromSlice([]float64{2, 3, 4}), reranked, env)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 4}, back.Shape())
}

func TestUndoRerank_CountMismatchIsNoOp(t *testing.T) {
	// A shape reconstruction that does not cover the array's elements leaves
	// it untouched instead of failing. Callers must not assume symmetry with
	// UndoReshape.
	v := iotaArray(10)
	out, err := UndoRerank(Scalar(1.0), FromSlice([]float64{2, 3, 4}), v, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{10}, out.Shape())
	assert.True(t, Equal(v, out))
}

func TestUndoRerank_BoxedScalarRecurses(t *testing.T) {
	env := NewContext()
	inner := New(Shape{6, 4}, make([]float64, 24))
	boxed := Scalar(Boxed{V: inner})
	out, err := UndoRerank(Scalar(1.0), FromSlice([]float64{2, 3, 4}), boxed, env)
	require.NoError(t, err)
	outBox, ok := out.(*Array[Boxed])
	require.True(t, ok)
	assert.Equal(t, Shape{2, 3, 4}, outBox.Data()[0].V.Shape())
}
