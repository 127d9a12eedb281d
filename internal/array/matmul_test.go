package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixMul_TwoByTwo(t *testing.T) {
	a := New(Shape{2, 2}, []float64{1, 2, 3, 4})
	b := New(Shape{2, 2}, []float64{5, 6, 7, 8})
	out, err := MatrixMul(a, b, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, out.Shape())
	// Result row (i, j) is the dot product of a's row i and b's row j.
	assert.Equal(t, []float64{17, 23, 39, 53}, out.Data())
}

func TestMatrixMul_RowShapeMismatch(t *testing.T) {
	a := New(Shape{2, 2}, make([]float64, 4))
	b := New(Shape{2, 3}, make([]float64, 6))
	_, err := MatrixMul(a, b, NewContext())
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMatMul_WidensBytes(t *testing.T) {
	a := New(Shape{1, 2}, []byte{1, 2})
	b := New(Shape{1, 2}, []float64{3, 4})
	out, err := MatMul(a, b, NewContext())
	require.NoError(t, err)
	assert.Equal(t, []float64{11}, out.(*Array[float64]).Data())
}

func TestMatMul_RejectsCharacters(t *testing.T) {
	a := FromSlice([]rune("ab"))
	b := New(Shape{1, 2}, []float64{1, 2})
	_, err := MatMul(a, b, NewContext())
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

// naiveDot recomputes the result without the pervade/parallel machinery.
func naiveDot(a, b *Array[float64]) []float64 {
	n := a.RowLen()
	out := make([]float64, 0, a.RowCount()*b.RowCount())
	for i := 0; i < a.RowCount(); i++ {
		for j := 0; j < b.RowCount(); j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += a.RowSlice(i)[k] * b.RowSlice(j)[k]
			}
			out = append(out, sum)
		}
	}
	return out
}

func TestMatrixMul_ParallelMatchesSequential(t *testing.T) {
	// Cross the parallel cutover with enough rows to exercise every worker.
	const rows = 128
	aData := make([]float64, rows*2)
	for i := range aData {
		aData[i] = float64(i % 7)
	}
	a := New(Shape{rows, 2}, aData)
	b := New(Shape{3, 2}, []float64{1, 2, 3, 4, 5, 6})

	out, err := MatrixMul(a, b, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{rows, 3}, out.Shape())
	assert.Equal(t, naiveDot(a, b), out.Data())
}

func TestMatrixMul_BroadcastRowShapes(t *testing.T) {
	// a's rows are matrices, b's rows are vectors; the shorter row shape
	// broadcasts across the longer one and the contracted axis sums away.
	a := New(Shape{1, 2, 2}, []float64{1, 2, 3, 4})
	b := New(Shape{1, 2}, []float64{10, 20})
	out, err := MatrixMul(a, b, NewContext())
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 1, 2}, out.Shape())
	assert.Equal(t, []float64{70, 100}, out.Data())
}
