package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepthSlices_LockStepRows(t *testing.T) {
	a := New(Shape{2, 2}, []float64{1, 2, 3, 4})
	b := New(Shape{2, 3}, []float64{5, 6, 7, 8, 9, 10})
	var aRows, bRows [][]float64
	_, err := depthSlices(a, b, 1, 1, NewContext(),
		func(ash Shape, aRow []float64, bsh Shape, bRow []float64) error {
			aRows = append(aRows, append([]float64{}, aRow...))
			bRows = append(bRows, append([]float64{}, bRow...))
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, aRows)
	assert.Equal(t, [][]float64{{5, 6, 7}, {8, 9, 10}}, bRows)
}

func TestDepthSlices_PrefixMismatch(t *testing.T) {
	a := New(Shape{2, 2}, make([]float64, 4))
	b := New(Shape{3, 2}, make([]float64, 6))
	_, err := depthSlices(a, b, 1, 1, NewContext(),
		func(Shape, []float64, Shape, []float64) error { return nil })
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "[2 2]")
	assert.Contains(t, err.Error(), "[3 2]")
}

func TestDepthSlices_StripsLeadingUnitAxes(t *testing.T) {
	// The unit leading axis of a is stripped, then each of a's rows is
	// repeated under the new leading axis of three: [1 2] becomes
	// [[1 1] [1 2] [2 2]] when paired with b's three elements.
	a := New(Shape{1, 2}, []float64{1, 2})
	b := New(Shape{3}, []float64{4, 5, 6})
	var aRows [][]float64
	var bElems []float64
	_, err := depthSlices(a, b, 1, 1, NewContext(),
		func(ash Shape, aRow []float64, bsh Shape, bRow []float64) error {
			aRows = append(aRows, append([]float64{}, aRow...))
			bElems = append(bElems, bRow[0])
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {1, 2}, {2, 2}}, aRows)
	assert.Equal(t, []float64{4, 5, 6}, bElems)
}

func TestDepthSlices_ReplicatesShallowerSide(t *testing.T) {
	// One offset row against two value rows: the offsets are replicated so
	// every value row sees one.
	a := New(Shape{2, 3}, []float64{0, 1, 2, 3, 4, 5})
	b := Scalar(7.0)
	var bRows []float64
	out, err := depthSlices(a, b, 1, 1, NewContext(),
		func(ash Shape, aRow []float64, bsh Shape, bRow []float64) error {
			bRows = append(bRows, bRow[0])
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, out.Shape())
	assert.Equal(t, []float64{7, 7}, bRows)
}

func TestDepthSlices_ZeroLenRowsShortCircuit(t *testing.T) {
	a := New(Shape{2, 0}, []float64(nil))
	b := New(Shape{2}, []float64{1, 2})
	calls := 0
	_, err := depthSlices(a, b, 1, 1, NewContext(),
		func(Shape, []float64, Shape, []float64) error { calls++; return nil })
	require.NoError(t, err)
	assert.Equal(t, 0, calls)
}
