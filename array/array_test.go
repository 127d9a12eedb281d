package array_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-lang/ember/array"
)

// TestPipeline chains operators through the public surface the way an
// interpreter would.
func TestPipeline(t *testing.T) {
	env := array.NewContext()

	v, err := array.Reshape(
		array.FromSlice([]float64{3, 4}),
		array.FromSlice([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}),
		env,
	)
	require.NoError(t, err)
	require.Equal(t, array.Shape{3, 4}, v.Shape())

	v, err = array.Rotate(array.Scalar(1.0), v, env)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6, 7, 8, 9, 10, 11, 0, 1, 2, 3},
		v.(*array.Array[float64]).Data())

	kept, err := array.Keep(array.FromSlice([]float64{1, 0, 1}), v, env)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 4}, kept.Shape())
}

func TestSentinelsMatchable(t *testing.T) {
	_, err := array.Reshape(
		array.FromSlice([]float64{2, 3}),
		array.New(array.Shape{0}, []float64(nil)),
		array.NewContext(),
	)
	assert.True(t, errors.Is(err, array.ErrShapeMismatch))
}

func TestFindThroughFacade(t *testing.T) {
	out, err := array.Find(
		array.FromSlice([]rune("is")),
		array.FromSlice([]rune("mississippi")),
		array.NewContext(),
	)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		out.(*array.Array[byte]).Data())
}
