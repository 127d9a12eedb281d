package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarFill_PerKind(t *testing.T) {
	env := NewContext().WithNumFill(1.5).WithCharFill(' ')

	n, ok := ScalarFill[float64](env)
	require.True(t, ok)
	assert.Equal(t, 1.5, n)

	c, ok := ScalarFill[rune](env)
	require.True(t, ok)
	assert.Equal(t, ' ', c)

	_, ok = ScalarFill[byte](env)
	assert.False(t, ok, "absence of a fill is a checked condition, not a default")
	_, ok = ScalarFill[complex128](env)
	assert.False(t, ok)
}

func TestValidateShapeSize_RejectsNegative(t *testing.T) {
	_, err := ValidateShapeSize(NewContext(), 2, -1)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestValidateShapeSize_RejectsOverflow(t *testing.T) {
	_, err := ValidateShapeSize(NewContext(), 1<<31, 1<<31, 1<<31)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestValidateSize_Limit(t *testing.T) {
	env := NewContext()
	env.MaxElements = 100
	_, err := ValidateShapeSize(env, 10, 11)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	elems, err := ValidateShapeSize(env, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 100, elems)
}
