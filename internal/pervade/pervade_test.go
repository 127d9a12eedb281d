package pervade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMul_EqualShapes(t *testing.T) {
	out := make([]float64, 3)
	Mul([]int{3}, []float64{1, 2, 3}, []int{3}, []float64{4, 5, 6}, out)
	assert.Equal(t, []float64{4, 10, 18}, out)
}

func TestMul_ScalarSpreads(t *testing.T) {
	out := make([]float64, 3)
	Mul(nil, []float64{2}, []int{3}, []float64{1, 2, 3}, out)
	assert.Equal(t, []float64{2, 4, 6}, out)

	Mul([]int{3}, []float64{1, 2, 3}, nil, []float64{2}, out)
	assert.Equal(t, []float64{2, 4, 6}, out)
}

func TestMul_LeadingAxisBroadcast(t *testing.T) {
	// Each row of the rank-2 side pairs with one element of the rank-1 side.
	out := make([]float64, 4)
	Mul([]int{2, 2}, []float64{1, 2, 3, 4}, []int{2}, []float64{10, 100}, out)
	assert.Equal(t, []float64{10, 20, 300, 400}, out)
}

func TestMul_BroadcastIsSymmetric(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{10, 100}
	left := make([]float64, 4)
	right := make([]float64, 4)
	Mul([]int{2, 2}, a, []int{2}, b, left)
	Mul([]int{2}, b, []int{2, 2}, a, right)
	assert.Equal(t, left, right)
}
