package array

import (
	"math"

	"github.com/pkg/errors"
)

// numContents extracts the flat numeric contents of a number or byte value.
func numContents(v Value) ([]float64, Shape, bool) {
	switch a := v.(type) {
	case *Array[float64]:
		return a.data, a.shape, true
	case *Array[byte]:
		nums := make([]float64, len(a.data))
		for i, b := range a.data {
			nums[i] = float64(b)
		}
		return nums, a.shape, true
	default:
		return nil, nil, false
	}
}

// asIntScalar extracts a single integer from a scalar numeric value.
func asIntScalar(v Value, what string) (int, error) {
	nums, shape, ok := numContents(v)
	if !ok || len(shape) != 0 {
		return 0, errors.Wrapf(ErrTypeMismatch, "%s must be an integer, not a %s %v array",
			what, v.TypeName(), v.Shape())
	}
	n := nums[0]
	if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, errors.Wrapf(ErrTypeMismatch, "%s must be an integer, but it is %v", what, n)
	}
	return int(n), nil
}

// asIntList extracts a flat list of integers from a rank-0 or rank-1
// numeric value.
func asIntList(v Value, what string) ([]int, error) {
	nums, shape, ok := numContents(v)
	if !ok || len(shape) > 1 {
		return nil, errors.Wrapf(ErrTypeMismatch,
			"%s must be an integer or list of integers, not a %s %v array",
			what, v.TypeName(), v.Shape())
	}
	ints := make([]int, len(nums))
	for i, n := range nums {
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return nil, errors.Wrapf(ErrTypeMismatch, "%s must be integers, but one of them is %v", what, n)
		}
		ints[i] = int(n)
	}
	return ints, nil
}

// asNatList extracts a flat list of natural numbers.
func asNatList(v Value, what string) ([]int, error) {
	ints, err := asIntList(v, what)
	if err != nil {
		return nil, err
	}
	for _, n := range ints {
		if n < 0 {
			return nil, errors.Wrapf(ErrTypeMismatch,
				"%s must be natural numbers, but one of them is %d", what, n)
		}
	}
	return ints, nil
}

// asIntArray converts a numeric value of any rank into an integer array,
// used for rotation offsets.
func asIntArray(v Value, what string) (*Array[int], error) {
	nums, shape, ok := numContents(v)
	if !ok {
		return nil, errors.Wrapf(ErrTypeMismatch, "%s must be an array of integers, not a %s array",
			what, v.TypeName())
	}
	ints := make([]int, len(nums))
	for i, n := range nums {
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return nil, errors.Wrapf(ErrTypeMismatch, "%s must be integers, but one of them is %v", what, n)
		}
		ints[i] = int(n)
	}
	return New(shape.Clone(), ints), nil
}

// DimSpec is one entry of a reshape shape specifier: either a concrete
// signed dimension (negative means "reverse along this axis") or a
// placeholder whose size is derived from the total element count.
type DimSpec struct {
	N      int
	Derive bool // placeholder axis
	Rev    bool // reverse, when Derive is set
}

// dimSpecsOf extracts dimension specifiers from a numeric value.
// Placeholders are spelled as signed infinities. Returns the specifiers and
// whether the value was a scalar.
func dimSpecsOf(v Value) ([]DimSpec, bool, error) {
	nums, shape, ok := numContents(v)
	if !ok || len(shape) > 1 {
		return nil, false, errors.Wrapf(ErrTypeMismatch,
			"shape should be a single integer or a list of integers or infinity, not a %s %v array",
			v.TypeName(), v.Shape())
	}
	specs := make([]DimSpec, len(nums))
	for i, n := range nums {
		switch {
		case math.IsInf(n, 0):
			specs[i] = DimSpec{Derive: true, Rev: math.Signbit(n)}
		case n == math.Trunc(n) && !math.IsNaN(n):
			specs[i] = DimSpec{N: int(n)}
		default:
			return nil, false, errors.Wrapf(ErrTypeMismatch,
				"shape should be a single integer or a list of integers or infinity, but it contains %v", n)
		}
	}
	return specs, len(shape) == 0, nil
}
