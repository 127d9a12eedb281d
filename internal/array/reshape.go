package array

import (
	"math"

	"github.com/pkg/errors"
)

// Reshape reshapes v by a shape specifier value.
//
// A scalar specifier replicates the whole array as the rows of a new
// leading axis (negative replicates reversed; a bare signed placeholder
// just reverses). A list specifier resolves placeholder axes, validates the
// element count, then truncates or extends the data: extension uses the
// fill value if one is set, broadcasts a scalar, or cyclically repeats the
// existing buffer. Axes with negative specifiers are reversed afterwards.
func Reshape(shapeSpec, v Value, env Env) (Value, error) {
	specs, scalar, err := dimSpecsOf(shapeSpec)
	if err != nil {
		return nil, err
	}
	if scalar {
		switch a := v.(type) {
		case *Array[float64]:
			return reshapeScalar(a, specs[0]), nil
		case *Array[byte]:
			return reshapeScalar(a, specs[0]), nil
		case *Array[complex128]:
			return reshapeScalar(a, specs[0]), nil
		case *Array[rune]:
			return reshapeScalar(a, specs[0]), nil
		case *Array[Boxed]:
			return reshapeScalar(a, specs[0]), nil
		}
	}
	switch a := v.(type) {
	case *Array[float64]:
		return reshape(a, specs, env)
	case *Array[byte]:
		// A numeric fill with no byte fill forces floating semantics.
		if _, numOK := env.NumFill(); numOK {
			if _, byteOK := env.ByteFill(); !byteOK {
				return reshape(BytesToNums(a), specs, env)
			}
		}
		return reshape(a, specs, env)
	case *Array[complex128]:
		return reshape(a, specs, env)
	case *Array[rune]:
		return reshape(a, specs, env)
	case *Array[Boxed]:
		return reshape(a, specs, env)
	}
	return nil, errors.Wrapf(ErrTypeMismatch, "cannot reshape %s array", v.TypeName())
}

// reshapeScalar replicates the whole array as the rows of a new leading
// axis. A negative count reverses the rows first; a placeholder specifier
// only reverses (when signed).
func reshapeScalar[T Elem](a *Array[T], spec DimSpec) *Array[T] {
	out := a.Clone()
	out.DropMapKeys()
	if spec.Derive {
		if spec.Rev {
			out.Reverse()
		}
		return out
	}
	if spec.N < 0 {
		out.Reverse()
	}
	return reshapeScalarInteger(out, abs(spec.N))
}

func reshapeScalarInteger[T Elem](a *Array[T], count int) *Array[T] {
	if count == 0 {
		a.setData(append(Shape{0}, a.shape...), nil)
		return a
	}
	row := a.data
	data := make([]T, 0, count*len(row))
	for i := 0; i < count; i++ {
		data = append(data, row...)
	}
	a.setData(append(Shape{count}, a.shape...), data)
	return a
}

func reshape[T Elem](a *Array[T], dims []DimSpec, env Env) (*Array[T], error) {
	fill, hasFill := ScalarFill[T](env)
	axes, err := deriveShape(a.shape, dims, hasFill)
	if err != nil {
		return nil, err
	}
	out := a.Clone()
	if len(axes) == 0 || abs(axes[0]) != out.RowCount() {
		out.DropMapKeys()
	}
	var reversedAxes []int
	shape := make(Shape, len(axes))
	for i, s := range axes {
		if s < 0 {
			reversedAxes = append(reversedAxes, i)
		}
		shape[i] = abs(s)
	}
	if _, err := ValidateShapeSize(env, shape...); err != nil {
		return nil, err
	}
	target := shape.NumElements()
	data := out.data
	switch {
	case len(data) < target:
		switch {
		case hasFill:
			for len(data) < target {
				data = append(data, fill)
			}
		case len(data) == 0:
			if !shape.HasZero() {
				return nil, errors.Wrapf(ErrShapeMismatch,
					"cannot reshape empty array to shape %v without a fill value", shape)
			}
		case out.Rank() == 0:
			elem := data[0]
			data = make([]T, target)
			for i := range data {
				data[i] = elem
			}
		default:
			// Cyclically repeat the existing buffer.
			old := data
			start := len(old)
			data = make([]T, 0, target)
			data = append(data, old...)
			for i := 0; i < (target-start)/start; i++ {
				data = append(data, old...)
			}
			data = append(data, old[:(target-start)%start]...)
		}
	default:
		data = data[:target]
	}
	out.setData(shape, data)
	for _, ax := range reversedAxes {
		out.ReverseDepth(ax)
	}
	return out, nil
}

// deriveShape resolves placeholder axes against the array's total element
// count. With a fill value the derived axis rounds up (the fill pads the
// remainder); without one it rounds down (the data is truncated). More than
// one placeholder is ambiguous.
func deriveShape(shape Shape, dims []DimSpec, hasFill bool) ([]int, error) {
	infCount := 0
	for _, dim := range dims {
		if dim.Derive {
			infCount++
		}
	}
	deriveLen := func(dataLen, otherLen int) int {
		q := float64(dataLen) / float64(otherLen)
		if hasFill {
			return int(math.Ceil(q))
		}
		return int(math.Floor(q))
	}
	switch infCount {
	case 0:
		axes := make([]int, len(dims))
		for i, dim := range dims {
			axes[i] = dim.N
		}
		return axes, nil
	case 1:
		switch {
		case dims[0].Derive:
			revMul := 1
			if dims[0].Rev {
				revMul = -1
			}
			otherLen := 1
			for _, dim := range dims[1:] {
				otherLen *= abs(dim.N)
			}
			if otherLen == 0 {
				return nil, errors.Wrapf(ErrInvalidDimension,
					"cannot reshape array with any 0 non-leading dimensions")
			}
			axes := []int{revMul * deriveLen(shape.NumElements(), otherLen)}
			for _, dim := range dims[1:] {
				axes = append(axes, dim.N)
			}
			return axes, nil
		case dims[len(dims)-1].Derive:
			last := dims[len(dims)-1]
			revMul := 1
			if last.Rev {
				revMul = -1
			}
			axes := make([]int, 0, len(dims))
			otherLen := 1
			for _, dim := range dims[:len(dims)-1] {
				axes = append(axes, dim.N)
				otherLen *= abs(dim.N)
			}
			if otherLen == 0 {
				return nil, errors.Wrapf(ErrInvalidDimension,
					"cannot reshape array with any 0 non-trailing dimensions")
			}
			return append(axes, revMul*deriveLen(shape.NumElements(), otherLen)), nil
		default:
			infIndex := 0
			for i, dim := range dims {
				if dim.Derive {
					infIndex = i
					break
				}
			}
			revMul := 1
			if dims[infIndex].Rev {
				revMul = -1
			}
			frontLen, backLen := 1, 1
			for _, dim := range dims[:infIndex] {
				frontLen *= abs(dim.N)
			}
			for _, dim := range dims[infIndex+1:] {
				backLen *= abs(dim.N)
			}
			if frontLen == 0 || backLen == 0 {
				return nil, errors.Wrapf(ErrInvalidDimension,
					"cannot reshape array with any 0 outer dimensions")
			}
			axes := make([]int, 0, len(dims))
			for _, dim := range dims[:infIndex] {
				axes = append(axes, dim.N)
			}
			axes = append(axes, revMul*deriveLen(shape.NumElements(), frontLen*backLen))
			for _, dim := range dims[infIndex+1:] {
				axes = append(axes, dim.N)
			}
			return axes, nil
		}
	default:
		return nil, errors.Wrapf(ErrAmbiguousShape,
			"cannot reshape array with %d derived dimensions", infCount)
	}
}

// UndoReshape restores an explicit prior shape. It is purely a shape
// relabeling: if the element counts differ it fails rather than resizing.
func UndoReshape(oldShape, v Value, env Env) (Value, error) {
	nums, shape, ok := numContents(oldShape)
	if ok && len(shape) == 0 && nums[0] >= 0 && nums[0] == math.Trunc(nums[0]) {
		return nil, errors.Wrapf(ErrNotInvertible, "cannot undo scalar reshape")
	}
	origShape, err := asNatList(oldShape, "shape")
	if err != nil {
		return nil, err
	}
	if Shape(origShape).NumElements() != v.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"cannot unreshape array because its old shape was %v, but its new shape is %v, which has a different number of elements",
			Shape(origShape), v.Shape())
	}
	return relabelValue(v, Shape(origShape).Clone()), nil
}

// relabelValue returns v with a new shape of equal element count. The data
// buffer is shared.
func relabelValue(v Value, shape Shape) Value {
	switch a := v.(type) {
	case *Array[float64]:
		return relabel(a, shape)
	case *Array[byte]:
		return relabel(a, shape)
	case *Array[complex128]:
		return relabel(a, shape)
	case *Array[rune]:
		return relabel(a, shape)
	case *Array[Boxed]:
		return relabel(a, shape)
	default:
		return v
	}
}

func relabel[T Elem](a *Array[T], shape Shape) *Array[T] {
	out := a.Share()
	out.shape = shape
	out.validate()
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
