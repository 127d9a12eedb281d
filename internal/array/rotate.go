package array

import "github.com/pkg/errors"

// Rotate cyclically rotates v's axes by the given signed offsets, outermost
// axis first. With a fill value set, rotation becomes a shift: the elements
// that would have wrapped around are replaced by the fill.
func Rotate(by, v Value, env Env) (Value, error) {
	return RotateDepth(by, v, 0, 0, env)
}

// RotateDepth rotates at a depth: the offsets and the rotated array are
// aligned to the given leading-dimension depths and each offset row rotates
// the matching array row. A boxed array whose rank equals the offsets'
// depth is rotated inside the boxes instead.
func RotateDepth(by, v Value, byDepth, depth int, env Env) (Value, error) {
	if by.RowCount() == 0 {
		return v, nil
	}
	if _, ok := env.NumFill(); ok {
		if bytes, isByte := v.(*Array[byte]); isByte {
			v = BytesToNums(bytes)
		}
	}
	if boxes, isBox := v.(*Array[Boxed]); isBox && boxes.Rank() == byDepth {
		out := boxes.Clone()
		data := out.mut()
		for i, b := range data {
			inner, err := RotateDepth(by, b.V, byDepth, depth, env)
			if err != nil {
				return nil, err
			}
			data[i] = Boxed{V: inner}
		}
		return out, nil
	}
	ints, err := asIntArray(by, "rotation amount")
	if err != nil {
		return nil, err
	}
	switch a := v.(type) {
	case *Array[float64]:
		return rotateDepth(a, ints, depth, byDepth, env)
	case *Array[byte]:
		return rotateDepth(a, ints, depth, byDepth, env)
	case *Array[complex128]:
		return rotateDepth(a, ints, depth, byDepth, env)
	case *Array[rune]:
		return rotateDepth(a, ints, depth, byDepth, env)
	case *Array[Boxed]:
		return rotateDepth(a, ints, depth, byDepth, env)
	}
	return nil, errors.Wrapf(ErrTypeMismatch, "cannot rotate %s array", v.TypeName())
}

func rotateDepth[T Elem](a *Array[T], by *Array[int], depth, byDepth int, env Env) (*Array[T], error) {
	fill, hasFill := ScalarFill[T](env)
	filled := false
	out := a.Clone()
	out, err := depthSlices(out, by, depth, byDepth, env,
		func(ash Shape, aRow []T, bsh Shape, bRow []int) error {
			if len(bsh) > 1 {
				return errors.Wrapf(ErrRankMismatch, "cannot rotate by rank %d array", len(bsh))
			}
			if len(bRow) > len(ash) {
				return errors.Wrapf(ErrTooManyIndices,
					"cannot rotate rank %d array with index of length %d", len(ash), len(bRow))
			}
			rotate(bRow, ash, aRow)
			if hasFill {
				fillShift(bRow, ash, aRow, fill)
				filled = true
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	if filled {
		out.ResetFlags()
	}
	if depth == 0 && len(by.data) > 0 {
		if keys := out.MapKeys(); keys != nil {
			keys.Rotate(by.data[0])
		}
	}
	return out, nil
}

// rotate cyclically rotates data along its leading axis by the first
// offset using three reversals, then recurses into each row with the
// remaining offsets.
func rotate[T Elem](by []int, shape Shape, data []T) {
	if len(by) == 0 || len(shape) == 0 {
		return
	}
	rowCount := shape[0]
	if rowCount == 0 {
		return
	}
	rowLen := shape[1:].NumElements()
	offset := by[0]
	mid := ((rowCount + offset%rowCount) % rowCount) * rowLen
	reverseSlice(data[:mid])
	reverseSlice(data[mid:])
	reverseSlice(data)
	by = by[1:]
	shape = shape[1:]
	if len(by) == 0 || len(shape) == 0 {
		return
	}
	for start := 0; start+rowLen <= len(data); start += rowLen {
		rotate(by, shape, data[start:start+rowLen])
	}
}

// fillShift overwrites the wrapped-in region of an already-rotated axis
// with the fill value, turning the cyclic rotation into a shift.
func fillShift[T Elem](by []int, shape Shape, data []T, fill T) {
	if len(by) == 0 || len(shape) == 0 {
		return
	}
	rowCount := shape[0]
	if rowCount == 0 {
		return
	}
	offset := by[0]
	rowLen := shape[1:].NumElements()
	if offset != 0 {
		absOffset := abs(offset) * rowLen
		if absOffset > len(data) {
			absOffset = len(data)
		}
		if offset > 0 {
			for i := len(data) - absOffset; i < len(data); i++ {
				data[i] = fill
			}
		} else {
			for i := 0; i < absOffset; i++ {
				data[i] = fill
			}
		}
	}
	by = by[1:]
	shape = shape[1:]
	if len(by) == 0 || len(shape) == 0 {
		return
	}
	for start := 0; start+rowLen <= len(data); start += rowLen {
		fillShift(by, shape, data[start:start+rowLen], fill)
	}
}
