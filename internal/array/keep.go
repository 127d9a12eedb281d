package array

import (
	"math"

	"github.com/pkg/errors"
)

// Keep replicates or filters the rows of v by per-row counts.
//
// A scalar count replicates every row that many times; a fractional scalar
// resamples rows at the corresponding rate, and a negative scalar reverses
// the result along the leading axis, so rows swap places but each row's
// elements keep their order. A count list must be natural numbers, one per
// row (padded or truncated by padKeepCounts). All-boolean counts filter
// rows, preserving order; anything else repeats each row its count times.
func Keep(counts, v Value, env Env) (Value, error) {
	nums, countShape, ok := numContents(counts)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidKeep,
			"keep amount must be a positive real number or list of natural numbers, not a %s array",
			counts.TypeName())
	}
	if len(countShape) == 0 {
		switch a := v.(type) {
		case *Array[float64]:
			return keepScalarReal(a, nums[0], env)
		case *Array[byte]:
			return keepScalarReal(BytesToNums(a), nums[0], env)
		case *Array[complex128]:
			return keepScalarReal(a, nums[0], env)
		case *Array[rune]:
			return keepScalarReal(a, nums[0], env)
		case *Array[Boxed]:
			return keepScalarReal(a, nums[0], env)
		}
	}
	switch a := v.(type) {
	case *Array[float64]:
		return keepList(a, nums, env)
	case *Array[byte]:
		return keepList(a, nums, env)
	case *Array[complex128]:
		return keepList(a, nums, env)
	case *Array[rune]:
		return keepList(a, nums, env)
	case *Array[Boxed]:
		return keepList(a, nums, env)
	}
	return nil, errors.Wrapf(ErrTypeMismatch, "cannot keep %s array", v.TypeName())
}

// keepScalarInteger repeats every row count times. Keeping a scalar array
// appends the count as a new axis.
func keepScalarInteger[T Elem](a *Array[T], count int, env Env) (*Array[T], error) {
	elemCount, err := ValidateShapeSize(env, count, len(a.data))
	if err != nil {
		return nil, err
	}
	if a.Rank() == 0 {
		data := make([]T, count)
		for i := range data {
			data[i] = a.data[0]
		}
		out := a.Share()
		out.setData(Shape{count}, data)
		return out, nil
	}
	out := a.Share()
	switch count {
	case 0:
		shape := out.shape.Clone()
		shape[0] = 0
		out.setData(shape, nil)
	case 1:
		// Keep 1 is a no-op.
	default:
		rowLen := out.RowLen()
		data := make([]T, 0, elemCount)
		for r := 0; r < out.RowCount(); r++ {
			row := out.data[r*rowLen : (r+1)*rowLen]
			for i := 0; i < count; i++ {
				data = append(data, row...)
			}
		}
		shape := out.shape.Clone()
		shape[0] *= count
		out.setData(shape, data)
	}
	return out, nil
}

// keepScalarReal keeps with a real-valued scalar count. Integer counts
// delegate to keepScalarInteger; fractional counts resample rows at rate
// 1/|count|; a negative count reverses the kept rows.
func keepScalarReal[T Elem](a *Array[T], count float64, env Env) (*Array[T], error) {
	absCount := math.Abs(count)
	if absCount == math.Trunc(absCount) && count >= 0 {
		return keepScalarInteger(a, int(absCount), env)
	}
	if math.IsNaN(count) || math.IsInf(count, 0) {
		return nil, errors.Wrapf(ErrInvalidKeep, "keep amount must be a real number, but it is %v", count)
	}
	newRowCount, err := ValidateShapeSize(env, int(math.Round(absCount*float64(a.RowCount()))))
	if err != nil {
		return nil, err
	}
	rowLen := a.RowLen()
	data := make([]T, 0, newRowCount*rowLen)
	delta := 1 / absCount
	for k := 0; k < newRowCount; k++ {
		t := float64(k) * delta
		fract := t - math.Floor(t)
		var srcRow int
		if fract <= 1e-9 || fract >= 1-1e-9 {
			srcRow = int(math.Round(t))
		} else {
			srcRow = int(math.Floor(t))
		}
		data = append(data, a.data[srcRow*rowLen:(srcRow+1)*rowLen]...)
	}
	out := a.Share()
	var shape Shape
	if len(out.shape) == 0 {
		shape = Shape{newRowCount}
	} else {
		shape = out.shape.Clone()
		shape[0] = newRowCount
	}
	out.setData(shape, data)
	if count < 0 {
		out.Reverse()
	}
	return out, nil
}

func keepList[T Elem](a *Array[T], counts []float64, env Env) (*Array[T], error) {
	for _, n := range counts {
		if n < 0 || n != math.Trunc(n) {
			return nil, errors.Wrapf(ErrInvalidKeep,
				"keep amount must be a list of natural numbers, but one of them is %v", n)
		}
	}
	out := a.Share()
	out.DropMapKeys()
	counts, err := padKeepCounts(counts, out.RowCount(), env)
	if err != nil {
		return nil, err
	}
	if out.Rank() == 0 {
		if len(counts) != 1 {
			return nil, errors.Wrapf(ErrRankMismatch,
				"scalar array can only be kept with a single number")
		}
		n := int(counts[0])
		data := make([]T, n)
		for i := range data {
			data[i] = out.data[0]
		}
		out.setData(Shape{n}, data)
		return out, nil
	}
	allBools := true
	trueCount := 0
	for _, n := range counts {
		switch n {
		case 0:
		case 1:
			trueCount++
		default:
			allBools = false
		}
		if !allBools {
			break
		}
	}
	rowLen := out.RowLen()
	shape := out.shape.Clone()
	if allBools {
		data := make([]T, 0, trueCount*rowLen)
		if rowLen > 0 {
			for i, n := range counts {
				if i >= out.RowCount() {
					break
				}
				if n == 1 {
					data = append(data, out.RowSlice(i)...)
				}
			}
		}
		shape[0] = trueCount
		out.setData(shape, data)
	} else {
		var data []T
		newLen := 0
		if rowLen > 0 {
			for i, n := range counts {
				if i >= out.RowCount() {
					break
				}
				c := int(n)
				newLen += c
				row := out.RowSlice(i)
				for j := 0; j < c; j++ {
					data = append(data, row...)
				}
			}
		} else {
			for _, n := range counts {
				newLen += int(n)
			}
		}
		shape[0] = newLen
		out.setData(shape, data)
	}
	return out, nil
}

// Unkeep is the run-length-compress inverse of Keep: runs of consecutive
// equal rows collapse to one representative row, and the run lengths come
// back as the counts.
func Unkeep(v Value, env Env) (Value, Value, error) {
	switch a := v.(type) {
	case *Array[float64]:
		return unkeep(a, env)
	case *Array[byte]:
		return unkeep(a, env)
	case *Array[complex128]:
		return unkeep(a, env)
	case *Array[rune]:
		return unkeep(a, env)
	case *Array[Boxed]:
		return unkeep(a, env)
	}
	return nil, nil, errors.Wrapf(ErrTypeMismatch, "cannot unkeep %s array", v.TypeName())
}

func unkeep[T Elem](a *Array[T], env Env) (Value, *Array[T], error) {
	if a.Rank() == 0 {
		return nil, nil, errors.Wrapf(ErrRankMismatch, "cannot unkeep scalar array")
	}
	out := a.Clone()
	out.DropMapKeys()
	rowLen := out.RowLen()
	rowCount := out.RowCount()
	data := out.mut()
	var counts []float64
	dest := 0
	rep := 0
	for r := 1; r < rowCount; r++ {
		repRow := data[rep*rowLen : (rep+1)*rowLen]
		row := data[r*rowLen : (r+1)*rowLen]
		if !RowsEq(repRow, row) {
			counts = append(counts, float64(r-rep))
			dest++
			copy(data[dest*rowLen:(dest+1)*rowLen], row)
			rep = r
		}
	}
	if rep < rowCount {
		counts = append(counts, float64(rowCount-rep))
		dest++
	}
	shape := out.shape.Clone()
	shape[0] = dest
	out.setData(shape, data[:dest*rowLen])
	return FromSlice(counts), out, nil
}

// UndoKeep reconstructs the pre-image of a boolean keep: kept rows come
// from the transformed array, dropped rows are reused from the original.
// Non-boolean keeps are not invertible.
func UndoKeep(counts, kept, into Value, env Env) (Value, error) {
	nums, countShape, ok := numContents(counts)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidKeep,
			"keep amount must be a natural number or list of natural numbers, not a %s array",
			counts.TypeName())
	}
	if len(countShape) == 0 {
		return nil, errors.Wrapf(ErrNotInvertible, "cannot invert scalar keep")
	}
	kept, into, err := Promote("unkeep", kept, into)
	if err != nil {
		return nil, err
	}
	switch k := kept.(type) {
	case *Array[float64]:
		return undoKeep(k, nums, into.(*Array[float64]), env)
	case *Array[byte]:
		return undoKeep(k, nums, into.(*Array[byte]), env)
	case *Array[complex128]:
		return undoKeep(k, nums, into.(*Array[complex128]), env)
	case *Array[rune]:
		return undoKeep(k, nums, into.(*Array[rune]), env)
	case *Array[Boxed]:
		return undoKeep(k, nums, into.(*Array[Boxed]), env)
	}
	return nil, errors.Wrapf(ErrTypeMismatch, "cannot unkeep %s array", kept.TypeName())
}

func undoKeep[T Elem](kept *Array[T], counts []float64, into *Array[T], env Env) (*Array[T], error) {
	counts, err := padKeepCounts(counts, into.RowCount(), env)
	if err != nil {
		return nil, err
	}
	for _, n := range counts {
		if n > 1 {
			return nil, errors.Wrapf(ErrNotInvertible, "cannot invert keep with non-boolean counts")
		}
	}
	rows := make([]*Array[T], 0, len(counts))
	next := 0
	for i, count := range counts {
		if i >= into.RowCount() {
			break
		}
		intoRow := into.Row(i)
		if count == 0 {
			rows = append(rows, intoRow)
			continue
		}
		if next >= kept.RowCount() {
			return nil, errors.Wrapf(ErrLengthMismatch,
				"kept array has fewer rows than it was created with, so the keep cannot be inverted")
		}
		newRow := kept.Row(next)
		next++
		if !newRow.shape.Equal(intoRow.shape) {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"kept array's row shape was changed from %v to %v, so the keep cannot be inverted",
				intoRow.shape, newRow.shape)
		}
		rows = append(rows, newRow)
	}
	return FromRows(rows)
}

// padKeepCounts adjusts a count list to one entry per row. Shorter lists
// are extended by a scalar array fill, a cycled 1-D array fill, or cyclic
// repetition of the existing counts, in that preference order; longer lists
// are truncated.
func padKeepCounts(counts []float64, length int, env Env) ([]float64, error) {
	switch {
	case len(counts) == length:
		return counts, nil
	case len(counts) > length:
		return counts[:length], nil
	}
	if fill, ok := env.NumArrayFill(); ok {
		for _, n := range fill.data {
			if n < 0 || n != math.Trunc(n) {
				return nil, errors.Wrapf(ErrInvalidKeep,
					"fill value for keep must be an array of non-negative integers, but one of the values is %v", n)
			}
		}
		switch fill.Rank() {
		case 0:
			padded := append([]float64{}, counts...)
			for len(padded) < length {
				padded = append(padded, fill.data[0])
			}
			return padded, nil
		case 1:
			padded := append([]float64{}, counts...)
			for i := 0; len(padded) < length; i++ {
				padded = append(padded, fill.data[i%len(fill.data)])
			}
			return padded, nil
		default:
			return nil, errors.Wrapf(ErrRankMismatch,
				"fill value for keep must be a scalar or a 1D array, but it has shape %v", fill.shape)
		}
	}
	if len(counts) == 0 {
		return nil, errors.Wrapf(ErrLengthMismatch,
			"cannot keep an array of %d rows with an empty count list and no fill value", length)
	}
	padded := append([]float64{}, counts...)
	for i := 0; len(padded) < length; i++ {
		padded = append(padded, padded[i%len(padded)])
	}
	return padded, nil
}
