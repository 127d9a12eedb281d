package array

import "github.com/pkg/errors"

// Find marks every position where the needle occurs in the haystack as a
// contiguous, same-shape, same-order sub-block.
//
// The result is boolean with the haystack's leading-axes shape. If the
// needle exceeds the haystack along any axis, the haystack is first padded
// with the fill value when one is set; without one the result is all zero
// at the haystack's full shape.
func Find(needle, haystack Value, env Env) (Value, error) {
	needle, haystack, err := Promote("find", needle, haystack)
	if err != nil {
		return nil, err
	}
	switch n := needle.(type) {
	case *Array[float64]:
		return find(n, haystack.(*Array[float64]), env)
	case *Array[byte]:
		return find(n, haystack.(*Array[byte]), env)
	case *Array[complex128]:
		return find(n, haystack.(*Array[complex128]), env)
	case *Array[rune]:
		return find(n, haystack.(*Array[rune]), env)
	case *Array[Boxed]:
		return find(n, haystack.(*Array[Boxed]), env)
	}
	return nil, errors.Wrapf(ErrTypeMismatch,
		"cannot find %s in %s array", needle.TypeName(), haystack.TypeName())
}

func find[T Elem](needle, haystack *Array[T], env Env) (*Array[byte], error) {
	anyDimGreater := false
	for i := 0; i < min(needle.Rank(), haystack.Rank()); i++ {
		if needle.shape[needle.Rank()-1-i] > haystack.shape[haystack.Rank()-1-i] {
			anyDimGreater = true
			break
		}
	}
	if needle.Rank() > haystack.Rank() || anyDimGreater {
		fill, ok := ScalarFill[T](env)
		if !ok {
			out := New(haystack.shape.Clone(), make([]byte, haystack.NumElements()))
			out.SetBoolean()
			return out, nil
		}
		// Pad the haystack so the needle fits.
		target := haystack.shape.Clone()
		target[0] = needle.RowCount()
		local := haystack.Clone()
		local.FillToShape(target, fill)
		haystack = local
	}

	// Pad the needle's shape with leading unit axes.
	needleShape := needle.shape.Clone()
	for len(needleShape) < haystack.Rank() {
		needleShape = append(Shape{1}, needleShape...)
	}

	tempShape := make(Shape, haystack.Rank())
	for i := range tempShape {
		tempShape[i] = haystack.shape[i] + 1 - needleShape[i]
	}
	data := make([]byte, tempShape.NumElements())
	corner := make([]int, haystack.Rank())
	curr := make([]int, haystack.Rank())
	k := 0

	if !haystack.shape.HasZero() {
	corners:
		for {
			for i := range curr {
				curr[i] = 0
			}
			// Try to match the needle at the current corner.
		items:
			for {
				haystackIndex := 0
				stride := 1
				for i := haystack.Rank() - 1; i >= 0; i-- {
					haystackIndex += (corner[i] + curr[i]) * stride
					stride *= haystack.shape[i]
				}
				needleIndex := 0
				stride = 1
				for i := len(needleShape) - 1; i >= 0; i-- {
					needleIndex += curr[i] * stride
					stride *= needleShape[i]
				}
				same := needleIndex < len(needle.data) &&
					elemEq(haystack.data[haystackIndex], needle.data[needleIndex])
				if !same {
					data[k] = 0
					k++
					break
				}
				for i := len(curr) - 1; i >= 0; i-- {
					if curr[i] == needleShape[i]-1 {
						curr[i] = 0
					} else {
						curr[i]++
						continue items
					}
				}
				data[k] = 1
				k++
				break
			}
			for i := len(corner) - 1; i >= 0; i-- {
				if corner[i] == haystack.shape[i]-needleShape[i] {
					corner[i] = 0
				} else {
					corner[i]++
					continue corners
				}
			}
			break
		}
	}
	out := New(tempShape, data)
	// Pad the mask back out to the haystack's shape.
	out.FillToShape(haystack.shape[:len(needleShape)], 0)
	out.SetBoolean()
	return out, nil
}

// Mask labels every needle match in the haystack 1..N in discovery order.
// Cells covered by an earlier match are consumed and cannot participate in
// a later, overlapping one. The result has the haystack's exact shape and
// is compressed to bytes when the label count fits.
func Mask(needle, haystack Value, env Env) (Value, error) {
	needle, haystack, err := Promote("mask", needle, haystack)
	if err != nil {
		return nil, err
	}
	switch n := needle.(type) {
	case *Array[float64]:
		return mask(n, haystack.(*Array[float64]), env)
	case *Array[byte]:
		return mask(n, haystack.(*Array[byte]), env)
	case *Array[complex128]:
		return mask(n, haystack.(*Array[complex128]), env)
	case *Array[rune]:
		return mask(n, haystack.(*Array[rune]), env)
	case *Array[Boxed]:
		return mask(n, haystack.(*Array[Boxed]), env)
	}
	return nil, errors.Wrapf(ErrTypeMismatch,
		"cannot mask %s in %s array", needle.TypeName(), haystack.TypeName())
}

func mask[T Elem](needle, haystack *Array[T], env Env) (Value, error) {
	if needle.Rank() > haystack.Rank() {
		return nil, errors.Wrapf(ErrRankMismatch,
			"cannot look for rank %d array in rank %d array", needle.Rank(), haystack.Rank())
	}
	for i := 0; i < needle.Rank(); i++ {
		if needle.shape[needle.Rank()-1-i] > haystack.shape[haystack.Rank()-1-i] {
			out := New(haystack.shape.Clone(), make([]byte, haystack.NumElements()))
			out.SetBoolean()
			return out, nil
		}
	}
	res := make([]float64, haystack.NumElements())
	needleShape := needle.shape.Clone()
	for len(needleShape) < haystack.Rank() {
		needleShape = append(Shape{1}, needleShape...)
	}
	needleElems := needle.NumElements()
	var curr, offset []int
	sum := make([]int, len(needleShape))
	matchNum := 0
	for i := range res {
		// Check whether the needle matches at this position without
		// touching any already-consumed cell.
		curr = haystack.shape.FlatToDims(i, curr)
		matches := true
		for j := 0; j < needleElems; j++ {
			offset = needleShape.FlatToDims(j, offset)
			for d := range sum {
				sum[d] = curr[d] + offset[d]
			}
			k, ok := haystack.shape.DimsToFlat(sum)
			if !ok || res[k] > 0 || !elemEq(needle.data[j], haystack.data[k]) {
				matches = false
				break
			}
		}
		if matches {
			matchNum++
			for j := 0; j < needleElems; j++ {
				offset = needleShape.FlatToDims(j, offset)
				for d := range sum {
					sum[d] = curr[d] + offset[d]
				}
				k, _ := haystack.shape.DimsToFlat(sum)
				res[k] = float64(matchNum)
			}
		}
	}
	// Compress to the smallest representation that holds the labels.
	if matchNum <= 255 {
		bytes := make([]byte, len(res))
		for i, n := range res {
			bytes[i] = byte(n)
		}
		out := New(haystack.shape.Clone(), bytes)
		if matchNum <= 1 {
			out.SetBoolean()
		}
		return out, nil
	}
	return New(haystack.shape.Clone(), res), nil
}
