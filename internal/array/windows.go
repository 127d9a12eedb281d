package array

import "github.com/pkg/errors"

// Windows extracts every sliding sub-block of the given per-axis sizes.
//
// A negative size means "axis extent + 1 + size" (all but the last few).
// Without a fill value the output has (extent - size + 1) positions per
// sized axis; with one, windows are centered at every position and
// out-of-bounds elements become the fill.
func Windows(sizeSpec, v Value, env Env) (Value, error) {
	sizes, err := asIntList(sizeSpec, "window size")
	if err != nil {
		return nil, err
	}
	switch a := v.(type) {
	case *Array[float64]:
		return windows(a, sizes, env)
	case *Array[byte]:
		return windows(a, sizes, env)
	case *Array[complex128]:
		return windows(a, sizes, env)
	case *Array[rune]:
		return windows(a, sizes, env)
	case *Array[Boxed]:
		return windows(a, sizes, env)
	}
	return nil, errors.Wrapf(ErrTypeMismatch, "cannot take windows of %s array", v.TypeName())
}

func windows[T Elem](a *Array[T], sizeSpec []int, env Env) (*Array[T], error) {
	for _, s := range sizeSpec {
		if s == 0 {
			return nil, errors.Wrapf(ErrZeroWindow, "window size cannot be zero")
		}
	}
	if len(sizeSpec) > a.Rank() {
		return nil, errors.Wrapf(ErrRankMismatch,
			"window size %v has too many axes for shape %v", sizeSpec, a.shape)
	}

	if fill, ok := ScalarFill[T](env); ok {
		return filledWindows(a, sizeSpec, fill), nil
	}

	size := make([]int, 0, len(sizeSpec))
	for i, s := range sizeSpec {
		if s < 0 {
			s = a.shape[i] + 1 + s
		}
		size = append(size, s)
	}
	// Shape of the windows array: window positions per sized axis, then
	// the window sizes, then any unsized trailing axes.
	newShape := make(Shape, 0, a.Rank()+len(size))
	for i, s := range size {
		newShape = append(newShape, max(a.shape[i]+1-s, 0))
	}
	for _, s := range size {
		newShape = append(newShape, max(s, 0))
	}
	newShape = append(newShape, a.shape[len(size):]...)
	for i, s := range size {
		if s <= 0 || s > a.shape[i] {
			return New(newShape, make([]T, newShape.NumElements())), nil
		}
	}
	if newShape.NumElements() == 0 {
		return New(newShape, make([]T, 0)), nil
	}
	// Window extents with the same rank as the windowed array.
	trueSize := make([]int, 0, a.Rank())
	trueSize = append(trueSize, size...)
	trueSize = append(trueSize, a.shape[len(size):]...)

	dst := make([]T, newShape.NumElements())
	corner := make([]int, a.Rank())
	curr := make([]int, a.Rank())
	k := 0
windows:
	for {
		for i := range curr {
			curr[i] = 0
		}
		// Copy the window at the current corner.
	items:
		for {
			srcIndex := 0
			stride := 1
			for i := a.Rank() - 1; i >= 0; i-- {
				srcIndex += (corner[i] + curr[i]) * stride
				stride *= a.shape[i]
			}
			dst[k] = a.data[srcIndex]
			k++
			for i := len(curr) - 1; i >= 0; i-- {
				if curr[i] == trueSize[i]-1 {
					curr[i] = 0
				} else {
					curr[i]++
					continue items
				}
			}
			break
		}
		// Advance to the next corner.
		for i := len(corner) - 1; i >= 0; i-- {
			if corner[i] == a.shape[i]-trueSize[i] {
				corner[i] = 0
			} else {
				corner[i]++
				continue windows
			}
		}
		return New(newShape, dst), nil
	}
}

// filledWindows centers one window at every position along each sized axis.
// Even-sized windows get one extra output position to keep centering
// well-defined; source elements out of bounds contribute the fill, and
// unsized trailing axes are copied verbatim per window.
func filledWindows[T Elem](a *Array[T], sizeSpec []int, fill T) *Array[T] {
	trueSize := make([]int, 0, len(sizeSpec))
	for i, s := range sizeSpec {
		if s < 0 {
			s = a.shape[i] + 1 + s
		}
		// A negative size can overshoot the axis; clamp so the result is
		// empty rather than malformed.
		trueSize = append(trueSize, max(s, 0))
	}
	newShape := make(Shape, 0, a.Rank()+len(trueSize))
	adders := make([]int, len(trueSize))
	for i, t := range trueSize {
		if t > 0 && t%2 == 0 {
			adders[i] = 1
		}
		newShape = append(newShape, a.shape[i]+adders[i])
	}
	newShape = append(newShape, trueSize...)
	newShape = append(newShape, a.shape[len(trueSize):]...)

	dst := make([]T, newShape.NumElements())
	for i := range dst {
		dst[i] = fill
	}
	if len(dst) == 0 {
		return New(newShape, dst)
	}
	index := make([]int, len(trueSize))
	trackingCurr := make([]int, len(trueSize))
	offsetCurr := make([]int, len(trueSize))
	itemLen := Shape(a.shape[len(trueSize):]).NumElements()
	k := 0
windows:
	for {
		for i := range trackingCurr {
			trackingCurr[i] = 0
		}
		for i := range offsetCurr {
			offsetCurr[i] = index[i] - trueSize[i]/2
		}
		// Copy the window centered at the current index.
	items:
		for {
			outOfBounds := false
			for i, o := range offsetCurr {
				if o < 0 || o >= a.shape[i] {
					outOfBounds = true
					break
				}
			}
			if !outOfBounds {
				srcIndex := 0
				stride := itemLen
				for i := len(offsetCurr) - 1; i >= 0; i-- {
					srcIndex += offsetCurr[i] * stride
					stride *= a.shape[i]
				}
				copy(dst[k:k+itemLen], a.data[srcIndex:srcIndex+itemLen])
			}
			k += itemLen
			for i := len(trackingCurr) - 1; i >= 0; i-- {
				if trackingCurr[i] == trueSize[i]-1 {
					trackingCurr[i] = 0
					offsetCurr[i] = index[i] - trueSize[i]/2
				} else {
					trackingCurr[i]++
					offsetCurr[i]++
					continue items
				}
			}
			break
		}
		// Advance to the next window position.
		for i := len(index) - 1; i >= 0; i-- {
			if index[i] == a.shape[i]-1+adders[i] {
				index[i] = 0
			} else {
				index[i]++
				continue windows
			}
		}
		return New(newShape, dst)
	}
}
