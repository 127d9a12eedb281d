package array

import "github.com/pkg/errors"

// depthSlices aligns the leading aDepth dimensions of a with the leading
// bDepth dimensions of b and then invokes f on the post-prefix row slices
// of both in lock-step. It is the single home of depth broadcasting: if the
// prefixes disagree, leading size-1 axes are stripped (from a, then b), and
// the shallower operand is replicated along new leading axes until depths
// match. Rows of size 0 on either side short-circuit to a no-op.
//
// a must be exclusively owned by the caller; its shape and data may be
// rewritten. The aligned a is returned.
func depthSlices[T, U Elem](
	a *Array[T], b *Array[U],
	aDepth, bDepth int, env Env,
	f func(aShape Shape, aRow []T, bShape Shape, bRow []U) error,
) (*Array[T], error) {
	aDepth = min(aDepth, a.Rank())
	bDepth = min(bDepth, b.Rank())
	if !prefixesAgree(a.shape[:aDepth], b.shape[:bDepth]) {
		for len(a.shape) > 0 && a.shape[0] == 1 && aDepth > 0 {
			a.shape = a.shape[1:]
			aDepth--
		}
		if len(b.shape) > 0 && b.shape[0] == 1 {
			local := b.Share()
			for len(local.shape) > 0 && local.shape[0] == 1 && bDepth > 0 {
				local.shape = local.shape[1:]
				bDepth--
			}
			b = local
		}
		if !prefixesAgree(a.shape[:aDepth], b.shape[:bDepth]) {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"cannot combine arrays with shapes %v and %v because shape prefixes %v and %v are not compatible",
				a.shape, b.shape, a.shape[:aDepth], b.shape[:bDepth])
		}
	}

	switch {
	case aDepth < bDepth:
		for i := bDepth - aDepth - 1; i >= 0; i-- {
			dim := b.shape[i]
			a.setData(replicateRows(a, dim))
			aDepth++
		}
	case aDepth > bDepth:
		for i := aDepth - bDepth - 1; i >= 0; i-- {
			dim := a.shape[i]
			local := b.Share()
			local.setData(replicateRows(b, dim))
			b = local
			bDepth++
		}
	}

	aRowShape := a.shape[aDepth:]
	bRowShape := b.shape[bDepth:]
	aRowLen := aRowShape.NumElements()
	bRowLen := bRowShape.NumElements()
	if aRowLen == 0 || bRowLen == 0 {
		return a, nil
	}
	aData := a.mut()
	bData := b.data
	n := min(len(aData)/aRowLen, len(bData)/bRowLen)
	for i := 0; i < n; i++ {
		err := f(aRowShape, aData[i*aRowLen:(i+1)*aRowLen],
			bRowShape, bData[i*bRowLen:(i+1)*bRowLen])
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// prefixesAgree compares two shape prefixes element-wise up to the shorter
// length.
func prefixesAgree(a, b Shape) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// replicateRows repeats each row of a dim times and prepends a new leading
// axis of size dim.
func replicateRows[T Elem](a *Array[T], dim int) (Shape, []T) {
	rowLen := a.RowLen()
	newData := make([]T, 0, len(a.data)*dim)
	for r := 0; r < a.RowCount(); r++ {
		row := a.data[r*rowLen : (r+1)*rowLen]
		for j := 0; j < dim; j++ {
			newData = append(newData, row...)
		}
	}
	newShape := append(Shape{dim}, a.shape...)
	return newShape, newData
}
