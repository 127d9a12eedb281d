package array

import "github.com/pkg/errors"

// Rerank changes how many trailing axes of v count as its rows.
//
// For a non-negative rank r, the axes before the last r are folded
// (multiplied) into a new leading axis; if r is at least the current rank,
// unit leading axes are inserted instead. A negative rank folds the leading
// |r| axes into one. The data buffer is untouched.
func Rerank(rank, v Value, env Env) (Value, error) {
	irank, err := asIntScalar(rank, "rank")
	if err != nil {
		return nil, err
	}
	shape := v.Shape()
	var newShape Shape
	r := abs(irank)
	if irank >= 0 {
		if r >= len(shape) {
			newShape = make(Shape, 0, r+1)
			for i := 0; i < r-len(shape)+1; i++ {
				newShape = append(newShape, 1)
			}
			newShape = append(newShape, shape...)
		} else {
			mid := len(shape) - r
			newShape = append(Shape{shape[:mid].NumElements()}, shape[mid:]...)
		}
	} else {
		if r > len(shape) {
			return nil, errors.Wrapf(ErrRankMismatch,
				"negative rerank has magnitude %d, which is greater than the array's rank %d",
				r, len(shape))
		}
		newShape = append(Shape{shape[:r].NumElements()}, shape[r:]...)
	}
	out := relabelValue(v, newShape.Clone())
	out.DropMapKeys()
	return out, nil
}

// UndoRerank reconstructs a shape from the rerank parameter and the
// remembered original shape. If the reconstructed shape's element count
// does not match the array's, it is deliberately a no-op rather than an
// error; callers must not assume symmetry with UndoReshape.
func UndoRerank(rank, origShape, v Value, env Env) (Value, error) {
	if v.Rank() == 0 {
		if boxes, ok := v.(*Array[Boxed]); ok {
			inner, err := UndoRerank(rank, origShape, boxes.data[0].V, env)
			if err != nil {
				return nil, err
			}
			out := boxes.Clone()
			out.mut()[0] = Boxed{V: inner}
			return out, nil
		}
		return v, nil
	}
	irank, err := asIntScalar(rank, "rank")
	if err != nil {
		return nil, err
	}
	orig, err := asNatList(origShape, "shape")
	if err != nil {
		return nil, err
	}
	r := abs(irank)
	var newShape Shape
	if irank >= 0 {
		take := len(orig) - r
		if take < 0 {
			take = 0
		}
		skip := max(max(r+1-len(orig), 0), 1)
		newShape = append(newShape, orig[:take]...)
		if skip < v.Rank() {
			newShape = append(newShape, v.Shape()[skip:]...)
		}
	} else {
		take := min(r, len(orig))
		newShape = append(newShape, orig[:take]...)
		newShape = append(newShape, v.Shape()[1:]...)
	}
	elems, err := ValidateShapeSize(env, newShape...)
	if err != nil {
		return nil, err
	}
	if elems != v.NumElements() {
		return v, nil
	}
	return relabelValue(v, newShape.Clone()), nil
}
