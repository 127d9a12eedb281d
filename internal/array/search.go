package array

import (
	"hash/maphash"

	"github.com/pkg/errors"
)

// rowTable indexes an array's rows by hash for constant-time row lookups.
// Bucket entries are verified with RowsEq, so hash collisions are harmless.
type rowTable[T Elem] struct {
	seed    maphash.Seed
	src     *Array[T]
	buckets map[uint64][]int
}

func newRowTable[T Elem](a *Array[T]) *rowTable[T] {
	t := &rowTable[T]{
		seed:    maphash.MakeSeed(),
		src:     a,
		buckets: make(map[uint64][]int, a.RowCount()),
	}
	for i := 0; i < a.RowCount(); i++ {
		h := HashRow(t.seed, a.RowSlice(i))
		t.buckets[h] = append(t.buckets[h], i)
	}
	return t
}

// lookup returns the index of the first row equal to the given one.
func (t *rowTable[T]) lookup(row []T) (int, bool) {
	for _, i := range t.buckets[HashRow(t.seed, row)] {
		if RowsEq(t.src.RowSlice(i), row) {
			return i, true
		}
	}
	return 0, false
}

// Member reports which rows of elems occur as rows of the second array.
// The result is boolean and follows elems's leading-axis shape.
func Member(elems, of Value, env Env) (Value, error) {
	elems, of, err := Promote("member", elems, of)
	if err != nil {
		return nil, err
	}
	switch a := elems.(type) {
	case *Array[float64]:
		return member(a, of.(*Array[float64]), env)
	case *Array[byte]:
		return member(a, of.(*Array[byte]), env)
	case *Array[complex128]:
		return member(a, of.(*Array[complex128]), env)
	case *Array[rune]:
		return member(a, of.(*Array[rune]), env)
	case *Array[Boxed]:
		return member(a, of.(*Array[Boxed]), env)
	}
	return nil, errors.Wrapf(ErrTypeMismatch,
		"cannot look for members of %s array in %s array", elems.TypeName(), of.TypeName())
}

func member[T Elem](elems, of *Array[T], env Env) (*Array[byte], error) {
	var out *Array[byte]
	switch {
	case elems.Rank() == of.Rank():
		table := newRowTable(of)
		data := make([]byte, 0, elems.RowCount())
		for i := 0; i < elems.RowCount(); i++ {
			if _, ok := table.lookup(elems.RowSlice(i)); ok {
				data = append(data, 1)
			} else {
				data = append(data, 0)
			}
		}
		out = New(elems.shape[:min(1, elems.Rank())].Clone(), data)
	case elems.Rank() > of.Rank():
		rows := make([]*Array[byte], 0, elems.RowCount())
		for i := 0; i < elems.RowCount(); i++ {
			row, err := member(elems.Row(i), of, env)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		var err error
		out, err = FromRows(rows)
		if err != nil {
			return nil, err
		}
	default:
		if !of.shape.EndsWith(elems.shape) {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"cannot look for array of shape %v in array of shape %v", elems.shape, of.shape)
		}
		if of.Rank()-elems.Rank() == 1 {
			found := byte(0)
			for i := 0; i < of.RowCount(); i++ {
				if RowsEq(of.RowSlice(i), elems.data) {
					found = 1
					break
				}
			}
			out = Scalar(found)
		} else {
			rows := make([]*Array[byte], 0, of.RowCount())
			for i := 0; i < of.RowCount(); i++ {
				row, err := member(elems, of.Row(i), env)
				if err != nil {
					return nil, err
				}
				rows = append(rows, row)
			}
			var err error
			out, err = FromRows(rows)
			if err != nil {
				return nil, err
			}
		}
	}
	out.SetBoolean()
	return out, nil
}

// IndexOf finds the index of the first occurrence of each row of needle
// among the haystack's rows. Rows that do not occur map to the haystack's
// row count.
func IndexOf(needle, haystack Value, env Env) (Value, error) {
	needle, haystack, err := Promote("indexof", needle, haystack)
	if err != nil {
		return nil, err
	}
	switch a := needle.(type) {
	case *Array[float64]:
		return indexOf(a, haystack.(*Array[float64]), env)
	case *Array[byte]:
		return indexOf(a, haystack.(*Array[byte]), env)
	case *Array[complex128]:
		return indexOf(a, haystack.(*Array[complex128]), env)
	case *Array[rune]:
		return indexOf(a, haystack.(*Array[rune]), env)
	case *Array[Boxed]:
		return indexOf(a, haystack.(*Array[Boxed]), env)
	}
	return nil, errors.Wrapf(ErrTypeMismatch,
		"cannot look for indices of %s array in %s array", needle.TypeName(), haystack.TypeName())
}

func indexOf[T Elem](needle, haystack *Array[T], env Env) (*Array[float64], error) {
	switch {
	case needle.Rank() == haystack.Rank():
		table := newRowTable(haystack)
		data := make([]float64, 0, needle.RowCount())
		for i := 0; i < needle.RowCount(); i++ {
			if j, ok := table.lookup(needle.RowSlice(i)); ok {
				data = append(data, float64(j))
			} else {
				data = append(data, float64(haystack.RowCount()))
			}
		}
		return New(needle.shape[:min(1, needle.Rank())].Clone(), data), nil
	case needle.Rank() > haystack.Rank():
		rows := make([]*Array[float64], 0, needle.RowCount())
		for i := 0; i < needle.RowCount(); i++ {
			row, err := indexOf(needle.Row(i), haystack, env)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		return FromRows(rows)
	default:
		if !haystack.shape.EndsWith(needle.shape) {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"cannot get index of array of shape %v in array of shape %v",
				needle.shape, haystack.shape)
		}
		if haystack.Rank()-needle.Rank() == 1 {
			index := haystack.RowCount()
			for i := 0; i < haystack.RowCount(); i++ {
				if RowsEq(haystack.RowSlice(i), needle.data) {
					index = i
					break
				}
			}
			return Scalar(float64(index)), nil
		}
		rows := make([]*Array[float64], 0, haystack.RowCount())
		for i := 0; i < haystack.RowCount(); i++ {
			row, err := indexOf(needle, haystack.Row(i), env)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		return FromRows(rows)
	}
}

// Coordinate finds the multidimensional coordinate of the first occurrence
// of each row of needle in the haystack. At equal rank the result is the
// row index with a trailing unit axis; a lower-rank needle resolves to its
// full coordinates in the haystack's outer axes. A needle that does not
// occur maps to the haystack's outer shape itself.
func Coordinate(needle, haystack Value, env Env) (Value, error) {
	needle, haystack, err := Promote("coordinate", needle, haystack)
	if err != nil {
		return nil, err
	}
	switch a := needle.(type) {
	case *Array[float64]:
		return coordinate(a, haystack.(*Array[float64]), env)
	case *Array[byte]:
		return coordinate(a, haystack.(*Array[byte]), env)
	case *Array[complex128]:
		return coordinate(a, haystack.(*Array[complex128]), env)
	case *Array[rune]:
		return coordinate(a, haystack.(*Array[rune]), env)
	case *Array[Boxed]:
		return coordinate(a, haystack.(*Array[Boxed]), env)
	}
	return nil, errors.Wrapf(ErrTypeMismatch,
		"cannot look for coordinates of %s array in %s array", needle.TypeName(), haystack.TypeName())
}

func coordinate[T Elem](needle, haystack *Array[T], env Env) (*Array[float64], error) {
	switch {
	case needle.Rank() == haystack.Rank():
		table := newRowTable(haystack)
		data := make([]float64, 0, needle.RowCount())
		for i := 0; i < needle.RowCount(); i++ {
			if j, ok := table.lookup(needle.RowSlice(i)); ok {
				data = append(data, float64(j))
			} else {
				data = append(data, float64(haystack.RowCount()))
			}
		}
		shape := append(needle.shape[:min(1, needle.Rank())].Clone(), 1)
		return New(shape, data), nil
	case needle.Rank() > haystack.Rank():
		rows := make([]*Array[float64], 0, needle.RowCount())
		for i := 0; i < needle.RowCount(); i++ {
			row, err := coordinate(needle.Row(i), haystack, env)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		return FromRows(rows)
	default:
		if !haystack.shape.EndsWith(needle.shape) {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"cannot get coordinate of array of shape %v in array of shape %v",
				needle.shape, haystack.shape)
		}
		outerShape := haystack.shape[:haystack.Rank()-needle.Rank()]
		itemLen := haystack.shape[haystack.Rank()-needle.Rank():].NumElements()
		index := outerShape.Clone()
		if itemLen > 0 {
			for raw := 0; (raw+1)*itemLen <= len(haystack.data); raw++ {
				if RowsEq(haystack.data[raw*itemLen:(raw+1)*itemLen], needle.data) {
					index = outerShape.FlatToDims(raw, index[:0])
					break
				}
			}
		}
		if len(index) == 1 {
			return Scalar(float64(index[0])), nil
		}
		data := make([]float64, len(index))
		for i, d := range index {
			data[i] = float64(d)
		}
		return New(Shape{len(index)}, data), nil
	}
}

// ProgressiveIndexOf is IndexOf where every match consumes its haystack
// row: the nth occurrence of a repeated needle row resolves to the nth
// occurrence in the haystack. Rows with no unconsumed match map to the
// haystack's row count.
func ProgressiveIndexOf(needle, haystack Value, env Env) (Value, error) {
	needle, haystack, err := Promote("indexof", needle, haystack)
	if err != nil {
		return nil, err
	}
	switch a := needle.(type) {
	case *Array[float64]:
		return progressiveIndexOf(a, haystack.(*Array[float64]), env)
	case *Array[byte]:
		return progressiveIndexOf(a, haystack.(*Array[byte]), env)
	case *Array[complex128]:
		return progressiveIndexOf(a, haystack.(*Array[complex128]), env)
	case *Array[rune]:
		return progressiveIndexOf(a, haystack.(*Array[rune]), env)
	case *Array[Boxed]:
		return progressiveIndexOf(a, haystack.(*Array[Boxed]), env)
	}
	return nil, errors.Wrapf(ErrTypeMismatch,
		"cannot look for indices of %s array in %s array", needle.TypeName(), haystack.TypeName())
}

// progressiveUsed tracks which haystack rows earlier matches have consumed.
type progressiveUsed struct {
	seed maphash.Seed
	set  map[progressiveKey]struct{}
}

type progressiveKey struct {
	hash  uint64
	index int
}

func newProgressiveUsed() *progressiveUsed {
	return &progressiveUsed{seed: maphash.MakeSeed(), set: make(map[progressiveKey]struct{})}
}

// claim marks haystack row i as consumed for the given row hash. It reports
// whether the row was still available.
func (u *progressiveUsed) claim(hash uint64, i int) bool {
	key := progressiveKey{hash: hash, index: i}
	if _, ok := u.set[key]; ok {
		return false
	}
	u.set[key] = struct{}{}
	return true
}

func progressiveIndexOf[T Elem](needle, haystack *Array[T], env Env) (*Array[float64], error) {
	switch {
	case needle.Rank() == haystack.Rank():
		used := newProgressiveUsed()
		data := make([]float64, 0, needle.RowCount())
		if needle.Rank() == 1 {
			for _, elem := range needle.data {
				hash := HashRow(used.seed, []T{elem})
				index := haystack.RowCount()
				for i, of := range haystack.data {
					if elemEq(elem, of) && used.claim(hash, i) {
						index = i
						break
					}
				}
				data = append(data, float64(index))
			}
			return FromSlice(data), nil
		}
		rowShapesMatch := needle.shape.Row().Equal(haystack.shape.Row())
		for i := 0; i < needle.RowCount(); i++ {
			row := needle.RowSlice(i)
			hash := HashRow(used.seed, row)
			index := haystack.RowCount()
			if rowShapesMatch {
				for j := 0; j < haystack.RowCount(); j++ {
					if RowsEq(row, haystack.RowSlice(j)) && used.claim(hash, j) {
						index = j
						break
					}
				}
			}
			data = append(data, float64(index))
		}
		return New(needle.shape[:min(1, needle.Rank())].Clone(), data), nil
	case needle.Rank() > haystack.Rank():
		rows := make([]*Array[float64], 0, needle.RowCount())
		for i := 0; i < needle.RowCount(); i++ {
			row, err := progressiveIndexOf(needle.Row(i), haystack, env)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		return FromRows(rows)
	default:
		if haystack.Rank()-needle.Rank() == 1 {
			index := haystack.RowCount()
			if needle.shape.Equal(haystack.shape.Row()) {
				for i := 0; i < haystack.RowCount(); i++ {
					if RowsEq(haystack.RowSlice(i), needle.data) {
						index = i
						break
					}
				}
			}
			return Scalar(float64(index)), nil
		}
		rows := make([]*Array[float64], 0, haystack.RowCount())
		for i := 0; i < haystack.RowCount(); i++ {
			row, err := progressiveIndexOf(needle, haystack.Row(i), env)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		return FromRows(rows)
	}
}
