package array

import "fmt"

// Shape represents the dimensions of an array. Its length is the array's
// rank; an empty shape is a scalar. Data is laid out row-major, so the last
// axis varies fastest.
type Shape []int

// NumElements returns the total number of elements an array of this shape
// holds. A scalar has 1 element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Row returns the shape of one row, i.e. the shape with the leading axis
// removed. The row shape of a scalar is the scalar shape.
func (s Shape) Row() Shape {
	if len(s) == 0 {
		return nil
	}
	return s[1:]
}

// RowCount returns the size of the leading axis, treating a scalar as a
// single row.
func (s Shape) RowCount() int {
	if len(s) == 0 {
		return 1
	}
	return s[0]
}

// RowLen returns the number of elements in one row.
func (s Shape) RowLen() int {
	return s.Row().NumElements()
}

// HasZero reports whether any axis has size zero.
func (s Shape) HasZero() bool {
	for _, dim := range s {
		if dim == 0 {
			return true
		}
	}
	return false
}

// EndsWith reports whether suffix matches the trailing axes of s.
func (s Shape) EndsWith(suffix Shape) bool {
	if len(suffix) > len(s) {
		return false
	}
	return s[len(s)-len(suffix):].Equal(suffix)
}

// FlatToDims converts a flat row-major offset into per-axis indices,
// reusing dims to avoid allocation.
func (s Shape) FlatToDims(flat int, dims []int) []int {
	dims = dims[:0]
	for i := len(s) - 1; i >= 0; i-- {
		dims = append(dims, flat%s[i])
		flat /= s[i]
	}
	for i, j := 0, len(dims)-1; i < j; i, j = i+1, j-1 {
		dims[i], dims[j] = dims[j], dims[i]
	}
	return dims
}

// DimsToFlat converts per-axis indices into a flat row-major offset.
// Returns false if any index is out of bounds for its axis.
func (s Shape) DimsToFlat(dims []int) (int, bool) {
	flat := 0
	for i, dim := range s {
		if i >= len(dims) {
			break
		}
		if dims[i] >= dim {
			return 0, false
		}
		flat = flat*dim + dims[i]
	}
	return flat, true
}

// PrefixesMatch reports whether the shorter of the two shapes is a prefix of
// the longer one.
func PrefixesMatch(a, b Shape) bool {
	n := min(len(a), len(b))
	return a[:n].Equal(b[:n])
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}
