package array

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// Array is an n-dimensional value of homogeneous element type T over a flat
// row-major buffer. The buffer is clone-on-write: Share marks it shared, and
// any mutation first makes the receiver the exclusive owner.
type Array[T Elem] struct {
	shape  Shape
	data   []T
	shared bool
	meta   *Meta
}

// New creates an array from a shape and flat data buffer, taking ownership
// of both. Panics if the buffer length does not match the shape; that is a
// programmer error, not an input error.
func New[T Elem](shape Shape, data []T) *Array[T] {
	a := &Array[T]{shape: shape, data: data}
	a.validate()
	return a
}

// Scalar creates a rank-0 array holding a single element.
func Scalar[T Elem](v T) *Array[T] {
	return &Array[T]{shape: nil, data: []T{v}}
}

// FromSlice creates a rank-1 array from a slice, copying it.
func FromSlice[T Elem](data []T) *Array[T] {
	return &Array[T]{shape: Shape{len(data)}, data: slices.Clone(data)}
}

// validate enforces the core invariant: the buffer length equals the
// product of the shape.
func (a *Array[T]) validate() {
	if len(a.data) != a.shape.NumElements() {
		panic(fmt.Sprintf("array invariant broken: shape %v requires %d elements, but buffer has %d",
			a.shape, a.shape.NumElements(), len(a.data)))
	}
}

// Shape returns the array's shape. The caller must not modify it.
func (a *Array[T]) Shape() Shape { return a.shape }

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int { return len(a.shape) }

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int { return len(a.data) }

// RowCount returns the size of the leading axis, treating a scalar as one
// row.
func (a *Array[T]) RowCount() int { return a.shape.RowCount() }

// RowLen returns the number of elements in one row.
func (a *Array[T]) RowLen() int { return a.shape.RowLen() }

// Data returns the flat buffer. The caller must not modify it; mutation
// goes through the clone-on-write path.
func (a *Array[T]) Data() []T { return a.data }

// RowSlice returns the flat slice of row i.
func (a *Array[T]) RowSlice(i int) []T {
	l := a.RowLen()
	return a.data[i*l : (i+1)*l]
}

// Row returns row i as a new array sharing the buffer.
func (a *Array[T]) Row(i int) *Array[T] {
	a.shared = true
	return &Array[T]{shape: a.shape.Row().Clone(), data: a.RowSlice(i), shared: true}
}

// Share returns a shallow copy of the array. Both copies see the same
// buffer until one of them mutates; the mutating side clones first.
func (a *Array[T]) Share() *Array[T] {
	a.shared = true
	s := *a
	s.meta = a.meta.clone()
	s.shape = a.shape.Clone()
	return &s
}

// Clone returns a deep, exclusively-owned copy.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{shape: a.shape.Clone(), data: slices.Clone(a.data)}
	c.meta = a.meta.clone()
	return c
}

// mut returns the buffer for writing, cloning it first if it is shared.
func (a *Array[T]) mut() []T {
	if a.shared {
		a.data = slices.Clone(a.data)
		a.shared = false
	}
	return a.data
}

// setData replaces the buffer and shape, dropping any shared ownership.
func (a *Array[T]) setData(shape Shape, data []T) {
	a.shape = shape
	a.data = data
	a.shared = false
	a.validate()
}

// Metadata access. ensureMeta allocates lazily; readers tolerate nil.

func (a *Array[T]) ensureMeta() *Meta {
	if a.meta == nil {
		a.meta = &Meta{}
	}
	return a.meta
}

// IsBoolean reports whether the array is flagged as all-boolean.
func (a *Array[T]) IsBoolean() bool {
	return a.meta != nil && a.meta.Flags&FlagBoolean != 0
}

// SetBoolean flags the array as containing only 0s and 1s.
func (a *Array[T]) SetBoolean() {
	a.ensureMeta().Flags |= FlagBoolean
}

// ResetFlags clears side-channel flags after a transform that may have
// invalidated them.
func (a *Array[T]) ResetFlags() {
	if a.meta != nil {
		a.meta.Flags = 0
	}
}

// MapKeys returns the associative key table, if any.
func (a *Array[T]) MapKeys() *MapKeys {
	if a.meta == nil {
		return nil
	}
	return a.meta.Keys
}

// SetMapKeys attaches an associative key table.
func (a *Array[T]) SetMapKeys(k *MapKeys) {
	a.ensureMeta().Keys = k
}

// DropMapKeys removes the key table. Called whenever the leading axis is
// restructured.
func (a *Array[T]) DropMapKeys() {
	if a.meta != nil {
		a.meta.Keys = nil
	}
}

// Reverse reverses the array's rows in place.
func (a *Array[T]) Reverse() {
	a.ReverseDepth(0)
}

// ReverseDepth reverses the rows of every sub-array at the given depth.
// Depth 0 reverses the leading axis.
func (a *Array[T]) ReverseDepth(depth int) {
	if depth >= a.Rank() {
		return
	}
	chunk := a.shape[depth:].NumElements()
	rowLen := a.shape[depth+1:].NumElements()
	n := a.shape[depth]
	if chunk == 0 || n == 0 {
		return
	}
	data := a.mut()
	for start := 0; start+chunk <= len(data); start += chunk {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			ri := data[start+i*rowLen : start+(i+1)*rowLen]
			rj := data[start+j*rowLen : start+(j+1)*rowLen]
			for k := range ri {
				ri[k], rj[k] = rj[k], ri[k]
			}
		}
	}
}

// FillToShape grows the array to a target shape of the same rank, keeping
// every element at its coordinates and writing fill everywhere else.
func (a *Array[T]) FillToShape(target Shape, fill T) {
	if a.shape.Equal(target) {
		return
	}
	dst := make([]T, target.NumElements())
	for i := range dst {
		dst[i] = fill
	}
	if len(a.data) > 0 {
		dims := make([]int, 0, len(a.shape))
		for flat, v := range a.data {
			dims = a.shape.FlatToDims(flat, dims)
			if k, ok := target.DimsToFlat(dims); ok {
				dst[k] = v
			}
		}
	}
	a.setData(target.Clone(), dst)
}

// FromRows assembles an array from rows of identical shape. An empty row
// list produces an empty rank-1 array.
func FromRows[T Elem](rows []*Array[T]) (*Array[T], error) {
	if len(rows) == 0 {
		return New[T](Shape{0}, nil), nil
	}
	rowShape := rows[0].shape
	data := make([]T, 0, len(rows)*rows[0].NumElements())
	for _, row := range rows {
		if !row.shape.Equal(rowShape) {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"cannot combine rows of shapes %v and %v", rowShape, row.shape)
		}
		data = append(data, row.data...)
	}
	shape := append(Shape{len(rows)}, rowShape.Clone()...)
	return New(shape, data), nil
}

func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]%v", elemTypeName[T](), a.shape)
}
