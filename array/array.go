package array

import (
	"github.com/ember-lang/ember/internal/array"
)

// Core types, re-exported from the engine.
type (
	// Shape is the list of axis sizes; an empty shape is a scalar.
	Shape = array.Shape
	// Value is the closed union over the five concrete array kinds.
	Value = array.Value
	// Boxed is an element wrapping an arbitrary nested Value.
	Boxed = array.Boxed
	// Env supplies optional fill values and the allocation size guard.
	Env = array.Env
	// Context is the concrete Env with builder-style fill setters.
	Context = array.Context
)

// Elem is the constraint over supported element types.
type Elem = array.Elem

// Array is the concrete n-dimensional array over element type T.
type Array[T Elem] = array.Array[T]

// Sentinel error kinds, matchable with errors.Is.
var (
	ErrShapeMismatch    = array.ErrShapeMismatch
	ErrRankMismatch     = array.ErrRankMismatch
	ErrAmbiguousShape   = array.ErrAmbiguousShape
	ErrInvalidDimension = array.ErrInvalidDimension
	ErrInvalidKeep      = array.ErrInvalidKeep
	ErrNotInvertible    = array.ErrNotInvertible
	ErrLengthMismatch   = array.ErrLengthMismatch
	ErrTypeMismatch     = array.ErrTypeMismatch
	ErrTooManyIndices   = array.ErrTooManyIndices
	ErrZeroWindow       = array.ErrZeroWindow
)

// New creates an array from a shape and flat data buffer, taking ownership
// of both.
func New[T Elem](shape Shape, data []T) *Array[T] { return array.New(shape, data) }

// Scalar creates a rank-0 array holding a single element.
func Scalar[T Elem](v T) *Array[T] { return array.Scalar(v) }

// FromSlice creates a rank-1 array from a slice, copying it.
func FromSlice[T Elem](data []T) *Array[T] { return array.FromSlice(data) }

// FromRows assembles an array from rows of identical shape.
func FromRows[T Elem](rows []*Array[T]) (*Array[T], error) { return array.FromRows(rows) }

// NewContext returns an Env with no fill values set and the default size
// limit.
func NewContext() *Context { return array.NewContext() }

// Equal compares two values for structural equality. Numbers and bytes
// compare by numeric value.
func Equal(a, b Value) bool { return array.Equal(a, b) }
