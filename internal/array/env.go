package array

import (
	"math"

	"github.com/pkg/errors"
)

// Env is the slice of the execution context the dyadic engine consumes:
// optional fill values per element kind, an optional array fill for count
// padding, and the size guard run before any large allocation. Absence of a
// fill is a normal, checked condition.
type Env interface {
	NumFill() (float64, bool)
	ByteFill() (byte, bool)
	ComplexFill() (complex128, bool)
	CharFill() (rune, bool)
	BoxFill() (Boxed, bool)
	// NumArrayFill returns the scalar-or-1-D numeric fill used to pad keep
	// counts.
	NumArrayFill() (*Array[float64], bool)
	// ValidateSize rejects element counts exceeding the configured limit.
	ValidateSize(elems int) error
}

// ScalarFill returns the context's fill value for element type T, if set.
func ScalarFill[T Elem](env Env) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case float64:
		if v, ok := env.NumFill(); ok {
			return any(v).(T), true
		}
	case byte:
		if v, ok := env.ByteFill(); ok {
			return any(v).(T), true
		}
	case complex128:
		if v, ok := env.ComplexFill(); ok {
			return any(v).(T), true
		}
	case rune:
		if v, ok := env.CharFill(); ok {
			return any(v).(T), true
		}
	case Boxed:
		if v, ok := env.BoxFill(); ok {
			return any(v).(T), true
		}
	}
	return zero, false
}

// ValidateShapeSize multiplies dimension sizes with an overflow guard and
// runs the context's size validation, returning the element count.
func ValidateShapeSize(env Env, dims ...int) (int, error) {
	elems := 1
	for _, d := range dims {
		if d < 0 {
			return 0, errors.Wrapf(ErrInvalidDimension, "dimension cannot be negative: %d", d)
		}
		if d != 0 && elems > math.MaxInt/d {
			return 0, errors.Wrapf(ErrInvalidDimension, "shape %v is too large", dims)
		}
		elems *= d
	}
	if err := env.ValidateSize(elems); err != nil {
		return 0, err
	}
	return elems, nil
}

// DefaultMaxElements bounds a single array's element count.
const DefaultMaxElements = 1 << 32

// Context is the concrete execution context. Fill values are optional and
// call-scoped; the zero Context has none set and the default size limit.
type Context struct {
	numFill     *float64
	byteFill    *byte
	complexFill *complex128
	charFill    *rune
	boxFill     *Boxed
	arrayFill   *Array[float64]

	// MaxElements caps a single array's element count. Zero means
	// DefaultMaxElements.
	MaxElements int
}

// NewContext returns a context with no fill values set.
func NewContext() *Context {
	return &Context{}
}

// WithNumFill sets the numeric fill value.
func (c *Context) WithNumFill(v float64) *Context { c.numFill = &v; return c }

// WithByteFill sets the byte fill value.
func (c *Context) WithByteFill(v byte) *Context { c.byteFill = &v; return c }

// WithComplexFill sets the complex fill value.
func (c *Context) WithComplexFill(v complex128) *Context { c.complexFill = &v; return c }

// WithCharFill sets the character fill value.
func (c *Context) WithCharFill(v rune) *Context { c.charFill = &v; return c }

// WithBoxFill sets the box fill value.
func (c *Context) WithBoxFill(v Boxed) *Context { c.boxFill = &v; return c }

// WithArrayFill sets the numeric array fill used to pad keep counts.
func (c *Context) WithArrayFill(a *Array[float64]) *Context { c.arrayFill = a; return c }

func (c *Context) NumFill() (float64, bool) {
	if c.numFill == nil {
		return 0, false
	}
	return *c.numFill, true
}

func (c *Context) ByteFill() (byte, bool) {
	if c.byteFill == nil {
		return 0, false
	}
	return *c.byteFill, true
}

func (c *Context) ComplexFill() (complex128, bool) {
	if c.complexFill == nil {
		return 0, false
	}
	return *c.complexFill, true
}

func (c *Context) CharFill() (rune, bool) {
	if c.charFill == nil {
		return 0, false
	}
	return *c.charFill, true
}

func (c *Context) BoxFill() (Boxed, bool) {
	if c.boxFill == nil {
		return Boxed{}, false
	}
	return *c.boxFill, true
}

func (c *Context) NumArrayFill() (*Array[float64], bool) {
	if c.arrayFill == nil {
		return nil, false
	}
	return c.arrayFill, true
}

func (c *Context) ValidateSize(elems int) error {
	limit := c.MaxElements
	if limit == 0 {
		limit = DefaultMaxElements
	}
	if elems > limit {
		return errors.Wrapf(ErrInvalidDimension,
			"array of %d elements exceeds the limit of %d", elems, limit)
	}
	return nil
}
