package array

import (
	"hash/maphash"

	"github.com/pkg/errors"
)

// Value is the closed union over the concrete element-type variants of
// Array. Operators are defined once per concrete Array[T] and lifted to
// Value by dispatch that matches operand kinds, coercing mismatched
// byte/boxed combinations before delegating.
//
// The variants are *Array[float64], *Array[byte], *Array[complex128],
// *Array[rune] and *Array[Boxed].
type Value interface {
	isValue()
	Shape() Shape
	Rank() int
	NumElements() int
	RowCount() int
	TypeName() string
	CloneValue() Value
	ShareValue() Value
	RowValue(i int) Value
	MapKeys() *MapKeys
	DropMapKeys()
	IsBoolean() bool
}

func (a *Array[T]) isValue() {}

// TypeName returns the element-kind tag used in error messages.
func (a *Array[T]) TypeName() string { return elemTypeName[T]() }

// CloneValue is Clone behind the Value interface.
func (a *Array[T]) CloneValue() Value { return a.Clone() }

// ShareValue is Share behind the Value interface.
func (a *Array[T]) ShareValue() Value { return a.Share() }

// RowValue is Row behind the Value interface.
func (a *Array[T]) RowValue(i int) Value { return a.Row(i) }

// Equal compares two values for exact structural equality. Number and byte
// arrays compare by numeric value, so coercion never changes equality.
func Equal(a, b Value) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	switch x := a.(type) {
	case *Array[float64]:
		switch y := b.(type) {
		case *Array[float64]:
			return RowsEq(x.data, y.data)
		case *Array[byte]:
			return numByteEq(x.data, y.data)
		}
	case *Array[byte]:
		switch y := b.(type) {
		case *Array[byte]:
			return RowsEq(x.data, y.data)
		case *Array[float64]:
			return numByteEq(y.data, x.data)
		}
	case *Array[complex128]:
		if y, ok := b.(*Array[complex128]); ok {
			return RowsEq(x.data, y.data)
		}
	case *Array[rune]:
		if y, ok := b.(*Array[rune]); ok {
			return RowsEq(x.data, y.data)
		}
	case *Array[Boxed]:
		if y, ok := b.(*Array[Boxed]); ok {
			return RowsEq(x.data, y.data)
		}
	}
	return false
}

func numByteEq(nums []float64, bytes []byte) bool {
	for i := range nums {
		if nums[i] != float64(bytes[i]) {
			return false
		}
	}
	return true
}

// hashValue hashes a whole value: kind tag, shape, then elements. Bytes
// hash under the number tag so values that Equal hash identically.
func hashValue(h *maphash.Hash, v Value) {
	writeTagAndShape := func(tag byte, s Shape) {
		h.WriteByte(tag)
		for _, d := range s {
			elemHash(h, d)
		}
	}
	switch a := v.(type) {
	case *Array[float64]:
		writeTagAndShape(0, a.shape)
		for _, e := range a.data {
			hashFloat(h, e)
		}
	case *Array[byte]:
		writeTagAndShape(0, a.shape)
		for _, e := range a.data {
			hashFloat(h, float64(e))
		}
	case *Array[complex128]:
		writeTagAndShape(1, a.shape)
		for _, e := range a.data {
			elemHash(h, e)
		}
	case *Array[rune]:
		writeTagAndShape(2, a.shape)
		for _, e := range a.data {
			elemHash(h, e)
		}
	case *Array[Boxed]:
		writeTagAndShape(3, a.shape)
		for _, e := range a.data {
			hashValue(h, e.V)
		}
	}
}

// HashValue hashes a value with the given seed.
func HashValue(seed maphash.Seed, v Value) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	hashValue(&h, v)
	return h.Sum64()
}

// BytesToNums widens a byte array to a number array. The widening is exact.
func BytesToNums(a *Array[byte]) *Array[float64] {
	data := make([]float64, len(a.data))
	for i, b := range a.data {
		data[i] = float64(b)
	}
	out := New(a.shape.Clone(), data)
	out.meta = a.meta.clone()
	return out
}

// ToBoxes coerces a value to a box array of the same shape, wrapping each
// element as a scalar. A box array passes through unchanged. The wrapping
// is lossless.
func ToBoxes(v Value) *Array[Boxed] {
	switch a := v.(type) {
	case *Array[Boxed]:
		return a
	case *Array[float64]:
		return boxElems(a)
	case *Array[byte]:
		return boxElems(a)
	case *Array[complex128]:
		return boxElems(a)
	case *Array[rune]:
		return boxElems(a)
	default:
		return nil
	}
}

func boxElems[T Elem](a *Array[T]) *Array[Boxed] {
	data := make([]Boxed, len(a.data))
	for i, e := range a.data {
		data[i] = Boxed{V: Scalar(e)}
	}
	out := New(a.shape.Clone(), data)
	out.meta = a.meta.clone()
	return out
}

// Promote coerces two operands to a common element kind: identical kinds
// pass through, a byte operand widens to number when paired with one, and
// anything paired with a box operand is boxed. Any other combination is a
// type mismatch naming both operand kinds.
func Promote(op string, a, b Value) (Value, Value, error) {
	if _, ok := a.(*Array[Boxed]); ok {
		if _, also := b.(*Array[Boxed]); !also {
			return a, ToBoxes(b), nil
		}
		return a, b, nil
	}
	if _, ok := b.(*Array[Boxed]); ok {
		return ToBoxes(a), b, nil
	}
	switch x := a.(type) {
	case *Array[float64]:
		switch y := b.(type) {
		case *Array[float64]:
			return a, b, nil
		case *Array[byte]:
			return a, BytesToNums(y), nil
		}
	case *Array[byte]:
		switch y := b.(type) {
		case *Array[byte]:
			return a, b, nil
		case *Array[float64]:
			return BytesToNums(x), y, nil
		}
	case *Array[complex128]:
		if _, ok := b.(*Array[complex128]); ok {
			return a, b, nil
		}
	case *Array[rune]:
		if _, ok := b.(*Array[rune]); ok {
			return a, b, nil
		}
	}
	return nil, nil, errors.Wrapf(ErrTypeMismatch,
		"cannot %s %s array and %s array", op, a.TypeName(), b.TypeName())
}

// AsNums converts a value to a number array, widening bytes. Any other
// kind is a type mismatch.
func AsNums(op string, v Value) (*Array[float64], error) {
	switch a := v.(type) {
	case *Array[float64]:
		return a, nil
	case *Array[byte]:
		return BytesToNums(a), nil
	default:
		return nil, errors.Wrapf(ErrTypeMismatch, "cannot %s %s array", op, v.TypeName())
	}
}
