package array

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// Elem is the constraint for supported array element types.
//
// The five kinds wrapped by Value are float64 (numbers), byte, complex128,
// rune (characters) and Boxed. Integer arrays exist only internally, for
// rotation offsets; they are never wrapped as a Value.
type Elem interface {
	float64 | byte | complex128 | rune | int | Boxed
}

// Boxed is an opaque element wrapping an arbitrary Value, letting an array
// hold heterogeneous, arbitrarily-shaped sub-values.
type Boxed struct {
	V Value
}

// elemTypeName returns the human-readable tag for T, used in type errors.
func elemTypeName[T Elem]() string {
	var dummy T
	switch any(dummy).(type) {
	case float64:
		return "number"
	case byte:
		return "byte"
	case complex128:
		return "complex"
	case rune:
		return "character"
	case int:
		return "integer"
	case Boxed:
		return "box"
	default:
		return "unknown"
	}
}

// elemEq compares two elements. NaN compares equal to NaN so that searches
// and run-length compression treat it as an ordinary element.
func elemEq[T Elem](a, b T) bool {
	switch a := any(a).(type) {
	case float64:
		b := any(b).(float64)
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	case complex128:
		b := any(b).(complex128)
		return floatEq(real(a), real(b)) && floatEq(imag(a), imag(b))
	case Boxed:
		return Equal(a.V, any(b).(Boxed).V)
	default:
		return any(a) == any(b)
	}
}

func floatEq(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// elemHash writes the hash of one element. Elements that compare equal with
// elemEq hash identically; in particular bytes hash as their numeric value
// and all NaNs hash alike.
func elemHash[T Elem](h *maphash.Hash, v T) {
	var buf [8]byte
	switch v := any(v).(type) {
	case float64:
		hashFloat(h, v)
	case byte:
		hashFloat(h, float64(v))
	case complex128:
		hashFloat(h, real(v))
		hashFloat(h, imag(v))
	case rune:
		binary.LittleEndian.PutUint32(buf[:4], uint32(v))
		h.Write(buf[:4])
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	case Boxed:
		hashValue(h, v.V)
	}
}

func hashFloat(h *maphash.Hash, v float64) {
	var buf [8]byte
	if math.IsNaN(v) {
		v = math.NaN()
	} else if v == 0 {
		v = 0 // normalize -0.0
	}
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	h.Write(buf[:])
}

// HashRow hashes a row slice with the given seed.
func HashRow[T Elem](seed maphash.Seed, row []T) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, v := range row {
		elemHash(&h, v)
	}
	return h.Sum64()
}

// RowsEq compares two row slices element-wise.
func RowsEq[T Elem](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !elemEq(a[i], b[i]) {
			return false
		}
	}
	return true
}
