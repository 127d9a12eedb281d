package array

// Flags are side-channel markers carried on an array's metadata.
type Flags uint8

const (
	// FlagBoolean marks an array known to contain only 0s and 1s, such as
	// search-result masks.
	FlagBoolean Flags = 1 << iota
)

// MapKeys is the associative key table a value may carry on its leading
// axis. Key semantics live in the surrounding runtime; this engine only
// relocates the table: it is dropped whenever the leading axis loses its
// identity and rotated alongside a top-level rotation.
type MapKeys struct {
	Keys Value
}

// Rotate cyclically rotates the key rows by the given offset, matching a
// rotation of the arrays's leading axis.
func (k *MapKeys) Rotate(by int) {
	if k == nil || k.Keys == nil {
		return
	}
	k.Keys = rotateValueRows(k.Keys, by)
}

// Meta holds optional per-array metadata. A nil Meta means no flags and no
// keys, so arrays without metadata pay nothing.
type Meta struct {
	Flags Flags
	Keys  *MapKeys
}

// clone copies the metadata so a derived array can relocate its key table
// without touching the source's.
func (m *Meta) clone() *Meta {
	if m == nil {
		return nil
	}
	c := *m
	if m.Keys != nil {
		k := *m.Keys
		c.Keys = &k
	}
	return &c
}

func rotateValueRows(v Value, by int) Value {
	switch a := v.(type) {
	case *Array[float64]:
		return rotateRows(a, by)
	case *Array[byte]:
		return rotateRows(a, by)
	case *Array[complex128]:
		return rotateRows(a, by)
	case *Array[rune]:
		return rotateRows(a, by)
	case *Array[Boxed]:
		return rotateRows(a, by)
	default:
		return v
	}
}

// rotateRows rotates the leading axis with the three-reversal method.
func rotateRows[T Elem](a *Array[T], by int) *Array[T] {
	rowCount := a.shape.RowCount()
	if rowCount == 0 {
		return a
	}
	rowLen := a.shape.RowLen()
	out := a.Clone()
	data := out.mut()
	mid := ((rowCount + by%rowCount) % rowCount) * rowLen
	reverseSlice(data[:mid])
	reverseSlice(data[mid:])
	reverseSlice(data)
	return out
}

func reverseSlice[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
