// Package pervade is the boundary to the elementwise engine. The dyadic
// engine only consumes its infallible broadcasting multiply, so only that
// slice of the dispatch table lives here.
package pervade

// Mul writes the broadcasting elementwise product of a and b into out.
// The shorter shape must be a leading prefix of the longer one; out must
// have the element count of the longer shape. Mul never fails: the caller
// has already checked prefix compatibility.
func Mul(aShape []int, a []float64, bShape []int, b []float64, out []float64) {
	binRecursive(aShape, a, bShape, b, out, func(x, y float64) float64 { return x * y })
}

// binRecursive applies f under leading-dimension broadcasting: a scalar side
// is spread over the other side's elements, equal shapes zip, and unequal
// ranks recurse row-by-row (prefix matching guarantees equal leading axes).
func binRecursive(aShape []int, a []float64, bShape []int, b []float64,
	out []float64, f func(x, y float64) float64) {
	switch {
	case len(aShape) == 0:
		for i, y := range b {
			out[i] = f(a[0], y)
		}
	case len(bShape) == 0:
		for i, x := range a {
			out[i] = f(x, b[0])
		}
	case len(aShape) == len(bShape):
		for i := range a {
			out[i] = f(a[i], b[i])
		}
	case len(aShape) > len(bShape):
		aRow := rowLen(aShape)
		bRow := rowLen(bShape)
		outRow := len(out) / aShape[0]
		for i := 0; i < aShape[0]; i++ {
			binRecursive(aShape[1:], a[i*aRow:(i+1)*aRow],
				bShape[1:], b[i*bRow:(i+1)*bRow],
				out[i*outRow:(i+1)*outRow], f)
		}
	default:
		aRow := rowLen(aShape)
		bRow := rowLen(bShape)
		outRow := len(out) / bShape[0]
		for i := 0; i < bShape[0]; i++ {
			binRecursive(aShape[1:], a[i*aRow:(i+1)*aRow],
				bShape[1:], b[i*bRow:(i+1)*bRow],
				out[i*outRow:(i+1)*outRow], f)
		}
	}
}

func rowLen(shape []int) int {
	n := 1
	for _, d := range shape[1:] {
		n *= d
	}
	return n
}
