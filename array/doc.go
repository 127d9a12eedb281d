// Package array is the public surface of the dyadic shape-transformation
// and search engine.
//
// # Overview
//
// Arrays are n-dimensional values over a flat row-major buffer. The engine
// works on five element kinds: numbers (float64), bytes, complex numbers,
// characters and boxes (nested values). A Value is the closed union over
// those kinds; operators dispatch on the concrete kind and coerce the two
// legal mismatches (byte widens to number, anything boxes when paired with
// a box).
//
// # Basic Usage
//
//	import "github.com/ember-lang/ember/array"
//
//	func main() {
//	    env := array.NewContext()
//
//	    // 12 elements reshaped to a 3x4 matrix
//	    v, _ := array.Reshape(
//	        array.FromSlice([]float64{3, 4}),
//	        array.FromSlice([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}),
//	        env,
//	    )
//
//	    // rotate its rows by one
//	    v, _ = array.Rotate(array.Scalar(1.0), v, env)
//	}
//
// # Fill Values
//
// Every operator takes an Env. With no fills set, shape mismatches are
// errors; with a fill for the operand's element kind, reshape pads instead
// of cycling, rotate shifts instead of wrapping, windows are taken at every
// position, and find pads short haystacks:
//
//	env := array.NewContext().WithNumFill(0)
//
// # Errors
//
// Failures wrap one of the exported sentinel error kinds, so callers can
// classify without string matching:
//
//	if errors.Is(err, array.ErrShapeMismatch) { ... }
//
// Operators never panic on bad input; panics are reserved for broken
// internal invariants.
package array
