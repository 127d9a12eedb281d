package array

import (
	"github.com/ember-lang/ember/internal/array"
)

// Reshape reinterprets or rebuilds v under the given shape specifier.
// A scalar specifier replicates v as rows (reversing on a negative count);
// a list specifier may contain one signed-infinity placeholder to derive,
// and negative entries reverse the corresponding axis.
func Reshape(shapeSpec, v Value, env Env) (Value, error) {
	return array.Reshape(shapeSpec, v, env)
}

// UndoReshape restores a previous shape after a reshape, as a pure relabel.
// It fails if the element count changed.
func UndoReshape(oldShape, v Value, env Env) (Value, error) {
	return array.UndoReshape(oldShape, v, env)
}

// Rerank changes how many trailing axes of v count as its rows.
func Rerank(rank, v Value, env Env) (Value, error) {
	return array.Rerank(rank, v, env)
}

// UndoRerank restores the remembered shape after a rerank. A count mismatch
// is a silent no-op, not an error.
func UndoRerank(rank, origShape, v Value, env Env) (Value, error) {
	return array.UndoRerank(rank, origShape, v, env)
}

// Keep replicates or filters the rows of v by per-row counts.
func Keep(counts, v Value, env Env) (Value, error) {
	return array.Keep(counts, v, env)
}

// Unkeep run-length-compresses consecutive equal rows, returning the counts
// and the compressed array.
func Unkeep(v Value, env Env) (Value, Value, error) {
	return array.Unkeep(v, env)
}

// UndoKeep reconstructs the pre-image of a boolean keep.
func UndoKeep(counts, kept, into Value, env Env) (Value, error) {
	return array.UndoKeep(counts, kept, into, env)
}

// Rotate cyclically rotates v's axes by signed offsets, outermost first.
// With a fill value set, the rotation becomes a shift.
func Rotate(by, v Value, env Env) (Value, error) {
	return array.Rotate(by, v, env)
}

// RotateDepth rotates rows at the given leading-dimension depths.
func RotateDepth(by, v Value, byDepth, depth int, env Env) (Value, error) {
	return array.RotateDepth(by, v, byDepth, depth, env)
}

// Windows extracts every sliding sub-block of the given per-axis sizes.
func Windows(sizeSpec, v Value, env Env) (Value, error) {
	return array.Windows(sizeSpec, v, env)
}

// Find marks every needle occurrence in the haystack with a boolean mask of
// the haystack's shape.
func Find(needle, haystack Value, env Env) (Value, error) {
	return array.Find(needle, haystack, env)
}

// Mask labels every needle occurrence 1..N in discovery order, without
// overlaps.
func Mask(needle, haystack Value, env Env) (Value, error) {
	return array.Mask(needle, haystack, env)
}

// Member reports which rows of elems occur as rows of the second array.
func Member(elems, of Value, env Env) (Value, error) {
	return array.Member(elems, of, env)
}

// IndexOf finds the first-occurrence index of each row of needle among the
// haystack's rows; absent rows map to the haystack's row count.
func IndexOf(needle, haystack Value, env Env) (Value, error) {
	return array.IndexOf(needle, haystack, env)
}

// Coordinate finds the multidimensional coordinate of the first occurrence
// of each row of needle in the haystack.
func Coordinate(needle, haystack Value, env Env) (Value, error) {
	return array.Coordinate(needle, haystack, env)
}

// ProgressiveIndexOf is IndexOf where every match consumes its haystack
// row.
func ProgressiveIndexOf(needle, haystack Value, env Env) (Value, error) {
	return array.ProgressiveIndexOf(needle, haystack, env)
}

// MatMul multiplies two numeric values as generalized matrices.
func MatMul(a, b Value, env Env) (Value, error) {
	return array.MatMul(a, b, env)
}
