// Package array implements the shape-transformation and search engine over
// n-dimensional arrays: the data model (flat row-major buffers with
// clone-on-write sharing, the closed Value union over the five element
// kinds) and the dyadic operators that consume it (reshape, rerank, keep,
// rotate, windows, the search family, matrix multiply).
//
// All operators take an Env carrying optional per-kind fill values and a
// size guard; fills turn shape mismatches into padding and rotations into
// shifts. Failures are reported as wrapped sentinel errors (ErrShapeMismatch
// and friends), matchable with errors.Is.
package array
