package array

import "github.com/pkg/errors"

// Error kinds surfaced by the dyadic engine. Every failure wraps exactly one
// of these sentinels, so callers match with errors.Is while the message
// carries the offending shapes and ranks.
var (
	// ErrShapeMismatch indicates two shapes that cannot be combined or an
	// inverse given a shape with a different element count.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrRankMismatch indicates an argument of the wrong rank.
	ErrRankMismatch = errors.New("rank mismatch")
	// ErrAmbiguousShape indicates a reshape with multiple derived dimensions.
	ErrAmbiguousShape = errors.New("ambiguous shape")
	// ErrInvalidDimension indicates a zero or negative dimension where a
	// positive one is required, or a size exceeding the configured limit.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidKeep indicates keep counts that are not natural numbers.
	ErrInvalidKeep = errors.New("invalid keep amount")
	// ErrNotInvertible indicates an inverse applied to a forward transform
	// that cannot be inverted, such as a non-boolean keep.
	ErrNotInvertible = errors.New("not invertible")
	// ErrLengthMismatch indicates an inverse given too few rows.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrTypeMismatch indicates irreconcilable operand element types.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrTooManyIndices indicates more indices than an axis can absorb.
	ErrTooManyIndices = errors.New("too many indices")
	// ErrZeroWindow indicates a window size of zero.
	ErrZeroWindow = errors.New("zero window size")
)
