package array

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/ember-lang/ember/internal/parallel"
	"github.com/ember-lang/ember/internal/pervade"
)

// Row counts above this run the per-row products on the worker pool.
const matMulRowThreshold = 100

// MatMul multiplies two numeric values as generalized matrices: result row
// (i, j) is the elementwise product of a's row i and b's row j, summed over
// its leading axis. Byte operands are widened to numbers first.
func MatMul(a, b Value, env Env) (Value, error) {
	an, err := AsNums("multiply", a)
	if err != nil {
		return nil, err
	}
	bn, err := AsNums("multiply", b)
	if err != nil {
		return nil, err
	}
	return MatrixMul(an, bn, env)
}

// MatrixMul is MatMul on concrete numeric arrays. The row shapes of the two
// operands must prefix-match; the result has shape
// [a.RowCount(), b.RowCount()] followed by the product's row shape.
func MatrixMul(a, b *Array[float64], env Env) (*Array[float64], error) {
	aRowShape := a.shape.Row()
	bRowShape := b.shape.Row()
	if !PrefixesMatch(aRowShape, bRowShape) {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"cannot multiply arrays of shape %v and %v", a.shape, b.shape)
	}
	prodShape := aRowShape
	if len(bRowShape) > len(aRowShape) {
		prodShape = bRowShape
	}
	prodRowShape := prodShape.Row()
	prodElems := prodRowShape.NumElements()

	resultShape := append(Shape{a.RowCount(), b.RowCount()}, prodRowShape.Clone()...)
	resultElems, err := ValidateShapeSize(env, resultShape...)
	if err != nil {
		return nil, err
	}
	result := make([]float64, resultElems)
	resRowLen := b.RowCount() * prodElems

	inner := func(i int) {
		aRow := a.RowSlice(i)
		resRow := result[i*resRowLen : (i+1)*resRowLen]
		prodRow := make([]float64, prodShape.NumElements())
		k := 0
		for j := 0; j < b.RowCount(); j++ {
			pervade.Mul(aRowShape, aRow, bRowShape, b.RowSlice(j), prodRow)
			sum := prodRow[:prodElems]
			for chunk := prodElems; chunk+prodElems <= len(prodRow); chunk += prodElems {
				for s, v := range prodRow[chunk : chunk+prodElems] {
					sum[s] += v
				}
			}
			copy(resRow[k:k+prodElems], sum)
			k += prodElems
		}
	}

	cfg := parallel.DefaultConfig()
	cfg.Enabled = cfg.Enabled &&
		(a.RowCount() > matMulRowThreshold || b.RowCount() > matMulRowThreshold)
	if cfg.Enabled {
		klog.V(2).Infof("matmul: %d x %d rows on %d workers", a.RowCount(), b.RowCount(), cfg.NumWorkers)
	}
	parallel.For(a.RowCount(), inner, cfg)
	return New(resultShape, result), nil
}
