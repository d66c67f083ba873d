// SPDX-License-Identifier: MIT

// Package matrix - linear predictor kernel.
//
// MatVec is the only algebra the evaluator needs: nlp = X·b where X holds
// float64 data and b holds coefficients of the caller's scalar type. Keeping
// it generic lets the same kernel produce values (scalar.Float) and
// directional derivatives (scalar.Dual).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/nec/scalar"
)

const opMatVec = "MatVec"

// MatVec computes y = m·x.
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == Cols.
//   - Stage 2: fast path on *Dense: flat row-major dot products; zero data
//     entries are skipped.
//   - Stage 3: fallback through At for other Matrix implementations.
//
// Returns:
//   - y of length Rows.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "matrix.MatVec").
//
// Determinism:
//   - Fixed i→j accumulation order.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[T scalar.Real[T]](m Matrix, x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]T, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var a float64
		for i = 0; i < d.r; i++ {
			acc := scalar.Zero[T]()
			base = i * d.c
			for j = 0; j < d.c; j++ {
				a = d.data[base+j]
				if a != 0 {
					acc = acc.Add(x[j].Scale(a))
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	for i = 0; i < rows; i++ {
		acc := scalar.Zero[T]()
		for j = 0; j < cols; j++ {
			a, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if a != 0 {
				acc = acc.Add(x[j].Scale(a))
			}
		}
		y[i] = acc
	}

	return y, nil
}
