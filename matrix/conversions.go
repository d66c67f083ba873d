// SPDX-License-Identifier: MIT

// Package matrix - adapters to gonum's mat package, for callers that already
// hold design matrices as mat.Matrix (e.g. built by a GLM front end).
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const ctxFromMat = "FromMat"

// FromMat copies a gonum matrix into a new Dense under the numeric policy.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf.
// Complexity: O(r*c).
func FromMat(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(ctxFromMat, ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromMat, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf(ctxFromMat, err)
			}
		}
	}

	return m, nil
}

// ToMat returns a gonum copy of m. The copy does not alias m's storage.
func (m *Dense) ToMat() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}
