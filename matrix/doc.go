// SPDX-License-Identifier: MIT

// Package matrix provides the row-major design matrices that feed the linear
// predictors of an NEC model.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy (NaN/±Inf rejected on ingestion).
//   - MatVec, the generic product X·b of float64 data with a coefficient
//     vector of any scalar.Real type, so linear predictors stay differentiable.
//   - Validators shared by callers that check shapes before evaluation.
//   - FromMat / ToMat adapters to and from gonum's mat.Matrix.
//
// Design matrices are data: they are built once, never mutated during
// evaluation, and safe to share across goroutines.
//
// See the examples in this package for usage patterns.
package matrix
