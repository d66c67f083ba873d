// SPDX-License-Identifier: MIT

// Package transform implements the bijections between unconstrained real
// vectors and the constrained supports of parameter blocks.
//
// Each transform maps u ∈ ℝ^K to x in its support and reports the log
// absolute Jacobian determinant of that map, which a sampler working in
// unconstrained space must add to the target density:
//
//	Identity          x = u                           log|J| = 0
//	LowerBound(lb)    x = lb + exp(u)                 log|J| = Σ u
//	LowerUpper(lb,ub) x = lb + (ub-lb)·logistic(u)    log|J| = Σ log(ub-lb) + log σ(u) + log(1-σ(u))
//
// Constrain is generic over scalar.Real and is what the evaluator calls on
// every density evaluation. Unconstrain runs on float64 only: it seeds a
// sampler from user-supplied initial values and rejects values outside the
// support with core.ErrDomain.
package transform
