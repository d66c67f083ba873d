// SPDX-License-Identifier: MIT

// Package prior provides the fixed-hyperparameter prior distributions
// attached to parameter blocks.
//
// Families:
//
//	Normal(mu, sigma)        support ℝ
//	StudentT(nu, mu, sigma)  support ℝ
//	Gamma(shape, rate)       support [0, ∞)
//	Uniform(min, max)        support [min, max]
//	Flat                     improper, log-density 0
//
// LogDensity is generic over scalar.Real and sums elementwise over a block
// without early exit. Values outside the support of Uniform and Gamma
// contribute -Inf, so a sampler sees an infeasible point rather than an
// error.
//
// LogMeasure(lo, hi) is the log prior mass of an interval, used to
// renormalize a prior whose block transform restricts it to a subset of its
// support (e.g. a Normal on a lower-bounded block). Hyperparameters are
// fixed, so the measure is a float64 constant computed with gonum's distuv.
package prior
