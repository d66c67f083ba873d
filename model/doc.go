// SPDX-License-Identifier: MIT

// Package model assembles the unnormalized log-posterior of a
// no-effect-concentration (NEC) model and exposes it to a sampler or
// optimizer as a function of one flat unconstrained vector.
//
// A model is described by a declarative Spec (mean variant, likelihood
// family, ordered parameter blocks with transform and prior) and bound to a
// Dataset by New. Coefficient block dimensions are taken from the column
// counts of the design matrices, so the same Spec serves intercept-only and
// covariate-rich data.
//
// Evaluation pipeline:
//
//	u ─ params.Constrain ─▶ blocks ─ matrix.MatVec ─▶ nlp ─ mean.Compute ─▶ mu
//	lp = Σ priors − truncation + log|J| + likelihood(data | mu)
//
// LogDensity is generic over scalar.Real. Evaluate runs it on scalar.Float;
// Gradient runs it once per coordinate on scalar.Dual.
//
// A *Model is immutable after New and safe for concurrent use. Evaluation
// does no I/O and never logs; an optional *slog.Logger (WithLogger) receives
// Debug records during construction only.
//
// Built-in specs reproduce the two reference models:
//
//	HormesisGaussian()   mean "hormesis", Gaussian response, blocks b_top b_beta b_nec b_slope sigma
//	SigmoidalBinomial()  mean "sigmoidal", binomial-logit response, blocks b_top b_beta b_nec b_d
//
// Specs may also be loaded from YAML with ParseSpec / LoadSpec.
package model
