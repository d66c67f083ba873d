// Package nec evaluates the log-posterior of no-effect-concentration (NEC)
// concentration-response models, the Bayesian threshold models used in
// ecotoxicology to estimate the concentration below which a toxicant has no
// effect.
//
// 🚀 What is nec?
//
//	A small, dependency-light evaluator that turns one flat unconstrained
//	vector into a scalar log-density, ready for an external sampler or
//	optimizer:
//		• Transforms: identity, lower bound, bounded interval, with log-Jacobians
//		• Parameter sets: named blocks flattened in declaration order
//		• Priors: normal, Student-t, gamma, uniform, flat, with truncation
//		• Mean functions: hormesis and power-threshold (sigmoidal) NEC curves
//		• Likelihoods: Gaussian and binomial-logit
//		• Gradients: forward-mode dual numbers over the same generic code
//
// ✨ Why nec?
//
//   - One engine, two models: declarative specs (Go or YAML) replace a
//     hand-written program per model.
//   - Located errors: dimension, domain and missing-field failures name the
//     block and element, never clamped.
//   - Safe to share: a built Model is immutable and evaluation holds no locks.
//
// Packages:
//
//	core/       - shared error kinds and the located *Error
//	scalar/     - numeric capability (Float, Dual) the pipeline is generic over
//	matrix/     - dense design matrices and the X·b kernel
//	transform/  - constrained ↔ unconstrained maps
//	params/     - block layout, flatten/unflatten, labels
//	prior/      - prior log-densities and truncation constants
//	mean/       - NEC mean curves
//	likelihood/ - response families
//	model/      - specs, datasets, the evaluator
//
// Pipeline:
//
//	u ─▶ params ─▶ matrix.MatVec ─▶ mean ─▶ mu
//	        │                               │
//	        └─▶ prior + log|J|      likelihood ◀┘
//
// Quick start:
//
//	m, err := model.New(model.HormesisGaussian(), data)
//	lp, grad, err := m.Gradient(u, true)
//
//	go get github.com/katalvlaran/nec
package nec
