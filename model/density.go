// SPDX-License-Identifier: MIT

package model

import (
	"github.com/katalvlaran/nec/core"
	"github.com/katalvlaran/nec/likelihood"
	"github.com/katalvlaran/nec/matrix"
	"github.com/katalvlaran/nec/mean"
	"github.com/katalvlaran/nec/params"
	"github.com/katalvlaran/nec/prior"
	"github.com/katalvlaran/nec/scalar"
)

const (
	opLogDensity = "LogDensity"
	opFitted     = "Fitted"
	opReport     = "ConstrainForReport"
)

// LogDensity evaluates the unnormalized log-posterior at u.
// Implementation:
//   - Stage 1: constrain u into named blocks (+ log|J| when jacobian).
//   - Stage 2: linear predictors X_p·b_p and mu.
//   - Stage 3: Σ block priors − truncation constants.
//   - Stage 4: + log|J|; + likelihood unless the data are prior-only.
//
// Every stage runs on every call; there is no early exit on -Inf.
//
// Errors:
//   - core.ErrDimension when len(u) != m.Dim(); otherwise whatever mu or
//     the likelihood report (*core.Error, matched with errors.Is).
//
// Complexity:
//   - Time O(N·Dim), Space O(N + Dim).
func LogDensity[T scalar.Real[T]](m *Model, u []T, jacobian bool) (T, error) {
	var zero T
	if m == nil {
		return zero, ErrNilModel
	}
	vals, jac, err := params.Constrain(m.set, u, jacobian)
	if err != nil {
		return zero, core.WithOp(opLogDensity, err)
	}
	mu, err := fitted(m, vals)
	if err != nil {
		return zero, core.WithOp(opLogDensity, err)
	}

	lp := scalar.Zero[T]()
	for _, b := range m.blocks {
		lp = lp.Add(prior.LogDensity(b.prior, vals[b.name])).Shift(-b.logMass)
	}
	lp = lp.Add(jac)

	if m.data.PriorOnly {
		return lp, nil
	}
	var ll T
	switch m.family {
	case likelihood.BinomialLogit:
		ll, err = likelihood.LogBinomialLogit(m.data.Successes, m.data.Trials, mu)
	default:
		ll, err = likelihood.LogGaussian(m.data.Y, mu, vals.Scalar(m.scale))
	}
	if err != nil {
		return zero, core.WithOp(opLogDensity, err)
	}

	return lp.Add(ll), nil
}

// fitted computes mu from constrained block values.
func fitted[T scalar.Real[T]](m *Model, vals params.Values[T]) ([]T, error) {
	nlp := make(mean.Linear[T], len(m.blocks))
	for _, b := range m.blocks {
		if b.predictor == "" {
			continue
		}
		lin, err := matrix.MatVec(b.x, vals[b.name])
		if err != nil {
			return nil, core.Errorf("MatVec", b.name, core.NoIndex, core.ErrDimension, "%v", err)
		}
		nlp[b.predictor] = lin
	}

	return mean.Compute(m.variant, nlp, m.data.C)
}

// Evaluate is LogDensity on float64.
func (m *Model) Evaluate(u []float64, jacobian bool) (float64, error) {
	lp, err := LogDensity(m, scalar.Floats(u), jacobian)
	if err != nil {
		return 0, err
	}

	return lp.Value(), nil
}

// Gradient returns the log-density at u and its gradient with respect to u.
// Implementation:
//   - Forward mode: one LogDensity pass per coordinate with scalar.Dual,
//     seeding that coordinate's tangent with 1.
//
// Complexity:
//   - Time O(Dim·N·Dim), Space O(N + Dim).
func (m *Model) Gradient(u []float64, jacobian bool) (float64, []float64, error) {
	if m == nil {
		return 0, nil, ErrNilModel
	}
	if len(u) != m.Dim() {
		return 0, nil, core.WithOp("Gradient", core.Errorf(opLogDensity, "", core.NoIndex, core.ErrDimension,
			"len(u)=%d, want %d", len(u), m.Dim()))
	}
	grad := make([]float64, len(u))
	var lp float64
	for i := range u {
		d, err := LogDensity(m, scalar.Seed(u, i), jacobian)
		if err != nil {
			return 0, nil, core.WithOp("Gradient", err)
		}
		lp, grad[i] = d.V, d.D
	}

	return lp, grad, nil
}

// ConstrainForReport maps u to named constrained values without the
// Jacobian term, as a sampler would report a draw.
func (m *Model) ConstrainForReport(u []float64) (params.Values[float64], error) {
	if m == nil {
		return nil, ErrNilModel
	}
	vals, _, err := params.Constrain(m.set, scalar.Floats(u), false)
	if err != nil {
		return nil, core.WithOp(opReport, err)
	}
	out := make(params.Values[float64], len(vals))
	for name, xs := range vals {
		out[name] = scalar.Values(xs)
	}

	return out, nil
}

// Fitted returns mu at u, one value per observation (on the logit scale for
// the binomial family).
func (m *Model) Fitted(u []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	vals, _, err := params.Constrain(m.set, scalar.Floats(u), false)
	if err != nil {
		return nil, core.WithOp(opFitted, err)
	}
	mu, err := fitted(m, vals)
	if err != nil {
		return nil, core.WithOp(opFitted, err)
	}

	return scalar.Values(mu), nil
}
