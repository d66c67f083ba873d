// SPDX-License-Identifier: MIT

package model

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nec/core"
	"github.com/katalvlaran/nec/likelihood"
	"github.com/katalvlaran/nec/matrix"
	"github.com/katalvlaran/nec/mean"
)

const opValidate = "Validate"

// Dataset is the observed data of one model instance.
//
// N = len(C). X maps each predictor of the mean variant (top, beta, nec,
// slope or d) to an N×K design matrix; an intercept-only predictor is
// matrix.NewOnes(N, 1). Y is used by the Gaussian family, Successes and
// Trials by the binomial one. With PriorOnly the likelihood is skipped but
// the data are still validated.
//
// The Model keeps references to these slices and matrices; do not mutate
// them after New.
type Dataset struct {
	C         []float64
	Y         []float64
	Successes []int
	Trials    []int
	X         map[string]matrix.Matrix
	PriorOnly bool
}

// N is the number of observations.
func (d *Dataset) N() int { return len(d.C) }

// Validate checks d against the needs of a family and mean variant.
// Implementation:
//   - Stage 1: N ≥ 1; response lengths equal N (core.ErrDimension).
//   - Stage 2: a design matrix per predictor (core.ErrMissingField) with N
//     rows and at least one column (core.ErrDimension).
//   - Stage 3: 0 ≤ successes ≤ trials (core.ErrDomain, observation index).
//   - Stage 4: when finite is set, no NaN/±Inf in C, Y or X (core.ErrDomain).
//
// Errors carry the data field name as Block ("C", "Y", "X_top", ...).
func (d *Dataset) Validate(f likelihood.Family, v mean.Variant, finite bool) error {
	n := d.N()
	if n < 1 {
		return core.Errorf(opValidate, "C", core.NoIndex, core.ErrDimension, "need at least one observation")
	}
	switch f {
	case likelihood.Gaussian:
		if len(d.Y) != n {
			return core.Errorf(opValidate, "Y", core.NoIndex, core.ErrDimension, "len(Y)=%d, N=%d", len(d.Y), n)
		}
	case likelihood.BinomialLogit:
		if len(d.Successes) != n {
			return core.Errorf(opValidate, "Successes", core.NoIndex, core.ErrDimension, "len(Successes)=%d, N=%d", len(d.Successes), n)
		}
		if len(d.Trials) != n {
			return core.Errorf(opValidate, "Trials", core.NoIndex, core.ErrDimension, "len(Trials)=%d, N=%d", len(d.Trials), n)
		}
		for i, s := range d.Successes {
			if s < 0 || s > d.Trials[i] {
				return core.Errorf(opValidate, "Successes", i, core.ErrDomain, "%d successes of %d trials", s, d.Trials[i])
			}
		}
	}

	for _, p := range v.Predictors() {
		field := "X_" + p
		x, ok := d.X[p]
		if !ok || matrix.ValidateNotNil(x) != nil {
			return core.Errorf(opValidate, field, core.NoIndex, core.ErrMissingField, "")
		}
		if err := matrix.ValidateRows(x, n); err != nil {
			return core.Errorf(opValidate, field, core.NoIndex, core.ErrDimension, "%v", err)
		}
		if x.Cols() < 1 {
			return core.Errorf(opValidate, field, core.NoIndex, core.ErrDimension, "no columns")
		}
		if finite {
			if err := matrix.ValidateFinite(x); err != nil {
				return core.Errorf(opValidate, field, core.NoIndex, core.ErrDomain, "%v", err)
			}
		}
	}

	if finite {
		if i := nonFinite(d.C); i >= 0 {
			return core.Errorf(opValidate, "C", i, core.ErrDomain, "%g", d.C[i])
		}
		if f == likelihood.Gaussian {
			if i := nonFinite(d.Y); i >= 0 {
				return core.Errorf(opValidate, "Y", i, core.ErrDomain, "%g", d.Y[i])
			}
		}
	}

	return nil
}

// nonFinite returns the index of the first NaN/±Inf in xs, or -1.
func nonFinite(xs []float64) int {
	// Any NaN or ±Inf makes the sum non-finite; a finite-value overflow only
	// costs the locating loop.
	if s := floats.Sum(xs); !math.IsNaN(s) && !math.IsInf(s, 0) {
		return -1
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i
		}
	}

	return -1
}
