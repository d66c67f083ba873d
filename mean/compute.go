// SPDX-License-Identifier: MIT

package mean

import (
	"math"

	"github.com/katalvlaran/nec/core"
	"github.com/katalvlaran/nec/scalar"
)

const opCompute = "Compute"

// Linear maps a predictor name to its per-observation linear predictor.
type Linear[T any] map[string][]T

// Compute evaluates mu for every observation.
// Implementation:
//   - Stage 1: every predictor of v is present (core.ErrMissingField) with
//     len(c) values (core.ErrDimension).
//   - Stage 2: per observation, baseline times the gated decay term.
//
// Errors:
//   - *core.Error wrapping core.ErrDomain at the observation index when
//     C − nec is NaN (Block "b_nec"), the power term is undefined
//     (Block "b_d"), or beta·(C − nec)^d is 0·∞ (Block "b_beta").
//
// Complexity:
//   - Time O(N), Space O(N).
func Compute[T scalar.Real[T]](v Variant, nlp Linear[T], c []float64) ([]T, error) {
	for _, p := range v.Predictors() {
		xs, ok := nlp[p]
		if !ok {
			return nil, core.Errorf(opCompute, BlockName(p), core.NoIndex, core.ErrMissingField, "")
		}
		if len(xs) != len(c) {
			return nil, core.Errorf(opCompute, BlockName(p), core.NoIndex, core.ErrDimension,
				"%d values for %d observations", len(xs), len(c))
		}
	}

	top, beta, nec := nlp[Top], nlp[Beta], nlp[NEC]
	mu := make([]T, len(c))
	for i, ci := range c {
		diff := nec[i].Neg().Shift(ci) // C_i − nec_i
		if math.IsNaN(diff.Value()) {
			return nil, core.Errorf(opCompute, BlockName(NEC), i, core.ErrDomain,
				"C=%g nec=%g", ci, nec[i].Value())
		}
		on := scalar.Step(diff) == 1

		switch v {
		case Sigmoidal:
			mu[i] = top[i]
			if !on {
				continue
			}
			pw := diff.Pow(nlp[D][i])
			if math.IsNaN(pw.Value()) {
				return nil, core.Errorf(opCompute, BlockName(D), i, core.ErrDomain,
					"(%g)^(%g) undefined", diff.Value(), nlp[D][i].Value())
			}
			mu[i] = top[i].Mul(beta[i].Mul(pw).Neg().Exp())
			if math.IsNaN(mu[i].Value()) {
				return nil, core.Errorf(opCompute, BlockName(Beta), i, core.ErrDomain,
					"beta=%g times (%g)^(%g) undefined", beta[i].Value(), diff.Value(), nlp[D][i].Value())
			}

		default:
			mu[i] = top[i].Add(nlp[Slope][i].Scale(ci))
			if on {
				mu[i] = mu[i].Mul(beta[i].Mul(diff).Neg().Exp())
			}
		}
	}

	return mu, nil
}
