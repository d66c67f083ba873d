// SPDX-License-Identifier: MIT

package prior

import (
	"math"

	"github.com/katalvlaran/nec/scalar"
)

// halfLog2Pi is 0.5·log(2π).
const halfLog2Pi = 0.91893853320467274178032973640561764

// LogDensity returns Σ_i log p(xs[i]) under p.
// Implementation:
//   - Stage 1: hoist the hyperparameter-only constants of the family.
//   - Stage 2: accumulate every element in order; out-of-support elements
//     (NaN included) add -Inf and the loop continues.
//
// Complexity:
//   - Time O(K), Space O(1).
func LogDensity[T scalar.Real[T]](p Prior, xs []T) T {
	acc := scalar.Zero[T]()
	negInf := scalar.Lift[T](math.Inf(-1))

	switch p.family {
	case Normal:
		mu, sigma := p.p[0], p.p[1]
		c := -math.Log(sigma) - halfLog2Pi
		for _, x := range xs {
			z := x.Shift(-mu).Scale(1 / sigma)
			acc = acc.Add(scalar.Square(z).Scale(-0.5).Shift(c))
		}

	case StudentT:
		nu, mu, sigma := p.p[0], p.p[1], p.p[2]
		lgHalfNu1, _ := math.Lgamma((nu + 1) / 2)
		lgHalfNu, _ := math.Lgamma(nu / 2)
		c := lgHalfNu1 - lgHalfNu - 0.5*math.Log(nu*math.Pi) - math.Log(sigma)
		for _, x := range xs {
			z := x.Shift(-mu).Scale(1 / sigma)
			acc = acc.Add(scalar.Square(z).Scale(1 / nu).Log1p().Scale(-(nu + 1) / 2).Shift(c))
		}

	case Gamma:
		shape, rate := p.p[0], p.p[1]
		lg, _ := math.Lgamma(shape)
		c := shape*math.Log(rate) - lg
		for _, x := range xs {
			if !(x.Value() >= 0) {
				acc = acc.Add(negInf)
				continue
			}
			acc = acc.Add(x.Log().Scale(shape - 1).Sub(x.Scale(rate)).Shift(c))
		}

	case Uniform:
		lo, hi := p.p[0], p.p[1]
		c := scalar.Lift[T](-math.Log(hi - lo))
		for _, x := range xs {
			if v := x.Value(); !(v >= lo && v <= hi) {
				acc = acc.Add(negInf)
				continue
			}
			acc = acc.Add(c)
		}
	}

	return acc
}

// LogMeasure returns log P(lo < X < hi) under p, the renormalizing constant
// of p restricted to (lo, hi).
// Implementation:
//   - Stage 1: 0 when (lo, hi) covers the prior support, and always for Flat.
//   - Stage 2: one-sided cuts use the survival function or the CDF directly
//     (more accurate in the tails than 1 - CDF); two-sided cuts use a CDF
//     difference.
//
// Returns -Inf when the interval carries no prior mass.
func (p Prior) LogMeasure(lo, hi float64) float64 {
	d := p.dist()
	if d == nil {
		return 0
	}
	slo, shi := p.Support()
	lowerCut, upperCut := lo > slo, hi < shi
	switch {
	case !lowerCut && !upperCut:
		return 0
	case lowerCut && !upperCut:
		return math.Log(d.Survival(lo))
	case !lowerCut && upperCut:
		return math.Log(d.CDF(hi))
	default:
		return math.Log(d.CDF(hi) - d.CDF(lo))
	}
}
