// SPDX-License-Identifier: MIT

package likelihood

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/nec/core"
	"github.com/katalvlaran/nec/scalar"
)

const (
	opGaussian = "Gaussian"
	opBinomial = "BinomialLogit"

	halfLog2Pi = 0.91893853320467274178032973640561764 // 0.5·log(2π)
)

// LogGaussian returns Σ_i log Normal(y_i | mu_i, sigma).
// Implementation:
//   - Stage 1: len(y) == len(mu) (core.ErrDimension) and sigma > 0
//     (core.ErrDomain); a non-finite mu_i is core.ErrDomain at index i.
//   - Stage 2: −N·(log sigma + ½log 2π) − ½Σ((y_i − mu_i)/sigma)².
//
// Complexity:
//   - Time O(N), Space O(1).
func LogGaussian[T scalar.Real[T]](y []float64, mu []T, sigma T) (T, error) {
	var zero T
	if len(y) != len(mu) {
		return zero, core.Errorf(opGaussian, "mu", core.NoIndex, core.ErrDimension, "len(mu)=%d, len(y)=%d", len(mu), len(y))
	}
	if !(sigma.Value() > 0) {
		return zero, core.Errorf(opGaussian, "sigma", core.NoIndex, core.ErrDomain, "sigma=%g", sigma.Value())
	}

	inv := sigma.Const(1).Div(sigma)
	ss := scalar.Zero[T]()
	for i, yi := range y {
		if !finite(mu[i].Value()) {
			return zero, core.Errorf(opGaussian, "mu", i, core.ErrDomain, "location %g", mu[i].Value())
		}
		r := mu[i].Neg().Shift(yi).Mul(inv)
		ss = ss.Add(scalar.Square(r))
	}
	n := float64(len(y))

	return ss.Scale(-0.5).Sub(sigma.Log().Scale(n)).Shift(-n * halfLog2Pi), nil
}

// LogBinomialLogit returns Σ_i log Binomial(successes_i | trials_i, logistic(eta_i)).
// Implementation:
//   - Stage 1: equal lengths (core.ErrDimension); 0 ≤ s_i ≤ n_i and a
//     finite eta_i (core.ErrDomain with the observation index).
//   - Stage 2: log C(n, s) + s·log σ(eta) + (n − s)·log(1 − σ(eta)), each
//     log-probability from the overflow-safe scalar.LogInvLogit. Zero
//     multiplicities skip their term so a saturated eta cannot yield 0·(−Inf).
//
// Complexity:
//   - Time O(N), Space O(1).
func LogBinomialLogit[T scalar.Real[T]](successes, trials []int, eta []T) (T, error) {
	var zero T
	if len(successes) != len(trials) {
		return zero, core.Errorf(opBinomial, "trials", core.NoIndex, core.ErrDimension, "len(trials)=%d, len(successes)=%d", len(trials), len(successes))
	}
	if len(eta) != len(successes) {
		return zero, core.Errorf(opBinomial, "mu", core.NoIndex, core.ErrDimension, "len(mu)=%d, len(successes)=%d", len(eta), len(successes))
	}

	acc := scalar.Zero[T]()
	for i, s := range successes {
		n := trials[i]
		if s < 0 || s > n {
			return zero, core.Errorf(opBinomial, "successes", i, core.ErrDomain, "%d successes of %d trials", s, n)
		}
		if !finite(eta[i].Value()) {
			return zero, core.Errorf(opBinomial, "mu", i, core.ErrDomain, "logit location %g", eta[i].Value())
		}
		acc = acc.Shift(logChoose(n, s))
		if s > 0 {
			acc = acc.Add(scalar.LogInvLogit(eta[i]).Scale(float64(s)))
		}
		if n-s > 0 {
			acc = acc.Add(scalar.Log1mInvLogit(eta[i]).Scale(float64(n - s)))
		}
	}

	return acc, nil
}

// logChoose is log C(n, k); the trivial edges avoid a Beta evaluation.
func logChoose(n, k int) float64 {
	if k == 0 || k == n {
		return 0
	}

	return combin.LogGeneralizedBinomial(float64(n), float64(k))
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
