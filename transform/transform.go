// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/nec/core"
	"github.com/katalvlaran/nec/scalar"
)

const opUnconstrain = "Unconstrain"

// Constrain maps unconstrained u to the support of t.
// Implementation:
//   - Stage 1: elementwise forward map per kind.
//   - Stage 2: when jacobian is true, accumulate log|dx/du| over all elements.
//
// Returns:
//   - x (fresh slice, len(u)) and the Jacobian term (zero when not requested).
//
// Complexity:
//   - Time O(K), Space O(K).
func Constrain[T scalar.Real[T]](t Transform, u []T, jacobian bool) ([]T, T) {
	x := make([]T, len(u))
	jac := scalar.Zero[T]()

	switch t.kind {
	case LowerBound:
		for i, ui := range u {
			x[i] = ui.Exp().Shift(t.lower)
			if jacobian {
				jac = jac.Add(ui)
			}
		}
	case LowerUpper:
		width := t.upper - t.lower
		logWidth := math.Log(width)
		for i, ui := range u {
			x[i] = scalar.InvLogit(ui).Scale(width).Shift(t.lower)
			if jacobian {
				jac = jac.Add(scalar.LogInvLogit(ui).Add(scalar.Log1mInvLogit(ui)).Shift(logWidth))
			}
		}
	default:
		copy(x, u)
	}

	return x, jac
}

// ConstrainScalar is Constrain for a single value.
func ConstrainScalar[T scalar.Real[T]](t Transform, u T, jacobian bool) (T, T) {
	x, jac := Constrain(t, []T{u}, jacobian)
	return x[0], jac
}

// Unconstrain maps constrained x back to ℝ^K.
// Implementation:
//   - Stage 1: reject NaN and values outside the open support (core.ErrDomain
//     with the element index).
//   - Stage 2: inverse map per kind.
//
// Errors:
//   - *core.Error wrapping core.ErrDomain; Block is left empty for the caller.
//
// Complexity:
//   - Time O(K), Space O(K).
func Unconstrain(t Transform, x []float64) ([]float64, error) {
	u := make([]float64, len(x))
	lo, hi := t.Support()
	for i, xi := range x {
		if math.IsNaN(xi) {
			return nil, core.Errorf(opUnconstrain, "", i, core.ErrDomain, "NaN")
		}
		switch t.kind {
		case LowerBound:
			if !(xi > lo) || math.IsInf(xi, 1) {
				return nil, core.Errorf(opUnconstrain, "", i, core.ErrDomain, "%g not in (%g, +Inf)", xi, lo)
			}
			u[i] = math.Log(xi - lo)
		case LowerUpper:
			if !(xi > lo && xi < hi) {
				return nil, core.Errorf(opUnconstrain, "", i, core.ErrDomain, "%g not in (%g, %g)", xi, lo, hi)
			}
			p := (xi - lo) / (hi - lo)
			u[i] = math.Log(p) - math.Log1p(-p)
		default:
			if math.IsInf(xi, 0) {
				return nil, core.Errorf(opUnconstrain, "", i, core.ErrDomain, "%g is not finite", xi)
			}
			u[i] = xi
		}
	}

	return u, nil
}
