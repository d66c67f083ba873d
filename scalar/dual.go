// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Dual is a forward-mode dual number V + D·ε with ε² = 0.
// Seeding one input with D = 1 and the rest with D = 0 makes D of any result
// the partial derivative with respect to that input.
type Dual struct {
	V float64 // primal value
	D float64 // tangent
}

var _ Real[Dual] = Dual{}

// Variable returns a Dual seeded with unit tangent.
func Variable(v float64) Dual { return Dual{V: v, D: 1} }

// Seed lifts xs into Duals with a unit tangent at position i only.
func Seed(xs []float64, i int) []Dual {
	out := make([]Dual, len(xs))
	for j, x := range xs {
		out[j] = Dual{V: x}
	}
	out[i].D = 1

	return out
}

func (a Dual) Add(b Dual) Dual { return Dual{V: a.V + b.V, D: a.D + b.D} }
func (a Dual) Sub(b Dual) Dual { return Dual{V: a.V - b.V, D: a.D - b.D} }
// Mul skips a product term whose tangent is zero, so an infinite primal on
// the other side yields a zero rather than NaN derivative.
func (a Dual) Mul(b Dual) Dual {
	var d float64
	if a.D != 0 {
		d += a.D * b.V
	}
	if b.D != 0 {
		d += a.V * b.D
	}

	return Dual{V: a.V * b.V, D: d}
}
func (a Dual) Neg() Dual { return Dual{V: -a.V, D: -a.D} }

func (a Dual) Div(b Dual) Dual {
	return Dual{V: a.V / b.V, D: (a.D*b.V - a.V*b.D) / (b.V * b.V)}
}

func (a Dual) Scale(c float64) Dual { return Dual{V: a.V * c, D: a.D * c} }
func (a Dual) Shift(c float64) Dual { return Dual{V: a.V + c, D: a.D} }

func (a Dual) Exp() Dual {
	e := math.Exp(a.V)
	return Dual{V: e, D: a.D * e}
}

func (a Dual) Log() Dual { return Dual{V: math.Log(a.V), D: a.D / a.V} }

func (a Dual) Log1p() Dual { return Dual{V: math.Log1p(a.V), D: a.D / (1 + a.V)} }

// Pow returns a^b. The base term is skipped when a' = 0 or b = 0 (a^0 is
// constant in a); the exponent term is skipped when b' = 0 and taken as its
// limit 0 when a = 0.
func (a Dual) Pow(b Dual) Dual {
	v := math.Pow(a.V, b.V)
	var d float64
	if a.D != 0 && b.V != 0 {
		d += b.V * math.Pow(a.V, b.V-1) * a.D
	}
	if b.D != 0 && a.V > 0 {
		d += v * math.Log(a.V) * b.D
	}

	return Dual{V: v, D: d}
}

// Lgamma returns log|Γ(a)| with derivative ψ(a)·a'.
func (a Dual) Lgamma() Dual {
	v, _ := math.Lgamma(a.V)
	return Dual{V: v, D: a.D * mathext.Digamma(a.V)}
}

func (Dual) Const(c float64) Dual { return Dual{V: c} }
func (a Dual) Value() float64 { return a.V }
