// SPDX-License-Identifier: MIT

package scalar

import "math"

// Float is a float64 satisfying Real[Float].
type Float float64

var _ Real[Float] = Float(0)

func (a Float) Add(b Float) Float { return a + b }
func (a Float) Sub(b Float) Float { return a - b }
func (a Float) Mul(b Float) Float { return a * b }
func (a Float) Div(b Float) Float { return a / b }
func (a Float) Neg() Float { return -a }
func (a Float) Scale(c float64) Float { return a * Float(c) }
func (a Float) Shift(c float64) Float { return a + Float(c) }
func (a Float) Exp() Float { return Float(math.Exp(float64(a))) }
func (a Float) Log() Float { return Float(math.Log(float64(a))) }
func (a Float) Log1p() Float { return Float(math.Log1p(float64(a))) }
func (a Float) Pow(b Float) Float { return Float(math.Pow(float64(a), float64(b))) }
func (Float) Const(c float64) Float { return Float(c) }
func (a Float) Value() float64 { return float64(a) }

// Lgamma returns log|Γ(a)|.
func (a Float) Lgamma() Float {
	v, _ := math.Lgamma(float64(a))
	return Float(v)
}

// Floats converts a float64 slice to a fresh []Float.
func Floats(xs []float64) []Float {
	out := make([]Float, len(xs))
	for i, x := range xs {
		out[i] = Float(x)
	}

	return out
}
