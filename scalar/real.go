// SPDX-License-Identifier: MIT

package scalar

// Real is the arithmetic and transcendental surface required of a scalar.
// Methods never mutate the receiver; all are value-in/value-out.
type Real[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T

	// Scale multiplies by a constant; cheaper than Mul(Lift(c)) for data
	// terms such as design-matrix entries.
	Scale(c float64) T
	// Shift adds a constant.
	Shift(c float64) T

	Exp() T
	Log() T
	Log1p() T
	Pow(T) T
	Lgamma() T

	// Const lifts c into T; the receiver only selects the type.
	Const(c float64) T
	// Value is the primal float64 value, used for comparisons.
	Value() float64
}

// Lift returns the constant c as a T.
func Lift[T Real[T]](c float64) T {
	var zero T
	return zero.Const(c)
}

// Zero returns the additive identity of T.
func Zero[T Real[T]]() T { return Lift[T](0) }

// Sum adds xs left to right; the order is fixed so results are reproducible.
func Sum[T Real[T]](xs []T) T {
	acc := Zero[T]()
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Step is the Heaviside function on the primal value: 1 if x ≥ 0, else 0.
// It is piecewise constant, so it contributes no derivative.
func Step[T Real[T]](x T) float64 {
	if x.Value() >= 0 {
		return 1
	}

	return 0
}

// Square returns x·x.
func Square[T Real[T]](x T) T { return x.Mul(x) }

// LogInvLogit returns log(1 / (1 + exp(-x))) without overflow for large |x|.
func LogInvLogit[T Real[T]](x T) T {
	if x.Value() >= 0 {
		return x.Neg().Exp().Log1p().Neg()
	}

	return x.Sub(x.Exp().Log1p())
}

// Log1mInvLogit returns log(1 - 1 / (1 + exp(-x))) = LogInvLogit(-x).
func Log1mInvLogit[T Real[T]](x T) T { return LogInvLogit(x.Neg()) }

// InvLogit returns 1 / (1 + exp(-x)).
func InvLogit[T Real[T]](x T) T { return LogInvLogit(x).Exp() }

// Values extracts the primal values of xs.
func Values[T Real[T]](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.Value()
	}

	return out
}

// FromFloats lifts a float64 slice into T.
func FromFloats[T Real[T]](xs []float64) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = Lift[T](x)
	}

	return out
}
