// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/nec/scalar"
)

// TestDual_MatchesFiniteDifferences checks every unary path of Dual against
// a central finite difference of the same expression evaluated on Float.
func TestDual_MatchesFiniteDifferences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		x    float64
		fd   func(scalar.Float) scalar.Float
		ad   func(scalar.Dual) scalar.Dual
	}{
		{"exp", 0.7, scalar.Float.Exp, scalar.Dual.Exp},
		{"log", 2.5, scalar.Float.Log, scalar.Dual.Log},
		{"log1p", 0.3, scalar.Float.Log1p, scalar.Dual.Log1p},
		{"lgamma", 3.2, scalar.Float.Lgamma, scalar.Dual.Lgamma},
		{"neg", 1.1, scalar.Float.Neg, scalar.Dual.Neg},
		{"mul-self", 1.7, func(x scalar.Float) scalar.Float { return x.Mul(x) }, func(x scalar.Dual) scalar.Dual { return x.Mul(x) }},
		{"div", 1.3, func(x scalar.Float) scalar.Float { return x.Const(1).Div(x) }, func(x scalar.Dual) scalar.Dual { return x.Const(1).Div(x) }},
		{"pow-base", 1.9, func(x scalar.Float) scalar.Float { return x.Pow(2.5) }, func(x scalar.Dual) scalar.Dual { return x.Pow(scalar.Dual{V: 2.5}) }},
		{"pow-exponent", 0.8, func(x scalar.Float) scalar.Float { return scalar.Float(1.7).Pow(x) }, func(x scalar.Dual) scalar.Dual { return scalar.Dual{V: 1.7}.Pow(x) }},
		{"log-inv-logit", -2.0, scalar.LogInvLogit[scalar.Float], scalar.LogInvLogit[scalar.Dual]},
		{"log1m-inv-logit", 3.0, scalar.Log1mInvLogit[scalar.Float], scalar.Log1mInvLogit[scalar.Dual]},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			want := fd.Derivative(func(x float64) float64 {
				return tc.fd(scalar.Float(x)).Value()
			}, tc.x, &fd.Settings{Formula: fd.Central})
			got := tc.ad(scalar.Variable(tc.x))
			assert.InDelta(t, tc.fd(scalar.Float(tc.x)).Value(), got.V, 1e-12, "primal value")
			assert.InDelta(t, want, got.D, 1e-6, "tangent")
		})
	}
}

// TestDual_PowZeroBase ensures a zero base never yields a NaN tangent.
func TestDual_PowZeroBase(t *testing.T) {
	t.Parallel()

	// d/dd 0^d is taken as 0.
	got := scalar.Dual{V: 0}.Pow(scalar.Variable(1.5))
	assert.Equal(t, 0.0, got.V)
	assert.Equal(t, 0.0, got.D)

	// d/dx x^2 at 0 is 0.
	got = scalar.Variable(0).Pow(scalar.Dual{V: 2})
	assert.Equal(t, 0.0, got.D)
	assert.False(t, math.IsNaN(got.D))

	// x^0 is constant in x, including at x = 0.
	got = scalar.Variable(0).Pow(scalar.Dual{V: 0})
	assert.Equal(t, 1.0, got.V)
	assert.Equal(t, 0.0, got.D)
}

// TestDual_MulInfinitePrimal: a constant factor times an infinite primal
// keeps a zero tangent instead of 0·∞.
func TestDual_MulInfinitePrimal(t *testing.T) {
	t.Parallel()

	inf := scalar.Dual{V: math.Inf(1)}
	got := scalar.Dual{V: 2}.Mul(inf)
	assert.True(t, math.IsInf(got.V, 1))
	assert.Equal(t, 0.0, got.D)

	got = scalar.Variable(3).Mul(scalar.Dual{V: 2, D: 0.5})
	assert.Equal(t, 6.0, got.V)
	assert.Equal(t, 2+3*0.5, got.D)
}

// TestStep checks the Heaviside convention step(0) = 1.
func TestStep(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, scalar.Step(scalar.Float(0)))
	assert.Equal(t, 1.0, scalar.Step(scalar.Float(2)))
	assert.Equal(t, 0.0, scalar.Step(scalar.Float(-1e-300)))
	assert.Equal(t, 0.0, scalar.Step(scalar.Dual{V: -1, D: 5}))
}

// TestLogInvLogit_Stable covers both branches at extreme arguments.
func TestLogInvLogit_Stable(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, -800.0, scalar.LogInvLogit(scalar.Float(-800)).Value(), 1e-9)
	assert.InDelta(t, 0.0, scalar.LogInvLogit(scalar.Float(800)).Value(), 1e-12)
	assert.InDelta(t, math.Log(0.5), scalar.LogInvLogit(scalar.Float(0)).Value(), 1e-15)
	assert.InDelta(t, 0.5, scalar.InvLogit(scalar.Float(0)).Value(), 1e-15)
}

// TestSumAndLift exercises the generic helpers on both types.
func TestSumAndLift(t *testing.T) {
	t.Parallel()

	xs := scalar.FromFloats[scalar.Dual]([]float64{1, 2, 3.5})
	require.Len(t, xs, 3)
	s := scalar.Sum(xs)
	assert.Equal(t, 6.5, s.V)
	assert.Equal(t, 0.0, s.D)

	fs := scalar.Floats([]float64{0.5, 0.25})
	assert.Equal(t, []float64{0.5, 0.25}, scalar.Values(fs))
	assert.Equal(t, scalar.Float(0), scalar.Zero[scalar.Float]())
	assert.Equal(t, scalar.Dual{V: 4}, scalar.Lift[scalar.Dual](4))
}

// TestSeed puts the unit tangent at the requested coordinate only.
func TestSeed(t *testing.T) {
	t.Parallel()

	got := scalar.Seed([]float64{1, 2, 3}, 1)
	assert.Equal(t, []scalar.Dual{{V: 1}, {V: 2, D: 1}, {V: 3}}, got)
}
