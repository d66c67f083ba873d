// SPDX-License-Identifier: MIT

package params_test

import (
	"errors"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nec/core"
	"github.com/katalvlaran/nec/params"
	"github.com/katalvlaran/nec/scalar"
	"github.com/katalvlaran/nec/transform"
)

// hormesisSet mirrors the block layout of the hormesis model with K_top=2.
func hormesisSet(t *testing.T) *params.Set {
	t.Helper()
	lb0, err := transform.NewLowerBound(0)
	require.NoError(t, err)
	s, err := params.NewSet(
		params.Block{Name: "b_top", Dim: 2},
		params.Block{Name: "b_beta", Dim: 1},
		params.Block{Name: "b_nec", Dim: 1},
		params.Block{Name: "b_slope", Dim: 1, Transform: lb0},
		params.Block{Name: "sigma", Dim: 1, Scalar: true, Transform: lb0},
	)
	require.NoError(t, err)

	return s
}

// TestNewSet_Validation covers the schema guards.
func TestNewSet_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		blocks []params.Block
		want   error
	}{
		{"empty name", []params.Block{{Dim: 1}}, params.ErrEmptyName},
		{"duplicate", []params.Block{{Name: "a", Dim: 1}, {Name: "a", Dim: 2}}, params.ErrDuplicateBlock},
		{"zero dim", []params.Block{{Name: "a", Dim: 0}}, params.ErrBadDim},
		{"wide scalar", []params.Block{{Name: "s", Dim: 2, Scalar: true}}, params.ErrBadDim},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := params.NewSet(tc.blocks...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLabels_FlatteningOrder checks labels follow declaration order.
func TestLabels_FlatteningOrder(t *testing.T) {
	t.Parallel()

	s := hormesisSet(t)
	require.Equal(t, 6, s.Dim())
	require.Equal(t, 5, s.Len())

	var got []string
	for _, l := range s.Labels() {
		got = append(got, l.String())
	}
	assert.Equal(t, []string{"b_top.1", "b_top.2", "b_beta.1", "b_nec.1", "b_slope.1", "sigma"}, got)
}

// TestConstrain_SlicesInOrder maps each coordinate into its block.
func TestConstrain_SlicesInOrder(t *testing.T) {
	t.Parallel()

	s := hormesisSet(t)
	u := scalar.Floats([]float64{2, 3, 1, 0.3, math.Log(0.5), 0})

	vals, jac, err := params.Constrain(s, u, true)
	require.NoError(t, err, spew.Sdump(vals))
	assert.Equal(t, []scalar.Float{2, 3}, vals["b_top"])
	assert.Equal(t, []scalar.Float{0.3}, vals["b_nec"])
	assert.InDelta(t, 0.5, vals["b_slope"][0].Value(), 1e-15)
	assert.InDelta(t, 1.0, vals.Scalar("sigma").Value(), 1e-15)
	assert.InDelta(t, math.Log(0.5), jac.Value(), 1e-15)

	_, jac, err = params.Constrain(s, u, false)
	require.NoError(t, err)
	assert.Equal(t, scalar.Float(0), jac)
}

// TestConstrain_DimensionError rejects short and long vectors without a value.
func TestConstrain_DimensionError(t *testing.T) {
	t.Parallel()

	s := hormesisSet(t)
	for _, n := range []int{0, 5, 7} {
		vals, _, err := params.Constrain(s, make([]scalar.Float, n), true)
		require.ErrorIs(t, err, core.ErrDimension, "len=%d", n)
		assert.Nil(t, vals)
	}
}

// TestUnconstrain_RoundTrip seeds from natural-unit values and returns them.
func TestUnconstrain_RoundTrip(t *testing.T) {
	t.Parallel()

	s := hormesisSet(t)
	init := map[string][]float64{
		"b_top":   {2, -1},
		"b_beta":  {1},
		"b_nec":   {0.3},
		"b_slope": {0.05},
		"sigma":   {1.7},
		"unused":  {9},
	}
	u, err := params.Unconstrain(s, init)
	require.NoError(t, err)
	require.Len(t, u, s.Dim())

	vals, _, err := params.Constrain(s, scalar.Floats(u), false)
	require.NoError(t, err)
	for _, b := range s.Blocks() {
		for i, want := range init[b.Name] {
			assert.InEpsilon(t, want, vals[b.Name][i].Value(), 1e-9, "%s[%d]", b.Name, i)
		}
	}
}

// TestUnconstrain_Errors covers the three error kinds with their context.
func TestUnconstrain_Errors(t *testing.T) {
	t.Parallel()

	s := hormesisSet(t)
	base := func() map[string][]float64 {
		return map[string][]float64{
			"b_top": {2, 2}, "b_beta": {1}, "b_nec": {0.3}, "b_slope": {0.1}, "sigma": {1},
		}
	}

	missing := base()
	delete(missing, "sigma")
	short := base()
	short["b_top"] = []float64{2}
	negative := base()
	negative["sigma"] = []float64{-1}

	cases := []struct {
		name  string
		init  map[string][]float64
		kind  error
		block string
	}{
		{"missing", missing, core.ErrMissingField, "sigma"},
		{"short", short, core.ErrDimension, "b_top"},
		{"negative", negative, core.ErrDomain, "sigma"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := params.Unconstrain(s, tc.init)
			require.ErrorIs(t, err, tc.kind)
			var e *core.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tc.block, e.Block)
		})
	}
}

// TestValues_Scalar returns the zero value for absent blocks.
func TestValues_Scalar(t *testing.T) {
	t.Parallel()

	v := params.Values[float64]{"sigma": {2}}
	assert.Equal(t, 2.0, v.Scalar("sigma"))
	assert.Equal(t, 0.0, v.Scalar("nope"))

	b, ok := hormesisSet(t).Block("b_slope")
	require.True(t, ok)
	assert.Equal(t, transform.LowerBound, b.Transform.Kind())
}
