// SPDX-License-Identifier: MIT

package model

import (
	"context"
	"log/slog"
	"math"

	"github.com/katalvlaran/nec/core"
	"github.com/katalvlaran/nec/likelihood"
	"github.com/katalvlaran/nec/matrix"
	"github.com/katalvlaran/nec/mean"
	"github.com/katalvlaran/nec/params"
	"github.com/katalvlaran/nec/prior"
)

const opNew = "New"

// Model is a Spec bound to a Dataset. Immutable after New.
type Model struct {
	name    string
	variant mean.Variant
	family  likelihood.Family
	set     *params.Set
	blocks  []block
	scale   string // name of the dispersion block, "" when the family has none
	data    Dataset
}

// block is the evaluation plan of one parameter block.
type block struct {
	name      string
	predictor string        // "" for the dispersion block
	x         matrix.Matrix // design matrix of predictor
	prior     prior.Prior
	logMass   float64 // K·log P(prior ∈ transform support); 0 without truncation
}

// New binds spec to data.
// Implementation:
//   - Stage 1: resolve spec (variant, family, transforms, priors).
//   - Stage 2: validate data against the family and variant.
//   - Stage 3: size coefficient blocks from design-matrix columns and build
//     the parameter set in declaration order.
//   - Stage 4: precompute truncation constants.
//
// Errors:
//   - ErrInvalidSpec, ErrUnknownMean, ErrUnknownLikelihood for the spec;
//     *core.Error for the data; ErrInvalidSpec when a prior puts no mass on
//     its block's support.
func New(spec Spec, data Dataset, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)
	spec.applyDefaults()
	rs, err := spec.resolve()
	if err != nil {
		return nil, err
	}
	if err = data.Validate(rs.family, rs.variant, o.validateNaNInf); err != nil {
		return nil, core.WithOp(opNew, err)
	}

	m := &Model{
		name:    spec.Name,
		variant: rs.variant,
		family:  rs.family,
		blocks:  make([]block, len(rs.blocks)),
		data:    data,
	}
	pb := make([]params.Block, len(rs.blocks))
	for i, rb := range rs.blocks {
		dim := 1
		b := block{name: rb.name, predictor: rb.predictor, prior: rb.prior}
		if rb.scalar {
			m.scale = rb.name
		} else {
			b.x = data.X[rb.predictor]
			dim = b.x.Cols()
		}
		if o.truncation {
			lo, hi := rb.transform.Support()
			lm := rb.prior.LogMeasure(lo, hi)
			if math.IsInf(lm, -1) || math.IsNaN(lm) {
				return nil, specErrorf(rb.name, "prior %s has no mass on %s", rb.prior, rb.transform)
			}
			b.logMass = float64(dim) * lm
		}
		m.blocks[i] = b
		pb[i] = params.Block{Name: rb.name, Dim: dim, Scalar: rb.scalar, Transform: rb.transform}

		o.logger.Debug("model block",
			slog.String("model", spec.Name),
			slog.String("block", rb.name),
			slog.Int("dim", dim),
			slog.String("transform", rb.transform.String()),
			slog.String("prior", rb.prior.String()),
			slog.Float64("log_mass", b.logMass))
	}
	if m.set, err = params.NewSet(pb...); err != nil {
		return nil, specErrorf("", "%w", err)
	}

	if o.logger.Enabled(context.Background(), slog.LevelDebug) {
		o.logger.Debug("model ready",
			slog.String("model", spec.Name),
			slog.String("mean", m.variant.String()),
			slog.String("likelihood", m.family.String()),
			slog.Int("n", data.N()),
			slog.Int("dim", m.set.Dim()),
			slog.Bool("prior_only", data.PriorOnly))
	}

	return m, nil
}

// Name is the spec name.
func (m *Model) Name() string { return m.name }

// Variant is the mean variant.
func (m *Model) Variant() mean.Variant { return m.variant }

// Family is the likelihood family.
func (m *Model) Family() likelihood.Family { return m.family }

// Dim is the length of the unconstrained vector; 0 for a nil *Model.
func (m *Model) Dim() int {
	if m == nil {
		return 0
	}

	return m.set.Dim()
}

// ParameterNames labels each coordinate of the unconstrained vector, in
// order: "b_top.1", ..., "sigma". Nil for a nil *Model.
func (m *Model) ParameterNames() []params.Label {
	if m == nil {
		return nil
	}

	return m.set.Labels()
}

// UnconstrainInitialValues maps named constrained values (one slice per
// block, scalars as length-1 slices) to an unconstrained vector.
// Errors: core.ErrMissingField, core.ErrDimension, core.ErrDomain.
func (m *Model) UnconstrainInitialValues(init map[string][]float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	u, err := params.Unconstrain(m.set, init)
	if err != nil {
		return nil, core.WithOp("UnconstrainInitialValues", err)
	}

	return u, nil
}
