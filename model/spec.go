// SPDX-License-Identifier: MIT

package model

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nec/likelihood"
	"github.com/katalvlaran/nec/mean"
	"github.com/katalvlaran/nec/prior"
	"github.com/katalvlaran/nec/transform"
)

// Spec declares a model independently of its data.
//
// Blocks are listed in flattening order. A coefficient block names the
// predictor it carries (top, beta, nec, slope or d); its dimension is the
// column count of the matching design matrix. The Gaussian family needs
// exactly one Scalar block, the dispersion.
type Spec struct {
	Name       string      `yaml:"name,omitempty"`
	Mean       string      `yaml:"mean"`
	Likelihood string      `yaml:"likelihood"`
	Blocks     []BlockSpec `yaml:"blocks"`
}

// BlockSpec declares one parameter block.
// Name defaults to "b_" + Predictor; Predictor defaults to Name without the
// "b_" prefix when Name has one.
type BlockSpec struct {
	Name      string        `yaml:"name,omitempty"`
	Predictor string        `yaml:"predictor,omitempty"`
	Scalar    bool          `yaml:"scalar,omitempty"`
	Transform TransformSpec `yaml:"transform,omitempty"`
	Prior     PriorSpec     `yaml:"prior"`
}

// TransformSpec selects a transform. Kind is "identity" (or empty), "lower"
// or "lower_upper"; the bounds apply as the kind requires.
type TransformSpec struct {
	Kind  string  `yaml:"kind,omitempty"`
	Lower float64 `yaml:"lower,omitempty"`
	Upper float64 `yaml:"upper,omitempty"`
}

// PriorSpec selects a prior family and its hyperparameters in constructor
// order: normal(mu, sigma), student_t(nu, mu, sigma), gamma(shape, rate),
// uniform(min, max), flat().
type PriorSpec struct {
	Family string    `yaml:"family"`
	Params []float64 `yaml:"params,flow,omitempty"`
}

// hyperCount is the arity of each prior family.
var hyperCount = map[prior.Family]int{
	prior.Flat:     0,
	prior.Normal:   2,
	prior.StudentT: 3,
	prior.Gamma:    2,
	prior.Uniform:  2,
}

// ParseSpec decodes a YAML spec, applies defaults and validates it.
// Unknown fields are rejected.
func ParseSpec(data []byte) (Spec, error) {
	var s Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Spec{}, fmt.Errorf("model: parse spec: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}

	return s, nil
}

// LoadSpec reads and parses the YAML spec at path.
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("model: read spec: %w", err)
	}

	return ParseSpec(data)
}

// Marshal renders s as YAML; ParseSpec(s.Marshal()) reproduces s.
func (s Spec) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("model: marshal spec: %w", err)
	}

	return out, nil
}

// Validate resolves every block without data and reports the first problem.
func (s Spec) Validate() error {
	s.applyDefaults()
	_, err := s.resolve()

	return err
}

// applyDefaults normalizes spellings and fills block names. Blocks is copied
// first so the caller's slice is never written.
func (s *Spec) applyDefaults() {
	s.Blocks = append([]BlockSpec(nil), s.Blocks...)
	s.Mean = strings.ToLower(strings.TrimSpace(s.Mean))
	s.Likelihood = strings.ToLower(strings.TrimSpace(s.Likelihood))
	for i := range s.Blocks {
		b := &s.Blocks[i]
		if b.Name == "" && b.Predictor != "" {
			b.Name = mean.BlockName(b.Predictor)
		}
		if b.Predictor == "" && !b.Scalar && strings.HasPrefix(b.Name, "b_") {
			b.Predictor = strings.TrimPrefix(b.Name, "b_")
		}
	}
}

// resolvedBlock is a BlockSpec turned into typed values; dim is filled by New.
type resolvedBlock struct {
	name      string
	predictor string
	scalar    bool
	transform transform.Transform
	prior     prior.Prior
}

type resolvedSpec struct {
	variant mean.Variant
	family  likelihood.Family
	blocks  []resolvedBlock
}

// resolve parses names into enums and checks block coverage.
// Implementation:
//   - Stage 1: mean variant and likelihood family.
//   - Stage 2: per block, transform and prior (arity, hyperparameter ranges).
//   - Stage 3: every predictor of the variant covered exactly once; scalar
//     block count matches the family.
func (s Spec) resolve() (resolvedSpec, error) {
	var rs resolvedSpec
	var err error
	if rs.variant, err = mean.ParseVariant(s.Mean); err != nil {
		return rs, fmt.Errorf("%w: %w", ErrUnknownMean, err)
	}
	if rs.family, err = likelihood.ParseFamily(s.Likelihood); err != nil {
		return rs, fmt.Errorf("%w: %w", ErrUnknownLikelihood, err)
	}

	need := make(map[string]bool)
	for _, p := range rs.variant.Predictors() {
		need[p] = false
	}
	scalars := 0
	rs.blocks = make([]resolvedBlock, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		if b.Name == "" {
			return rs, specErrorf("", "block without name or predictor")
		}
		rb := resolvedBlock{name: b.Name, predictor: b.Predictor, scalar: b.Scalar}
		if b.Scalar {
			if b.Predictor != "" {
				return rs, specErrorf(b.Name, "scalar block cannot carry predictor %q", b.Predictor)
			}
			scalars++
		} else {
			seen, ok := need[b.Predictor]
			if !ok {
				return rs, specErrorf(b.Name, "predictor %q not used by mean %q", b.Predictor, rs.variant)
			}
			if seen {
				return rs, specErrorf(b.Name, "predictor %q declared twice", b.Predictor)
			}
			need[b.Predictor] = true
		}
		if rb.transform, err = b.Transform.build(); err != nil {
			return rs, specErrorf(b.Name, "%w", err)
		}
		if rb.prior, err = b.Prior.build(); err != nil {
			return rs, specErrorf(b.Name, "%w", err)
		}
		rs.blocks = append(rs.blocks, rb)
	}
	for _, p := range rs.variant.Predictors() {
		if !need[p] {
			return rs, specErrorf("", "mean %q needs a block for predictor %q", rs.variant, p)
		}
	}
	want := 0
	if rs.family.HasScale() {
		want = 1
	}
	if scalars != want {
		return rs, specErrorf("", "likelihood %q needs %d scalar block(s), got %d", rs.family, want, scalars)
	}

	return rs, nil
}

func (t TransformSpec) build() (transform.Transform, error) {
	kind, err := transform.ParseKind(strings.ToLower(t.Kind))
	if err != nil {
		return transform.Transform{}, err
	}
	switch kind {
	case transform.LowerBound:
		return transform.NewLowerBound(t.Lower)
	case transform.LowerUpper:
		return transform.NewLowerUpper(t.Lower, t.Upper)
	default:
		return transform.NewIdentity(), nil
	}
}

func (p PriorSpec) build() (prior.Prior, error) {
	fam, err := prior.ParseFamily(strings.ToLower(p.Family))
	if err != nil {
		return prior.Prior{}, err
	}
	if n := hyperCount[fam]; len(p.Params) != n {
		return prior.Prior{}, fmt.Errorf("%w: %s takes %d parameters, got %d", prior.ErrBadHyperparameter, fam, n, len(p.Params))
	}
	h := p.Params
	switch fam {
	case prior.Normal:
		return prior.NewNormal(h[0], h[1])
	case prior.StudentT:
		return prior.NewStudentT(h[0], h[1], h[2])
	case prior.Gamma:
		return prior.NewGamma(h[0], h[1])
	case prior.Uniform:
		return prior.NewUniform(h[0], h[1])
	default:
		return prior.NewFlat(), nil
	}
}
