// SPDX-License-Identifier: MIT

package mean

import (
	"errors"
	"fmt"
)

// Variant selects the curve shape.
type Variant uint8

const (
	// Hormesis is the linear-baseline exponential-decay curve.
	Hormesis Variant = iota
	// Sigmoidal is the power-threshold curve with shape exponent d.
	Sigmoidal
)

// Predictor names. Parameter blocks are named "b_" + predictor.
const (
	Top   = "top"
	Beta  = "beta"
	NEC   = "nec"
	Slope = "slope"
	D     = "d"
)

// ErrUnknownVariant indicates an unrecognized variant spelling.
var ErrUnknownVariant = errors.New("mean: unknown variant")

// String returns the spelling used in model specifications.
func (v Variant) String() string {
	switch v {
	case Hormesis:
		return "hormesis"
	case Sigmoidal:
		return "sigmoidal"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "hormesis":
		return Hormesis, nil
	case "sigmoidal":
		return Sigmoidal, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Predictors lists, in canonical order, the predictors v needs.
func (v Variant) Predictors() []string {
	if v == Sigmoidal {
		return []string{Top, Beta, NEC, D}
	}

	return []string{Top, Beta, NEC, Slope}
}

// BlockName is the parameter block that carries predictor p's coefficients.
func BlockName(p string) string { return "b_" + p }
