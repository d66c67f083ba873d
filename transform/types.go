// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
	"math"
)

// Kind enumerates the supported constraint kinds.
type Kind uint8

const (
	// Identity leaves values unrestricted.
	Identity Kind = iota
	// LowerBound restricts values to (lb, +∞).
	LowerBound
	// LowerUpper restricts values to (lb, ub).
	LowerUpper
)

// String returns the spelling used in model specifications.
func (k Kind) String() string {
	switch k {
	case Identity:
		return "identity"
	case LowerBound:
		return "lower"
	case LowerUpper:
		return "lower_upper"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "identity", "":
		return Identity, nil
	case "lower":
		return LowerBound, nil
	case "lower_upper":
		return LowerUpper, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Sentinel errors for transform construction. Domain violations during
// Unconstrain are reported with core.ErrDomain instead.
var (
	// ErrUnknownKind indicates an unrecognized constraint spelling.
	ErrUnknownKind = errors.New("transform: unknown kind")

	// ErrBadBounds indicates non-finite bounds or lb >= ub.
	ErrBadBounds = errors.New("transform: invalid bounds")
)

// Transform is an immutable constraint description. The zero value is Identity.
type Transform struct {
	kind  Kind
	lower float64
	upper float64
}

// NewIdentity returns the unrestricted transform.
func NewIdentity() Transform { return Transform{kind: Identity} }

// NewLowerBound returns x = lb + exp(u). lb must be finite.
func NewLowerBound(lb float64) (Transform, error) {
	if math.IsNaN(lb) || math.IsInf(lb, 0) {
		return Transform{}, fmt.Errorf("%w: lower=%g", ErrBadBounds, lb)
	}

	return Transform{kind: LowerBound, lower: lb}, nil
}

// NewLowerUpper returns x = lb + (ub-lb)·logistic(u). Requires finite lb < ub.
func NewLowerUpper(lb, ub float64) (Transform, error) {
	if math.IsNaN(lb) || math.IsInf(lb, 0) || math.IsNaN(ub) || math.IsInf(ub, 0) || !(lb < ub) {
		return Transform{}, fmt.Errorf("%w: lower=%g upper=%g", ErrBadBounds, lb, ub)
	}

	return Transform{kind: LowerUpper, lower: lb, upper: ub}, nil
}

// Kind reports the constraint kind.
func (t Transform) Kind() Kind { return t.kind }

// Support returns the open interval (lo, hi) of constrained values.
func (t Transform) Support() (lo, hi float64) {
	switch t.kind {
	case LowerBound:
		return t.lower, math.Inf(1)
	case LowerUpper:
		return t.lower, t.upper
	default:
		return math.Inf(-1), math.Inf(1)
	}
}

// String renders the transform as in a model specification.
func (t Transform) String() string {
	switch t.kind {
	case LowerBound:
		return fmt.Sprintf("lower(%g)", t.lower)
	case LowerUpper:
		return fmt.Sprintf("lower_upper(%g, %g)", t.lower, t.upper)
	default:
		return t.kind.String()
	}
}
