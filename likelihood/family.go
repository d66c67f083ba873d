// SPDX-License-Identifier: MIT

package likelihood

import (
	"errors"
	"fmt"
)

// Family selects the response distribution.
type Family uint8

const (
	// Gaussian is a normal response with a shared scale parameter.
	Gaussian Family = iota
	// BinomialLogit is a binomial count response on the logit scale.
	BinomialLogit
)

// ErrUnknownFamily indicates an unrecognized family spelling.
var ErrUnknownFamily = errors.New("likelihood: unknown family")

// String returns the spelling used in model specifications.
func (f Family) String() string {
	switch f {
	case Gaussian:
		return "gaussian"
	case BinomialLogit:
		return "binomial_logit"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(s string) (Family, error) {
	switch s {
	case "gaussian", "normal":
		return Gaussian, nil
	case "binomial_logit", "binomial":
		return BinomialLogit, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// HasScale reports whether the family needs a scalar dispersion block.
func (f Family) HasScale() bool { return f == Gaussian }
