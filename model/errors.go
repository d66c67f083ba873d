// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for spec resolution. Data and evaluation failures use the
// kinds in package core.
var (
	// ErrInvalidSpec indicates an inconsistent model specification.
	ErrInvalidSpec = errors.New("model: invalid spec")

	// ErrUnknownMean indicates an unrecognized mean variant.
	ErrUnknownMean = errors.New("model: unknown mean variant")

	// ErrUnknownLikelihood indicates an unrecognized likelihood family.
	ErrUnknownLikelihood = errors.New("model: unknown likelihood family")

	// ErrNilModel indicates a method call on a nil *Model.
	ErrNilModel = errors.New("model: nil model")
)

// specErrorf wraps ErrInvalidSpec with block context.
func specErrorf(block, format string, args ...any) error {
	if block == "" {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidSpec}, args...)...)
	}

	return fmt.Errorf("%w: block %q: "+format, append([]any{ErrInvalidSpec, block}, args...)...)
}
