// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Every failure returned by the evaluator wraps exactly
// one of them.
var (
	// ErrDimension indicates a length mismatch against a declared dimension
	// (unconstrained vector length, design-matrix rows, initial-value length).
	ErrDimension = errors.New("nec: dimension mismatch")

	// ErrDomain indicates a value outside its constrained support, or an
	// arithmetic operation undefined for the given operands.
	ErrDomain = errors.New("nec: value outside domain")

	// ErrMissingField indicates that a required named value was not supplied.
	ErrMissingField = errors.New("nec: missing field")
)

// NoIndex marks an Error that does not refer to a single element.
const NoIndex = -1

// Error is a located failure. Op names the operation that detected the
// violation (e.g. "Unconstrain", "Compute"); Block is the parameter block or
// data field involved, possibly empty; Index is the zero-based element or
// observation index, or NoIndex.
type Error struct {
	Op    string
	Block string
	Index int
	Err   error
}

// Errorf builds a located error for block at index, wrapping kind.
// The optional format adds a human-readable detail after the location.
func Errorf(op, block string, index int, kind error, format string, args ...any) *Error {
	if format == "" {
		return &Error{Op: op, Block: block, Index: index, Err: kind}
	}

	return &Error{Op: op, Block: block, Index: index, Err: fmt.Errorf("%w: "+format, append([]any{kind}, args...)...)}
}

// Error renders "op block[index]: cause".
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	if e.Block != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.Block)
	}
	if e.Index != NoIndex {
		fmt.Fprintf(&sb, "[%d]", e.Index)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())

	return sb.String()
}

// Unwrap exposes the wrapped kind to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// WithOp prefixes err with an outer operation name. The wrapped kind and any
// *Error inside remain reachable through errors.Is / errors.As.
func WithOp(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}
