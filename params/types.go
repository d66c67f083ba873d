// SPDX-License-Identifier: MIT

package params

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/nec/transform"
)

// Sentinel errors for set construction (schema errors, not evaluation errors).
var (
	// ErrEmptyName indicates a block without a name.
	ErrEmptyName = errors.New("params: block name is empty")

	// ErrDuplicateBlock indicates two blocks sharing a name.
	ErrDuplicateBlock = errors.New("params: duplicate block name")

	// ErrBadDim indicates a non-positive dimension, or a scalar block with Dim != 1.
	ErrBadDim = errors.New("params: invalid block dimension")
)

// Block is one named parameter in constrained space.
// Scalar blocks (e.g. a dispersion) have Dim 1 and are labeled without an index.
type Block struct {
	Name      string
	Dim       int
	Scalar    bool
	Transform transform.Transform
}

// Label names one coordinate of the unconstrained vector.
// Index is zero-based; String renders it one-based, as "b_top.1".
type Label struct {
	Block  string
	Index  int
	Scalar bool
}

// String renders "block.i" (one-based) for vector blocks and "block" for scalars.
func (l Label) String() string {
	if l.Scalar {
		return l.Block
	}

	return l.Block + "." + strconv.Itoa(l.Index+1)
}

// Values maps block names to constrained values. Scalar blocks hold a
// length-1 slice. A Values is built fresh on every evaluation.
type Values[T any] map[string][]T

// Scalar returns the single value of a scalar block (zero T if absent).
func (v Values[T]) Scalar(name string) T {
	var zero T
	xs := v[name]
	if len(xs) == 0 {
		return zero
	}

	return xs[0]
}
