// SPDX-License-Identifier: MIT

package params

import (
	"fmt"

	"github.com/katalvlaran/nec/core"
	"github.com/katalvlaran/nec/scalar"
	"github.com/katalvlaran/nec/transform"
)

const (
	opConstrain   = "Constrain"
	opUnconstrain = "Unconstrain"
)

// Set is an immutable, ordered collection of blocks with precomputed offsets
// into the flat unconstrained vector.
type Set struct {
	blocks  []Block
	offsets []int // offsets[i] = Σ_{j<i} blocks[j].Dim
	index   map[string]int
	dim     int
}

// NewSet validates blocks and freezes their order.
// Implementation:
//   - Stage 1: reject empty or duplicate names and bad dimensions.
//   - Stage 2: compute offsets; the total is Dim().
//
// Errors:
//   - ErrEmptyName, ErrDuplicateBlock, ErrBadDim.
//
// Complexity:
//   - Time O(B), Space O(B).
func NewSet(blocks ...Block) (*Set, error) {
	s := &Set{
		blocks:  make([]Block, len(blocks)),
		offsets: make([]int, len(blocks)),
		index:   make(map[string]int, len(blocks)),
	}
	copy(s.blocks, blocks)
	for i, b := range s.blocks {
		if b.Name == "" {
			return nil, fmt.Errorf("block %d: %w", i, ErrEmptyName)
		}
		if _, dup := s.index[b.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBlock, b.Name)
		}
		if b.Dim < 1 || (b.Scalar && b.Dim != 1) {
			return nil, fmt.Errorf("%w: %q has dim %d", ErrBadDim, b.Name, b.Dim)
		}
		s.index[b.Name] = i
		s.offsets[i] = s.dim
		s.dim += b.Dim
	}

	return s, nil
}

// Dim is the length of the unconstrained vector.
func (s *Set) Dim() int { return s.dim }

// Len is the number of blocks.
func (s *Set) Len() int { return len(s.blocks) }

// Blocks returns a copy of the blocks in declaration order.
func (s *Set) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)

	return out
}

// Block looks up a block by name.
func (s *Set) Block(name string) (Block, bool) {
	i, ok := s.index[name]
	if !ok {
		return Block{}, false
	}

	return s.blocks[i], true
}

// Labels returns one label per unconstrained coordinate, in flattening order.
func (s *Set) Labels() []Label {
	out := make([]Label, 0, s.dim)
	for _, b := range s.blocks {
		for k := 0; k < b.Dim; k++ {
			out = append(out, Label{Block: b.Name, Index: k, Scalar: b.Scalar})
		}
	}

	return out
}

// Constrain slices u by block and applies each block's transform.
// Implementation:
//   - Stage 1: len(u) must equal Dim() (core.ErrDimension otherwise).
//   - Stage 2: per block in declaration order, transform.Constrain on the
//     sub-slice; sum the Jacobian terms.
//
// Returns:
//   - Values keyed by block name, and the total Jacobian term (zero when
//     jacobian is false).
//
// Complexity:
//   - Time O(Dim), Space O(Dim).
func Constrain[T scalar.Real[T]](s *Set, u []T, jacobian bool) (Values[T], T, error) {
	total := scalar.Zero[T]()
	if len(u) != s.dim {
		return nil, total, core.Errorf(opConstrain, "", core.NoIndex, core.ErrDimension,
			"unconstrained vector has length %d, want %d", len(u), s.dim)
	}
	vals := make(Values[T], len(s.blocks))
	for i, b := range s.blocks {
		off := s.offsets[i]
		x, jac := transform.Constrain(b.Transform, u[off:off+b.Dim], jacobian)
		vals[b.Name] = x
		total = total.Add(jac)
	}

	return vals, total, nil
}

// Unconstrain flattens named constrained values into an unconstrained vector.
// Implementation:
//   - Stage 1: every block must be present (core.ErrMissingField) with
//     exactly Dim values (core.ErrDimension).
//   - Stage 2: transform.Unconstrain per block; domain failures are tagged
//     with the block name and element index (core.ErrDomain).
//
// Extra names in init are ignored.
//
// Complexity:
//   - Time O(Dim), Space O(Dim).
func Unconstrain(s *Set, init map[string][]float64) ([]float64, error) {
	u := make([]float64, s.dim)
	for i, b := range s.blocks {
		x, ok := init[b.Name]
		if !ok {
			return nil, core.Errorf(opUnconstrain, b.Name, core.NoIndex, core.ErrMissingField, "")
		}
		if len(x) != b.Dim {
			return nil, core.Errorf(opUnconstrain, b.Name, core.NoIndex, core.ErrDimension,
				"got %d values, want %d", len(x), b.Dim)
		}
		ub, err := transform.Unconstrain(b.Transform, x)
		if err != nil {
			return nil, withBlock(err, b.Name)
		}
		copy(u[s.offsets[i]:], ub)
	}

	return u, nil
}

// withBlock fills in the block name of a located error.
func withBlock(err error, name string) error {
	if e, ok := err.(*core.Error); ok {
		cp := *e
		cp.Block = name
		return &cp
	}

	return fmt.Errorf("%s: %w", name, err)
}
