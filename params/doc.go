// SPDX-License-Identifier: MIT

// Package params aggregates named parameter blocks into the flat
// unconstrained vector a sampler manipulates.
//
// A Set is an ordered list of Blocks. The order is part of the external
// contract: the unconstrained vector carries no names, so Constrain,
// Unconstrain and Labels all walk blocks in declaration order.
//
//	set, _ := params.NewSet(
//		params.Block{Name: "b_top", Dim: 1, Transform: transform.NewIdentity()},
//		params.Block{Name: "sigma", Dim: 1, Scalar: true, Transform: lb0},
//	)
//	vals, jac, err := params.Constrain(set, u, true)
//	top := vals["b_top"]      // []T of length 1
//	sigma := vals.Scalar("sigma")
package params
