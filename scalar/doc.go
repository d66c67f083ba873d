// SPDX-License-Identifier: MIT

// Package scalar defines the numeric capability the log-density pipeline is
// written against, and two implementations of it.
//
// Every stage (transforms, linear predictors, mean functions, priors and
// likelihoods) is generic over T satisfying Real[T]. The same code therefore
// evaluates a plain log-density (T = Float) and its directional derivative
// (T = Dual) without special-casing either type.
//
//	Float - float64 with methods; the production evaluation type.
//	Dual  - forward-mode dual number v + d·ε; one evaluation yields one
//	        directional derivative, so a full gradient takes Dim() passes.
//
// Comparisons are made on the primal value (Value), which is what step
// functions and branch selection need. Constants enter through Lift.
//
// The package is not an AD engine: Dual exists so gradients can be extracted
// and checked. A reverse-mode type satisfying Real[T] plugs in unchanged.
package scalar
