// SPDX-License-Identifier: MIT

// Package core holds the error vocabulary shared by every stage of the NEC
// log-density pipeline.
//
// Three error kinds exist, each a sentinel matched with errors.Is:
//
//	ErrDimension    - a vector or matrix length disagrees with the declared
//	                  block dimension or observation count.
//	ErrDomain       - a value lies outside the support of its block, or an
//	                  arithmetic operation is undefined for its operands.
//	ErrMissingField - a required named value (e.g. an initial value) is absent.
//
// Failures are reported through *Error, which records the operation, the
// parameter block and the element or observation index at the point of
// violation. Nothing is kept in package state: the error value carries all of
// its own context, so evaluations remain safe to run concurrently.
//
//	_, err := m.Evaluate(u, true)
//	var e *core.Error
//	if errors.As(err, &e) && errors.Is(err, core.ErrDomain) {
//		log.Printf("infeasible at %s[%d]", e.Block, e.Index)
//	}
package core
