// SPDX-License-Identifier: MIT

// Package mean computes the expected response mu of a threshold
// (no-effect-concentration) concentration-response curve.
//
// Each curve parameter enters through a linear predictor
// nlp_p = X_p · b_p, one value per observation, so covariates may shift
// any parameter. Compute combines the predictors of one Variant with the
// concentrations C:
//
//	Hormesis   mu_i = (top_i + slope_i·C_i) · exp(−beta_i·(C_i − nec_i)·step(C_i − nec_i))
//	Sigmoidal  mu_i = top_i · exp(−beta_i·(C_i − nec_i)^d_i · step(C_i − nec_i))
//
// step(x) is 1 for x ≥ 0 and 0 otherwise. It is a hard switch on the primal
// value, so below the threshold mu equals the baseline exactly (top, or
// top + slope·C) and carries no derivative through beta, nec or d.
// The power term of Sigmoidal is evaluated only when the switch is on.
package mean
