// SPDX-License-Identifier: MIT

// Package likelihood implements the response families of the
// concentration-response models:
//
//	Gaussian        y_i ~ Normal(mu_i, sigma)
//	BinomialLogit   s_i ~ Binomial(n_i, logistic(eta_i))
//
// Both are generic over scalar.Real so the same code serves plain
// evaluation and forward-mode gradients. Data enter as float64/int;
// only the location (and sigma) carry the numeric type T.
package likelihood
