// SPDX-License-Identifier: MIT

package model

// Built-in specs. Each call returns a fresh value the caller may modify.

// HormesisGaussian is the hormesis NEC model with a Gaussian response:
//
//	b_top   identity        normal(2, 100)
//	b_beta  identity        gamma(0.0001, 0.0001)
//	b_nec   identity        uniform(0.0001, 0.9999)
//	b_slope lower(0)        normal(0, 100), half-normal after truncation
//	sigma   lower(0) scalar student_t(3, 0, 17.8), half-t after truncation
func HormesisGaussian() Spec {
	return Spec{
		Name:       "nechormegaussian",
		Mean:       "hormesis",
		Likelihood: "gaussian",
		Blocks: []BlockSpec{
			{Name: "b_top", Predictor: "top", Prior: PriorSpec{Family: "normal", Params: []float64{2, 100}}},
			{Name: "b_beta", Predictor: "beta", Prior: PriorSpec{Family: "gamma", Params: []float64{0.0001, 0.0001}}},
			{Name: "b_nec", Predictor: "nec", Prior: PriorSpec{Family: "uniform", Params: []float64{0.0001, 0.9999}}},
			{
				Name: "b_slope", Predictor: "slope",
				Transform: TransformSpec{Kind: "lower", Lower: 0},
				Prior:     PriorSpec{Family: "normal", Params: []float64{0, 100}},
			},
			{
				Name: "sigma", Scalar: true,
				Transform: TransformSpec{Kind: "lower", Lower: 0},
				Prior:     PriorSpec{Family: "student_t", Params: []float64{3, 0, 17.8}},
			},
		},
	}
}

// SigmoidalBinomial is the power-threshold NEC model with a binomial-logit
// response; all four blocks are unconstrained.
func SigmoidalBinomial() Spec {
	return Spec{
		Name:       "necsigmbinom",
		Mean:       "sigmoidal",
		Likelihood: "binomial_logit",
		Blocks: []BlockSpec{
			{Name: "b_top", Predictor: "top", Prior: PriorSpec{Family: "normal", Params: []float64{2, 100}}},
			{Name: "b_beta", Predictor: "beta", Prior: PriorSpec{Family: "gamma", Params: []float64{0.0001, 0.0001}}},
			{Name: "b_nec", Predictor: "nec", Prior: PriorSpec{Family: "uniform", Params: []float64{0.0001, 0.9999}}},
			{Name: "b_d", Predictor: "d", Prior: PriorSpec{Family: "normal", Params: []float64{0, 100}}},
		},
	}
}
