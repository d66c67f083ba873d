// SPDX-License-Identifier: MIT

package prior

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Family enumerates supported prior families.
type Family uint8

const (
	// Flat is the improper uniform prior on the block support.
	Flat Family = iota
	// Normal is N(mu, sigma).
	Normal
	// StudentT is Student's t with nu degrees of freedom, location mu, scale sigma.
	StudentT
	// Gamma is Gamma(shape, rate).
	Gamma
	// Uniform is U(min, max).
	Uniform
)

var familyNames = [...]string{
	Flat:     "flat",
	Normal:   "normal",
	StudentT: "student_t",
	Gamma:    "gamma",
	Uniform:  "uniform",
}

// String returns the spelling used in model specifications.
func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}

	return fmt.Sprintf("Family(%d)", uint8(f))
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(s string) (Family, error) {
	for f, name := range familyNames {
		if name == s {
			return Family(f), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// Sentinel errors for prior construction.
var (
	// ErrUnknownFamily indicates an unrecognized family spelling.
	ErrUnknownFamily = errors.New("prior: unknown family")

	// ErrBadHyperparameter indicates a hyperparameter outside its valid range.
	ErrBadHyperparameter = errors.New("prior: invalid hyperparameter")
)

// Prior is an immutable distribution with fixed hyperparameters.
// The zero value is Flat.
type Prior struct {
	family Family
	p      [3]float64 // family-specific, see constructors
}

// NewFlat returns the improper flat prior.
func NewFlat() Prior { return Prior{family: Flat} }

// NewNormal returns N(mu, sigma); sigma must be finite and positive.
func NewNormal(mu, sigma float64) (Prior, error) {
	if !finite(mu) || !positive(sigma) {
		return Prior{}, badHyper(Normal, "mu=%g sigma=%g", mu, sigma)
	}

	return Prior{family: Normal, p: [3]float64{mu, sigma}}, nil
}

// NewStudentT returns t(nu, mu, sigma); nu and sigma must be finite and positive.
func NewStudentT(nu, mu, sigma float64) (Prior, error) {
	if !positive(nu) || !finite(mu) || !positive(sigma) {
		return Prior{}, badHyper(StudentT, "nu=%g mu=%g sigma=%g", nu, mu, sigma)
	}

	return Prior{family: StudentT, p: [3]float64{nu, mu, sigma}}, nil
}

// NewGamma returns Gamma(shape, rate); both must be finite and positive.
func NewGamma(shape, rate float64) (Prior, error) {
	if !positive(shape) || !positive(rate) {
		return Prior{}, badHyper(Gamma, "shape=%g rate=%g", shape, rate)
	}

	return Prior{family: Gamma, p: [3]float64{shape, rate}}, nil
}

// NewUniform returns U(lo, hi); requires finite lo < hi.
func NewUniform(lo, hi float64) (Prior, error) {
	if !finite(lo) || !finite(hi) || !(lo < hi) {
		return Prior{}, badHyper(Uniform, "min=%g max=%g", lo, hi)
	}

	return Prior{family: Uniform, p: [3]float64{lo, hi}}, nil
}

// Family reports the distribution family.
func (p Prior) Family() Family { return p.family }

// Support returns the closed support [lo, hi] of the prior.
func (p Prior) Support() (lo, hi float64) {
	switch p.family {
	case Gamma:
		return 0, math.Inf(1)
	case Uniform:
		return p.p[0], p.p[1]
	default:
		return math.Inf(-1), math.Inf(1)
	}
}

// String renders the prior as in a model specification, e.g. "normal(2, 100)".
func (p Prior) String() string {
	switch p.family {
	case Normal, Gamma, Uniform:
		return fmt.Sprintf("%s(%g, %g)", p.family, p.p[0], p.p[1])
	case StudentT:
		return fmt.Sprintf("%s(%g, %g, %g)", p.family, p.p[0], p.p[1], p.p[2])
	default:
		return p.family.String()
	}
}

// cdfer is the part of the distuv surface LogMeasure needs.
type cdfer interface {
	CDF(x float64) float64
	Survival(x float64) float64
}

// dist returns the gonum equivalent of p, or nil for Flat.
func (p Prior) dist() cdfer {
	switch p.family {
	case Normal:
		return distuv.Normal{Mu: p.p[0], Sigma: p.p[1]}
	case StudentT:
		return distuv.StudentsT{Nu: p.p[0], Mu: p.p[1], Sigma: p.p[2]}
	case Gamma:
		return distuv.Gamma{Alpha: p.p[0], Beta: p.p[1]}
	case Uniform:
		return distuv.Uniform{Min: p.p[0], Max: p.p[1]}
	default:
		return nil
	}
}

func finite(x float64) bool   { return !math.IsNaN(x) && !math.IsInf(x, 0) }
func positive(x float64) bool { return finite(x) && x > 0 }

func badHyper(f Family, format string, args ...any) error {
	return fmt.Errorf("%w: %s "+format, append([]any{ErrBadHyperparameter, f}, args...)...)
}
