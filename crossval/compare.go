// SPDX-License-Identifier: MIT

package crossval

import (
	"math"

	"github.com/katalvlaran/bagchain/montecarlo"
)

// DefaultStdErrs is the agreement band, in standard errors, used when no
// absolute tolerance is given.
const DefaultStdErrs = 5.0

// Comparison is the exact expectation set against a Monte Carlo estimate.
type Comparison struct {
	Exact     float64 `yaml:"exact"`
	Estimate  float64 `yaml:"estimate"`
	StdErr    float64 `yaml:"std_err"`
	AbsDiff   float64 `yaml:"abs_diff"`
	ZScore    float64 `yaml:"z_score"` // AbsDiff / StdErr; +Inf when StdErr is 0 and AbsDiff is not
	Tolerance float64 `yaml:"tolerance,omitempty"`
	Agree     bool    `yaml:"agree"`
}

// Compare sets exact against est. With tolerance > 0 the two agree when
// |exact − mean| ≤ tolerance; otherwise when the difference is within
// DefaultStdErrs standard errors.
func Compare(exact float64, est montecarlo.Estimate, tolerance float64) Comparison {
	c := Comparison{
		Exact:     exact,
		Estimate:  est.Mean,
		StdErr:    est.StdErr,
		AbsDiff:   math.Abs(exact - est.Mean),
		Tolerance: tolerance,
	}
	switch {
	case est.StdErr > 0:
		c.ZScore = c.AbsDiff / est.StdErr
	case c.AbsDiff > 0:
		c.ZScore = math.Inf(1)
	}

	if tolerance > 0 {
		c.Agree = c.AbsDiff <= tolerance
	} else {
		c.Agree = c.WithinStdErrs(DefaultStdErrs)
	}

	return c
}

// WithinStdErrs reports whether the difference is at most k standard errors.
func (c Comparison) WithinStdErrs(k float64) bool {
	if c.StdErr == 0 {
		return c.AbsDiff == 0
	}
	return c.AbsDiff <= k*c.StdErr
}
