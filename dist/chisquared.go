/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dist

import (
	"math"

	"github.com/distr-project/godist/rng"
)

var (
	_ Continuous = (*ChiSquared)(nil)
	_ Moments    = (*ChiSquared)(nil)
)

// ChiSquared is the chi-squared distribution with v degrees of
// freedom, equivalent to Gamma(v/2, 2).
type ChiSquared struct {
	v     float64
	gamma *Gamma
}

// NewChiSquared returns a ChiSquared with strictly positive, finite
// degrees of freedom.
func NewChiSquared(v float64) (*ChiSquared, error) {
	if !(v > 0) || math.IsInf(v, 0) {
		return nil, invalidParamf("chisquared: degrees of freedom must be positive and finite, got %v", v)
	}
	gamma, err := NewGamma(v/2.0, 2.0)
	if err != nil {
		return nil, err
	}
	return &ChiSquared{v: v, gamma: gamma}, nil
}

// DoF returns the degrees of freedom.
func (c *ChiSquared) DoF() float64 { return c.v }

// CDF delegates to the underlying Gamma.
func (c *ChiSquared) CDF(x float64) float64 { return c.gamma.CDF(x) }

// InSupport reports whether x is a finite non-negative real.
func (c *ChiSquared) InSupport(x float64) bool { return c.gamma.InSupport(x) }

// PDF delegates to the underlying Gamma.
func (c *ChiSquared) PDF(x float64) float64 { return c.gamma.PDF(x) }

// InverseCDF delegates to the underlying Gamma.
func (c *ChiSquared) InverseCDF(p float64) float64 { return c.gamma.InverseCDF(p) }

// Sample delegates to the underlying Gamma.
func (c *ChiSquared) Sample(src rng.Source) float64 { return c.gamma.Sample(src) }

// Mean returns v.
func (c *ChiSquared) Mean() float64 { return c.v }

// Variance returns 2v.
func (c *ChiSquared) Variance() float64 { return 2.0 * c.v }

// Skewness returns sqrt(8/v).
func (c *ChiSquared) Skewness() float64 { return math.Sqrt(8.0 / c.v) }

// Kurtosis returns the excess kurtosis, 12/v.
func (c *ChiSquared) Kurtosis() float64 { return 12.0 / c.v }

// Entropy returns the differential entropy of the underlying
// Gamma(v/2, 2).
func (c *ChiSquared) Entropy() float64 { return c.gamma.Entropy() }
