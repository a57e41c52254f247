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

	"github.com/distr-project/godist/internal/num"
	"github.com/distr-project/godist/rng"
)

var (
	_ Continuous = (*Normal)(nil)
	_ Moments    = (*Normal)(nil)
)

// Normal is the Gaussian distribution with mean mu and standard
// deviation sigma.
type Normal struct {
	mu, sigma float64
	invSigma  float64
	norm      float64 // 1/(sigma*sqrt(2*pi))
}

// NewNormal returns a Normal with the given mean and standard
// deviation. The mean must be finite and sigma strictly positive and
// finite.
func NewNormal(mu, sigma float64) (*Normal, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, invalidParamf("normal: mean must be finite, got %v", mu)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, invalidParamf("normal: standard deviation must be positive and finite, got %v", sigma)
	}
	invSigma := 1.0 / sigma
	return &Normal{
		mu:       mu,
		sigma:    sigma,
		invSigma: invSigma,
		norm:     num.InvSqrtTwoPi * invSigma,
	}, nil
}

// Mu returns the mean parameter.
func (n *Normal) Mu() float64 { return n.mu }

// Sigma returns the standard deviation parameter.
func (n *Normal) Sigma() float64 { return n.sigma }

// CDF evaluates the cumulative probability through the error-function
// approximation; the result is always within [0,1].
func (n *Normal) CDF(x float64) float64 {
	return num.StdNormalCDF((x - n.mu) * n.invSigma)
}

// InSupport reports whether x is a finite real.
func (n *Normal) InSupport(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// PDF evaluates the Gaussian density at x.
func (n *Normal) PDF(x float64) float64 {
	if !n.InSupport(x) {
		return 0
	}
	z := (x - n.mu) * n.invSigma
	return n.norm * math.Exp(-0.5*z*z)
}

// InverseCDF returns the quantile for p in [0,1] through the Acklam
// probit approximation; p=0 and p=1 map to the infinities.
func (n *Normal) InverseCDF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return math.Inf(-1)
	case 1:
		return math.Inf(1)
	}
	return n.mu + n.sigma*num.StdNormalInvCDF(p)
}

// Sample draws one value with the polar Box-Muller (Marsaglia)
// transform over two signed canonical uniforms.
func (n *Normal) Sample(src rng.Source) float64 {
	return n.mu + n.sigma*polarNormal(src)
}

// Mean returns mu.
func (n *Normal) Mean() float64 { return n.mu }

// Variance returns sigma^2.
func (n *Normal) Variance() float64 { return n.sigma * n.sigma }

// Skewness returns 0.
func (n *Normal) Skewness() float64 { return 0 }

// Kurtosis returns the excess kurtosis, 0.
func (n *Normal) Kurtosis() float64 { return 0 }

// Entropy returns the differential entropy, ln(sigma*sqrt(2*pi*e)).
func (n *Normal) Entropy() float64 {
	return 0.5 * math.Log(2.0*math.Pi*math.E*n.sigma*n.sigma)
}

// polarNormal draws a standard normal variate by rejection from the
// unit disk. Shared with the Gamma sampler.
func polarNormal(src rng.Source) float64 {
	for {
		u1 := rng.Float64Signed(src)
		u2 := rng.Float64Signed(src)
		s := u1*u1 + u2*u2
		if s >= 1 || s == 0 {
			continue
		}
		return u1 * math.Sqrt(-2.0*math.Log(s)/s)
	}
}
