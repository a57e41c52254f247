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
	_ Continuous = (*LogNormal)(nil)
	_ Moments    = (*LogNormal)(nil)
)

// LogNormal is the distribution of exp(X) for X ~ Normal(mu, sigma),
// supported on (0, inf).
type LogNormal struct {
	mu, sigma float64
	normal    *Normal
}

// NewLogNormal returns a LogNormal with finite mu and strictly
// positive, finite sigma.
func NewLogNormal(mu, sigma float64) (*LogNormal, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, invalidParamf("lognormal: mu must be finite, got %v", mu)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, invalidParamf("lognormal: sigma must be positive and finite, got %v", sigma)
	}
	normal, err := NewNormal(mu, sigma)
	if err != nil {
		return nil, err
	}
	return &LogNormal{mu: mu, sigma: sigma, normal: normal}, nil
}

// Mu returns the log-scale location parameter.
func (l *LogNormal) Mu() float64 { return l.mu }

// Sigma returns the log-scale spread parameter.
func (l *LogNormal) Sigma() float64 { return l.sigma }

// CDF evaluates the underlying normal CDF at ln(x).
func (l *LogNormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.normal.CDF(math.Log(x))
}

// InSupport reports whether x is a finite positive real.
func (l *LogNormal) InSupport(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

// PDF evaluates the density at x.
func (l *LogNormal) PDF(x float64) float64 {
	if !l.InSupport(x) {
		return 0
	}
	return l.normal.PDF(math.Log(x)) / x
}

// InverseCDF exponentiates the underlying normal quantile.
func (l *LogNormal) InverseCDF(p float64) float64 {
	checkProb(p)
	if p == 0 {
		return 0
	}
	return math.Exp(l.normal.InverseCDF(p))
}

// Sample exponentiates one draw from the underlying normal.
func (l *LogNormal) Sample(src rng.Source) float64 {
	return math.Exp(l.normal.Sample(src))
}

// Mean returns exp(mu + sigma^2/2).
func (l *LogNormal) Mean() float64 {
	return math.Exp(l.mu + 0.5*l.sigma*l.sigma)
}

// Variance returns (exp(sigma^2) - 1) * exp(2*mu + sigma^2).
func (l *LogNormal) Variance() float64 {
	s2 := l.sigma * l.sigma
	return math.Expm1(s2) * math.Exp(2.0*l.mu+s2)
}

// Skewness returns (exp(sigma^2) + 2) * sqrt(exp(sigma^2) - 1).
func (l *LogNormal) Skewness() float64 {
	s2 := l.sigma * l.sigma
	return (math.Exp(s2) + 2.0) * math.Sqrt(math.Expm1(s2))
}

// Kurtosis returns the excess kurtosis
// exp(4*sigma^2) + 2*exp(3*sigma^2) + 3*exp(2*sigma^2) - 6.
func (l *LogNormal) Kurtosis() float64 {
	s2 := l.sigma * l.sigma
	return math.Exp(4.0*s2) + 2.0*math.Exp(3.0*s2) + 3.0*math.Exp(2.0*s2) - 6.0
}

// Entropy returns the differential entropy, mu plus the entropy of
// the underlying Normal.
func (l *LogNormal) Entropy() float64 { return l.mu + l.normal.Entropy() }
