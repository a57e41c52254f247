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
	"fmt"

	"github.com/pkg/errors"

	"github.com/distr-project/godist/rng"
)

// Value constrains distribution outcomes: 64-bit floats for continuous
// distributions, 64-bit signed integers for discrete ones.
type Value interface {
	~int64 | ~float64
}

// Distribution is the query surface every distribution provides,
// independent of which concrete distribution is used.
//
// CDF is non-decreasing and right-continuous with limits 0 and 1 at
// the bounds of the support. Sample consumes one or more canonical
// uniforms from src and never fails.
type Distribution[V Value] interface {
	CDF(x V) float64
	InSupport(x V) bool
	Sample(src rng.Source) V
}

// Continuous is a real-valued distribution with a density and a
// quantile function. InverseCDF accepts p in [0,1]; anything else is a
// caller bug and panics rather than being silently clamped.
type Continuous interface {
	Distribution[float64]
	PDF(x float64) float64
	InverseCDF(p float64) float64
}

// Discrete is an integer-valued distribution with a mass function and
// a generalized inverse CDF: InverseCDF(p) is the smallest k with
// CDF(k) >= p.
type Discrete interface {
	Distribution[int64]
	PMF(k int64) float64
	InverseCDF(p float64) int64
}

// Moments is implemented by distributions with closed-form mean and
// variance. All distributions shipped in this package implement it.
//
// Kurtosis is the excess kurtosis, so a Normal reports 0. Entropy is
// the Shannon entropy in nats for discrete distributions and the
// differential entropy for continuous ones. Skewness and Kurtosis are
// NaN for degenerate parameters (a Bernoulli with p of 0 or 1).
type Moments interface {
	Mean() float64
	Variance() float64
	Skewness() float64
	Kurtosis() float64
	Entropy() float64
}

// ErrInvalidParameter is wrapped by every constructor error in this
// package. Use errors.Is to detect it.
var ErrInvalidParameter = errors.New("invalid distribution parameter")

func invalidParamf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

// checkProb panics when p lies outside [0,1] (including NaN). Quantile
// queries resolve all fallibility at construction time, so an
// out-of-domain probability is a contract violation by the caller and
// gets reported loudly.
func checkProb(p float64) {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("dist: probability %v outside [0,1]", p))
	}
}
