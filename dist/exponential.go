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
	_ Continuous = (*Exponential)(nil)
	_ Moments    = (*Exponential)(nil)
)

// Exponential is the exponential distribution with the given rate,
// supported on [0, inf).
type Exponential struct {
	rate float64
}

// NewExponential returns an Exponential with a strictly positive,
// finite rate.
func NewExponential(rate float64) (*Exponential, error) {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return nil, invalidParamf("exponential: rate must be positive and finite, got %v", rate)
	}
	return &Exponential{rate: rate}, nil
}

// Rate returns the rate parameter.
func (e *Exponential) Rate() float64 { return e.rate }

// CDF returns 1 - exp(-rate*x), computed through Expm1 to keep
// precision for small x.
func (e *Exponential) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-e.rate * x)
}

// InSupport reports whether x is a finite non-negative real.
func (e *Exponential) InSupport(x float64) bool {
	return x >= 0 && !math.IsInf(x, 0)
}

// PDF returns rate*exp(-rate*x) inside the support and 0 outside.
func (e *Exponential) PDF(x float64) float64 {
	if !e.InSupport(x) {
		return 0
	}
	return e.rate * math.Exp(-e.rate*x)
}

// InverseCDF returns -ln(1-p)/rate for p in [0,1]; p=1 maps to +Inf.
func (e *Exponential) InverseCDF(p float64) float64 {
	checkProb(p)
	if p == 1 {
		return math.Inf(1)
	}
	return -math.Log1p(-p) / e.rate
}

// Sample draws -ln(1-u)/rate from one canonical uniform. The uniform
// lies strictly in [0,1), so the logarithm argument never reaches 0.
func (e *Exponential) Sample(src rng.Source) float64 {
	u := rng.Float64(src)
	return -math.Log1p(-u) / e.rate
}

// Mean returns 1/rate.
func (e *Exponential) Mean() float64 { return 1.0 / e.rate }

// Variance returns 1/rate^2.
func (e *Exponential) Variance() float64 { return 1.0 / (e.rate * e.rate) }

// Skewness returns 2.
func (e *Exponential) Skewness() float64 { return 2 }

// Kurtosis returns the excess kurtosis, 6.
func (e *Exponential) Kurtosis() float64 { return 6 }

// Entropy returns the differential entropy, 1 - ln(rate).
func (e *Exponential) Entropy() float64 { return 1.0 - math.Log(e.rate) }
