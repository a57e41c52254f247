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
	_ Continuous = (*Uniform)(nil)
	_ Moments    = (*Uniform)(nil)
)

// Uniform is the continuous uniform distribution on [low, high].
type Uniform struct {
	low, high float64
	invWidth  float64
}

// NewUniform returns a Uniform on [low, high]. Both bounds must be
// finite with low < high.
func NewUniform(low, high float64) (*Uniform, error) {
	if math.IsNaN(low) || math.IsInf(low, 0) || math.IsNaN(high) || math.IsInf(high, 0) {
		return nil, invalidParamf("uniform: bounds must be finite, got [%v, %v]", low, high)
	}
	if low >= high {
		return nil, invalidParamf("uniform: low must be less than high, got [%v, %v]", low, high)
	}
	return &Uniform{low: low, high: high, invWidth: 1.0 / (high - low)}, nil
}

// Low returns the lower bound.
func (u *Uniform) Low() float64 { return u.low }

// High returns the upper bound.
func (u *Uniform) High() float64 { return u.high }

// CDF returns the linear ramp between the bounds.
func (u *Uniform) CDF(x float64) float64 {
	switch {
	case x <= u.low:
		return 0
	case x >= u.high:
		return 1
	default:
		return (x - u.low) * u.invWidth
	}
}

// InSupport reports whether x lies in [low, high].
func (u *Uniform) InSupport(x float64) bool {
	return x >= u.low && x <= u.high
}

// PDF is 1/(high-low) inside the support and 0 outside.
func (u *Uniform) PDF(x float64) float64 {
	if u.InSupport(x) {
		return u.invWidth
	}
	return 0
}

// InverseCDF returns low + (high-low)*p for p in [0,1].
func (u *Uniform) InverseCDF(p float64) float64 {
	checkProb(p)
	return u.low + (u.high-u.low)*p
}

// Sample draws via the closed-form transform of one canonical uniform.
func (u *Uniform) Sample(src rng.Source) float64 {
	return u.low + (u.high-u.low)*rng.Float64(src)
}

// Mean returns (low+high)/2.
func (u *Uniform) Mean() float64 { return 0.5 * (u.low + u.high) }

// Variance returns (high-low)^2/12.
func (u *Uniform) Variance() float64 {
	w := u.high - u.low
	return w * w / 12.0
}

// Skewness returns 0.
func (u *Uniform) Skewness() float64 { return 0 }

// Kurtosis returns the excess kurtosis, -6/5.
func (u *Uniform) Kurtosis() float64 { return -6.0 / 5.0 }

// Entropy returns the differential entropy ln(high-low).
func (u *Uniform) Entropy() float64 { return math.Log(u.high - u.low) }
