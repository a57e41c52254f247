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
	_ Continuous = (*Beta)(nil)
	_ Moments    = (*Beta)(nil)
)

// Beta is the beta distribution on [0,1] with shape parameters a and
// b.
type Beta struct {
	a, b   float64
	lnBeta float64
}

// NewBeta returns a Beta with strictly positive, finite shape
// parameters.
func NewBeta(a, b float64) (*Beta, error) {
	if !(a > 0) || math.IsInf(a, 0) {
		return nil, invalidParamf("beta: shape a must be positive and finite, got %v", a)
	}
	if !(b > 0) || math.IsInf(b, 0) {
		return nil, invalidParamf("beta: shape b must be positive and finite, got %v", b)
	}
	return &Beta{
		a:      a,
		b:      b,
		lnBeta: num.LnGamma(a) + num.LnGamma(b) - num.LnGamma(a+b),
	}, nil
}

// A returns the first shape parameter.
func (bt *Beta) A() float64 { return bt.a }

// B returns the second shape parameter.
func (bt *Beta) B() float64 { return bt.b }

// CDF returns the regularized incomplete beta at x.
func (bt *Beta) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return num.RegIncBeta(bt.a, bt.b, x)
}

// InSupport reports whether x lies in [0,1].
func (bt *Beta) InSupport(x float64) bool {
	return x >= 0 && x <= 1
}

// PDF evaluates the density through its log form.
func (bt *Beta) PDF(x float64) float64 {
	if !bt.InSupport(x) {
		return 0
	}
	return math.Exp((bt.a-1.0)*math.Log(x) + (bt.b-1.0)*math.Log(1.0-x) - bt.lnBeta)
}

// InverseCDF refines an initial guess with a bracketed Newton
// iteration inside [0,1].
func (bt *Beta) InverseCDF(p float64) float64 {
	checkProb(p)
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	lo, hi := 0.0, 1.0
	x := p
	for i := 0; i < 60; i++ {
		fx := bt.CDF(x) - p
		if math.Abs(fx) < 1e-10 {
			break
		}
		if fx < 0 {
			lo = x
		} else {
			hi = x
		}
		dfx := math.Max(bt.PDF(x), 1e-300)
		xNew := x - fx/dfx
		if xNew <= lo || xNew >= hi || math.IsNaN(xNew) {
			xNew = 0.5 * (lo + hi)
		}
		x = xNew
	}
	return x
}

// Sample draws through the two-gamma representation
// X = G_a / (G_a + G_b).
func (bt *Beta) Sample(src rng.Source) float64 {
	ga := gammaVariate(bt.a, src)
	gb := gammaVariate(bt.b, src)
	return ga / (ga + gb)
}

// Mean returns a/(a+b).
func (bt *Beta) Mean() float64 { return bt.a / (bt.a + bt.b) }

// Variance returns ab/((a+b)^2 (a+b+1)).
func (bt *Beta) Variance() float64 {
	s := bt.a + bt.b
	return bt.a * bt.b / (s * s * (s + 1.0))
}

// Skewness returns 2(b-a)sqrt(a+b+1) / ((a+b+2)sqrt(ab)).
func (bt *Beta) Skewness() float64 {
	s := bt.a + bt.b
	return 2.0 * (bt.b - bt.a) * math.Sqrt(s+1.0) / ((s + 2.0) * math.Sqrt(bt.a*bt.b))
}

// Kurtosis returns the excess kurtosis
// 6[(a-b)^2 (a+b+1) - ab(a+b+2)] / (ab(a+b+2)(a+b+3)).
func (bt *Beta) Kurtosis() float64 {
	s := bt.a + bt.b
	d := bt.a - bt.b
	return 6.0 * (d*d*(s+1.0) - bt.a*bt.b*(s+2.0)) / (bt.a * bt.b * (s + 2.0) * (s + 3.0))
}

// Entropy returns the differential entropy
// ln B(a,b) - (a-1) psi(a) - (b-1) psi(b) + (a+b-2) psi(a+b).
func (bt *Beta) Entropy() float64 {
	s := bt.a + bt.b
	return bt.lnBeta - (bt.a-1.0)*num.Digamma(bt.a) - (bt.b-1.0)*num.Digamma(bt.b) +
		(s-2.0)*num.Digamma(s)
}
