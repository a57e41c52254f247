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
	_ Discrete = (*Geometric)(nil)
	_ Moments  = (*Geometric)(nil)
)

// Geometric counts the trials up to and including the first success,
// over the support {1, 2, ...}.
type Geometric struct {
	p float64
}

// NewGeometric returns a Geometric with success probability p in
// (0,1].
func NewGeometric(p float64) (*Geometric, error) {
	if math.IsNaN(p) || p <= 0 || p > 1 {
		return nil, invalidParamf("geometric: success probability must be in (0,1], got %v", p)
	}
	return &Geometric{p: p}, nil
}

// P returns the success probability.
func (g *Geometric) P() float64 { return g.p }

// CDF returns 1 - (1-p)^k.
func (g *Geometric) CDF(k int64) float64 {
	if k < 1 {
		return 0
	}
	return 1 - math.Pow(1-g.p, float64(k))
}

// InSupport reports whether k is a positive integer.
func (g *Geometric) InSupport(k int64) bool {
	return k >= 1
}

// PMF returns p*(1-p)^(k-1) inside the support and 0 outside.
func (g *Geometric) PMF(k int64) float64 {
	if !g.InSupport(k) {
		return 0
	}
	return g.p * math.Pow(1-g.p, float64(k-1))
}

// InverseCDF returns the smallest k with CDF(k) >= pr:
// ceil(ln(1-pr)/ln(1-p)).
func (g *Geometric) InverseCDF(pr float64) int64 {
	checkProb(pr)
	if pr == 0 {
		return 1
	}
	if pr == 1 {
		if g.p == 1 {
			return 1
		}
		return math.MaxInt64
	}
	k := int64(math.Ceil(math.Log1p(-pr) / math.Log1p(-g.p)))
	if k < 1 {
		return 1
	}
	return k
}

// Sample draws by inverting one canonical uniform through the
// closed-form quantile.
func (g *Geometric) Sample(src rng.Source) int64 {
	u := rng.Float64(src)
	k := int64(math.Ceil(math.Log1p(-u) / math.Log1p(-g.p)))
	if k < 1 {
		return 1
	}
	return k
}

// Mean returns 1/p.
func (g *Geometric) Mean() float64 { return 1.0 / g.p }

// Variance returns (1-p)/p^2.
func (g *Geometric) Variance() float64 { return (1 - g.p) / (g.p * g.p) }

// Skewness returns (2-p)/sqrt(1-p).
func (g *Geometric) Skewness() float64 { return (2 - g.p) / math.Sqrt(1-g.p) }

// Kurtosis returns the excess kurtosis, 6 + p^2/(1-p).
func (g *Geometric) Kurtosis() float64 { return 6 + g.p*g.p/(1-g.p) }

// Entropy returns the Shannon entropy of the trial count on {1,2,...},
// -(p ln p + (q/p) ln q) in nats. It is 0 when p is 1.
func (g *Geometric) Entropy() float64 {
	if g.p == 1 {
		return 0
	}
	q := 1 - g.p
	return -(g.p*math.Log(g.p) + (q/g.p)*math.Log(q))
}
