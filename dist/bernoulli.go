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
	_ Discrete = (*Bernoulli)(nil)
	_ Moments  = (*Bernoulli)(nil)
)

// Bernoulli is the distribution of a single trial succeeding with
// probability p, over the support {0, 1}.
type Bernoulli struct {
	p float64
}

// NewBernoulli returns a Bernoulli with success probability p in
// [0,1].
func NewBernoulli(p float64) (*Bernoulli, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, invalidParamf("bernoulli: success probability must be in [0,1], got %v", p)
	}
	return &Bernoulli{p: p}, nil
}

// P returns the success probability.
func (b *Bernoulli) P() float64 { return b.p }

// CDF returns the cumulative probability at k.
func (b *Bernoulli) CDF(k int64) float64 {
	switch {
	case k < 0:
		return 0
	case k == 0:
		return 1 - b.p
	default:
		return 1
	}
}

// InSupport reports whether k is 0 or 1.
func (b *Bernoulli) InSupport(k int64) bool {
	return k == 0 || k == 1
}

// PMF returns p at 1, 1-p at 0, and 0 elsewhere.
func (b *Bernoulli) PMF(k int64) float64 {
	switch k {
	case 0:
		return 1 - b.p
	case 1:
		return b.p
	default:
		return 0
	}
}

// InverseCDF returns the smallest k with CDF(k) >= p.
func (b *Bernoulli) InverseCDF(p float64) int64 {
	checkProb(p)
	if p <= 1-b.p {
		return 0
	}
	return 1
}

// Sample returns 1 when the canonical uniform falls below p.
func (b *Bernoulli) Sample(src rng.Source) int64 {
	if rng.Float64(src) < b.p {
		return 1
	}
	return 0
}

// Mean returns p.
func (b *Bernoulli) Mean() float64 { return b.p }

// Variance returns p(1-p).
func (b *Bernoulli) Variance() float64 { return b.p * (1 - b.p) }

// Skewness returns (1-2p)/sqrt(p(1-p)), or NaN when p is 0 or 1.
func (b *Bernoulli) Skewness() float64 {
	if b.p == 0 || b.p == 1 {
		return math.NaN()
	}
	return (1 - 2*b.p) / math.Sqrt(b.p*(1-b.p))
}

// Kurtosis returns the excess kurtosis (1-6p(1-p))/(p(1-p)), or NaN
// when p is 0 or 1.
func (b *Bernoulli) Kurtosis() float64 {
	if b.p == 0 || b.p == 1 {
		return math.NaN()
	}
	pq := b.p * (1 - b.p)
	return (1 - 6*pq) / pq
}

// Entropy returns the Shannon entropy -(p ln p + q ln q) in nats.
// A degenerate Bernoulli with p of 0 or 1 carries no information, so
// its entropy is 0.
func (b *Bernoulli) Entropy() float64 {
	if b.p == 0 || b.p == 1 {
		return 0
	}
	q := 1 - b.p
	return -(b.p*math.Log(b.p) + q*math.Log(q))
}
