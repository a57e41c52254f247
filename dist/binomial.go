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
	_ Discrete = (*Binomial)(nil)
	_ Moments  = (*Binomial)(nil)
)

// Binomial counts successes in n independent trials with success
// probability p, over the support {0, ..., n}.
type Binomial struct {
	n int64
	p float64
}

// NewBinomial returns a Binomial with n >= 0 trials and success
// probability p in [0,1].
func NewBinomial(n int64, p float64) (*Binomial, error) {
	if n < 0 {
		return nil, invalidParamf("binomial: trial count must be non-negative, got %v", n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, invalidParamf("binomial: success probability must be in [0,1], got %v", p)
	}
	return &Binomial{n: n, p: p}, nil
}

// N returns the trial count.
func (b *Binomial) N() int64 { return b.n }

// P returns the success probability.
func (b *Binomial) P() float64 { return b.p }

// pmfRecurrence walks p(k) = p(k-1) * (n-k+1)/k * p/(1-p) up from
// p(0) = (1-p)^n. The degenerate probabilities need no recurrence.
func (b *Binomial) pmfRecurrence(k int64) float64 {
	if k < 0 || k > b.n {
		return 0
	}
	if b.p == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if b.p == 1 {
		if k == b.n {
			return 1
		}
		return 0
	}
	pk := math.Pow(1-b.p, float64(b.n))
	odds := b.p / (1 - b.p)
	for i := int64(1); i <= k; i++ {
		pk *= float64(b.n-i+1) / float64(i) * odds
	}
	return pk
}

// CDF sums the mass up to k.
func (b *Binomial) CDF(k int64) float64 {
	if k < 0 {
		return 0
	}
	if k >= b.n {
		return 1
	}
	sum := 0.0
	pk := b.pmfRecurrence(0)
	odds := 0.0
	if b.p < 1 {
		odds = b.p / (1 - b.p)
	}
	for i := int64(0); i <= k; i++ {
		if i > 0 {
			pk *= float64(b.n-i+1) / float64(i) * odds
		}
		sum += pk
	}
	return math.Min(sum, 1)
}

// InSupport reports whether k lies in {0, ..., n}.
func (b *Binomial) InSupport(k int64) bool {
	return k >= 0 && k <= b.n
}

// PMF returns the mass of exactly k successes.
func (b *Binomial) PMF(k int64) float64 {
	return b.pmfRecurrence(k)
}

// InverseCDF returns the smallest k with CDF(k) >= pr.
func (b *Binomial) InverseCDF(pr float64) int64 {
	checkProb(pr)
	if pr == 0 {
		return 0
	}
	acc := 0.0
	for k := int64(0); k < b.n; k++ {
		acc += b.pmfRecurrence(k)
		if pr <= acc {
			return k
		}
	}
	return b.n
}

// Sample draws by inverting one canonical uniform over the summed
// mass.
func (b *Binomial) Sample(src rng.Source) int64 {
	u := rng.Float64(src)
	acc := 0.0
	pk := b.pmfRecurrence(0)
	odds := 0.0
	if b.p < 1 {
		odds = b.p / (1 - b.p)
	}
	for k := int64(0); k < b.n; k++ {
		if k > 0 {
			pk *= float64(b.n-k+1) / float64(k) * odds
		}
		acc += pk
		if u <= acc {
			return k
		}
	}
	return b.n
}

// Mean returns n*p.
func (b *Binomial) Mean() float64 { return float64(b.n) * b.p }

// Variance returns n*p*(1-p).
func (b *Binomial) Variance() float64 { return float64(b.n) * b.p * (1 - b.p) }

// Skewness returns (1-2p)/sqrt(np(1-p)), or NaN when the distribution
// is degenerate (n of 0, or p of 0 or 1).
func (b *Binomial) Skewness() float64 {
	npq := float64(b.n) * b.p * (1 - b.p)
	if npq == 0 {
		return math.NaN()
	}
	return (1 - 2*b.p) / math.Sqrt(npq)
}

// Kurtosis returns the excess kurtosis (1-6p(1-p))/(np(1-p)), or NaN
// when the distribution is degenerate.
func (b *Binomial) Kurtosis() float64 {
	npq := float64(b.n) * b.p * (1 - b.p)
	if npq == 0 {
		return math.NaN()
	}
	return (1 - 6*b.p*(1-b.p)) / npq
}

// Entropy returns the Shannon entropy -sum p(k) ln p(k) in nats,
// accumulated with the same pmf recurrence the CDF walk uses.
func (b *Binomial) Entropy() float64 {
	if b.n == 0 || b.p == 0 || b.p == 1 {
		return 0
	}
	pk := math.Pow(1-b.p, float64(b.n))
	odds := b.p / (1 - b.p)
	h := 0.0
	if pk > 0 {
		h -= pk * math.Log(pk)
	}
	for k := int64(1); k <= b.n; k++ {
		pk *= odds * float64(b.n-k+1) / float64(k)
		if pk > 0 {
			h -= pk * math.Log(pk)
		}
	}
	return h
}
