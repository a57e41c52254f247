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

package dist_test

import (
	"math"
	"testing"

	"github.com/distr-project/godist/dist"
	"github.com/distr-project/godist/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoisson_PMF(t *testing.T) {
	p, err := dist.NewPoisson(3)
	require.NoError(t, err)

	assert.InDelta(t, 0.22404180765538775, p.PMF(3), 1e-6)
	assert.InDelta(t, math.Exp(-3), p.PMF(0), 1e-15)
	assert.Equal(t, 0.0, p.PMF(-1))

	// The log-space form stays finite and positive far out in rate,
	// where exp(-lambda) alone underflows to zero.
	big, err := dist.NewPoisson(800)
	require.NoError(t, err)
	m := big.PMF(800)
	assert.True(t, m > 0 && m < 1 && !math.IsInf(m, 0) && !math.IsNaN(m))
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi*800), m, 1e-4)
}

func TestPoisson_CDF(t *testing.T) {
	p, err := dist.NewPoisson(3)
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.CDF(-1))
	assert.InDelta(t, math.Exp(-3), p.CDF(0), 1e-12)
	// P(X<=4) for lambda=3.
	assert.InDelta(t, 0.8152632445237722, p.CDF(4), 1e-10)

	for _, lambda := range []float64{0.5, 3, 29.9, 250, 1000} {
		p, err := dist.NewPoisson(lambda)
		require.NoError(t, err)
		prev := 0.0
		lo := int64(0)
		hi := int64(lambda + 8*math.Sqrt(lambda) + 8)
		for k := lo; k <= hi; k++ {
			c := p.CDF(k)
			require.True(t, c >= prev, "lambda=%v: cdf decreased at k=%d", lambda, k)
			require.True(t, c >= 0 && c <= 1, "lambda=%v: cdf(%d)=%v out of range", lambda, k, c)
			prev = c
		}
		assert.InDelta(t, 1.0, p.CDF(hi), 1e-9, "lambda=%v", lambda)
	}
}

func TestPoisson_InverseCDF(t *testing.T) {
	probs := []float64{1e-9, 0.001, 0.1, 0.25, 0.5, 0.75, 0.9, 0.999, 1 - 1e-9}

	for _, lambda := range []float64{2.5, 29.9, 250, 1000} {
		p, err := dist.NewPoisson(lambda)
		require.NoError(t, err)

		assert.Equal(t, int64(0), p.InverseCDF(0))
		assert.Equal(t, int64(math.MaxInt64), p.InverseCDF(1))

		for _, pr := range probs {
			k := p.InverseCDF(pr)
			require.True(t, k >= 0)
			// Smallest k whose cumulative mass reaches pr.
			assert.True(t, p.CDF(k) >= pr, "lambda=%v pr=%v: cdf(%d) < pr", lambda, pr, k)
			if k > 0 {
				assert.True(t, p.CDF(k-1) < pr, "lambda=%v pr=%v: %d is not minimal", lambda, pr, k)
			}
		}
	}
}

func TestPoisson_Entropy(t *testing.T) {
	p, err := dist.NewPoisson(3)
	require.NoError(t, err)
	assert.InDelta(t, 1.9314701981485691, p.Entropy(), 1e-9)

	// For large rates the entropy approaches that of a Normal with
	// matching variance, 0.5 ln(2 pi e lambda).
	big, err := dist.NewPoisson(1000)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*math.Log(2*math.Pi*math.E*1000), big.Entropy(), 1e-3)
}

func TestPoisson_Sample(t *testing.T) {
	var tests = []struct {
		name   string
		lambda float64
		n      int
		expect paramBounds
	}{
		{
			name:   "unit rate band",
			lambda: 3,
			n:      1000000,
			expect: paramBounds{
				meanLow: 2.99, meanHigh: 3.01,
				varLow: 2.97, varHigh: 3.03,
			},
		},
		{
			name:   "direct walk regime",
			lambda: 2.5,
			n:      1000000,
			expect: paramBounds{
				meanLow: 2.49, meanHigh: 2.51,
				varLow: 2.47, varHigh: 2.53,
			},
		},
		{
			name:   "mode walk regime",
			lambda: 250,
			n:      200000,
			expect: paramBounds{
				meanLow: 249.7, meanHigh: 250.3,
				varLow: 245, varHigh: 255,
			},
		},
		{
			name:   "quantile anchored regime",
			lambda: 1000,
			n:      50000,
			expect: paramBounds{
				meanLow: 999, meanHigh: 1001,
				varLow: 970, varHigh: 1030,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := dist.NewPoisson(test.lambda)
			require.NoError(t, err)

			samples := dist.Ints(p, rng.NewXoshiro256StarStar(404), test.n)
			for _, k := range samples[:100] {
				require.True(t, k >= 0)
			}
			test.expect.check(t, toFloats(samples))

			again := dist.Ints(p, rng.NewXoshiro256StarStar(404), 100)
			assert.Equal(t, samples[:100], again)
		})
	}
}
