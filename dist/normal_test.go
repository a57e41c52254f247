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
	"gonum.org/v1/gonum/stat/distuv"
)

func TestNormal_CDF(t *testing.T) {
	n, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, n.CDF(0), 2e-7)
	assert.InDelta(t, 0.975, n.CDF(1.959963984540054), 2e-7)
	assert.InDelta(t, 0.3989422804014327, n.PDF(0), 1e-15)

	// Cross-check against an independent implementation on a grid.
	ref := distuv.Normal{Mu: 0, Sigma: 1}
	for z := -5.0; z <= 5.0; z += 0.1 {
		assert.InDelta(t, ref.CDF(z), n.CDF(z), 2e-6, "z=%v", z)
	}

	shifted, err := dist.NewNormal(10, 2)
	require.NoError(t, err)
	refShifted := distuv.Normal{Mu: 10, Sigma: 2}
	for _, x := range []float64{4, 8, 10, 12, 16} {
		assert.InDelta(t, refShifted.CDF(x), shifted.CDF(x), 2e-6, "x=%v", x)
	}
}

func TestNormal_InverseCDF(t *testing.T) {
	n, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	assert.True(t, math.IsInf(n.InverseCDF(0), -1))
	assert.True(t, math.IsInf(n.InverseCDF(1), 1))
	assert.InDelta(t, 1.959963984540054, n.InverseCDF(0.975), 2e-6)

	for _, p := range []float64{1e-9, 1e-6, 0.001, 0.02425, 0.3, 0.5, 0.7, 0.97575, 0.999, 1 - 1e-9} {
		z := n.InverseCDF(p)
		assert.InDelta(t, p, n.CDF(z), 1e-5, "p=%v", p)
	}

	// CDF is monotone, so its generalized inverse must be as well.
	prev := math.Inf(-1)
	for p := 0.001; p < 1; p += 0.001 {
		z := n.InverseCDF(p)
		assert.True(t, z >= prev, "quantile decreased at p=%v", p)
		prev = z
	}
}

func TestNormal_Sample(t *testing.T) {
	n, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	src := rng.NewXoroshiro128PlusPlus(2024)
	samples := dist.Floats(n, src, 1000000)
	paramBounds{
		meanLow: -0.005, meanHigh: 0.005,
		varLow: 0.99, varHigh: 1.01,
	}.check(t, samples)

	// Same engine seed gives the same stream of variates.
	again := dist.Floats(n, rng.NewXoroshiro128PlusPlus(2024), 1000)
	assert.Equal(t, samples[:1000], again)

	shifted, err := dist.NewNormal(5, 0.5)
	require.NoError(t, err)
	samples = dist.Floats(shifted, rng.NewPCG32(7), 200000)
	paramBounds{
		meanLow: 4.99, meanHigh: 5.01,
		varLow: 0.245, varHigh: 0.255,
	}.check(t, samples)
}

// The engines satisfy gonum's source interface directly, so they can
// drive its samplers too.
func TestNormal_EngineDrivesDistuv(t *testing.T) {
	ref := distuv.Normal{Mu: 0, Sigma: 1, Src: rng.NewXoshiro256StarStar(31)}
	sum := 0.0
	for i := 0; i < 100000; i++ {
		sum += ref.Rand()
	}
	assert.InDelta(t, 0, sum/100000, 0.02)
}
