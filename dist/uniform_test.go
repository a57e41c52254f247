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
	"testing"

	"github.com/distr-project/godist/dist"
	"github.com/distr-project/godist/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform_CDF(t *testing.T) {
	u, err := dist.NewUniform(-1, 1)
	require.NoError(t, err)

	assert.Equal(t, 0.0, u.CDF(-2))
	assert.Equal(t, 0.0, u.CDF(-1))
	assert.InDelta(t, 0.5, u.CDF(0), 1e-15)
	assert.InDelta(t, 0.75, u.CDF(0.5), 1e-15)
	assert.Equal(t, 1.0, u.CDF(1))
	assert.Equal(t, 1.0, u.CDF(7))

	assert.InDelta(t, 0.5, u.PDF(0.3), 1e-15)
	assert.Equal(t, 0.0, u.PDF(1.5))
}

func TestUniform_InverseCDF(t *testing.T) {
	u, err := dist.NewUniform(3, 8)
	require.NoError(t, err)

	assert.Equal(t, 3.0, u.InverseCDF(0))
	assert.Equal(t, 8.0, u.InverseCDF(1))
	for p := 0.0; p <= 1.0; p += 0.01 {
		x := u.InverseCDF(p)
		assert.True(t, u.InSupport(x))
		assert.InDelta(t, p, u.CDF(x), 1e-12, "p=%v", p)
	}
}

func TestUniform_Sample(t *testing.T) {
	u, err := dist.NewUniform(-1, 1)
	require.NoError(t, err)

	src := rng.NewXoshiro256StarStar(1)
	samples := dist.Floats(u, src, 200000)
	for _, x := range samples {
		require.True(t, x >= -1 && x < 1, "sample %v outside [-1,1)", x)
	}
	paramBounds{
		meanLow: -0.01, meanHigh: 0.01,
		varLow: 0.32, varHigh: 0.35,
	}.check(t, samples)

	assert.Equal(t, 0.0, u.Mean())
	assert.InDelta(t, 1.0/3.0, u.Variance(), 1e-15)
}
