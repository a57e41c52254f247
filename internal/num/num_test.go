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

package num_test

import (
	"math"
	"testing"

	"github.com/distr-project/godist/internal/num"
	"github.com/stretchr/testify/assert"
)

func TestErf(t *testing.T) {
	// The rational approximation carries an absolute error below
	// 1.5e-7 everywhere; math.Erf is the yardstick.
	for x := -6.0; x <= 6.0; x += 0.01 {
		assert.InDelta(t, math.Erf(x), num.Erf(x), 1.5e-7, "x=%v", x)
	}
	assert.InDelta(t, 0.0, num.Erf(0), 1.5e-7)
	assert.InDelta(t, 1.0, num.Erf(10), 1e-15)
	assert.InDelta(t, -1.0, num.Erf(-10), 1e-15)
}

func TestStdNormalCDF(t *testing.T) {
	var tests = []struct {
		z    float64
		want float64
	}{
		{0, 0.5},
		{1.959963984540054, 0.975},
		{-1.959963984540054, 0.025},
		{1, 0.8413447460685429},
		{-3, 0.0013498980316300933},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, num.StdNormalCDF(test.z), 2e-7, "z=%v", test.z)
	}

	for z := -40.0; z <= 40.0; z += 0.5 {
		p := num.StdNormalCDF(z)
		assert.True(t, p >= 0 && p <= 1, "cdf(%v)=%v outside [0,1]", z, p)
	}
}

func TestStdNormalInvCDF(t *testing.T) {
	var tests = []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.975, 1.959963984540054},
		{0.025, -1.959963984540054},
		{0.8413447460685429, 1},
		{1e-9, -5.997807015008182},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, num.StdNormalInvCDF(test.p), 2e-6, "p=%v", test.p)
	}

	// Round trip through the forward approximation.
	for p := 0.001; p < 1; p += 0.001 {
		z := num.StdNormalInvCDF(p)
		assert.InDelta(t, p, num.StdNormalCDF(z), 1e-5, "p=%v", p)
	}

	// The rational pieces meet continuously at the regime boundary.
	lo := num.StdNormalInvCDF(0.02425 - 1e-12)
	hi := num.StdNormalInvCDF(0.02425 + 1e-12)
	assert.InDelta(t, lo, hi, 1e-6)
}

func TestLnGamma(t *testing.T) {
	for _, z := range []float64{0.1, 0.5, 1, 1.5, 2, 3.75, 10, 100, 1e4} {
		want, _ := math.Lgamma(z)
		assert.InDelta(t, want, num.LnGamma(z), math.Abs(want)*1e-10+1e-10, "z=%v", z)
	}
	// Reflection branch, including negative z on both sides of the
	// sine's sign changes.
	for _, z := range []float64{0.25, -0.5, -1.5, -2.5, -4.2} {
		want, _ := math.Lgamma(z)
		assert.InDelta(t, want, num.LnGamma(z), math.Abs(want)*1e-10+1e-10, "z=%v", z)
	}
}

func TestLnFactorial(t *testing.T) {
	exact := 1.0
	for n := uint64(1); n <= 20; n++ {
		exact *= float64(n)
		assert.InDelta(t, math.Log(exact), num.LnFactorial(n), 1e-12, "n=%d", n)
	}
	assert.Equal(t, 0.0, num.LnFactorial(0))

	for _, n := range []uint64{21, 50, 170, 1000, 1000000} {
		want, _ := math.Lgamma(float64(n) + 1)
		assert.InDelta(t, want, num.LnFactorial(n), math.Abs(want)*1e-10, "n=%d", n)
	}
}

func TestRegLowerGamma(t *testing.T) {
	var tests = []struct {
		a, x, want float64
	}{
		// Chi-squared(2) cdf at 2 is 1-exp(-1).
		{1, 1, 0.6321205588285577},
		{2, 2, 0.5939941502901616},
		{0.5, 0.5, 0.6826894921370859},
		{10, 5, 0.031828057306204},
		{10, 20, 0.995004587691692},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, num.RegLowerGamma(test.a, test.x), 1e-10, "a=%v x=%v", test.a, test.x)
	}
	assert.Equal(t, 0.0, num.RegLowerGamma(3, 0))
}

func TestRegIncBeta(t *testing.T) {
	var tests = []struct {
		a, b, x, want float64
	}{
		{1, 1, 0.3, 0.3},
		{2, 2, 0.5, 0.5},
		{2, 3, 0.4, 0.5248},
		{0.5, 0.5, 0.25, 0.3333333333333333},
		{5, 1, 0.9, 0.59049},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, num.RegIncBeta(test.a, test.b, test.x), 1e-10,
			"a=%v b=%v x=%v", test.a, test.b, test.x)
	}
	assert.Equal(t, 0.0, num.RegIncBeta(2, 3, 0))
	assert.Equal(t, 1.0, num.RegIncBeta(2, 3, 1))
}

func TestDigamma(t *testing.T) {
	const eulerGamma = 0.5772156649015329
	var tests = []struct {
		x, want float64
	}{
		{1, -eulerGamma},
		{2, 1 - eulerGamma},
		{0.5, -eulerGamma - 2*math.Ln2},
		{10, 2.2517525890667214},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, num.Digamma(test.x), 1e-10, "x=%v", test.x)
	}
}
