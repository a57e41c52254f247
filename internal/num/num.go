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

// Package num holds the numerical approximations shared by the
// distributions: the error function, the standard normal CDF and its
// inverse, and the gamma and beta special functions. Everything here
// is plain float64 arithmetic with documented accuracy.
package num

import "math"

// Frequently used constants.
const (
	SqrtTwoPi    = 2.50662827463100050241576528481104525
	InvSqrtTwoPi = 1.0 / SqrtTwoPi
	InvSqrt2     = 1.0 / math.Sqrt2
)

// StdNormalPDF returns the standard normal density at z.
func StdNormalPDF(z float64) float64 {
	return math.Exp(-0.5*z*z) * InvSqrtTwoPi
}

// Erf approximates the error function with the Abramowitz & Stegun
// 7.1.26 polynomial. Absolute error is below 1.5e-7 over the whole
// real line.
func Erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}
	t := 1.0 / (1.0 + 0.3275911*x)
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
	)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)
	return sign * y
}

// StdNormalCDF returns the standard normal CDF at z via Erf. The
// result is clamped to [0,1] so floating-point rounding in the
// polynomial can never push a probability out of range.
func StdNormalCDF(z float64) float64 {
	c := 0.5 * (1.0 + Erf(z*InvSqrt2))
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// Acklam probit coefficients.
var (
	probitA = [6]float64{
		-3.969683028665376e+01,
		2.209460984245205e+02,
		-2.759285104469687e+02,
		1.383577518672690e+02,
		-3.066479806614716e+01,
		2.506628277459239e+00,
	}
	probitB = [5]float64{
		-5.447609879822406e+01,
		1.615858368580409e+02,
		-1.556989798598866e+02,
		6.680131188771972e+01,
		-1.328068155288572e+01,
	}
	probitC = [6]float64{
		-7.784894002430293e-03,
		-3.223964580411365e-01,
		-2.400758277161838e+00,
		-2.549732539343734e+00,
		4.374664141464968e+00,
		2.938163982698783e+00,
	}
	probitD = [4]float64{
		7.784695709041462e-03,
		3.224671290700398e-01,
		2.445134137142996e+00,
		3.754408661907416e+00,
	}
)

// probitLow/probitHigh are the switch points between the central
// rational approximation and the log-transform tail approximations.
// The two branches agree at the boundary to well under 1e-6.
const (
	probitLow  = 0.02425
	probitHigh = 1.0 - probitLow
)

// StdNormalInvCDF returns the standard normal quantile (probit) for p
// in (0,1), using Peter J. Acklam's rational approximation: a central
// rational polynomial for p in [0.02425, 0.97575] and log-transformed
// tail approximations outside. Relative error is on the order of
// 1.15e-9.
func StdNormalInvCDF(p float64) float64 {
	if p < probitLow {
		q := math.Sqrt(-2.0 * math.Log(p))
		return (((((probitC[0]*q+probitC[1])*q+probitC[2])*q+probitC[3])*q+probitC[4])*q + probitC[5]) /
			((((probitD[0]*q+probitD[1])*q+probitD[2])*q+probitD[3])*q + 1.0)
	}
	if p > probitHigh {
		q := math.Sqrt(-2.0 * math.Log(1.0-p))
		return -(((((probitC[0]*q+probitC[1])*q+probitC[2])*q+probitC[3])*q+probitC[4])*q + probitC[5]) /
			((((probitD[0]*q+probitD[1])*q+probitD[2])*q+probitD[3])*q + 1.0)
	}
	q := p - 0.5
	r := q * q
	return (((((probitA[0]*r+probitA[1])*r+probitA[2])*r+probitA[3])*r+probitA[4])*r + probitA[5]) * q /
		(((((probitB[0]*r+probitB[1])*r+probitB[2])*r+probitB[3])*r+probitB[4])*r + 1.0)
}

// Digamma returns psi(x) = d/dx ln Gamma(x) for x > 0, shifting x to
// at least 12 with the recurrence and finishing with the asymptotic
// series truncated at the 1/x^6 Bernoulli term. The shift keeps the
// truncation error below 1e-11 everywhere on the positive axis.
func Digamma(x float64) float64 {
	result := 0.0
	for x < 12 {
		result -= 1.0 / x
		x++
	}
	inv := 1.0 / x
	inv2 := inv * inv
	inv4 := inv2 * inv2
	inv6 := inv4 * inv2
	return result + math.Log(x) - 0.5*inv - inv2/12.0 + inv4/120.0 - inv6/252.0
}
