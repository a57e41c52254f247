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

package num

import "math"

// lnGammaCof are the Lanczos coefficients for g=7, n=9.
var lnGammaCof = [9]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// LnGamma returns ln |Gamma(z)| via the Lanczos approximation, using
// the reflection formula for z < 0.5. For negative z the result is
// the log of the absolute value, matching math.Lgamma.
func LnGamma(z float64) float64 {
	if z < 0.5 {
		return math.Log(math.Pi) - math.Log(math.Abs(math.Sin(math.Pi*z))) - LnGamma(1.0-z)
	}
	z--
	x := lnGammaCof[0]
	for i := 1; i < len(lnGammaCof); i++ {
		x += lnGammaCof[i] / (z + float64(i))
	}
	t := z + 7.5
	return 0.5*math.Log(2.0*math.Pi) + (z+0.5)*math.Log(t) - t + math.Log(x)
}

// lnFactSmall holds exact ln(n!) for n = 0..20.
var lnFactSmall = [21]float64{
	0.0,
	0.0,
	math.Ln2,
	1.791759469228055,
	3.1780538303479458,
	4.787491742782046,
	6.579251212010101,
	8.525161361065415,
	10.60460290274525,
	12.80182748008147,
	15.104412573075516,
	17.502307845873887,
	19.98721449566189,
	22.552163853123425,
	25.19122118273868,
	27.899271383840894,
	30.671860106080675,
	33.50507345013689,
	36.39544520803305,
	39.339884187199495,
	42.335616460753485,
}

// LnFactorial returns ln(n!), exact up to n=20 and through the
// Stirling series with three correction terms beyond that.
func LnFactorial(n uint64) float64 {
	if n <= 20 {
		return lnFactSmall[n]
	}
	x := float64(n)
	inv := 1.0 / x
	inv2 := inv * inv
	inv3 := inv2 * inv
	inv5 := inv3 * inv2
	return x*math.Log(x) - x + 0.5*math.Log(2.0*math.Pi*x) +
		inv/12.0 - inv3/360.0 + inv5/1260.0
}

// RegLowerGamma returns the regularized lower incomplete gamma
// P(a, x), by series expansion for x < a+1 and by the continued
// fraction of the complement otherwise.
func RegLowerGamma(a, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x < a+1.0 {
		sum := 1.0 / a
		del := sum
		ap := a
		for i := 0; i < 1000; i++ {
			ap++
			del *= x / ap
			sum += del
			if math.Abs(del) < math.Abs(sum)*1e-14 {
				break
			}
		}
		return sum * math.Exp(-x+a*math.Log(x)-LnGamma(a))
	}
	// Continued fraction for Q(a,x), then P = 1 - Q.
	b := x + 1.0 - a
	c := 1.0 / 1e-30
	d := 1.0 / b
	h := d
	for i := 1; i <= 1000; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2.0
		d = an*d + b
		if math.Abs(d) < 1e-30 {
			d = 1e-30
		}
		c = b + an/c
		if math.Abs(c) < 1e-30 {
			c = 1e-30
		}
		d = 1.0 / d
		del := d * c
		h *= del
		if math.Abs(del-1.0) < 1e-14 {
			break
		}
	}
	return 1.0 - h*math.Exp(-x+a*math.Log(x)-LnGamma(a))
}

// RegIncBeta returns the regularized incomplete beta I_x(a, b),
// evaluating the continued fraction on whichever side of the symmetry
// point converges fastest.
func RegIncBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	bt := math.Exp(LnGamma(a+b) - LnGamma(a) - LnGamma(b) +
		a*math.Log(x) + b*math.Log(1.0-x))
	if x < (a+1.0)/(a+b+2.0) {
		return bt * betaCF(a, b, x) / a
	}
	return 1.0 - bt*betaCF(b, a, 1.0-x)/b
}

// betaCF evaluates the incomplete beta continued fraction with the
// modified Lentz method.
func betaCF(a, b, x float64) float64 {
	const (
		eps   = 3e-14
		fpmin = 1e-300
	)
	qab := a + b
	qap := a + 1.0
	qam := a - 1.0
	c := 1.0
	d := 1.0 - qab*x/qap
	if math.Abs(d) < fpmin {
		d = fpmin
	}
	d = 1.0 / d
	h := d
	for m := 1; m <= 200; m++ {
		m2 := 2 * m
		aa := float64(m) * (b - float64(m)) * x / ((qam + float64(m2)) * (a + float64(m2)))
		d = 1.0 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1.0 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1.0 / d
		h *= d * c
		aa = -(a + float64(m)) * (qab + float64(m)) * x / ((a + float64(m2)) * (qap + float64(m2)))
		d = 1.0 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1.0 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1.0 / d
		del := d * c
		h *= del
		if math.Abs(del-1.0) < eps {
			break
		}
	}
	return h
}
