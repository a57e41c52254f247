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

package rng

// Source is the capability every generator in this package provides:
// produce the next raw 64-bit integer and re-seed in place.
//
// A Source must never be shared across goroutines without explicit
// duplication; each Uint64 call mutates the internal state
// deterministically.
type Source interface {
	// Uint64 returns the next raw 64-bit output and advances the state.
	Uint64() uint64
	// Seed resets the state from a single 64-bit seed using the
	// generator's seeding convention.
	Seed(seed uint64)
}

// Source32 is implemented by generators whose native output width is
// 32 bits.
type Source32 interface {
	Source
	// Uint32 returns the next native 32-bit output.
	Uint32() uint32
}

// float64Denom is 2^53, the number of representable dyadic rationals
// used when deriving a canonical uniform from 64 raw bits.
const float64Denom = 1 << 53

// Float64 derives a canonical uniform value in [0,1) from the next
// output of src, using the top 53 bits for full float64 precision.
// The result is always strictly less than 1.
func Float64(src Source) float64 {
	return float64(src.Uint64()>>11) / float64Denom
}

// Float64Signed derives a uniform value in [-1,1) from the next
// output of src.
func Float64Signed(src Source) float64 {
	return 2*Float64(src) - 1
}
