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

import "math/bits"

// Xoshiro256StarStar is the xoshiro256** generator of Blackman and
// Vigna: 256-bit state, period 2^256 - 1, excellent statistical
// properties.
type Xoshiro256StarStar struct {
	s [4]uint64
}

// NewXoshiro256StarStar returns a generator seeded with seed, expanded
// into the four state words through SplitMix64.
func NewXoshiro256StarStar(seed uint64) *Xoshiro256StarStar {
	x := &Xoshiro256StarStar{}
	x.Seed(seed)
	return x
}

// Seed expands seed through SplitMix64 into the four state words. The
// all-zero state is invalid and gets perturbed if the expansion ever
// produces it.
func (x *Xoshiro256StarStar) Seed(seed uint64) {
	sm := NewSplitMix64(seed)
	for i := range x.s {
		x.s[i] = sm.Uint64()
	}
	if x.s == [4]uint64{} {
		x.s[0] = 1
	}
}

// Uint64 returns the next output and advances the state.
func (x *Xoshiro256StarStar) Uint64() uint64 {
	result := bits.RotateLeft64(x.s[1]*5, 7) * 9

	t := x.s[1] << 17

	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]

	x.s[2] ^= t
	x.s[3] = bits.RotateLeft64(x.s[3], 45)

	return result
}

// Jump deterministically advances the state as if Uint64 had been
// called 2^128 times, providing 2^128 non-overlapping subsequences for
// parallel streams.
func (x *Xoshiro256StarStar) Jump() {
	x.jump([4]uint64{
		0x180ec6d33cfd0aba,
		0xd5a61266f0c9392c,
		0xa9582618e03fc9aa,
		0x39abdc4529b1661c,
	})
}

// LongJump advances the state as if Uint64 had been called 2^192
// times.
func (x *Xoshiro256StarStar) LongJump() {
	x.jump([4]uint64{
		0x76e15d3efefdcbbf,
		0xc5004e441c522fb3,
		0x77710069854ee241,
		0x39109bb02acbe635,
	})
}

func (x *Xoshiro256StarStar) jump(poly [4]uint64) {
	var t [4]uint64
	for _, j := range poly {
		for b := 0; b < 64; b++ {
			if j&(uint64(1)<<b) != 0 {
				for i := range t {
					t[i] ^= x.s[i]
				}
			}
			x.Uint64()
		}
	}
	x.s = t
}
