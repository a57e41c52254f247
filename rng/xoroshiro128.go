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

// Xoroshiro128PlusPlus is the xoroshiro128++ generator of Blackman and
// Vigna: 128-bit state, period 2^128 - 1. The all-zero state is
// absorbing and must never be reached; seeding guarantees a non-zero
// state.
type Xoroshiro128PlusPlus struct {
	s0, s1 uint64
}

// NewXoroshiro128PlusPlus returns a generator seeded with seed,
// expanded into the two state words through SplitMix64.
func NewXoroshiro128PlusPlus(seed uint64) *Xoroshiro128PlusPlus {
	x := &Xoroshiro128PlusPlus{}
	x.Seed(seed)
	return x
}

// Seed expands seed through SplitMix64 into both state words. The
// all-zero expansion is perturbed to keep the state valid.
func (x *Xoroshiro128PlusPlus) Seed(seed uint64) {
	sm := NewSplitMix64(seed)
	x.s0 = sm.Uint64()
	x.s1 = sm.Uint64()
	if x.s0 == 0 && x.s1 == 0 {
		x.s0 = 1
	}
}

// Uint64 returns the next output and advances the state.
func (x *Xoroshiro128PlusPlus) Uint64() uint64 {
	s0, s1 := x.s0, x.s1
	result := bits.RotateLeft64(s0+s1, 17) + s0
	s1 ^= s0
	x.s0 = bits.RotateLeft64(s0, 49) ^ s1 ^ (s1 << 21)
	x.s1 = bits.RotateLeft64(s1, 28)
	return result
}

// Jump deterministically advances the state far enough to obtain a
// non-overlapping subsequence, for splitting independent parallel
// streams without stepping through the sequence.
func (x *Xoroshiro128PlusPlus) Jump() {
	x.jump([2]uint64{0xbeac0467eba5facb, 0xd86b048b86aa9922})
}

// LongJump advances the state much further than Jump, so that each
// long-jumped stream can itself be split with Jump.
func (x *Xoroshiro128PlusPlus) LongJump() {
	x.jump([2]uint64{0xd2a98b26625eee7b, 0xdddf9b1090aa7ac1})
}

func (x *Xoroshiro128PlusPlus) jump(poly [2]uint64) {
	var s0, s1 uint64
	for _, j := range poly {
		for b := 0; b < 64; b++ {
			if j&(uint64(1)<<b) != 0 {
				s0 ^= x.s0
				s1 ^= x.s1
			}
			x.Uint64()
		}
	}
	x.s0, x.s1 = s0, s1
}
