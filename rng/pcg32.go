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

const pcg32Mult = 6364136223846793005

// PCG32 is Melissa O'Neill's PCG XSH RR 64/32 generator: 64-bit LCG
// state with a 32-bit permuted output. It is the stream-capable
// generator of this package: distinct stream identifiers select
// distinct odd increments and therefore statistically independent
// sequences from the same state seed.
type PCG32 struct {
	state uint64
	inc   uint64 // always odd
}

// NewPCG32 returns a generator seeded with seed, expanded through
// SplitMix64 into both the state seed and the stream identifier.
func NewPCG32(seed uint64) *PCG32 {
	sm := NewSplitMix64(seed)
	state := sm.Uint64()
	stream := sm.Uint64()
	return NewPCG32Stream(state, stream)
}

// NewPCG32Stream returns a generator with an explicit stream
// identifier. The identifier is forced odd internally, so every value
// is valid; identifiers differing only in the top bit select the same
// stream.
func NewPCG32Stream(seed, stream uint64) *PCG32 {
	p := &PCG32{inc: stream<<1 | 1}
	p.Uint64()
	p.state += seed
	p.Uint64()
	return p
}

// Seed re-initializes the generator from a single seed, deriving a
// fresh stream identifier through SplitMix64.
func (p *PCG32) Seed(seed uint64) {
	sm := NewSplitMix64(seed)
	state := sm.Uint64()
	stream := sm.Uint64()
	p.inc = stream<<1 | 1
	p.state = 0
	p.Uint64()
	p.state += state
	p.Uint64()
}

// Uint32 returns the native 32-bit output: a variable rotation,
// selected by the high state bits, of the xor-shifted pre-update
// state.
func (p *PCG32) Uint32() uint32 {
	old := p.state
	p.state = old*pcg32Mult + p.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Uint64 concatenates two consecutive 32-bit outputs, high word first.
// The result is not bit-equivalent to a native 64-bit generator.
func (p *PCG32) Uint64() uint64 {
	hi := uint64(p.Uint32())
	lo := uint64(p.Uint32())
	return hi<<32 | lo
}
