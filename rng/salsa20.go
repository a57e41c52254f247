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

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20/salsa"
)

// Salsa20 produces deterministic output by consuming a Salsa20
// keystream in 64-bit little-endian words. The 256-bit key is expanded
// from a single seed through SplitMix64 and the stream identifier
// becomes the keystream nonce, so the same state seed yields
// independent sequences per stream. Determinism, not secrecy, is the
// point here; the seed is public.
type Salsa20 struct {
	key    [32]byte
	nonce  [8]byte
	block  uint64
	buf    [64]byte
	offset int
}

// NewSalsa20 returns a keystream source on stream 0.
func NewSalsa20(seed uint64) *Salsa20 {
	return NewSalsa20Stream(seed, 0)
}

// NewSalsa20Stream returns a keystream source for the given stream
// identifier. Distinct identifiers select distinct nonces and
// therefore unrelated keystreams from the same seed.
func NewSalsa20Stream(seed, stream uint64) *Salsa20 {
	s := &Salsa20{}
	s.seed(seed, stream)
	return s
}

// Seed re-keys the source from seed, keeping the current stream
// identifier.
func (s *Salsa20) Seed(seed uint64) {
	s.seed(seed, binary.LittleEndian.Uint64(s.nonce[:]))
}

func (s *Salsa20) seed(seed, stream uint64) {
	sm := NewSplitMix64(seed)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(s.key[8*i:], sm.Uint64())
	}
	binary.LittleEndian.PutUint64(s.nonce[:], stream)
	s.block = 0
	s.offset = len(s.buf)
}

// Uint64 returns the next 64 bits of the keystream.
func (s *Salsa20) Uint64() uint64 {
	if s.offset == len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.offset:])
	s.offset += 8
	return v
}

func (s *Salsa20) refill() {
	var counter [16]byte
	copy(counter[:8], s.nonce[:])
	binary.LittleEndian.PutUint64(counter[8:], s.block)
	var zero [64]byte
	salsa.XORKeyStream(s.buf[:], zero[:], &counter, &s.key)
	s.block++
	s.offset = 0
}
