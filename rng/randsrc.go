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
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/pkg/errors"
)

var _ rand.Source64 = (*RandSource)(nil)

// RandSource adapts any Source to math/rand.Source64, so the engines
// here can back a *rand.Rand for shuffling, permutations and the rest
// of the math/rand surface.
type RandSource struct {
	src Source
}

// NewRandSource wraps src as a math/rand.Source64.
func NewRandSource(src Source) *RandSource {
	return &RandSource{src: src}
}

// Uint64 implements rand.Source64.
func (r *RandSource) Uint64() uint64 {
	return r.src.Uint64()
}

// Int63 implements rand.Source by discarding the top bit of the next
// 64-bit output.
func (r *RandSource) Int63() int64 {
	return int64(r.src.Uint64() >> 1)
}

// Seed implements rand.Source through the wrapped generator's single
// seed convention.
func (r *RandSource) Seed(seed int64) {
	r.src.Seed(uint64(seed))
}

// EntropySeed draws a fresh 64-bit seed from the operating system's
// entropy source. Callers that want reproducibility should record the
// returned value and pass it back in later runs.
func EntropySeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "reading random seed")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
