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

// Package rng includes deterministic, seedable pseudo-random
// number generators.
//
// Package rng provides the Source interface along with several
// interchangeable implementations of this interface: SplitMix64,
// Xoroshiro128PlusPlus, Xoshiro256StarStar, PCG32 and Salsa20.
// Two sources of the same kind seeded with the same value produce
// identical output sequences on every platform and build.
//
// Implementations of the Source interface can be used, for instance,
// to drive the sampling methods of the distributions in package dist.
// None of the generators are suitable for cryptographic use.
package rng
