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

package dist

import "github.com/distr-project/godist/rng"

// Floats fills a fresh slice with n draws from d.
func Floats(d Continuous, src rng.Source, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Sample(src)
	}
	return out
}

// Ints fills a fresh slice with n draws from d.
func Ints(d Discrete, src rng.Source, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = d.Sample(src)
	}
	return out
}
