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

// Package dist includes probability distributions supporting sampling,
// density and mass evaluation, cumulative probabilities, and quantile
// queries.
//
// Package dist provides the Distribution, Continuous, Discrete and
// Moments interfaces along with concrete distributions implementing
// them. Parameters are validated once at construction; a constructed
// distribution is immutable, cheaply copyable and safe to share across
// goroutines as long as each caller supplies its own rng.Source to
// Sample. Distributions never own a generator.
package dist
