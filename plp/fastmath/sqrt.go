// Copyright 2025 go-pulpdsp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fastmath provides scalar approximation kernels with fixed,
// deterministic iteration counts, for callers that trade a little precision
// for bounded per-call latency.
package fastmath

// sqrtIters is the unconditional Newton-Raphson iteration count. The fixed
// count keeps per-call latency constant; it is not a convergence check.
const sqrtIters = 15

// Sqrt approximates the square root of x by Newton-Raphson refinement of a
// reciprocal square root estimate seeded with 1/(2x). Inputs that are zero,
// negative, or NaN return exactly 0.
//
// Relative error stays below 1e-5 for x roughly in [0.1, 4e3]. Outside that
// range the fixed-count iteration has not yet converged from the 1/(2x)
// seed (and below 1/12 the seed is outside the iteration's basin
// entirely), so results degrade; callers needing IEEE-exact square roots
// across the full float range should use math.Sqrt instead.
func Sqrt(x float32) float32 {
	half := x / 2
	if !(half > 0) {
		return 0
	}
	y := 1 / (2 * x)
	for i := 0; i < sqrtIters; i++ {
		y = y * (1.5 - y*y*half)
	}
	return y * x
}

// InvSqrt approximates 1/sqrt(x), the quantity the Newton-Raphson loop in
// Sqrt converges to before the final multiply. Inputs that are zero,
// negative, or NaN return exactly 0. The accuracy domain matches Sqrt.
func InvSqrt(x float32) float32 {
	half := x / 2
	if !(half > 0) {
		return 0
	}
	y := 1 / (2 * x)
	for i := 0; i < sqrtIters; i++ {
		y = y * (1.5 - y*y*half)
	}
	return y
}
