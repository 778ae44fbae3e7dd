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

// Package matmul provides matrix multiplication kernels for contiguous
// row-major matrices. Integer inputs accumulate into 32-bit sums that wrap
// on overflow.
//
// The parallel variants partition output rows round-robin across a team of
// processing elements, exactly like the elementwise kernels in matstride,
// and rendezvous through the team barrier before returning (Sync defaults
// to on), since callers of a matrix product typically consume the combined
// output inside the forked region.
//
// Kernels never allocate and never validate their arguments.
package matmul

import "github.com/pulpdsp/go-pulpdsp/plp"

// Mult computes dst = srcA · srcB for row-major operands:
// srcA is M×N, srcB is N×O, dst is M×O.
func Mult[T plp.Ints](srcA, srcB []T, m, n, o int, dst []int32) {
	multRows(srcA, srcB, m, n, o, dst, 0, 1)
}

// MultTrans computes dst = srcA · srcBᵀ where srcB is stored transposed:
// srcA is M×N, srcB is O×N, dst is M×O. The transposed layout makes both
// inner loops walk contiguous memory.
func MultTrans[T plp.Ints](srcA, srcB []T, m, n, o int, dst []int32) {
	multTransRows(srcA, srcB, m, n, o, dst, 0, 1)
}

// MultF32 is Mult for single-precision floats.
func MultF32(srcA, srcB []float32, m, n, o int, dst []float32) {
	for mi := 0; mi < m; mi++ {
		for oi := 0; oi < o; oi++ {
			var sum float32
			for ni := 0; ni < n; ni++ {
				sum += srcA[mi*n+ni] * srcB[ni*o+oi]
			}
			dst[mi*o+oi] = sum
		}
	}
}

// MultTransF32 is MultTrans for single-precision floats.
func MultTransF32(srcA, srcB []float32, m, n, o int, dst []float32) {
	for mi := 0; mi < m; mi++ {
		for oi := 0; oi < o; oi++ {
			var sum float32
			for ni := 0; ni < n; ni++ {
				sum += srcA[mi*n+ni] * srcB[oi*n+ni]
			}
			dst[mi*o+oi] = sum
		}
	}
}

// multRows computes the round-robin share of output rows owned by coreID.
func multRows[T plp.Ints](srcA, srcB []T, m, n, o int, dst []int32, coreID, nPE int) {
	for mi := coreID; mi < m; mi += nPE {
		for oi := 0; oi < o; oi++ {
			var sum int32
			for ni := 0; ni < n; ni++ {
				sum += int32(srcA[mi*n+ni]) * int32(srcB[ni*o+oi])
			}
			dst[mi*o+oi] = sum
		}
	}
}

func multTransRows[T plp.Ints](srcA, srcB []T, m, n, o int, dst []int32, coreID, nPE int) {
	for mi := coreID; mi < m; mi += nPE {
		for oi := 0; oi < o; oi++ {
			var sum int32
			for ni := 0; ni < n; ni++ {
				sum += int32(srcA[mi*n+ni]) * int32(srcB[oi*n+ni])
			}
			dst[mi*o+oi] = sum
		}
	}
}
