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

// Package matstride provides elementwise kernels over strided matrices:
// addition, subtraction, copy, and identity fill.
//
// A strided matrix is an M×N view over a linear buffer where stride is the
// element count from the start of one row to the start of the next. Rows
// are contiguous only when stride == N; each operand carries its own
// stride. For every kernel the computed result is the optimized equivalent
// of the plain double loop, here for addition:
//
//	for m := 0; m < M; m++ {
//	    for n := 0; n < N; n++ {
//	        dst[m*strideY+n] = srcA[m*strideA+n] + srcB[m*strideB+n]
//	    }
//	}
//
// Integer results wrap on overflow per element, with no saturation and no
// promotion.
//
// # Variants
//
// Each operation exists as a scalar baseline (Base prefix), a 2-way
// unrolled form (Unrolled prefix), a packed SWAR form for 8- and 16-bit
// elements (Packed prefix), and an undecorated entry point that picks the
// flavor for the host at runtime (see plp.CurrentLevel). All variants
// produce bit-identical output.
//
// # Parallel variants
//
// The Worker entry points run one processing element's share of a kernel:
// rows are partitioned round-robin, element p handling rows p, p+nPE,
// p+2·nPE, and so on. Every worker receives the identical StrideInstance
// and self-selects its rows from its core id; output rows are disjoint
// across workers by construction, so no locking is involved. The Parallel
// wrappers build the instance and fork a goroutine team via pe.Fork.
//
// # Caller contract
//
// Kernels never allocate and never validate. Strides below N, aliasing of
// input and output regions, and negative dimensions are undefined behavior
// the caller must rule out.
package matstride
