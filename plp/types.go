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

// Package plp provides fixed-point, integer, and single-precision float DSP
// kernels for strided matrices, ported from the PULP-DSP library's RISC-V
// kernels to portable Go.
//
// Each kernel family exists in three flavors, mirroring the per-ISA variants
// of the original library: a scalar baseline (the RV32IM kernels), a
// loop-unrolled form, and a packed form that applies sub-word SWAR arithmetic
// to 2x16-bit or 4x8-bit lanes inside one machine word (the XPULPV2 kernels).
// Runtime dispatch selects the best flavor for the host; see CurrentLevel.
//
// Basic usage:
//
//	import "github.com/pulpdsp/go-pulpdsp/plp/matstride"
//
//	// dst[m*strideY+n] = a[m*strideA+n] + b[m*strideB+n]
//	matstride.AddStride(a, b, M, N, strideA, strideB, strideY, dst)
//
// Kernels never allocate and never validate their arguments: buffers are
// caller-owned, strides must be at least the logical width, and input and
// output regions must not alias.
package plp

// Ints is a constraint for the signed integer element widths the kernels
// operate on.
type Ints interface {
	~int8 | ~int16 | ~int32
}

// Element is a constraint for all matrix element types: signed 8/16/32-bit
// integers and single-precision floats.
type Element interface {
	Ints | ~float32
}
