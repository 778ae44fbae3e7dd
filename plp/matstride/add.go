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

package matstride

import "github.com/pulpdsp/go-pulpdsp/plp"

// AddStride adds two M×N strided matrices element-wise:
//
//	dst[m*strideY+n] = srcA[m*strideA+n] + srcB[m*strideB+n]
//
// The kernel flavor is chosen at runtime; see the package documentation for
// the caller contract.
func AddStride[T plp.Element](srcA, srcB []T, m, n, strideA, strideB, strideY int, dst []T) {
	binaryStride(srcA, srcB, m, n, strideA, strideB, strideY, dst, rowBinFor(packedAdd, addOf[T]))
}

// BaseAddStride is the scalar baseline form of AddStride.
func BaseAddStride[T plp.Element](srcA, srcB []T, m, n, strideA, strideB, strideY int, dst []T) {
	binaryStride(srcA, srcB, m, n, strideA, strideB, strideY, dst, rowScalar(addOf[T]))
}

// UnrolledAddStride is the 2-way unrolled form of AddStride.
func UnrolledAddStride[T plp.Element](srcA, srcB []T, m, n, strideA, strideB, strideY int, dst []T) {
	binaryStride(srcA, srcB, m, n, strideA, strideB, strideY, dst, rowUnrolled2(addOf[T]))
}

// PackedAddStride is the packed SWAR form of AddStride. 8-bit elements are
// processed four lanes per word and 16-bit elements two lanes per word;
// 32-bit and float elements use the unrolled form. Integer lanes wrap on
// overflow exactly like the scalar baseline.
func PackedAddStride[T plp.Element](srcA, srcB []T, m, n, strideA, strideB, strideY int, dst []T) {
	binaryStride(srcA, srcB, m, n, strideA, strideB, strideY, dst, rowPacked(packedAdd, addOf[T]))
}
