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

// SubStride subtracts two M×N strided matrices element-wise:
//
//	dst[m*strideY+n] = srcA[m*strideA+n] - srcB[m*strideB+n]
func SubStride[T plp.Element](srcA, srcB []T, m, n, strideA, strideB, strideY int, dst []T) {
	binaryStride(srcA, srcB, m, n, strideA, strideB, strideY, dst, rowBinFor(packedSub, subOf[T]))
}

// BaseSubStride is the scalar baseline form of SubStride.
func BaseSubStride[T plp.Element](srcA, srcB []T, m, n, strideA, strideB, strideY int, dst []T) {
	binaryStride(srcA, srcB, m, n, strideA, strideB, strideY, dst, rowScalar(subOf[T]))
}

// UnrolledSubStride is the 2-way unrolled form of SubStride.
func UnrolledSubStride[T plp.Element](srcA, srcB []T, m, n, strideA, strideB, strideY int, dst []T) {
	binaryStride(srcA, srcB, m, n, strideA, strideB, strideY, dst, rowUnrolled2(subOf[T]))
}

// PackedSubStride is the packed SWAR form of SubStride.
func PackedSubStride[T plp.Element](srcA, srcB []T, m, n, strideA, strideB, strideY int, dst []T) {
	binaryStride(srcA, srcB, m, n, strideA, strideB, strideY, dst, rowPacked(packedSub, subOf[T]))
}
