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

package plp

// RowSplit reports how an unrolled kernel consumes a row of width n when it
// advances step elements per full iteration and optionally takes one half
// step of half elements. The returned counts satisfy
// n == iter*step + blk*half + rem, with blk in {0, 1} and rem < half
// (rem < step when half is 0).
//
// The 16-bit packed kernels use (step, half) = (4, 2): two packed words per
// iteration, one word for the half step, and a single scalar remainder. The
// 8-bit packed kernels use (4, 0), the unrolled scalar kernels (2, 0).
func RowSplit(n, step, half int) (iter, blk, rem int) {
	iter = n / step
	rem = n - iter*step
	if half > 0 && rem >= half {
		blk = 1
		rem -= half
	}
	return iter, blk, rem
}

// ProcessRow drives one row of an unrolled kernel. It invokes fullFn once
// per full step of step elements, halfFn at most once for a trailing half
// step of half elements (pass half = 0 and halfFn = nil to disable), and
// tailFn once for the final rem scalar elements. Offsets are element
// indices into the row.
//
// The iter/half/rem case analysis is identical across the add, subtract,
// and copy kernels and across element widths; only the step sizes and the
// loop bodies differ, so the split lives here once.
func ProcessRow(n, step, half int, fullFn func(off int), halfFn func(off int), tailFn func(off, count int)) {
	iter, blk, rem := RowSplit(n, step, half)

	off := 0
	for i := 0; i < iter; i++ {
		fullFn(off)
		off += step
	}
	if blk != 0 {
		halfFn(off)
		off += half
	}
	if rem > 0 {
		tailFn(off, rem)
	}
}
