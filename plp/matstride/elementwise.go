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

// This file holds the shared row engine behind the add/subtract kernels.
// One operator is described by its generic scalar form plus the word-level
// SWAR forms for both packed lane widths; every variant of every operator
// is a combination of a row kernel from this file and a strided driver.

// packedOp bundles the word-level forms of one wraparound operator.
type packedOp struct {
	w2 func(x, y uint32) uint32 // 2x16-bit lanes
	w4 func(x, y uint32) uint32 // 4x8-bit lanes
}

var (
	packedAdd = packedOp{w2: plp.Add2, w4: plp.Add4}
	packedSub = packedOp{w2: plp.Sub2, w4: plp.Sub4}
)

func addOf[T plp.Element](x, y T) T { return x + y }
func subOf[T plp.Element](x, y T) T { return x - y }

// rowBin computes one row of a binary elementwise operation.
type rowBin[T plp.Element] func(ra, rb, rd []T, n int)

// rowScalar is the baseline row kernel: one element per step.
func rowScalar[T plp.Element](op func(x, y T) T) rowBin[T] {
	return func(ra, rb, rd []T, n int) {
		for i := 0; i < n; i++ {
			rd[i] = op(ra[i], rb[i])
		}
	}
}

// rowUnrolled2 processes two elements per step with a scalar remainder.
func rowUnrolled2[T plp.Element](op func(x, y T) T) rowBin[T] {
	return func(ra, rb, rd []T, n int) {
		plp.ProcessRow(n, 2, 0,
			func(off int) {
				rd[off] = op(ra[off], rb[off])
				rd[off+1] = op(ra[off+1], rb[off+1])
			},
			nil,
			func(off, count int) {
				for i := 0; i < count; i++ {
					rd[off+i] = op(ra[off+i], rb[off+i])
				}
			},
		)
	}
}

// rowPacked returns the packed row kernel for T: SWAR words for 8- and
// 16-bit elements, the unrolled form for 32-bit and float elements.
func rowPacked[T plp.Element](pk packedOp, op func(x, y T) T) rowBin[T] {
	var zero T
	switch any(zero).(type) {
	case int16:
		fn := rowPacked16(pk.w2, any(op).(func(int16, int16) int16))
		return any(fn).(rowBin[T])
	case int8:
		fn := rowPacked8(pk.w4, any(op).(func(int8, int8) int8))
		return any(fn).(rowBin[T])
	default:
		return rowUnrolled2(op)
	}
}

// rowPacked16 processes two packed words (four elements) per step, one word
// for the half step, and a single scalar remainder.
func rowPacked16(word func(x, y uint32) uint32, op func(x, y int16) int16) rowBin[int16] {
	return func(ra, rb, rd []int16, n int) {
		plp.ProcessRow(n, 4, 2,
			func(off int) {
				w0 := word(plp.Pack2(ra[off], ra[off+1]), plp.Pack2(rb[off], rb[off+1]))
				w1 := word(plp.Pack2(ra[off+2], ra[off+3]), plp.Pack2(rb[off+2], rb[off+3]))
				rd[off], rd[off+1] = plp.Unpack2(w0)
				rd[off+2], rd[off+3] = plp.Unpack2(w1)
			},
			func(off int) {
				w := word(plp.Pack2(ra[off], ra[off+1]), plp.Pack2(rb[off], rb[off+1]))
				rd[off], rd[off+1] = plp.Unpack2(w)
			},
			func(off, _ int) {
				// remainder is always a single element here
				rd[off] = op(ra[off], rb[off])
			},
		)
	}
}

// rowPacked8 processes one packed word (four elements) per step with a
// scalar remainder of up to three elements.
func rowPacked8(word func(x, y uint32) uint32, op func(x, y int8) int8) rowBin[int8] {
	return func(ra, rb, rd []int8, n int) {
		plp.ProcessRow(n, 4, 0,
			func(off int) {
				w := word(
					plp.Pack4(ra[off], ra[off+1], ra[off+2], ra[off+3]),
					plp.Pack4(rb[off], rb[off+1], rb[off+2], rb[off+3]),
				)
				rd[off], rd[off+1], rd[off+2], rd[off+3] = plp.Unpack4(w)
			},
			nil,
			func(off, count int) {
				for i := 0; i < count; i++ {
					rd[off+i] = op(ra[off+i], rb[off+i])
				}
			},
		)
	}
}

// rowBinFor returns the row kernel matching the current dispatch level.
func rowBinFor[T plp.Element](pk packedOp, op func(x, y T) T) rowBin[T] {
	switch plp.CurrentLevel() {
	case plp.DispatchScalar:
		return rowScalar(op)
	case plp.DispatchUnrolled:
		return rowUnrolled2(op)
	default:
		return rowPacked(pk, op)
	}
}

// binaryStride drives a row kernel across all M rows of a strided binary
// operation.
func binaryStride[T plp.Element](a, b []T, m, n, sa, sb, sy int, dst []T, fn rowBin[T]) {
	if m <= 0 || n <= 0 {
		return
	}
	for r := 0; r < m; r++ {
		fn(a[r*sa:r*sa+n], b[r*sb:r*sb+n], dst[r*sy:r*sy+n], n)
	}
}

// binaryStrideRR drives a row kernel across one processing element's
// round-robin share of the rows: coreID, coreID+nPE, coreID+2·nPE, ...
func binaryStrideRR[T plp.Element](a, b []T, m, n, sa, sb, sy int, dst []T, coreID, nPE int, fn rowBin[T]) {
	if m <= 0 || n <= 0 {
		return
	}
	for r := coreID; r < m; r += nPE {
		fn(a[r*sa:r*sa+n], b[r*sb:r*sb+n], dst[r*sy:r*sy+n], n)
	}
}
