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

// FillIdentityStride writes an n×n identity matrix with the given row
// stride into dst. The diagonal value is 1 << fracBits, so fixed-point
// layouts get their one at the right scale; pass fracBits = 0 for plain
// integers.
func FillIdentityStride[T plp.Ints](n, stride, fracBits int, dst []T) {
	fillIdentityRows(n, stride, fracBits, dst, 0, 1)
}

// fillIdentityRows writes the round-robin share of the identity rows owned
// by coreID.
func fillIdentityRows[T plp.Ints](n, stride, fracBits int, dst []T, coreID, nPE int) {
	if n <= 0 {
		return
	}
	one := T(1) << fracBits
	for r := coreID; r < n; r += nPE {
		row := dst[r*stride : r*stride+n]
		for c := range row {
			row[c] = 0
		}
		row[r] = one
	}
}
