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

// CopyStride copies an M×N strided matrix:
//
//	dst[m*strideDst+n] = src[m*strideSrc+n]
//
// Only the logical M×N region of dst is written; stride padding is left
// untouched.
func CopyStride[T plp.Element](src []T, m, n, strideSrc, strideDst int, dst []T) {
	if plp.CurrentLevel() == plp.DispatchScalar {
		BaseCopyStride(src, m, n, strideSrc, strideDst, dst)
		return
	}
	UnrolledCopyStride(src, m, n, strideSrc, strideDst, dst)
}

// BaseCopyStride is the scalar baseline form of CopyStride.
func BaseCopyStride[T plp.Element](src []T, m, n, strideSrc, strideDst int, dst []T) {
	if m <= 0 || n <= 0 {
		return
	}
	for r := 0; r < m; r++ {
		rs := src[r*strideSrc : r*strideSrc+n]
		rd := dst[r*strideDst : r*strideDst+n]
		for i := 0; i < n; i++ {
			rd[i] = rs[i]
		}
	}
}

// UnrolledCopyStride moves whole rows at a time. The word-packed copies of
// the original library's unrolled kernels degenerate to straight memory
// moves, which the built-in copy already performs.
func UnrolledCopyStride[T plp.Element](src []T, m, n, strideSrc, strideDst int, dst []T) {
	if m <= 0 || n <= 0 {
		return
	}
	for r := 0; r < m; r++ {
		copy(dst[r*strideDst:r*strideDst+n], src[r*strideSrc:r*strideSrc+n])
	}
}
