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

// Mat is a strided M×N view over a caller-owned linear buffer. It carries
// no ownership: constructing, copying, or discarding a Mat never allocates
// or retains the buffer beyond the view itself.
type Mat[T plp.Element] struct {
	Data   []T
	Rows   int
	Cols   int
	Stride int
}

// MatOf builds a view of rows×cols elements over data with the given row
// stride. A stride below cols is not validated and yields overlapping rows.
func MatOf[T plp.Element](data []T, rows, cols, stride int) Mat[T] {
	return Mat[T]{Data: data, Rows: rows, Cols: cols, Stride: stride}
}

// Contiguous builds a view whose rows are densely packed (stride == cols).
func Contiguous[T plp.Element](data []T, rows, cols int) Mat[T] {
	return Mat[T]{Data: data, Rows: rows, Cols: cols, Stride: cols}
}

// Row returns the r-th logical row as a slice of length Cols.
func (m Mat[T]) Row(r int) []T {
	off := r * m.Stride
	return m.Data[off : off+m.Cols]
}

// At returns the element at row r, column c.
func (m Mat[T]) At(r, c int) T {
	return m.Data[r*m.Stride+c]
}

// Set stores v at row r, column c.
func (m Mat[T]) Set(r, c int, v T) {
	m.Data[r*m.Stride+c] = v
}

// AddMat is AddStride over views. Dimensions are taken from dst; all three
// views must describe the same logical shape.
func AddMat[T plp.Element](a, b, dst Mat[T]) {
	AddStride(a.Data, b.Data, dst.Rows, dst.Cols, a.Stride, b.Stride, dst.Stride, dst.Data)
}

// SubMat is SubStride over views.
func SubMat[T plp.Element](a, b, dst Mat[T]) {
	SubStride(a.Data, b.Data, dst.Rows, dst.Cols, a.Stride, b.Stride, dst.Stride, dst.Data)
}

// CopyMat is CopyStride over views.
func CopyMat[T plp.Element](src, dst Mat[T]) {
	CopyStride(src.Data, dst.Rows, dst.Cols, src.Stride, dst.Stride, dst.Data)
}
