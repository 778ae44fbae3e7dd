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

import (
	"github.com/pulpdsp/go-pulpdsp/plp"
	"github.com/pulpdsp/go-pulpdsp/plp/pe"
)

// StrideInstance bundles the arguments of a parallel strided elementwise
// kernel. It is built once by a Parallel wrapper (or by the caller) and
// shared read-only by every worker for the duration of the call; it must
// not be reused concurrently for a second call.
//
// SrcB is unused by the copy kernel. NPE is the number of cooperating
// workers; a worker whose core id is at least M simply processes zero rows,
// so NPE may exceed M.
type StrideInstance[T plp.Element] struct {
	SrcA, SrcB []T
	M, N       int
	StrideA    int
	StrideB    int
	StrideY    int
	Dst        []T
	NPE        int

	// Sync makes the worker rendezvous through its barrier before
	// returning. Output rows are disjoint across workers, so the kernel
	// itself needs no barrier; set Sync when the kernel's completion
	// must be visible to all workers inside a longer forked region,
	// rather than only after the fork's join.
	Sync bool
}

// AddStrideWorker runs one processing element's share of a parallel strided
// addition. Every worker of the team calls it with the identical instance.
func AddStrideWorker[T plp.Element](w pe.Worker, inst *StrideInstance[T]) {
	parallelBinary(w, inst, rowBinFor(packedAdd, addOf[T]))
}

// SubStrideWorker runs one processing element's share of a parallel strided
// subtraction.
func SubStrideWorker[T plp.Element](w pe.Worker, inst *StrideInstance[T]) {
	parallelBinary(w, inst, rowBinFor(packedSub, subOf[T]))
}

// CopyStrideWorker runs one processing element's share of a parallel
// strided copy. SrcA is the source; SrcB and StrideB are ignored.
func CopyStrideWorker[T plp.Element](w pe.Worker, inst *StrideInstance[T]) {
	if inst.M > 0 && inst.N > 0 {
		for r := w.CoreID(); r < inst.M; r += inst.NPE {
			copy(inst.Dst[r*inst.StrideY:r*inst.StrideY+inst.N],
				inst.SrcA[r*inst.StrideA:r*inst.StrideA+inst.N])
		}
	}
	if inst.Sync {
		w.Barrier()
	}
}

func parallelBinary[T plp.Element](w pe.Worker, inst *StrideInstance[T], fn rowBin[T]) {
	binaryStrideRR(inst.SrcA, inst.SrcB, inst.M, inst.N,
		inst.StrideA, inst.StrideB, inst.StrideY, inst.Dst,
		w.CoreID(), inst.NPE, fn)
	if inst.Sync {
		w.Barrier()
	}
}

// AddStrideParallel adds two M×N strided matrices using nPE workers with a
// round-robin row partition. It returns after every worker has finished;
// the join is the caller-visible rendezvous, matching the original kernels,
// which omit an in-kernel barrier for elementwise operations. Use
// AddStrideWorker with Sync set for an explicit in-kernel barrier.
func AddStrideParallel[T plp.Element](srcA, srcB []T, m, n, strideA, strideB, strideY, nPE int, dst []T) {
	if nPE < 1 {
		nPE = 1
	}
	inst := &StrideInstance[T]{
		SrcA: srcA, SrcB: srcB,
		M: m, N: n,
		StrideA: strideA, StrideB: strideB, StrideY: strideY,
		Dst: dst,
		NPE: nPE,
	}
	pe.Fork(nPE, func(w pe.Worker) { AddStrideWorker(w, inst) })
}

// SubStrideParallel subtracts two M×N strided matrices using nPE workers.
func SubStrideParallel[T plp.Element](srcA, srcB []T, m, n, strideA, strideB, strideY, nPE int, dst []T) {
	if nPE < 1 {
		nPE = 1
	}
	inst := &StrideInstance[T]{
		SrcA: srcA, SrcB: srcB,
		M: m, N: n,
		StrideA: strideA, StrideB: strideB, StrideY: strideY,
		Dst: dst,
		NPE: nPE,
	}
	pe.Fork(nPE, func(w pe.Worker) { SubStrideWorker(w, inst) })
}

// CopyStrideParallel copies an M×N strided matrix using nPE workers.
func CopyStrideParallel[T plp.Element](src []T, m, n, strideSrc, strideDst, nPE int, dst []T) {
	if nPE < 1 {
		nPE = 1
	}
	inst := &StrideInstance[T]{
		SrcA: src,
		M:    m, N: n,
		StrideA: strideSrc, StrideY: strideDst,
		Dst: dst,
		NPE: nPE,
	}
	pe.Fork(nPE, func(w pe.Worker) { CopyStrideWorker(w, inst) })
}

// FillIdentityInstance bundles the arguments of a parallel identity fill.
type FillIdentityInstance[T plp.Ints] struct {
	N        int
	Stride   int
	FracBits int
	Dst      []T
	NPE      int
	Sync     bool
}

// FillIdentityStrideWorker runs one processing element's share of a
// parallel identity fill.
func FillIdentityStrideWorker[T plp.Ints](w pe.Worker, inst *FillIdentityInstance[T]) {
	fillIdentityRows(inst.N, inst.Stride, inst.FracBits, inst.Dst, w.CoreID(), inst.NPE)
	if inst.Sync {
		w.Barrier()
	}
}

// FillIdentityStrideParallel writes an n×n strided identity matrix using
// nPE workers.
func FillIdentityStrideParallel[T plp.Ints](n, stride, fracBits, nPE int, dst []T) {
	if nPE < 1 {
		nPE = 1
	}
	inst := &FillIdentityInstance[T]{
		N: n, Stride: stride, FracBits: fracBits,
		Dst: dst,
		NPE: nPE,
	}
	pe.Fork(nPE, func(w pe.Worker) { FillIdentityStrideWorker(w, inst) })
}
