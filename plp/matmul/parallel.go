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

package matmul

import (
	"github.com/pulpdsp/go-pulpdsp/plp"
	"github.com/pulpdsp/go-pulpdsp/plp/pe"
)

// MultInstance bundles the arguments of a parallel matrix multiplication.
// It is shared read-only by every worker for the duration of the call.
type MultInstance[T plp.Ints] struct {
	SrcA, SrcB []T
	M, N, O    int
	Dst        []int32
	NPE        int

	// Sync makes each worker rendezvous through the team barrier after
	// its rows are written, so no worker leaves the kernel before the
	// full product exists. The Parallel wrappers enable it.
	Sync bool
}

// MultWorker runs one processing element's share of a parallel
// multiplication (srcB in N×O row-major layout).
func MultWorker[T plp.Ints](w pe.Worker, inst *MultInstance[T]) {
	multRows(inst.SrcA, inst.SrcB, inst.M, inst.N, inst.O, inst.Dst, w.CoreID(), inst.NPE)
	if inst.Sync {
		w.Barrier()
	}
}

// MultTransWorker runs one processing element's share of a parallel
// multiplication with srcB stored transposed (O×N).
func MultTransWorker[T plp.Ints](w pe.Worker, inst *MultInstance[T]) {
	multTransRows(inst.SrcA, inst.SrcB, inst.M, inst.N, inst.O, inst.Dst, w.CoreID(), inst.NPE)
	if inst.Sync {
		w.Barrier()
	}
}

// MultParallel computes dst = srcA · srcB using nPE workers.
func MultParallel[T plp.Ints](srcA, srcB []T, m, n, o, nPE int, dst []int32) {
	if nPE < 1 {
		nPE = 1
	}
	inst := &MultInstance[T]{
		SrcA: srcA, SrcB: srcB,
		M: m, N: n, O: o,
		Dst:  dst,
		NPE:  nPE,
		Sync: true,
	}
	pe.Fork(nPE, func(w pe.Worker) { MultWorker(w, inst) })
}

// MultTransParallel computes dst = srcA · srcBᵀ using nPE workers.
func MultTransParallel[T plp.Ints](srcA, srcB []T, m, n, o, nPE int, dst []int32) {
	if nPE < 1 {
		nPE = 1
	}
	inst := &MultInstance[T]{
		SrcA: srcA, SrcB: srcB,
		M: m, N: n, O: o,
		Dst:  dst,
		NPE:  nPE,
		Sync: true,
	}
	pe.Fork(nPE, func(w pe.Worker) { MultTransWorker(w, inst) })
}
