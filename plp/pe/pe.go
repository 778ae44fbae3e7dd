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

// Package pe models the processing-element team of a PULP cluster on top of
// goroutines. A parallel kernel is one function run by every member of the
// team with identical arguments; each member selects its share of the work
// from its core id, and may rendezvous with the rest of the team through
// Worker.Barrier.
//
// The core id and the barrier are passed in as an explicit Worker capability
// rather than queried from ambient runtime state, so partition logic is
// testable without a real multi-core target: Sequential runs the same kernel
// once per core id on the calling goroutine.
//
// Usage:
//
//	pe.Fork(4, func(w pe.Worker) {
//	    matstride.AddStrideWorker(w, inst)
//	})
package pe

import "sync"

// Worker is the execution context handed to each team member of a parallel
// kernel invocation.
type Worker interface {
	// CoreID returns this member's id in [0, NumPE()).
	CoreID() int

	// NumPE returns the number of members in the team.
	NumPE() int

	// Barrier blocks until every team member has called it.
	Barrier()
}

// Fork runs kernel on a team of nPE goroutines and returns once every
// member has returned. Each member observes a distinct CoreID in [0, nPE).
// The join performed by Fork is itself a rendezvous, so kernels whose only
// synchronization point is "everyone finished" need no explicit Barrier.
//
// nPE below 1 is treated as 1.
func Fork(nPE int, kernel func(Worker)) {
	if nPE <= 1 {
		kernel(&member{id: 0, n: 1, bar: nil})
		return
	}

	bar := newBarrier(nPE)
	var wg sync.WaitGroup
	wg.Add(nPE)
	for id := 0; id < nPE; id++ {
		go func(id int) {
			defer wg.Done()
			kernel(&member{id: id, n: nPE, bar: bar})
		}(id)
	}
	wg.Wait()
}

// Sequential runs kernel once per core id, in order, on the calling
// goroutine. Barrier is a no-op, so it is only valid for kernels that use
// the barrier as a final rendezvous rather than to order phases between
// members. It exists to make partition behavior deterministic in tests.
func Sequential(nPE int, kernel func(Worker)) {
	if nPE < 1 {
		nPE = 1
	}
	for id := 0; id < nPE; id++ {
		kernel(&member{id: id, n: nPE, bar: nil})
	}
}

// member implements Worker for both Fork and Sequential teams.
type member struct {
	id  int
	n   int
	bar *barrier
}

func (m *member) CoreID() int { return m.id }
func (m *member) NumPE() int  { return m.n }

func (m *member) Barrier() {
	if m.bar != nil {
		m.bar.wait()
	}
}

// barrier is a cyclic rendezvous for a fixed number of parties. It can be
// reused across phases: waiters of one phase are released together when the
// last party arrives, and the barrier resets for the next phase.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	arrived int
	phase   uint64
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *barrier) wait() {
	b.mu.Lock()
	phase := b.phase
	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.phase++
		b.cond.Broadcast()
	} else {
		for b.phase == phase {
			b.cond.Wait()
		}
	}
	b.mu.Unlock()
}
