// Copyright 2026 The Scheesim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "sync"

// cyclicBarrier is a reusable rendezvous point for a fixed set of
// goroutines, used by LUSolver for the row-sync and pivot rendezvous points
// of each pivot column's elimination round (the final phase barrier after
// the last column is the WaitGroup join in Factor).
// Modeled after the long-lived-worker style of a fixed worker pool, but
// specialized to a fixed-phase rendezvous rather than a task queue.
type cyclicBarrier struct {
	n       int
	mu      sync.Mutex
	cond    *sync.Cond
	waiting int
	gen     uint64
}

func newCyclicBarrier(n int) *cyclicBarrier {
	b := &cyclicBarrier{n: n}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// wait blocks until all n participants have called wait for the current
// generation, then releases them all together.
func (b *cyclicBarrier) wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.gen
	b.waiting++
	if b.waiting == b.n {
		b.waiting = 0
		b.gen++
		b.cond.Broadcast()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
}
