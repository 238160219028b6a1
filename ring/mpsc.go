// File: ring/mpsc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Multi-producer/single-consumer ring buffer.
//
// A shared write cursor alone is not enough for multiple producers: two
// goroutines can observe the same cursor value and overwrite each
// other's slot. Producers here claim a unique slot with a CAS on the
// head cursor before writing, and every slot carries an occupancy flag
// so the consumer never reads a claimed-but-unwritten slot. Cursors are
// free-running; capacity is rounded up to a power of two and indexing
// uses a mask.

package ring

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

type mpscSlot[T any] struct {
	dataReady atomic.Bool
	data      T
}

// MPSC is a bounded lock-free queue for many producers and one consumer.
type MPSC[T any] struct {
	head atomic.Uint64 // claimed by producers via CAS

	_ cpu.CacheLinePad

	tail atomic.Uint64 // advanced only by the consumer

	_ cpu.CacheLinePad

	capacity uint64
	capMask  uint64

	_ cpu.CacheLinePad

	slots []mpscSlot[T]
}

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*MPSC[any])(nil)

// NewMPSC allocates a queue with capacity rounded up to a power of two
// (minimum 2).
func NewMPSC[T any](capacity int) *MPSC[T] {
	size := uint64(2)
	for size < uint64(capacity) {
		size <<= 1
	}
	return &MPSC[T]{
		capacity: size,
		capMask:  size - 1,
		slots:    make([]mpscSlot[T], size),
	}
}

// Enqueue adds item; returns false if full. Safe for any number of
// concurrent callers.
func (q *MPSC[T]) Enqueue(item T) bool {
	for {
		head := q.head.Load()
		tail := q.tail.Load()

		if head-tail >= q.capacity {
			return false
		}

		slot := &q.slots[head&q.capMask]

		// The consumer has not finished with this slot yet.
		if slot.dataReady.Load() {
			runtime.Gosched()
			continue
		}

		// Claim the slot index before writing.
		if !q.head.CompareAndSwap(head, head+1) {
			runtime.Gosched()
			continue
		}

		slot.data = item
		slot.dataReady.Store(true)
		return true
	}
}

// Dequeue removes and returns the oldest item; ok false if the queue is
// empty or the next slot is still being written. Single consumer only.
func (q *MPSC[T]) Dequeue() (T, bool) {
	var zero T
	tail := q.tail.Load()
	slot := &q.slots[tail&q.capMask]

	if slot.dataReady.Load() {
		item := slot.data
		slot.data = zero
		slot.dataReady.Store(false)
		q.tail.Add(1)
		return item, true
	}

	if tail == q.head.Load() {
		return zero, false
	}

	// A producer claimed the slot but has not published yet.
	runtime.Gosched()
	return zero, false
}

// Len returns number of items currently in buffer, including slots
// claimed but not yet published.
func (q *MPSC[T]) Len() int {
	return int(q.head.Load() - q.tail.Load())
}

// Cap returns fixed buffer capacity.
func (q *MPSC[T]) Cap() int { return int(q.capacity) }

// Probe returns a diagnostic snapshot function for api.Debug registries.
func (q *MPSC[T]) Probe() func() any {
	return func() any {
		return map[string]any{
			"kind":     "mpsc",
			"capacity": q.capacity,
			"read":     q.tail.Load(),
			"write":    q.head.Load(),
			"len":      q.Len(),
		}
	}
}
