// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake ring implementations for testing collaborators without a real
// lock-free engine.

package fake

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// Ring is a slice-backed, mutex-guarded api.Ring with scriptable
// rejection. Depth-unbounded unless a capacity is given.
type Ring[T any] struct {
	mu       sync.Mutex
	items    []T
	capacity int
	failNext int
	pushed   uint64
	popped   uint64
}

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]   = (*Ring[any])(nil)
	_ api.Pusher[any] = (*Ring[any])(nil)
	_ api.Popper[any] = (*Ring[any])(nil)
)

// NewRing creates a fake ring. capacity <= 0 means unbounded.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{capacity: capacity}
}

// FailNext forces the next n Enqueue/Push calls to report full.
func (r *Ring[T]) FailNext(n int) {
	r.mu.Lock()
	r.failNext = n
	r.mu.Unlock()
}

// Enqueue adds item; returns false if full or scripted to fail.
func (r *Ring[T]) Enqueue(item T) bool {
	_, ok := r.Push(item)
	return ok
}

// Dequeue removes and returns item; ok false if empty.
func (r *Ring[T]) Dequeue() (T, bool) {
	item, _, ok := r.Pop()
	return item, ok
}

// Push implements api.Pusher. Slot indices count pushes.
func (r *Ring[T]) Push(item T) (uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext > 0 {
		r.failNext--
		return 0, false
	}
	if r.capacity > 0 && len(r.items) >= r.capacity {
		return 0, false
	}
	r.items = append(r.items, item)
	slot := r.pushed
	r.pushed++
	return slot, true
}

// Pop implements api.Popper. Slot indices count pops.
func (r *Ring[T]) Pop() (T, uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	if len(r.items) == 0 {
		return zero, 0, false
	}
	item := r.items[0]
	r.items = r.items[1:]
	slot := r.popped
	r.popped++
	return item, slot, true
}

// Len returns current number of items.
func (r *Ring[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Cap returns the configured capacity, 0 when unbounded.
func (r *Ring[T]) Cap() int { return r.capacity }
