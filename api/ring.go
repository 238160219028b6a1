// Package api
// Author: momentics <momentics@gmail.com>
//
// Contracts for lock-free ring buffers and their producer/consumer roles.

package api

// Ring is a lock-free ring buffer contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

// Pusher is the producer-side role of a single-producer ring.
// Exactly one goroutine may call Push for the lifetime of the ring.
type Pusher[T any] interface {
	// Push stores an item and returns the slot index it occupies.
	// ok is false when the ring is full; the ring is left unchanged
	// and the item stays with the caller.
	Push(item T) (slot uint64, ok bool)
}

// Popper is the consumer-side role of a single-consumer ring.
// Exactly one goroutine may call Pop for the lifetime of the ring.
type Popper[T any] interface {
	// Pop removes the oldest item and returns the slot index it freed.
	// ok is false when the ring is empty; the ring is left unchanged.
	Pop() (item T, slot uint64, ok bool)
}
