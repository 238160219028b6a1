// File: spill/spill.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Producer-side overflow policy over a bounded ring. The ring engines
// never retry on full; what to do with a rejected item is the caller's
// decision. Buffer implements one such decision: park rejected items in
// an unbounded FIFO and move them into the ring later. It lives
// entirely on the producer goroutine, outside the ring's hot path, and
// inherits the ring's single-producer contract.

package spill

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/api"
)

// Buffer wraps a Pusher and absorbs rejections into an unbounded queue.
// Not safe for concurrent use; one Buffer belongs to one producer.
type Buffer[T any] struct {
	dst     api.Pusher[T]
	pending *queue.Queue
}

// New wraps dst.
func New[T any](dst api.Pusher[T]) *Buffer[T] {
	return &Buffer[T]{
		dst:     dst,
		pending: queue.New(),
	}
}

// Push hands item to the ring, preserving FIFO order across earlier
// spilled items: while anything is pending, new items go behind it.
// Returns true when the item reached the ring directly.
func (b *Buffer[T]) Push(item T) bool {
	if b.pending.Length() > 0 {
		b.pending.Add(item)
		b.Flush()
		return false
	}
	if _, ok := b.dst.Push(item); ok {
		return true
	}
	b.pending.Add(item)
	return false
}

// Flush moves pending items into the ring until it rejects again or
// nothing is left. Returns the number of items moved.
func (b *Buffer[T]) Flush() int {
	moved := 0
	for b.pending.Length() > 0 {
		item := b.pending.Peek().(T)
		if _, ok := b.dst.Push(item); !ok {
			break
		}
		b.pending.Remove()
		moved++
	}
	return moved
}

// Pending returns the number of spilled items not yet in the ring.
func (b *Buffer[T]) Pending() int {
	return b.pending.Length()
}
