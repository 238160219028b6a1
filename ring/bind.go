// File: ring/bind.go
// Author: momentics <momentics@gmail.com>
//
// Bound rejoins an SPSC handle pair into the coarse api.Ring contract.

package ring

import "github.com/momentics/hioload-ring/api"

// Bound wraps a Producer/Consumer pair as one api.Ring. The usage
// contract does not change: it is still one pushing goroutine and one
// popping goroutine, they just reach the ring through a single value.
type Bound[T any] struct {
	p *Producer[T]
	c *Consumer[T]
}

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Bound[any])(nil)

// Bind joins both handles of one ring. The handles must come from the
// same NewSPSC call.
func Bind[T any](p *Producer[T], c *Consumer[T]) *Bound[T] {
	if p.core != c.core {
		panic("ring: handles from different rings")
	}
	return &Bound[T]{p: p, c: c}
}

// Enqueue adds item; returns false if full.
func (b *Bound[T]) Enqueue(item T) bool {
	_, ok := b.p.Push(item)
	return ok
}

// Dequeue removes and returns item; ok false if empty.
func (b *Bound[T]) Dequeue() (T, bool) {
	item, _, ok := b.c.Pop()
	return item, ok
}

// Len returns number of items currently in buffer.
func (b *Bound[T]) Len() int { return b.p.Len() }

// Cap returns fixed buffer capacity.
func (b *Bound[T]) Cap() int { return b.p.Cap() }
