// File: ring/spsc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free single-producer/single-consumer ring buffer.
//
// Cursors range over [0, capacity) and one slot stays permanently
// reserved, so read==write means empty and (write+1)%capacity==read
// means full; usable capacity is capacity-1. The producer publishes
// write with a release store after the slot write, the consumer
// publishes read with a release store after the slot read. These two
// edges are the only cross-goroutine synchronization.

package ring

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// spscCore is the state shared by a Producer/Consumer handle pair.
// The shared cursors sit on separate cache lines so the two goroutines
// do not invalidate each other's line on every publish.
type spscCore[T any] struct {
	capacity uint64
	slots    []T
	obs      api.Observer

	_     cpu.CacheLinePad
	write atomic.Uint64 // stored by producer, loaded by consumer
	_     cpu.CacheLinePad
	read  atomic.Uint64 // stored by consumer, loaded by producer
	_     cpu.CacheLinePad
}

// Producer is the push side of an SPSC ring. It must not be copied and
// must be used by at most one goroutine.
type Producer[T any] struct {
	core *spscCore[T]

	// localWrite mirrors core.write; only this goroutine changes it,
	// so reading it needs no atomics.
	localWrite uint64
	// cachedRead is a stale copy of core.read, refreshed from the
	// shared cursor only when it indicates full.
	cachedRead uint64
}

// Consumer is the pop side of an SPSC ring. It must not be copied and
// must be used by at most one goroutine.
type Consumer[T any] struct {
	core *spscCore[T]

	localRead   uint64
	cachedWrite uint64
}

// Ensure compile-time role compliance.
var (
	_ api.Pusher[any] = (*Producer[any])(nil)
	_ api.Popper[any] = (*Consumer[any])(nil)
)

// SPSCOption customizes an SPSC ring at construction.
type SPSCOption func(*spscOptions)

type spscOptions struct {
	obs api.Observer
}

// WithObserver injects a diagnostic observer. The observer runs on the
// producer/consumer goroutines after the cursor publish; nil (the
// default) disables all notifications.
func WithObserver(obs api.Observer) SPSCOption {
	return func(o *spscOptions) { o.obs = obs }
}

// NewSPSC allocates an SPSC ring of `capacity` slots and returns its two
// role handles. One slot is reserved for full/empty disambiguation, so
// the ring holds at most capacity-1 items. Panics if capacity < 2; a
// one-slot ring could never hold an element.
//
// Exactly one goroutine may use the Producer and exactly one (possibly
// different) goroutine may use the Consumer. This is an unchecked
// precondition: the handles make a second pusher or popper unreachable
// by construction, but nothing stops a caller from sharing one handle.
func NewSPSC[T any](capacity int, opts ...SPSCOption) (*Producer[T], *Consumer[T]) {
	if capacity < 2 {
		panic("ring: spsc capacity must be at least 2")
	}
	var o spscOptions
	for _, opt := range opts {
		opt(&o)
	}
	core := &spscCore[T]{
		capacity: uint64(capacity),
		slots:    make([]T, capacity),
		obs:      o.obs,
	}
	return &Producer[T]{core: core}, &Consumer[T]{core: core}
}

// Push stores item into the next free slot and returns its index.
// Reports (0, false) without touching the ring when it is full; the
// item stays with the caller. Never blocks.
func (p *Producer[T]) Push(item T) (uint64, bool) {
	c := p.core
	w := p.localWrite
	next := w + 1
	if next == c.capacity {
		next = 0
	}
	if next == p.cachedRead {
		// The cache says full; refresh from the shared cursor before
		// giving up. This acquire pairs with the consumer's release
		// of read, so slot w is ours to overwrite once they differ.
		p.cachedRead = c.read.Load()
		if next == p.cachedRead {
			if c.obs != nil {
				c.obs.OnFull(p.cachedRead, w)
			}
			return 0, false
		}
	}
	c.slots[w] = item
	// Release: the consumer's acquire load of write observes the slot
	// store above, never a partially visible item.
	c.write.Store(next)
	p.localWrite = next
	if c.obs != nil {
		c.obs.OnPush(w, p.cachedRead, next)
	}
	return w, true
}

// Empty reports whether the ring looked empty at the time of the call.
// Advisory only: the other side may change the answer immediately.
func (p *Producer[T]) Empty() bool { return p.core.empty() }

// Full reports whether the ring looked full at the time of the call.
// Advisory only.
func (p *Producer[T]) Full() bool { return p.core.full() }

// Len returns a snapshot of the item count. Advisory only.
func (p *Producer[T]) Len() int { return p.core.len() }

// Cap returns the constructed slot count. Usable items = Cap()-1.
func (p *Producer[T]) Cap() int { return int(p.core.capacity) }

// Probe returns a diagnostic snapshot function for api.Debug registries.
func (p *Producer[T]) Probe() func() any { return p.core.snapshot }

// Pop removes the oldest item and returns it with the slot index it
// freed. Reports ok=false without touching the ring when it is empty.
// Never blocks. The freed slot is zeroed so the ring drops its reference
// to the item; ownership transfers to the caller.
func (cn *Consumer[T]) Pop() (T, uint64, bool) {
	c := cn.core
	r := cn.localRead
	if r == cn.cachedWrite {
		// Acquire: pairs with the producer's release of write, making
		// the slot contents at r fully visible before we read them.
		cn.cachedWrite = c.write.Load()
		if r == cn.cachedWrite {
			if c.obs != nil {
				c.obs.OnEmpty(r, cn.cachedWrite)
			}
			var zero T
			return zero, 0, false
		}
	}
	item := c.slots[r]
	var zero T
	c.slots[r] = zero
	next := r + 1
	if next == c.capacity {
		next = 0
	}
	// Release: the producer's acquire load of read observes the slot
	// clear above, so overwriting slot r is safe.
	c.read.Store(next)
	cn.localRead = next
	if c.obs != nil {
		c.obs.OnPop(r, next, cn.cachedWrite)
	}
	return item, r, true
}

// Empty reports whether the ring looked empty at the time of the call.
// Advisory only.
func (cn *Consumer[T]) Empty() bool { return cn.core.empty() }

// Full reports whether the ring looked full at the time of the call.
// Advisory only.
func (cn *Consumer[T]) Full() bool { return cn.core.full() }

// Len returns a snapshot of the item count. Advisory only.
func (cn *Consumer[T]) Len() int { return cn.core.len() }

// Cap returns the constructed slot count. Usable items = Cap()-1.
func (cn *Consumer[T]) Cap() int { return int(cn.core.capacity) }

// Probe returns a diagnostic snapshot function for api.Debug registries.
func (cn *Consumer[T]) Probe() func() any { return cn.core.snapshot }

func (c *spscCore[T]) empty() bool {
	return c.read.Load() == c.write.Load()
}

func (c *spscCore[T]) full() bool {
	w := c.write.Load()
	next := w + 1
	if next == c.capacity {
		next = 0
	}
	return next == c.read.Load()
}

func (c *spscCore[T]) len() int {
	w := c.write.Load()
	r := c.read.Load()
	if w >= r {
		return int(w - r)
	}
	return int(w + c.capacity - r)
}

func (c *spscCore[T]) snapshot() any {
	return map[string]any{
		"kind":     "spsc",
		"capacity": c.capacity,
		"read":     c.read.Load(),
		"write":    c.write.Load(),
		"len":      c.len(),
	}
}
