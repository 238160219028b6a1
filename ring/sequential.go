// File: ring/sequential.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-threaded reference ring buffer with lap-bit cursors.
//
// Cursors range over [0, 2*capacity): the extra lap bit distinguishes
// full from empty without reserving a slot, so all capacity slots are
// usable. distance(write, read) = (write - read + 2C) mod 2C gives the
// size directly and stays correct across arbitrary wraparound. The lap
// trick only works because a single goroutine touches both cursors;
// the concurrent engine in spsc.go cannot use it.

package ring

import "github.com/momentics/hioload-ring/api"

// FullPolicy decides what Push does on a full Sequential ring.
type FullPolicy uint8

const (
	// RejectOnFull makes Push report false and leave the ring unchanged.
	RejectOnFull FullPolicy = iota
	// OverwriteOldestOnFull makes Push evict the oldest item and
	// always succeed, retaining the most recent Cap() items.
	OverwriteOldestOnFull
)

func (fp FullPolicy) String() string {
	switch fp {
	case RejectOnFull:
		return "reject"
	case OverwriteOldestOnFull:
		return "overwrite-oldest"
	default:
		return "unknown"
	}
}

// Sequential is a fixed-capacity FIFO ring for a single goroutine.
type Sequential[T any] struct {
	capacity uint64
	policy   FullPolicy
	obs      api.Observer

	read  uint64 // in [0, 2*capacity)
	write uint64 // in [0, 2*capacity)
	slots []T
}

// SequentialOption customizes a Sequential ring at construction.
type SequentialOption func(*seqOptions)

type seqOptions struct {
	policy FullPolicy
	obs    api.Observer
}

// WithPolicy selects the full-ring behaviour of Push.
func WithPolicy(p FullPolicy) SequentialOption {
	return func(o *seqOptions) { o.policy = p }
}

// WithSeqObserver injects a diagnostic observer.
func WithSeqObserver(obs api.Observer) SequentialOption {
	return func(o *seqOptions) { o.obs = obs }
}

// NewSequential allocates a ring of `capacity` slots, all usable.
// Panics if capacity < 1.
func NewSequential[T any](capacity int, opts ...SequentialOption) *Sequential[T] {
	if capacity < 1 {
		panic("ring: sequential capacity must be at least 1")
	}
	var o seqOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Sequential[T]{
		capacity: uint64(capacity),
		policy:   o.policy,
		obs:      o.obs,
		slots:    make([]T, capacity),
	}
}

// Push appends item. On a full ring the behaviour follows the
// construction-time policy: reject (report false, no mutation) or
// evict the oldest item and succeed.
func (s *Sequential[T]) Push(item T) bool {
	if s.Full() {
		if s.policy == OverwriteOldestOnFull {
			s.ForcePush(item)
			return true
		}
		if s.obs != nil {
			s.obs.OnFull(s.read, s.write)
		}
		return false
	}
	s.store(item)
	return true
}

// ForcePush appends item unconditionally, evicting the oldest item
// when the ring is full. Retains the most recent Cap() items.
func (s *Sequential[T]) ForcePush(item T) {
	if s.Full() {
		// When full, write and read address the same slot, so the
		// store below overwrites the oldest item; only read moves.
		s.read = s.fold(s.read + 1)
	}
	s.store(item)
}

// Pop removes and returns the oldest item. On an empty ring it returns
// a structured error carrying the current write cursor.
func (s *Sequential[T]) Pop() (T, error) {
	var zero T
	if s.Empty() {
		if s.obs != nil {
			s.obs.OnEmpty(s.read, s.write)
		}
		return zero, api.NewError(api.ErrCodeEmpty, "pop on empty ring").
			WithContext("write", s.write)
	}
	idx := s.read % s.capacity
	item := s.slots[idx]
	s.slots[idx] = zero
	s.read = s.fold(s.read + 1)
	if s.obs != nil {
		s.obs.OnPop(idx, s.read, s.write)
	}
	return item, nil
}

// Size returns the number of items currently held.
func (s *Sequential[T]) Size() int { return int(s.distance()) }

// Free returns the number of slots still available.
func (s *Sequential[T]) Free() int { return int(s.capacity - s.distance()) }

// Full reports whether every slot holds an item.
func (s *Sequential[T]) Full() bool { return s.distance() == s.capacity }

// Empty reports whether no slot holds an item.
func (s *Sequential[T]) Empty() bool { return s.read == s.write }

// Cap returns the fixed slot count.
func (s *Sequential[T]) Cap() int { return int(s.capacity) }

// Policy returns the construction-time full-ring policy.
func (s *Sequential[T]) Policy() FullPolicy { return s.policy }

// Probe returns a diagnostic snapshot function for api.Debug registries.
func (s *Sequential[T]) Probe() func() any {
	return func() any {
		return map[string]any{
			"kind":     "sequential",
			"capacity": s.capacity,
			"read":     s.read,
			"write":    s.write,
			"size":     s.Size(),
			"policy":   s.policy.String(),
		}
	}
}

func (s *Sequential[T]) store(item T) {
	idx := s.write % s.capacity
	s.slots[idx] = item
	s.write = s.fold(s.write + 1)
	if s.obs != nil {
		s.obs.OnPush(idx, s.read, s.write)
	}
}

// distance is the wraparound-safe count of items between the cursors.
func (s *Sequential[T]) distance() uint64 {
	if s.write >= s.read {
		return s.write - s.read
	}
	return s.write + 2*s.capacity - s.read
}

// fold keeps a cursor inside [0, 2*capacity).
func (s *Sequential[T]) fold(v uint64) uint64 {
	return v % (2 * s.capacity)
}
