// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package ring implements bounded lock-free ring buffers: a
// single-producer/single-consumer engine with statically separated
// producer and consumer handles, a single-threaded sequential model with
// an overwrite-on-full policy, and a slot-claiming multi-producer queue.
package ring
