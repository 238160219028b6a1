// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// bench_test.go — Micro-benchmarks for construction and hot-path ops.
package ring

import "testing"

func BenchmarkSequentialCreate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := NewSequential[uint64](10)
		if s.Cap() != 10 {
			b.Fatal("bad capacity")
		}
	}
}

func BenchmarkSequentialPush(b *testing.B) {
	s := NewSequential[uint64](8, WithPolicy(OverwriteOldestOnFull))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(uint64(i))
	}
}

func BenchmarkSPSCPushPop(b *testing.B) {
	p, c := NewSPSC[uint64](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Push(uint64(i))
		c.Pop()
	}
}

func BenchmarkSPSCHandoff(b *testing.B) {
	p, c := NewSPSC[uint64](1024)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for n := 0; n < b.N; {
			if _, _, ok := c.Pop(); ok {
				n++
			}
		}
	}()
	for i := 0; i < b.N; {
		if _, ok := p.Push(uint64(i)); ok {
			i++
		}
	}
	<-done
}

func BenchmarkMPSCEnqueueDequeue(b *testing.B) {
	q := NewMPSC[uint64](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(uint64(i))
		q.Dequeue()
	}
}
