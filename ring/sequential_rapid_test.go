// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// sequential_rapid_test.go — Property-based model check for Sequential.
//
// Drives random push/force-push/pop sequences against a plain slice
// model and verifies size, free, full/empty and FIFO contents stay in
// lockstep no matter how often the cursors wrap.
package ring

import (
	"testing"

	"pgregory.net/rapid"
)

func TestSequential_ModelCheck(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 32).Draw(t, "capacity")
		s := NewSequential[int](capacity)
		var model []int
		next := 0

		t.Repeat(map[string]func(*rapid.T){
			"push": func(t *rapid.T) {
				ok := s.Push(next)
				if ok != (len(model) < capacity) {
					t.Fatalf("push ok=%v with model size %d/%d", ok, len(model), capacity)
				}
				if ok {
					model = append(model, next)
				}
				next++
			},
			"forcePush": func(t *rapid.T) {
				s.ForcePush(next)
				if len(model) == capacity {
					model = model[1:]
				}
				model = append(model, next)
				next++
			},
			"pop": func(t *rapid.T) {
				val, err := s.Pop()
				if len(model) == 0 {
					if err == nil {
						t.Fatalf("pop on empty model succeeded with %d", val)
					}
					return
				}
				if err != nil {
					t.Fatalf("pop failed with %d items: %v", len(model), err)
				}
				if val != model[0] {
					t.Fatalf("pop: expected %d, got %d", model[0], val)
				}
				model = model[1:]
			},
			"": func(t *rapid.T) {
				if s.Size() != len(model) {
					t.Fatalf("size: engine %d, model %d", s.Size(), len(model))
				}
				if s.Free() != capacity-len(model) {
					t.Fatalf("free: engine %d, model %d", s.Free(), capacity-len(model))
				}
				if s.Empty() != (len(model) == 0) {
					t.Fatalf("empty mismatch at size %d", len(model))
				}
				if s.Full() != (len(model) == capacity) {
					t.Fatalf("full mismatch at size %d", len(model))
				}
			},
		})
	})
}
