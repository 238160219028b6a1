// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// control_test.go — Metrics registry and debug probe registry.
package control_test

import (
	"sync"
	"testing"

	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/ring"
)

func TestMetricsRegistry(t *testing.T) {
	reg := control.NewMetricsRegistry()
	reg.Inc("push", 1)
	reg.Inc("push", 2)
	reg.Set("capacity", 16)

	if got := reg.Counter("push"); got != 3 {
		t.Errorf("Counter: expected 3, got %d", got)
	}
	snap := reg.GetSnapshot()
	if snap["push"] != uint64(3) || snap["capacity"] != 16 {
		t.Errorf("snapshot mismatch: %+v", snap)
	}
}

func TestMetricsRegistry_Concurrent(t *testing.T) {
	reg := control.NewMetricsRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				reg.Inc("ops", 1)
			}
		}()
	}
	wg.Wait()
	if got := reg.Counter("ops"); got != 8000 {
		t.Errorf("expected 8000, got %d", got)
	}
}

// Engines expose Probe() funcs; wiring one into the registry must
// surface live cursor state.
func TestDebugProbes_WithRing(t *testing.T) {
	dp := control.NewDebugProbes()
	p, c := ring.NewSPSC[int](8)
	dp.RegisterProbe("ring", p.Probe())

	p.Push(1)
	p.Push(2)
	c.Pop()

	state := dp.DumpState()
	snap, ok := state["ring"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected probe payload: %+v", state["ring"])
	}
	if snap["len"] != 1 {
		t.Errorf("probe len: expected 1, got %v", snap["len"])
	}
	if snap["read"] != uint64(1) || snap["write"] != uint64(2) {
		t.Errorf("probe cursors: %+v", snap)
	}
}
