// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// observe_test.go — Observer implementations against a live ring.
package observe

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-ring/control"
)

func TestNop(t *testing.T) {
	// Must be callable without any setup.
	var n Nop
	n.OnPush(0, 0, 1)
	n.OnPop(0, 1, 1)
	n.OnFull(0, 3)
	n.OnEmpty(1, 1)
}

func TestFunc_NilFieldsSkipped(t *testing.T) {
	f := &Func{}
	f.OnPush(0, 0, 1)
	f.OnPop(0, 1, 1)
	f.OnFull(0, 3)
	f.OnEmpty(1, 1)

	var fulls int
	f.Full = func(read, write uint64) { fulls++ }
	f.OnFull(2, 1)
	assert.Equal(t, 1, fulls)
}

func TestCounters(t *testing.T) {
	reg := control.NewMetricsRegistry()
	c := NewCounters(reg, "ingress")

	c.OnPush(0, 0, 1)
	c.OnPush(1, 0, 2)
	c.OnPop(0, 1, 2)
	c.OnFull(0, 3)
	c.OnEmpty(2, 2)

	assert.Equal(t, uint64(2), reg.Counter("ingress.push"))
	assert.Equal(t, uint64(1), reg.Counter("ingress.pop"))
	assert.Equal(t, uint64(1), reg.Counter("ingress.full"))
	assert.Equal(t, uint64(1), reg.Counter("ingress.empty"))
}

func TestSlog(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSlog(log)

	s.OnPush(3, 0, 4)
	s.OnFull(0, 7)

	out := buf.String()
	assert.Contains(t, out, "push")
	assert.Contains(t, out, "slot=3")
	assert.Contains(t, out, "ring full")
}

func TestSlog_NilLoggerFallsBack(t *testing.T) {
	s := NewSlog(nil)
	// Default logger drops debug records; must not panic either way.
	s.OnPop(0, 1, 1)
}
