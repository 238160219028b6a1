// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for ring buffers.
// Part of hioload-ring diagnostics core.
//
// Provides concurrent-safe state handling primitives including:
//   - Counter and gauge telemetry with atomic snapshot reads
//   - State export, debug hooks, and probe registration
//
// Nothing in this package sits on a ring's hot path; engines feed it
// only through injected observers and registered probes.
package control
