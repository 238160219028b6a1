// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_stub.go) guarded by build tags.
//
// Cursor handoff latency between a pinned producer and consumer is
// placement-sensitive; pinning each side of a ring to its own core keeps
// the release/acquire traffic on a predictable cache path.

package affinity

// SetAffinity pins current OS thread to a given logical CPU/core on supported platforms.
// On unsupported platforms returns an error. Callers should hold
// runtime.LockOSThread for the pin to stay meaningful.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}
