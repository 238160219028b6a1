// File: observe/observer.go
// Author: momentics <momentics@gmail.com>
//
// Trivial observers: Nop and a func adapter.

package observe

import "github.com/momentics/hioload-ring/api"

// Nop is an observer that ignores every event.
type Nop struct{}

// Ensure compile-time interface compliance.
var _ api.Observer = Nop{}

func (Nop) OnPush(slot, read, write uint64) {}
func (Nop) OnPop(slot, read, write uint64)  {}
func (Nop) OnFull(read, write uint64)       {}
func (Nop) OnEmpty(read, write uint64)      {}

// Func adapts up to four callbacks into an api.Observer. Nil fields
// are skipped.
type Func struct {
	Push  func(slot, read, write uint64)
	Pop   func(slot, read, write uint64)
	Full  func(read, write uint64)
	Empty func(read, write uint64)
}

// Ensure compile-time interface compliance.
var _ api.Observer = (*Func)(nil)

func (f *Func) OnPush(slot, read, write uint64) {
	if f.Push != nil {
		f.Push(slot, read, write)
	}
}

func (f *Func) OnPop(slot, read, write uint64) {
	if f.Pop != nil {
		f.Pop(slot, read, write)
	}
}

func (f *Func) OnFull(read, write uint64) {
	if f.Full != nil {
		f.Full(read, write)
	}
}

func (f *Func) OnEmpty(read, write uint64) {
	if f.Empty != nil {
		f.Empty(read, write)
	}
}
