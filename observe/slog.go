// File: observe/slog.go
// Author: momentics <momentics@gmail.com>
//
// Structured-logging observer over log/slog. Meant for development and
// examples: logging on every push/pop is far too slow for production
// rings, which is exactly why the engines take it as an injected hook
// instead of printing themselves.

package observe

import (
	"log/slog"

	"github.com/momentics/hioload-ring/api"
)

// Slog logs ring events at debug level, rejections and starvation at
// info level.
type Slog struct {
	log *slog.Logger
}

// Ensure compile-time interface compliance.
var _ api.Observer = (*Slog)(nil)

// NewSlog wraps a logger. A nil logger falls back to slog.Default().
func NewSlog(log *slog.Logger) *Slog {
	if log == nil {
		log = slog.Default()
	}
	return &Slog{log: log}
}

func (s *Slog) OnPush(slot, read, write uint64) {
	s.log.Debug("push", "slot", slot, "read", read, "write", write)
}

func (s *Slog) OnPop(slot, read, write uint64) {
	s.log.Debug("pop", "slot", slot, "read", read, "write", write)
}

func (s *Slog) OnFull(read, write uint64) {
	s.log.Info("push rejected: ring full", "read", read, "write", write)
}

func (s *Slog) OnEmpty(read, write uint64) {
	s.log.Debug("pop on empty ring", "read", read, "write", write)
}
