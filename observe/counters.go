// File: observe/counters.go
// Author: momentics <momentics@gmail.com>
//
// Observer that feeds a control.MetricsRegistry. Counter names are
// prefixed so one registry can watch several rings.

package observe

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
)

// Counters counts push/pop/full/empty events per ring.
type Counters struct {
	reg    *control.MetricsRegistry
	prefix string
}

// Ensure compile-time interface compliance.
var _ api.Observer = (*Counters)(nil)

// NewCounters binds a registry; prefix names the ring (e.g. "ingress").
func NewCounters(reg *control.MetricsRegistry, prefix string) *Counters {
	return &Counters{reg: reg, prefix: prefix + "."}
}

func (c *Counters) OnPush(slot, read, write uint64) { c.reg.Inc(c.prefix+"push", 1) }
func (c *Counters) OnPop(slot, read, write uint64)  { c.reg.Inc(c.prefix+"pop", 1) }
func (c *Counters) OnFull(read, write uint64)       { c.reg.Inc(c.prefix+"full", 1) }
func (c *Counters) OnEmpty(read, write uint64)      { c.reg.Inc(c.prefix+"empty", 1) }
