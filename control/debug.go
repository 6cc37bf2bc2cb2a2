// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug probes over allocator internals.

package control

import (
	"sync"

	"github.com/momentics/hugealloc/api"
	"github.com/momentics/hugealloc/pool"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

var _ api.Debug = (*DebugProbes)(nil)

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// RegisterAllocatorProbes wires an allocator's accounting into dp.
//
// Probes read allocator state; the caller must ensure dumps are taken
// from the owning thread, same as every other allocator call.
func RegisterAllocatorProbes(dp *DebugProbes, a *pool.HugeAlloc) {
	dp.RegisterProbe("shm_reserved", func() any { return a.Stats().ShmReserved })
	dp.RegisterProbe("user_alloc_tot", func() any { return a.Stats().UserAllocTot })
	dp.RegisterProbe("regions", func() any { return a.RegionCount() })
	dp.RegisterProbe("freelists", func() any { return a.ClassCounts() })
	dp.RegisterProbe("numa_node", func() any { return a.NUMANode() })
}
