// File: facade/hugealloc.go
// Unified facade layer for the hugealloc library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Runtime struct, which aggregates the allocator
// with thread pinning, debug probes and the metrics collector behind a
// single facade. It initializes everything from an immutable Config and
// exposes the allocator operations plus accessors for the control
// surfaces.

package facade

import (
	"github.com/pkg/errors"

	"github.com/momentics/hugealloc/affinity"
	"github.com/momentics/hugealloc/api"
	"github.com/momentics/hugealloc/control"
	"github.com/momentics/hugealloc/pool"
)

// Config holds parameters immutable per run.
type Config struct {
	InitialSize int                 // First hugepage reservation, in bytes
	NUMANode    int                 // NUMA node all memory is bound to
	Registrar   api.Registrar       // Transport memory-registration capability
	Provider    api.SegmentProvider // Segment source override; nil selects SysV hugepages
	PinThread   bool                // Pin the calling thread to NUMANode's CPUs
	EnableDebug bool                // Register allocator debug probes
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		InitialSize: pool.MaxClassSize, // one max-class buffer to start
		NUMANode:    0,
		PinThread:   false,
		EnableDebug: true,
	}
}

// Runtime is the main facade type. Like the allocator it wraps, it is
// single-owner: the thread that constructed it makes all calls.
type Runtime struct {
	alloc     *pool.HugeAlloc
	probes    *control.DebugProbes
	collector *control.AllocatorCollector
	config    *Config
}

// New constructs a Runtime with the given configuration. The calling
// thread is pinned to the configured node before the first reservation
// when PinThread is set, so faulted pages land on the right node even
// before mbind applies.
func New(cfg *Config) (*Runtime, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if cfg.PinThread {
		if err := affinity.PinToNode(cfg.NUMANode); err != nil {
			return nil, errors.Wrap(err, "facade: thread pinning failed")
		}
	}

	a, err := pool.New(pool.Config{
		InitialSize: cfg.InitialSize,
		NUMANode:    cfg.NUMANode,
		Registrar:   cfg.Registrar,
		Provider:    cfg.Provider,
	})
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		alloc:     a,
		config:    cfg,
		collector: control.NewAllocatorCollector(cfg.NUMANode, a.Stats),
	}
	if cfg.EnableDebug {
		rt.probes = control.NewDebugProbes()
		control.RegisterAllocatorProbes(rt.probes, a)
	}
	return rt, nil
}

// Alloc returns a registered buffer of at least size bytes.
func (rt *Runtime) Alloc(size int) (api.Buffer, error) {
	return rt.alloc.Alloc(size)
}

// Free returns a buffer to the allocator.
func (rt *Runtime) Free(b api.Buffer) {
	rt.alloc.Free(b)
}

// CreateCache warms the free-list for size with numBuffers buffers.
func (rt *Runtime) CreateCache(size, numBuffers int) error {
	return rt.alloc.CreateCache(size, numBuffers)
}

// AllocRaw reserves registered memory outside the size-class ladder.
func (rt *Runtime) AllocRaw(size int) ([]byte, error) {
	return rt.alloc.AllocRaw(size)
}

// Stats returns the allocator's accounting snapshot.
func (rt *Runtime) Stats() api.Stats {
	return rt.alloc.Stats()
}

// PrintStats writes the allocator's diagnostic dump to stderr.
func (rt *Runtime) PrintStats() {
	rt.alloc.PrintStats()
}

// Allocator exposes the underlying allocator.
func (rt *Runtime) Allocator() *pool.HugeAlloc {
	return rt.alloc
}

// Debug returns the probe registry, nil unless EnableDebug was set.
func (rt *Runtime) Debug() api.Debug {
	if rt.probes == nil {
		return nil
	}
	return rt.probes
}

// Collector returns the Prometheus collector for this allocator.
func (rt *Runtime) Collector() *control.AllocatorCollector {
	return rt.collector
}

// Close tears down every region. All outstanding buffers become
// invalid.
func (rt *Runtime) Close() {
	rt.alloc.Close()
}
