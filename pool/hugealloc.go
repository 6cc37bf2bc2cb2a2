// File: pool/hugealloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// NUMA-bound hugepage allocator with per-class free-lists.
//
// New shared-memory regions are split into MaxClassSize buffers and
// seeded into the largest class; those are split on demand to fill the
// smaller classes. Buffers are never coalesced on free: the RPC
// workload reuses same-size buffers heavily, and a constant-time free
// path matters more than long-term defragmentation.
//
// A HugeAlloc instance is single-owner. It keeps no internal locks; the
// owning thread serializes all calls. One instance exists per transport
// thread, each pinned to its own NUMA node. The allocator must outlive
// every Buffer it returned: regions stay mapped until Close.

package pool

import (
	"github.com/eapache/queue"
	"github.com/pkg/errors"

	"github.com/momentics/hugealloc/api"
	"github.com/momentics/hugealloc/internal/normalize"
	"github.com/momentics/hugealloc/internal/shm"
)

// region is one reserved, registered shared-memory segment. Regions are
// append-only: once reserved, a region exists until Close.
type region struct {
	seg     api.Segment
	regInfo api.MemRegInfo
}

// Config carries the immutable construction parameters.
type Config struct {
	// InitialSize is the first reservation, raised to MaxClassSize if
	// smaller.
	InitialSize int

	// NUMANode is the node every region is bound to. No cross-node
	// fallback exists.
	NUMANode int

	// Registrar registers each region with the transport. Required.
	Registrar api.Registrar

	// Provider overrides the segment source. Nil selects the production
	// System V hugepage provider.
	Provider api.SegmentProvider
}

// HugeAlloc hands out registered, NUMA-bound buffers at allocation-free
// steady-state cost.
type HugeAlloc struct {
	freelist [NumClasses][]api.Buffer
	regions  *queue.Queue

	provider  api.SegmentProvider
	registrar api.Registrar
	numaNode  int

	prevAllocationSize int

	stats api.Stats
}

// New constructs the allocator and reserves its initial region.
// Reservation failure, including a failed registration, is a
// construction failure.
func New(cfg Config) (*HugeAlloc, error) {
	if cfg.Registrar == nil {
		return nil, errors.New("pool: registrar is required")
	}
	if err := normalize.CheckNUMANode(cfg.NUMANode, MaxNUMANodes); err != nil {
		return nil, err
	}

	provider := cfg.Provider
	if provider == nil {
		provider = shm.NewProvider()
	}

	initial := cfg.InitialSize
	if initial < MaxClassSize {
		initial = MaxClassSize
	}

	a := &HugeAlloc{
		regions:            queue.New(),
		provider:           provider,
		registrar:          cfg.Registrar,
		numaNode:           cfg.NUMANode,
		prevAllocationSize: initial,
	}
	if err := a.reserve(initial); err != nil {
		return nil, errors.Wrap(err, "pool: initial hugepage reservation failed")
	}
	return a, nil
}

// NUMANode returns the node all regions are bound to.
func (a *HugeAlloc) NUMANode() int {
	return a.numaNode
}

// Alloc returns a buffer of the smallest class fitting size.
//
// On a free-list miss the allocator grows by max(2x the previous
// reservation, size). ErrNoMem means growth was not possible now; the
// caller may free buffers and retry. Requests above MaxClassSize are
// rejected without attempting growth.
func (a *HugeAlloc) Alloc(size int) (api.Buffer, error) {
	if size <= 0 {
		return api.Buffer{}, api.ErrZeroSize
	}
	if size > MaxClassSize {
		return api.Buffer{}, api.ErrTooLarge
	}

	target := getClass(size)
	next := target
	for next < NumClasses && len(a.freelist[next]) == 0 {
		next++
	}

	if next == NumClasses {
		// No free buffer in any class. Reserve more hugepages, which
		// seeds the largest class.
		prev := a.prevAllocationSize
		want := prev * 2
		if want < size {
			want = size
		}
		a.prevAllocationSize = want
		if err := a.reserve(want); err != nil {
			a.prevAllocationSize = prev
			return api.Buffer{}, err
		}
		next = NumClasses - 1
	}

	for next > target {
		a.split(next)
		next--
	}
	return a.allocFromClass(target), nil
}

// Free returns a buffer to its class free-list. No coalescing happens;
// the two halves of an earlier split never re-merge.
func (a *HugeAlloc) Free(b api.Buffer) {
	if !b.Valid() {
		panic("pool: free of invalid buffer")
	}
	class := getClass(len(b.Buf))
	if class >= NumClasses || classSize(class) != len(b.Buf) {
		panic("pool: free of buffer with non-class size")
	}
	a.freelist[class] = append(a.freelist[class], b)
	a.stats.UserAllocTot -= uint64(len(b.Buf))
}

// AllocRaw reserves registered hugepage memory outside the size-class
// ladder, so size may exceed MaxClassSize. The memory is not tracked by
// any free-list and is reclaimed only at Close.
func (a *HugeAlloc) AllocRaw(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.ErrZeroSize
	}
	r, err := a.addRegion(size)
	if err != nil {
		return nil, err
	}
	return r.seg.Buf, nil
}

// Close deregisters and removes every region, in insertion order.
func (a *HugeAlloc) Close() {
	for a.regions.Length() > 0 {
		r := a.regions.Remove().(*region)
		a.registrar.DeregMR(r.regInfo)
		a.provider.Release(r.seg)
	}
}

// reserve obtains a new region of at least size bytes, rounded up to a
// whole number of MaxClassSize buffers, and seeds the largest class
// with them in address order.
func (a *HugeAlloc) reserve(size int) error {
	if size < MaxClassSize {
		size = MaxClassSize
	}
	size = (size + MaxClassSize - 1) / MaxClassSize * MaxClassSize

	r, err := a.addRegion(size)
	if err != nil {
		return err
	}

	n := len(r.seg.Buf) / MaxClassSize
	for i := 0; i < n; i++ {
		a.freelist[NumClasses-1] = append(a.freelist[NumClasses-1], api.Buffer{
			Buf:  r.seg.Buf[i*MaxClassSize : (i+1)*MaxClassSize : (i+1)*MaxClassSize],
			LKey: r.regInfo.LKey,
		})
	}
	return nil
}

// addRegion reserves and registers one segment. A region joins the
// region list only after successful registration; on registration
// failure the segment is released first, then the error propagates
// unchanged.
func (a *HugeAlloc) addRegion(size int) (*region, error) {
	seg, err := a.provider.Reserve(size, a.numaNode)
	if err != nil {
		return nil, err
	}
	info, err := a.registrar.RegMR(seg.Buf)
	if err != nil {
		a.provider.Release(seg)
		return nil, err
	}

	r := &region{seg: seg, regInfo: info}
	a.regions.Add(r)
	a.stats.ShmReserved += uint64(len(seg.Buf))
	return r, nil
}

// split moves one buffer from class down to two adjacent halves in
// class-1. Both halves inherit the parent region's lkey. The lower half
// is pushed last, so the next pop takes it and the upper half stays on
// the free-list.
func (a *HugeAlloc) split(class int) {
	fl := a.freelist[class]
	parent := fl[len(fl)-1]
	a.freelist[class] = fl[:len(fl)-1]

	half := len(parent.Buf) / 2
	a.freelist[class-1] = append(a.freelist[class-1],
		api.Buffer{Buf: parent.Buf[half:], LKey: parent.LKey},
		api.Buffer{Buf: parent.Buf[:half:half], LKey: parent.LKey},
	)
}

// allocFromClass pops the most recently pushed buffer for locality.
func (a *HugeAlloc) allocFromClass(class int) api.Buffer {
	fl := a.freelist[class]
	b := fl[len(fl)-1]
	a.freelist[class] = fl[:len(fl)-1]
	a.stats.UserAllocTot += uint64(len(b.Buf))
	return b
}
