// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides heap-backed stand-ins for the operating-system
// and transport collaborators, for tests on machines without hugepages
// or a NIC.
package fake

import "github.com/momentics/hugealloc/api"

const hugepageSize = 2 << 20

// SegmentProvider serves segments from the Go heap. It mirrors the
// production provider's hugepage rounding so size arithmetic in tests
// matches real deployments.
type SegmentProvider struct {
	// FailNext makes the next Reserve report ErrNoMem once.
	FailNext bool

	// Capacity caps total reserved bytes; 0 means unlimited. Reservations
	// beyond the cap report ErrNoMem.
	Capacity int

	// Released records the keys passed to Release, in call order.
	Released []int32

	nextKey  int32
	reserved int
}

var _ api.SegmentProvider = (*SegmentProvider)(nil)

// Reserve implements api.SegmentProvider.
func (p *SegmentProvider) Reserve(size int, numaNode int) (api.Segment, error) {
	size = (size + hugepageSize - 1) / hugepageSize * hugepageSize
	if p.FailNext {
		p.FailNext = false
		return api.Segment{}, api.ErrNoMem
	}
	if p.Capacity > 0 && p.reserved+size > p.Capacity {
		return api.Segment{}, api.ErrNoMem
	}
	p.reserved += size
	p.nextKey++
	return api.Segment{Key: p.nextKey, Buf: make([]byte, size)}, nil
}

// Release implements api.SegmentProvider.
func (p *SegmentProvider) Release(seg api.Segment) {
	p.Released = append(p.Released, seg.Key)
}
