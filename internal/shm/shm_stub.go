//go:build !linux
// +build !linux

// File: internal/shm/shm_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub for platforms without System V hugepage segments. The allocator
// does not tolerate non-hugepage backing, so there is no fallback path;
// tests use fake.SegmentProvider instead.

package shm

import "github.com/momentics/hugealloc/api"

// Provider is unavailable off Linux.
type Provider struct{}

// NewProvider returns the stub provider.
func NewProvider() *Provider {
	return &Provider{}
}

var _ api.SegmentProvider = (*Provider)(nil)

// Reserve always fails off Linux.
func (p *Provider) Reserve(size int, numaNode int) (api.Segment, error) {
	return api.Segment{}, api.ErrNotSupported
}

// Release is a no-op off Linux; Reserve never produced a segment.
func (p *Provider) Release(seg api.Segment) {}
