//go:build linux
// +build linux

// File: internal/shm/shm_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux segment provider: shmget(SHM_HUGETLB) + shmat + strict mbind.
//
// Error discipline follows three channels. Out-of-memory returns
// api.ErrNoMem so the caller can keep running on existing capacity.
// Permission and size-limit errors, attach failures and NUMA binding
// failures terminate the process: they reflect system misconfiguration,
// and continuing would leak pinned hugepages or hand out wrong-node
// buffers. Key collisions are retried with a fresh random key.

package shm

import (
	"math/rand/v2"

	"golang.org/x/sys/unix"

	"github.com/momentics/hugealloc/api"
	"github.com/momentics/hugealloc/internal/numa"
)

// Provider reserves hugepage segments from the System V namespace.
//
// The namespace is process-wide and shared with unrelated programs, so
// keys are drawn at random and collisions (EEXIST) simply retried. The
// source need not be cryptographic, only well-spread.
type Provider struct{}

// NewProvider returns the production segment provider.
func NewProvider() *Provider {
	return &Provider{}
}

var _ api.SegmentProvider = (*Provider)(nil)

// shmHugeTLB is Linux's SHM_HUGETLB shmget(2) flag (octal 04000). It is
// not exported by golang.org/x/sys/unix, so it is reproduced here.
const shmHugeTLB = 0x800

// Reserve implements api.SegmentProvider.
func (p *Provider) Reserve(size int, numaNode int) (api.Segment, error) {
	size = RoundUp(size)

	var key int32
	var id int
	for {
		// Positive 31-bit keys only: key 0 is IPC_PRIVATE, and negative
		// keys look scary in operator-facing diagnostics.
		key = int32(rand.Uint32() >> 1)
		if key == 0 {
			continue
		}

		var err error
		id, err = unix.SysvShmGet(int(key), size,
			unix.IPC_CREAT|unix.IPC_EXCL|shmHugeTLB|0666)
		if err == nil {
			break
		}
		switch err {
		case unix.EEXIST:
			// Key already taken. Roll a new one.
		case unix.EACCES:
			logger.Fatalf("shmget(key %d) failed: insufficient permissions", key)
		case unix.EINVAL:
			logger.Fatalf("shmget(key %d) failed: SHMMAX/SHMMIN mismatch for size %d (%d MB)",
				key, size, size/(1<<20))
		case unix.ENOMEM:
			logger.Printf("insufficient hugepages, cannot reserve %d MB", size/(1<<20))
			return api.Segment{}, api.ErrNoMem
		default:
			logger.Fatalf("unexpected shmget error: %v", err)
		}
	}

	buf, err := unix.SysvShmAttach(id, 0, 0)
	if err != nil {
		logger.Fatalf("shmat failed for key %d: %v", key, err)
	}

	if err := numa.BindStrict(buf, numaNode); err != nil {
		logger.Fatalf("NUMA binding failed for key %d: %v", key, err)
	}

	// Fault the pages in now and hand out zeroed memory.
	clear(buf)

	return api.Segment{Key: key, Buf: buf}, nil
}

// Release implements api.SegmentProvider. Any failure is fatal: leaking
// a pinned hugepage region is a serious operator-visible condition.
func (p *Provider) Release(seg api.Segment) {
	id, err := unix.SysvShmGet(int(seg.Key), 0, 0)
	if err != nil {
		switch err {
		case unix.EACCES:
			logger.Fatalf("shm release failed: insufficient permissions, key %d", seg.Key)
		case unix.ENOENT:
			logger.Fatalf("shm release failed: no segment with key %d", seg.Key)
		default:
			logger.Fatalf("shm release failed for key %d: %v", seg.Key, err)
		}
	}

	if _, err := unix.SysvShmCtl(id, unix.IPC_RMID, nil); err != nil {
		logger.Fatalf("shmctl(IPC_RMID) failed for id %d: %v", id, err)
	}
	if err := unix.SysvShmDetach(seg.Buf); err != nil {
		logger.Fatalf("shmdt failed for key %d: %v", seg.Key, err)
	}
}
