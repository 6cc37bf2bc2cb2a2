//go:build !linux
// +build !linux

// File: internal/numa/numa_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stubs for platforms without mbind or sysfs topology.

package numa

import "github.com/momentics/hugealloc/api"

// BindStrict is unavailable off Linux.
func BindStrict(buf []byte, node int) error {
	return api.ErrNotSupported
}

// NodeCount reports a single node on platforms without NUMA probing.
func NodeCount() int { return 1 }

// NodeCPUs is unavailable off Linux.
func NodeCPUs(node int) ([]int, error) {
	return nil, api.ErrNotSupported
}
