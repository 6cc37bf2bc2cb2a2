// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types shared across the allocator.
//
// These cover the recoverable error class only: out-of-memory,
// malformed requests and missing platform support. Misconfiguration (permissions, segment size
// limits, NUMA binding, teardown failures) is not represented here;
// it terminates the process at the point of detection.

package api

import "fmt"

// Recoverable errors returned by the allocator.
var (
	// ErrNoMem reports that the operating system could not supply more
	// hugepages. Callers may free buffers and retry.
	ErrNoMem = fmt.Errorf("hugepage reservation failed: insufficient memory")

	// ErrTooLarge reports a request above the largest size class.
	ErrTooLarge = fmt.Errorf("requested size exceeds the largest size class")

	// ErrZeroSize reports a zero-byte allocation request.
	ErrZeroSize = fmt.Errorf("requested size is zero")

	// ErrNotSupported reports that the platform lacks hugepage-backed
	// shared memory.
	ErrNotSupported = fmt.Errorf("operation not supported on this platform")
)
