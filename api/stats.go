// File: api/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Stats is a snapshot of the allocator's byte accounting.
type Stats struct {
	// ShmReserved is the total number of bytes obtained from the
	// operating system, summed over all regions. Monotonic.
	ShmReserved uint64

	// UserAllocTot is the number of bytes currently owned by callers,
	// counted in class sizes. Incremented on alloc, decremented on free.
	UserAllocTot uint64
}
