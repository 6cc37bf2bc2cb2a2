// File: api/registrar.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Memory-registration capability supplied by the transport.

package api

// MemRegInfo is the transport's opaque registration token for one region.
//
// LKey is the small integer key used in I/O submissions. Token holds
// whatever transport-specific handle is needed to deregister; the
// allocator never inspects it.
type MemRegInfo struct {
	LKey  uint32
	Token any
}

// Registrar registers memory regions with a DMA-capable device.
//
// The allocator stores exactly one Registrar for its whole lifetime and
// calls RegMR once per region immediately after NUMA binding, and DeregMR
// once per region at teardown, in region insertion order.
type Registrar interface {
	// RegMR pins and registers buf. The returned info must stay valid for
	// the lifetime of the region. A RegMR error propagates unchanged out
	// of the reserve operation; the allocator cleans up the segment first.
	RegMR(buf []byte) (MemRegInfo, error)

	// DeregMR releases a registration made by RegMR. Must not fail.
	DeregMR(info MemRegInfo)
}
