// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for pinning the allocator's owner thread to its
// NUMA node. Platform-specific implementations are located in separate
// files (affinity_linux.go, affinity_stub.go) guarded by build tags.
//
// The allocator itself is single-owner and lock-free; pinning the
// owning thread next to the memory it allocates is what makes the
// NUMA binding worth having.

package affinity

// PinToNode locks the calling goroutine to its OS thread and restricts
// that thread to the CPUs of the given NUMA node.
func PinToNode(node int) error {
	return pinToNodePlatform(node)
}
