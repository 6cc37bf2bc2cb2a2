// File: internal/normalize/normalize.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Validation of NUMA node indices supplied at allocator construction.
// The allocator is strict: an out-of-range node is a construction error,
// never a silent fallback to node 0, because every buffer the allocator
// returns must actually live on the configured node.

package normalize

import "fmt"

// CheckNUMANode validates node against the per-process bound maxNodes.
func CheckNUMANode(node, maxNodes int) error {
	if maxNodes < 1 {
		return fmt.Errorf("normalize: invalid NUMA node bound %d", maxNodes)
	}
	if node < 0 || node >= maxNodes {
		return fmt.Errorf("normalize: NUMA node %d out of range [0, %d)", node, maxNodes)
	}
	return nil
}
