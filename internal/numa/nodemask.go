// File: internal/numa/nodemask.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Nodemask construction for the mbind(2) memory policy syscall. The mask
// is a []uint64 bit vector sized from the highest node, so machines with
// more than 64 nodes are handled without widening anything here.

package numa

import "fmt"

// MaxNodes bounds node indices accepted by Nodemask. It matches the
// kernel's practical limit, not the allocator's per-process bound.
const MaxNodes = 1024

// Nodemask returns a bit vector with exactly the bit for node set.
func Nodemask(node int) ([]uint64, error) {
	if node < 0 || node >= MaxNodes {
		return nil, fmt.Errorf("numa: node %d out of range [0, %d)", node, MaxNodes)
	}
	mask := make([]uint64, node/64+1)
	mask[node/64] |= 1 << (node % 64)
	return mask, nil
}
