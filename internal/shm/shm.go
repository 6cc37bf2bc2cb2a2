// File: internal/shm/shm.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Hugepage-backed System V shared-memory segments. Platform-specific
// implementations live in shm_linux.go and shm_stub.go.

package shm

import (
	"log"
	"os"
)

// HugepageSize is the rounding unit for segment reservations (2 MiB).
const HugepageSize = 2 << 20

// logger reports reservation warnings and fatal misconfiguration.
var logger = log.New(os.Stderr, "hugealloc: ", 0)

// RoundUp rounds size up to a whole number of hugepages.
func RoundUp(size int) int {
	return (size + HugepageSize - 1) / HugepageSize * HugepageSize
}
