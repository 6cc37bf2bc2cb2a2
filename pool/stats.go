// File: pool/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte accounting and the human-readable diagnostic dump.

package pool

import (
	"fmt"
	"io"
	"os"

	"github.com/momentics/hugealloc/api"
	"github.com/momentics/hugealloc/internal/shm"
)

// Stats returns a snapshot of the allocator's counters.
func (a *HugeAlloc) Stats() api.Stats {
	return a.stats
}

// StatShmReserved returns the total bytes reserved from the OS.
// Always a whole number of hugepages.
func (a *HugeAlloc) StatShmReserved() uint64 {
	if a.stats.ShmReserved%shm.HugepageSize != 0 {
		panic("pool: reserved bytes not hugepage-aligned")
	}
	return a.stats.ShmReserved
}

// StatUserAllocTot returns the bytes currently owned by callers,
// counted in class sizes. Always a multiple of MinClassSize.
func (a *HugeAlloc) StatUserAllocTot() uint64 {
	if a.stats.UserAllocTot%MinClassSize != 0 {
		panic("pool: user bytes not class-aligned")
	}
	return a.stats.UserAllocTot
}

// RegionCount returns the number of reserved regions.
func (a *HugeAlloc) RegionCount() int {
	return a.regions.Length()
}

// ClassCounts returns the current free-list length of every class.
func (a *HugeAlloc) ClassCounts() []int {
	counts := make([]int, NumClasses)
	for i := range a.freelist {
		counts[i] = len(a.freelist[i])
	}
	return counts
}

// PrintStats writes the diagnostic summary to stderr.
func (a *HugeAlloc) PrintStats() {
	a.WriteStats(os.Stderr)
}

// WriteStats writes the diagnostic summary to w: totals, per-region
// sizes and per-class free-list lengths.
func (a *HugeAlloc) WriteStats(w io.Writer) {
	const mb = 1 << 20
	const kb = 1 << 10

	fmt.Fprintf(w, "hugealloc stats:\n")
	fmt.Fprintf(w, "Total reserved SHM = %d bytes (%.2f MB)\n",
		a.stats.ShmReserved, float64(a.stats.ShmReserved)/mb)
	fmt.Fprintf(w, "Total memory allocated to user = %d bytes (%.2f MB)\n",
		a.stats.UserAllocTot, float64(a.stats.UserAllocTot)/mb)

	fmt.Fprintf(w, "%d SHM regions\n", a.regions.Length())
	for i := 0; i < a.regions.Length(); i++ {
		r := a.regions.Get(i).(*region)
		fmt.Fprintf(w, "Region %d, size %d MB\n", i, len(r.seg.Buf)/mb)
	}

	fmt.Fprintf(w, "Size classes:\n")
	for i := 0; i < NumClasses; i++ {
		size := classSize(i)
		switch {
		case size < kb:
			fmt.Fprintf(w, "\t%d B: %d buffers\n", size, len(a.freelist[i]))
		case size < mb:
			fmt.Fprintf(w, "\t%d KB: %d buffers\n", size/kb, len(a.freelist[i]))
		default:
			fmt.Fprintf(w, "\t%d MB: %d buffers\n", size/mb, len(a.freelist[i]))
		}
	}
}
