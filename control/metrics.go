// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus collector over the allocator's statistics snapshot.
// Collection reads a snapshot function rather than the allocator
// directly, so callers decide how the single-owner access rule is
// satisfied (typically the owner publishes snapshots).

package control

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hugealloc/api"
)

// AllocatorCollector exports shm_reserved and user_alloc_tot.
type AllocatorCollector struct {
	snapshot func() api.Stats

	reserved *prometheus.Desc
	inUse    *prometheus.Desc
}

var _ prometheus.Collector = (*AllocatorCollector)(nil)

// NewAllocatorCollector builds a collector over a stats snapshot
// function. The numa_node label distinguishes per-thread allocators
// registered into one registry.
func NewAllocatorCollector(numaNode int, snapshot func() api.Stats) *AllocatorCollector {
	labels := prometheus.Labels{"numa_node": strconv.Itoa(numaNode)}
	return &AllocatorCollector{
		snapshot: snapshot,
		reserved: prometheus.NewDesc(
			"hugealloc_shm_reserved_bytes",
			"Total hugepage memory reserved from the OS.",
			nil, labels),
		inUse: prometheus.NewDesc(
			"hugealloc_user_alloc_bytes",
			"Memory currently allocated to callers, in class sizes.",
			nil, labels),
	}
}

// Describe implements prometheus.Collector.
func (c *AllocatorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.reserved
	ch <- c.inUse
}

// Collect implements prometheus.Collector.
func (c *AllocatorCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.snapshot()
	ch <- prometheus.MustNewConstMetric(c.reserved, prometheus.CounterValue, float64(s.ShmReserved))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(s.UserAllocTot))
}
