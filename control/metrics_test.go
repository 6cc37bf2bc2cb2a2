package control_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hugealloc/api"
	"github.com/momentics/hugealloc/control"
)

func TestAllocatorCollectorExportsCounters(t *testing.T) {
	snap := api.Stats{ShmReserved: 16 << 20, UserAllocTot: 4096}
	c := control.NewAllocatorCollector(1, func() api.Stats { return snap })

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 2)

	byName := map[string]float64{}
	for _, mf := range families {
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		switch mf.GetName() {
		case "hugealloc_shm_reserved_bytes":
			byName[mf.GetName()] = m.GetCounter().GetValue()
		case "hugealloc_user_alloc_bytes":
			byName[mf.GetName()] = m.GetGauge().GetValue()
		}
		require.Len(t, m.GetLabel(), 1)
		assert.Equal(t, "numa_node", m.GetLabel()[0].GetName())
		assert.Equal(t, "1", m.GetLabel()[0].GetValue())
	}
	assert.Equal(t, float64(16<<20), byName["hugealloc_shm_reserved_bytes"])
	assert.Equal(t, float64(4096), byName["hugealloc_user_alloc_bytes"])
}
