package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hugealloc/control"
	"github.com/momentics/hugealloc/fake"
	"github.com/momentics/hugealloc/pool"
)

func TestAllocatorProbes(t *testing.T) {
	a, err := pool.New(pool.Config{
		InitialSize: 8 << 20,
		NUMANode:    0,
		Registrar:   &fake.Registrar{},
		Provider:    &fake.SegmentProvider{},
	})
	require.NoError(t, err)
	defer a.Close()

	dp := control.NewDebugProbes()
	control.RegisterAllocatorProbes(dp, a)

	b, err := a.Alloc(100)
	require.NoError(t, err)

	state := dp.DumpState()
	assert.Equal(t, uint64(8<<20), state["shm_reserved"])
	assert.Equal(t, uint64(128), state["user_alloc_tot"])
	assert.Equal(t, 1, state["regions"])
	assert.Equal(t, 0, state["numa_node"])
	counts, ok := state["freelists"].([]int)
	require.True(t, ok)
	assert.Equal(t, 1, counts[1])

	a.Free(b)
}
