package facade_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hugealloc/facade"
	"github.com/momentics/hugealloc/fake"
)

// Full lifecycle: construct, allocate, warm a cache, inspect probes and
// metrics, tear down.
func TestRuntimeFullLifecycle(t *testing.T) {
	provider := &fake.SegmentProvider{}
	registrar := &fake.Registrar{}

	cfg := facade.DefaultConfig()
	cfg.InitialSize = 8 << 20
	cfg.Registrar = registrar
	cfg.Provider = provider

	rt, err := facade.New(cfg)
	require.NoError(t, err)

	b, err := rt.Alloc(100)
	require.NoError(t, err)
	assert.Equal(t, 128, b.ClassSize())
	assert.Equal(t, uint64(128), rt.Stats().UserAllocTot)

	require.NoError(t, rt.CreateCache(4096, 32))
	assert.Equal(t, uint64(128), rt.Stats().UserAllocTot)

	dbg := rt.Debug()
	require.NotNil(t, dbg)
	state := dbg.DumpState()
	assert.Equal(t, uint64(8<<20), state["shm_reserved"])

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(rt.Collector()))
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2)

	rt.Free(b)
	rt.Close()
	assert.Equal(t, []uint32{1}, registrar.Deregistered)
	assert.Equal(t, []int32{1}, provider.Released)
}

func TestRuntimeDebugDisabled(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.Registrar = &fake.Registrar{}
	cfg.Provider = &fake.SegmentProvider{}
	cfg.EnableDebug = false

	rt, err := facade.New(cfg)
	require.NoError(t, err)
	defer rt.Close()

	assert.Nil(t, rt.Debug())
}

func TestRuntimeRequiresRegistrar(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.Provider = &fake.SegmentProvider{}

	_, err := facade.New(cfg)
	require.Error(t, err)
}
