//go:build linux
// +build linux

package numa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCPUList(t *testing.T) {
	cpus, err := parseCPUList("0-3")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, cpus)

	cpus, err = parseCPUList("0-1,8-9,12")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 8, 9, 12}, cpus)

	cpus, err = parseCPUList("5")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, cpus)

	cpus, err = parseCPUList("")
	require.NoError(t, err)
	assert.Empty(t, cpus)
}

func TestParseCPUListRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"x", "3-1", "1-", "-2", "1,,2"} {
		_, err := parseCPUList(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestNodeCountAtLeastOne(t *testing.T) {
	assert.GreaterOrEqual(t, NodeCount(), 1)
}
