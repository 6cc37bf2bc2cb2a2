package numa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodemaskSetsSingleBit(t *testing.T) {
	mask, err := Nodemask(0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, mask)

	mask, err = Nodemask(7)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1 << 7}, mask)
}

// Nodes beyond one machine word must widen the mask, not truncate.
func TestNodemaskWideNodes(t *testing.T) {
	mask, err := Nodemask(64)
	require.NoError(t, err)
	require.Len(t, mask, 2)
	assert.Equal(t, uint64(0), mask[0])
	assert.Equal(t, uint64(1), mask[1])

	mask, err = Nodemask(130)
	require.NoError(t, err)
	require.Len(t, mask, 3)
	assert.Equal(t, uint64(1<<2), mask[2])
}

func TestNodemaskRejectsOutOfRange(t *testing.T) {
	_, err := Nodemask(-1)
	assert.Error(t, err)
	_, err = Nodemask(MaxNodes)
	assert.Error(t, err)
}
