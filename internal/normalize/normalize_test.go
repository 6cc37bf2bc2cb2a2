package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckNUMANode(t *testing.T) {
	assert.NoError(t, CheckNUMANode(0, 8))
	assert.NoError(t, CheckNUMANode(7, 8))

	assert.Error(t, CheckNUMANode(8, 8))
	assert.Error(t, CheckNUMANode(-1, 8))
	assert.Error(t, CheckNUMANode(0, 0))
}
