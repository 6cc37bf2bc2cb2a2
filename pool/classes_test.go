package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClassBounds(t *testing.T) {
	assert.Equal(t, 0, getClass(1))
	assert.Equal(t, 0, getClass(63))
	assert.Equal(t, 0, getClass(64))
	assert.Equal(t, 1, getClass(65))
	assert.Equal(t, 1, getClass(100))
	assert.Equal(t, 1, getClass(128))
	assert.Equal(t, 2, getClass(129))
	assert.Equal(t, NumClasses-1, getClass(MaxClassSize))
	assert.Equal(t, NumClasses-1, getClass(MaxClassSize/2+1))
}

// The class for any size must be the smallest class whose size fits it.
func TestGetClassIsSmallestFit(t *testing.T) {
	for size := 1; size <= MaxClassSize; size = size*2 - size/3 + 1 {
		class := getClass(size)
		require.Less(t, class, NumClasses)
		require.GreaterOrEqual(t, classSize(class), size, "size %d", size)
		if class > 0 {
			require.Less(t, classSize(class-1), size, "size %d", size)
		}
	}
}

func TestClassSizeLadder(t *testing.T) {
	assert.Equal(t, 64, classSize(0))
	assert.Equal(t, 128, classSize(1))
	assert.Equal(t, 8<<20, classSize(NumClasses-1))
	assert.Equal(t, MaxClassSize, MinClassSize<<(NumClasses-1))
}
