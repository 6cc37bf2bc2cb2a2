// File: pool/cache.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/hugealloc/api"

// CreateCache preconditions the free-list for size so that at least
// numBuffers buffers of its class sit ready. Subsequent Alloc calls of
// that size then hit without splitting or region growth.
//
// The cache is built by allocating the deficit and freeing it back. A
// deficit of zero or less means the list is already warm and the call
// does nothing, so CreateCache is idempotent.
func (a *HugeAlloc) CreateCache(size int, numBuffers int) error {
	if size <= 0 {
		return api.ErrZeroSize
	}
	if size > MaxClassSize {
		return api.ErrTooLarge
	}

	class := getClass(size)
	deficit := numBuffers - len(a.freelist[class])
	if deficit <= 0 {
		return nil
	}

	warm := make([]api.Buffer, 0, deficit)
	for i := 0; i < deficit; i++ {
		b, err := a.Alloc(size)
		if err != nil {
			for _, h := range warm {
				a.Free(h)
			}
			return err
		}
		warm = append(warm, b)
	}
	for _, b := range warm {
		a.Free(b)
	}
	return nil
}
