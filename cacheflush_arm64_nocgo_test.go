//go:build arm64 && !cgo && unix && !darwin

package hostmem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheType(t *testing.T) {
	assert := assert.New(t)

	ctr := cacheType()
	iline := uint64(4) << (ctr & 0xf)
	dline := uint64(4) << ((ctr >> 16) & 0xf)

	assert.True(isPowerOfTwo(iline))
	assert.True(isPowerOfTwo(dline))
	assert.GreaterOrEqual(iline, uint64(16))
	assert.LessOrEqual(dline, uint64(2048))
}

// A span that starts mid-line and crosses a page still ends up executable
// with the new code.
func TestCacheflush_UnalignedSpan(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	addr, err := Allocate(0, 2*PageSize(), ExecuteReadWrite)
	require.NoError(err)
	t.Cleanup(func() { Free(addr, 2*PageSize()) })

	require.NoError(cacheflush(addr+PageSize()-4, 12))

	site := addr + PageSize() - 8
	for _, v := range []uint16{5, 6, 7} {
		*(*uint64)(unsafe.Pointer(uintptr(site))) = returnStub(v)
		require.NoError(cacheflush(site, patchSize))
		assert.Equal(int(v), call(site))
	}
}
