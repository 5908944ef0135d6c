package hostmem

import (
	"math"
	"os"

	"golang.org/x/exp/constraints"
)

// Bounds of the address window searched by AllocateAligned on 64-bit hosts
// when the caller has no preference. UserMax is one byte short of a 64KiB
// boundary, which VirtualAlloc2 requires.
const (
	UserMin uint64 = 0x10_0000_0000
	UserMax uint64 = 0xFB_FFFF_FFFF
)

// The same window for 32-bit hosts, bounded by the default 2GiB user space.
const (
	userMin32 uint64 = 0x1_0000
	userMax32 uint64 = 0x7FFE_FFFF
)

// userWindow returns the window AllocateAligned searches on this host.
func userWindow() (lowest, highest uint64) {
	if uint64(^uintptr(0)) == math.MaxUint32 {
		return userMin32, userMax32
	}
	return UserMin, UserMax
}

// PageSize returns the host page size.
func PageSize() uint64 {
	return uint64(os.Getpagesize())
}

// alignUp rounds pos up to a multiple of align. align must be a power of two
// or zero, in which case pos is returned unchanged.
func alignUp[I constraints.Unsigned](pos, align I) I {
	if align == 0 {
		return pos
	}
	return (pos + align - 1) &^ (align - 1)
}

func alignDown[I constraints.Unsigned](pos, align I) I {
	if align == 0 {
		return pos
	}
	return pos &^ (align - 1)
}

func isPowerOfTwo[I constraints.Unsigned](v I) bool {
	return v != 0 && v&(v-1) == 0
}

// pageSpan expands [addr, addr+size) to whole pages.
//
// Example: addr=4196, size=8 with a 4096 byte page becomes 4096, 4096.
func pageSpan(addr, size uint64) (start, length uint64) {
	pageSize := PageSize()
	start = alignDown(addr, pageSize)
	length = alignUp(addr-start+size, pageSize)
	return start, length
}
