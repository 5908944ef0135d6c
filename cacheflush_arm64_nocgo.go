//go:build arm64 && !cgo && unix && !darwin

package hostmem

import "sync"

// Without a C compiler the cache maintenance that __builtin___clear_cache
// would emit is done here, one line at a time.

func cacheType() uint32
func cleanDataLine(addr uintptr)
func invalidateInstructionLine(addr uintptr)
func dataSyncBarrier()
func instructionSyncBarrier()

// CTR_EL0 fields.
const (
	ctrIDC = 1 << 28 // D-cache clean not needed for I/D coherence
	ctrDIC = 1 << 29 // I-cache invalidation not needed
)

var (
	ctrOnce sync.Once
	ctr     uint32
)

func cacheflush(addr, size uint64) error {
	ctrOnce.Do(func() { ctr = cacheType() })

	start, end := uintptr(addr), uintptr(addr+size)

	if ctr&ctrIDC == 0 {
		line := uintptr(4) << ((ctr >> 16) & 0xf)
		for p := alignDown(start, line); p < end; p += line {
			cleanDataLine(p)
		}
	}
	dataSyncBarrier()

	if ctr&ctrDIC == 0 {
		line := uintptr(4) << (ctr & 0xf)
		for p := alignDown(start, line); p < end; p += line {
			invalidateInstructionLine(p)
		}
	}
	dataSyncBarrier()
	instructionSyncBarrier()
	return nil
}
