//go:build windows

package hostmem

import (
	"errors"
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	modkernelbase               = windows.NewLazySystemDLL("kernelbase.dll")
	procFlushInstructionCache   = modkernel32.NewProc("FlushInstructionCache")
	procVirtualAlloc2           = modkernelbase.NewProc("VirtualAlloc2")
	errVirtualAlloc2Unavailable = errors.New("VirtualAlloc2 requires Windows 10 1803 or later")
)

// VirtualAlloc addresses are always multiples of the allocation granularity,
// which is 64KiB on every Windows release.
const allocationGranularity = 64 * 1024

const memExtendedParameterAddressRequirements = 1

// memAddressRequirements mirrors MEM_ADDRESS_REQUIREMENTS.
type memAddressRequirements struct {
	LowestStartingAddress uintptr
	HighestEndingAddress  uintptr
	Alignment             uintptr
}

// memExtendedParameter mirrors MEM_EXTENDED_PARAMETER. The C type packs an
// 8-bit type and 56 reserved bits into the first 64 bits.
type memExtendedParameter struct {
	Type    uint64
	Pointer uintptr
}

type windowsPlatform struct{}

var host platform = windowsPlatform{}

func (windowsPlatform) allocate(hint, size uint64, mode Mode) (uint64, error) {
	protect := toNative(mode)
	addr, err := windows.VirtualAlloc(uintptr(hint), uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, protect)
	if err != nil && hint != 0 && errors.Is(err, windows.ERROR_INVALID_ADDRESS) {
		// VirtualAlloc treats the address as a requirement. Fall back to
		// letting the system pick so a hint behaves the same as on POSIX.
		addr, err = windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, protect)
	}
	if err != nil {
		return 0, os.NewSyscallError("VirtualAlloc", err)
	}
	return uint64(addr), nil
}

func (windowsPlatform) allocateAligned(hint, size uint64, mode Mode, alignment uint64) (uint64, error) {
	if err := procVirtualAlloc2.Find(); err != nil {
		return 0, errVirtualAlloc2Unavailable
	}

	_, highest := userWindow()
	req := &memAddressRequirements{
		LowestStartingAddress: uintptr(alignUp(hint, allocationGranularity)),
		HighestEndingAddress:  uintptr(highest),
	}
	// Anything at or below the granularity is satisfied by every
	// allocation, and VirtualAlloc2 rejects smaller values.
	if alignment > allocationGranularity {
		req.Alignment = uintptr(alignment)
	}

	// param refers to req by address, so req must not move until the call
	// returns.
	var pinner runtime.Pinner
	pinner.Pin(req)
	defer pinner.Unpin()

	param := memExtendedParameter{
		Type:    memExtendedParameterAddressRequirements,
		Pointer: uintptr(unsafe.Pointer(req)),
	}

	r0, _, e1 := procVirtualAlloc2.Call(
		uintptr(windows.CurrentProcess()),
		0,
		uintptr(size),
		uintptr(windows.MEM_COMMIT|windows.MEM_RESERVE),
		uintptr(toNative(mode)),
		uintptr(unsafe.Pointer(&param)),
		1,
	)
	if r0 == 0 {
		return 0, os.NewSyscallError("VirtualAlloc2", e1)
	}
	return uint64(r0), nil
}

func (windowsPlatform) free(addr, _ uint64) error {
	// MEM_RELEASE frees the whole reservation and requires a zero size.
	err := windows.VirtualFree(uintptr(addr), 0, windows.MEM_RELEASE)
	if err != nil {
		return os.NewSyscallError("VirtualFree", err)
	}
	return nil
}

func (windowsPlatform) protect(addr, size uint64, mode Mode) (Mode, bool, error) {
	var oldProtect uint32
	err := windows.VirtualProtect(uintptr(addr), uintptr(size), toNative(mode), &oldProtect)
	if err != nil {
		return NoAccess, false, os.NewSyscallError("VirtualProtect", err)
	}
	return fromNative(oldProtect), true, nil
}

func (windowsPlatform) flush(addr, size uint64) error {
	r0, _, e1 := procFlushInstructionCache.Call(uintptr(windows.CurrentProcess()), uintptr(addr), uintptr(size))
	if r0 == 0 {
		return os.NewSyscallError("FlushInstructionCache", e1)
	}
	return nil
}

func (windowsPlatform) writable() func() {
	return func() {}
}
