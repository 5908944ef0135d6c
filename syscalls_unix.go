//go:build unix

package hostmem

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// posixPlatform is the mmap/mprotect implementation shared by every Unix
// host. allocFlags are added to every Allocate mapping and execFlags to
// AllocateAligned mappings with an executable mode.
type posixPlatform struct {
	allocFlags int
	execFlags  int
}

const mmapRWX = unix.PROT_READ | unix.PROT_WRITE | unix.PROT_EXEC

func (p posixPlatform) allocate(hint, size uint64, _ Mode) (uint64, error) {
	return mmap(hint, size, mmapRWX, p.allocFlags)
}

func (p posixPlatform) allocateAligned(hint, size uint64, mode Mode, alignment uint64) (uint64, error) {
	prot := toNative(mode)
	flags := 0
	if mode.CanExecute() {
		flags = p.execFlags
	}

	addr, err := mmap(hint, size, prot, flags)
	if err != nil {
		return 0, err
	}
	if alignment == 0 || addr%alignment == 0 {
		return addr, nil
	}

	// The kernel ignored the hint. Map enough to be sure an aligned block
	// fits, then cut off both ends.
	mustMunmap(addr, size)

	padded := size + alignment
	addr, err = mmap(hint, padded, prot, flags)
	if err != nil {
		return 0, err
	}

	base := alignUp(addr, alignment)
	if head := base - addr; head > 0 {
		mustMunmap(addr, head)
	}
	if tail := addr + padded - (base + size); tail > 0 {
		mustMunmap(base+size, tail)
	}
	return base, nil
}

func (posixPlatform) free(addr, size uint64) error {
	return munmap(addr, size)
}

func (posixPlatform) protect(addr, size uint64, mode Mode) (Mode, bool, error) {
	region := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), size)
	err := unix.Mprotect(region, toNative(mode))
	if err != nil {
		return NoAccess, false, os.NewSyscallError("mprotect", err)
	}
	return NoAccess, false, nil
}

func (posixPlatform) flush(addr, size uint64) error {
	return cacheflush(addr, size)
}

func (posixPlatform) writable() func() {
	return func() {}
}

func mmap(hint, size uint64, prot, flags int) (uint64, error) {
	ptr, err := unix.MmapPtr(-1, 0, unsafe.Pointer(uintptr(hint)), uintptr(size), prot, unix.MAP_PRIVATE|unix.MAP_ANON|flags)
	if err != nil {
		return 0, os.NewSyscallError("mmap", err)
	}
	return uint64(uintptr(ptr)), nil
}

func munmap(addr, size uint64) error {
	err := unix.MunmapPtr(unsafe.Pointer(uintptr(addr)), uintptr(size))
	if err != nil {
		return os.NewSyscallError("munmap", err)
	}
	return nil
}

// mustMunmap releases part of a mapping this package just created. If that
// fails the address space no longer looks like what was requested.
func mustMunmap(addr, size uint64) {
	if err := munmap(addr, size); err != nil {
		fatal(err, regionFields(addr, size, NoAccess))
	}
}
