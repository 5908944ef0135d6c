package hostmem

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// platform is implemented once per host family. Exactly one implementation is
// compiled in and assigned to host.
type platform interface {
	allocate(hint, size uint64, mode Mode) (uint64, error)
	allocateAligned(hint, size uint64, mode Mode, alignment uint64) (uint64, error)
	free(addr, size uint64) error

	// protect returns the previous mode when the host can report it.
	protect(addr, size uint64, mode Mode) (prev Mode, known bool, err error)

	flush(addr, size uint64) error

	// writable allows the calling thread to write to executable pages until
	// the returned func is called.
	writable() (restore func())
}

// Allocate reserves and commits size bytes. A nonzero hint is a preference,
// not a requirement. size must be a multiple of the page size; it is not
// rounded.
//
// On POSIX hosts the mapping is always readable, writable and executable,
// whatever mode says, so later calls to Protect can't be refused for asking
// more than the original mapping allowed. Windows applies mode directly.
//
// On failure Allocate returns 0 and the error.
func Allocate(hint, size uint64, mode Mode) (uint64, error) {
	if size == 0 {
		return 0, ErrZeroSize
	}

	addr, err := host.allocate(hint, size, mode)
	if err != nil {
		log().WithFields(regionFields(hint, size, mode)).WithError(err).Error("allocate failed")
		return 0, fmt.Errorf("allocate %d bytes: %w", size, err)
	}
	return addr, nil
}

// AllocateAligned is like Allocate but the returned address is a multiple of
// alignment, which must be zero or a power of two. A zero hint starts the
// search at UserMin (the bottom of the 2GiB user space on 32-bit hosts);
// otherwise the hint is rounded up to the alignment.
//
// Unlike Allocate, mode is honored on every host.
func AllocateAligned(hint, size uint64, mode Mode, alignment uint64) (uint64, error) {
	if size == 0 {
		return 0, ErrZeroSize
	}
	if alignment != 0 && !isPowerOfTwo(alignment) {
		return 0, ErrBadAlignment
	}

	if hint == 0 {
		hint, _ = userWindow()
	} else {
		hint = alignUp(hint, alignment)
	}

	addr, err := host.allocateAligned(hint, size, mode, alignment)
	if err != nil {
		log().WithFields(regionFields(hint, size, mode)).
			WithField("alignment", alignment).
			WithError(err).
			Error("aligned allocate failed")
		return 0, fmt.Errorf("allocate %d bytes aligned to %#x: %w", size, alignment, err)
	}
	return addr, nil
}

// Free releases a range returned by Allocate or AllocateAligned.
func Free(addr, size uint64) error {
	if size == 0 {
		return ErrZeroSize
	}

	err := host.free(addr, size)
	if err != nil {
		log().WithFields(logrus.Fields{"addr": addrString(addr), "size": size}).WithError(err).Error("free failed")
		return fmt.Errorf("free %#x: %w", addr, err)
	}
	return nil
}

// Protect sets the protection of every page touched by [addr, addr+size).
//
// The previous mode is best effort: known is true only when the host reports
// it, which today means Windows. When the range covered pages with different
// protections, prev describes the first of them.
func Protect(addr, size uint64, mode Mode) (prev Mode, known bool, err error) {
	if size == 0 {
		return NoAccess, false, ErrZeroSize
	}

	start, length := pageSpan(addr, size)
	prev, known, err = host.protect(start, length, mode)
	if err != nil {
		log().WithFields(regionFields(start, length, mode)).WithError(err).Error("protect failed")
		return NoAccess, false, fmt.Errorf("protect %#x as %v: %w", addr, mode, err)
	}
	return prev, known, nil
}

// FlushInstructionCache makes instruction fetch observe writes to
// [addr, addr+size). It does nothing on hosts that keep instruction and data
// caches coherent, such as amd64.
func FlushInstructionCache(addr, size uint64) error {
	if size == 0 {
		return nil
	}

	err := host.flush(addr, size)
	if err != nil {
		log().WithFields(logrus.Fields{"addr": addrString(addr), "size": size}).WithError(err).Error("instruction cache flush failed")
		return fmt.Errorf("flush %#x: %w", addr, err)
	}
	return nil
}
