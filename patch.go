package hostmem

import (
	"unsafe"

	"github.com/sirupsen/logrus"
)

const patchSize = 8

// PatchU64 stores value at addr and reports whether the 8 bytes changed.
//
// The page must already be writable. PatchU64 doesn't know the mode of the
// page so it always flushes the instruction cache for the patched bytes. The
// flush is free on amd64 and a few cache maintenance instructions on arm64,
// and a failure is logged rather than returned. Use Patch when the mode is
// known.
//
// Concurrent patches to the same address need external locking, and another
// core executing the patched bytes may observe a torn value.
func PatchU64(addr, value uint64) bool {
	changed := store(addr, value)
	// Failures are already logged and there's nothing else to report
	// through a bool.
	FlushInstructionCache(addr, patchSize)
	return changed
}

// Patch stores value at addr, a location in a page currently protected with
// mode, and reports whether the 8 bytes changed.
//
// If mode doesn't allow writes the page is made writable for the duration of
// the store and then set back to mode. Failing to make the page writable is
// returned as an error. Failing to restore mode panics, since the page would
// otherwise be left writable.
//
// The instruction cache is flushed only when mode is executable.
func Patch(addr, value uint64, mode Mode) (changed bool, err error) {
	if !mode.CanWrite() {
		_, _, err = Protect(addr, patchSize, mode.writable())
		if err != nil {
			return false, err
		}
		defer func() {
			if _, _, restoreErr := Protect(addr, patchSize, mode); restoreErr != nil {
				fatal(restoreErr, regionFields(addr, patchSize, mode))
			}
		}()
	}

	traceSite("before patch", addr, mode)
	changed = store(addr, value)
	traceSite("after patch", addr, mode)

	if mode.CanExecute() {
		err = FlushInstructionCache(addr, patchSize)
	}
	return changed, err
}

// store writes one uint64 with the thread allowed to write executable pages.
func store(addr, value uint64) bool {
	restore := host.writable()
	defer restore()

	p := (*uint64)(unsafe.Pointer(uintptr(addr)))
	changed := *p != value
	*p = value
	return changed
}

// traceSite logs the instructions at a patch site. Decoding is skipped unless
// debug logging is on.
func traceSite(msg string, addr uint64, mode Mode) {
	l := log()
	if !l.IsLevelEnabled(logrus.DebugLevel) || !mode.CanExecute() {
		return
	}

	asm, err := Disassemble(addr, patchSize)
	entry := l.WithFields(regionFields(addr, patchSize, mode))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.WithField("code", asm).Debug(msg)
}
