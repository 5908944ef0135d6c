//go:build !unix && !windows

package hostmem

import "errors"

// unsupportedPlatform covers ports without virtual memory calls, such as
// js/wasm and plan9. Every operation fails.
type unsupportedPlatform struct{}

var host platform = unsupportedPlatform{}

func (unsupportedPlatform) allocate(uint64, uint64, Mode) (uint64, error) {
	return 0, errors.ErrUnsupported
}

func (unsupportedPlatform) allocateAligned(uint64, uint64, Mode, uint64) (uint64, error) {
	return 0, errors.ErrUnsupported
}

func (unsupportedPlatform) free(uint64, uint64) error {
	return errors.ErrUnsupported
}

func (unsupportedPlatform) protect(uint64, uint64, Mode) (Mode, bool, error) {
	return NoAccess, false, errors.ErrUnsupported
}

func (unsupportedPlatform) flush(uint64, uint64) error {
	return nil
}

func (unsupportedPlatform) writable() func() {
	return func() {}
}
