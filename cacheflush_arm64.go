//go:build arm64 && cgo && unix && !darwin

package hostmem

import "unsafe"

/*
static void cacheflush(char *start, char *end) {
	__builtin___clear_cache(start, end);
}
*/
import "C"

func cacheflush(addr, size uint64) error {
	start := unsafe.Pointer(uintptr(addr))
	end := unsafe.Pointer(uintptr(addr + size))
	C.cacheflush((*C.char)(start), (*C.char)(end))
	return nil
}
