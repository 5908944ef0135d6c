//go:build darwin && arm64 && cgo

package hostmem

/*
#cgo darwin LDFLAGS: -lpthread

#include <pthread.h>
#include <libkern/OSCacheControl.h>

static void jit_write_protect(int enable) {
	pthread_jit_write_protect_np(enable);
}

static void cache_invalidate(void *start, size_t len) {
	sys_icache_invalidate(start, len);
}
*/
import "C"

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// jitPlatform is the Apple Silicon variant. RWX pages must be mapped with
// MAP_JIT, and each thread has to turn off JIT write protection before storing
// to them.
type jitPlatform struct {
	posixPlatform
}

var host platform = jitPlatform{
	posixPlatform: posixPlatform{
		allocFlags: unix.MAP_JIT,
		execFlags:  unix.MAP_JIT,
	},
}

// writable pins the goroutine to its thread because the protection state
// belongs to the thread, not the goroutine.
func (jitPlatform) writable() func() {
	runtime.LockOSThread()
	C.jit_write_protect(C.int(0))
	return func() {
		C.jit_write_protect(C.int(1))
		runtime.UnlockOSThread()
	}
}

func cacheflush(addr, size uint64) error {
	C.cache_invalidate(unsafe.Pointer(uintptr(addr)), C.size_t(size))
	return nil
}
