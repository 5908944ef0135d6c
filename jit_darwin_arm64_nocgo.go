//go:build darwin && arm64 && !cgo

package hostmem

// Writing to MAP_JIT pages needs pthread_jit_write_protect_np. Calling it
// without cgo means linknaming runtime.libcCall and importing the symbol with
// cgo_import_dynamic, both runtime internals this package doesn't depend on.
// Install a C compiler and build with CGO_ENABLED=1.
var host platform = darwin_arm64_requires_cgo_for_jit_write_protection
