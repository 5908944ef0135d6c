// Portable virtual memory primitives for code generators and emulators.
//
// hostmem hides the differences between the Windows VirtualAlloc family and
// POSIX mmap/mprotect behind a small set of address-based calls. Callers work
// with raw addresses, sizes and a portable [Mode]; nothing is tracked between
// calls.
//
// The package is meant for programs that build machine code at runtime or map
// another machine's address space into their own. It can:
//   - Reserve and commit a range, optionally aligned, in one call
//   - Change the protection of a mapped range
//   - Patch 8 bytes of possibly executable memory and make the write visible
//     to instruction fetch
//   - Encode a branch that fits in a single 8 byte patch
//
// Limitations:
//   - POSIX can't report the previous protection of a range, so [Protect]
//     only returns it on Windows
//   - Patches are not atomic with respect to other cores executing the same
//     code. Serialize patches to a region yourself.
//   - macOS on arm64 needs cgo for the JIT write-protect toggle
//   - [AllocateAligned] searches the default 2GiB user space on 32-bit hosts,
//     not [UserMin] to [UserMax]
package hostmem
