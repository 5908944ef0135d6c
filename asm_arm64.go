package hostmem

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"unsafe"

	"golang.org/x/arch/arm64/arm64asm"
)

const (
	// -----------------------------------
	// | 000101 | ... 26 bit address ... |
	// -----------------------------------
	_B = uint32(5 << 26)

	_NOP = uint32(0xd503201f)
)

// EncodeBranch returns the 8 bytes that, stored at site, jump to target. The
// result is meant for Patch or PatchU64.
//
// On arm64 it's a B followed by a NOP, so target must be within 128MiB of
// site and both must be 4 byte aligned.
func EncodeBranch(site, target uint64) (uint64, error) {
	if site&3 != 0 || target&3 != 0 {
		return 0, fmt.Errorf("%w: %#x -> %#x is not instruction aligned", ErrBranchRange, site, target)
	}

	offset := int64(target - site)
	if offset < -(1<<27) || offset >= (1<<27) {
		return 0, fmt.Errorf("%w: B target %d bytes away exceeds 128MiB", ErrBranchRange, offset)
	}

	inst := _B | (uint32(offset>>2) & (1<<26 - 1))
	return uint64(_NOP)<<32 | uint64(inst), nil
}

// Disassemble decodes the instructions in [addr, addr+size). The range must
// be readable. Words that don't decode are shown as "?".
func Disassemble(addr, size uint64) (string, error) {
	var buf bytes.Buffer

	code := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), size)

	for i := 0; i < len(code)&^3; i += 4 {
		var asm string
		instruction, err := arm64asm.Decode(code[i:])
		if err == nil {
			asm = instruction.String()
		} else {
			asm = "?"
		}
		fmt.Fprintf(&buf, "0x%08x\t%-20s\t%s\n", addr+uint64(i), hex.EncodeToString(code[i:i+4]), asm)
	}

	return buf.String(), nil
}
