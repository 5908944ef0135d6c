package hostmem

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/arch/x86/x86asm"
)

const (
	opcodeINT3 = 0xcc
	opcodeJMP  = 0xe9 // JMP rel32
)

// EncodeBranch returns the 8 bytes that, stored at site, jump to target. The
// result is meant for Patch or PatchU64.
//
// On amd64 it's a JMP rel32 padded with INT3, so target must be within 2GiB
// of site.
func EncodeBranch(site, target uint64) (uint64, error) {
	const instructionSize = 5 // 1 byte opcode + 4 byte address

	// Address to jump from
	src := site + instructionSize

	diff := int64(target - src)
	if diff < math.MinInt32 || diff > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %#x is %d bytes from %#x", ErrBranchRange, target, diff, site)
	}

	var buf [patchSize]byte
	buf[0] = opcodeJMP
	binary.LittleEndian.PutUint32(buf[1:], uint32(int32(diff)))

	// Pad the rest with INT3 to match what the compiler does
	for i := instructionSize; i < len(buf); i++ {
		buf[i] = opcodeINT3
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Disassemble decodes the instructions in [addr, addr+size). The range must
// be readable.
func Disassemble(addr, size uint64) (string, error) {
	var buf bytes.Buffer

	code := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), size)

	for i := 0; i < len(code); {
		instruction, err := x86asm.Decode(code[i:], 64)
		if err != nil {
			return buf.String(), fmt.Errorf("decode error at offset %d: %w", i, err)
		}
		fmt.Fprintf(&buf, "0x%08x\t%-20s\t%s\n", addr+uint64(i), hex.EncodeToString(code[i:i+instruction.Len]), instruction.String())

		i += instruction.Len
	}

	return buf.String(), nil
}
