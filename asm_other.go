//go:build !amd64 && !arm64

package hostmem

// EncodeBranch returns ErrUnsupportedArch on this architecture.
func EncodeBranch(site, target uint64) (uint64, error) {
	return 0, ErrUnsupportedArch
}

// Disassemble returns ErrUnsupportedArch on this architecture.
func Disassemble(addr, size uint64) (string, error) {
	return "", ErrUnsupportedArch
}
