//go:build !amd64 && !arm64

package hostmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedArch(t *testing.T) {
	_, err := EncodeBranch(0x1000, 0x2000)
	assert.ErrorIs(t, err, ErrUnsupportedArch)

	_, err = Disassemble(0x1000, 8)
	assert.ErrorIs(t, err, ErrUnsupportedArch)
}
