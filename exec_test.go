//go:build amd64 || arm64

package hostmem

import (
	"testing"
	"unsafe"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// call runs the code at addr as a func() int.
//
// The idea is to convince Go that a pointer to the entry address is really a
// function value.
func call(addr uint64) int {
	entry := uintptr(addr)
	ref := &entry
	fn := *(*func() int)(unsafe.Pointer(&ref))
	return fn()
}

func codePage(t *testing.T) uint64 {
	t.Helper()
	return allocate(t, PageSize(), ExecuteReadWrite)
}

func TestPatch_Execute(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	addr := codePage(t)

	changed, err := Patch(addr, returnStub(42), ExecuteReadWrite)
	require.NoError(err)
	assert.True(changed)
	assert.Equal(42, call(addr))

	changed, err = Patch(addr, returnStub(7), ExecuteReadWrite)
	require.NoError(err)
	assert.True(changed)
	assert.Equal(7, call(addr))

	changed, err = Patch(addr, returnStub(7), ExecuteReadWrite)
	require.NoError(err)
	assert.False(changed)
	assert.Equal(7, call(addr))
}

func TestPatchU64_Execute(t *testing.T) {
	assert := assert.New(t)

	addr := codePage(t)

	assert.True(PatchU64(addr, returnStub(1)))
	assert.Equal(1, call(addr))

	assert.True(PatchU64(addr, returnStub(2)))
	assert.Equal(2, call(addr))
}

func TestEncodeBranch_Execute(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	addr := codePage(t)
	target := addr + 64

	require.True(PatchU64(addr, returnStub(1)))
	require.True(PatchU64(target, returnStub(2)))
	assert.Equal(1, call(addr))

	branch, err := EncodeBranch(addr, target)
	require.NoError(err)
	_, err = Patch(addr, branch, ExecuteReadWrite)
	require.NoError(err)
	assert.Equal(2, call(addr))

	// Patching the target is seen through the branch.
	_, err = Patch(target, returnStub(3), ExecuteReadWrite)
	require.NoError(err)
	assert.Equal(3, call(addr))

	_, err = Patch(addr, returnStub(4), ExecuteReadWrite)
	require.NoError(err)
	assert.Equal(4, call(addr))
}

func TestPatch_Trace(t *testing.T) {
	assert := assert.New(t)
	hook := captureLog(t)
	log().SetLevel(logrus.DebugLevel)

	addr := allocate(t, PageSize(), ExecuteReadWrite)
	_, err := Patch(addr, returnStub(1), ExecuteReadWrite)
	assert.NoError(err)

	var messages []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.DebugLevel {
			messages = append(messages, entry.Message)
			assert.Contains(entry.Data, "code")
		}
	}
	assert.Equal([]string{"before patch", "after patch"}, messages)
}
