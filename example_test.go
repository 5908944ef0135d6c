package hostmem_test

import (
	"fmt"

	"github.com/pboyd/hostmem"
)

func ExamplePatch() {
	size := hostmem.PageSize()
	addr, err := hostmem.Allocate(0, size, hostmem.ReadWrite)
	if err != nil {
		panic(err)
	}
	defer hostmem.Free(addr, size)

	changed, _ := hostmem.Patch(addr, 0x1122334455667788, hostmem.ReadWrite)
	fmt.Println(changed)

	changed, _ = hostmem.Patch(addr, 0x1122334455667788, hostmem.ReadWrite)
	fmt.Println(changed)
	// Output:
	// true
	// false
}

func ExampleAllocateAligned() {
	const alignment = 64 * 1024

	size := 4 * hostmem.PageSize()
	addr, err := hostmem.AllocateAligned(0, size, hostmem.ReadWrite, alignment)
	if err != nil {
		panic(err)
	}
	defer hostmem.Free(addr, size)

	fmt.Println(addr%alignment == 0)
	// Output: true
}
