//go:build unix

package hostmem

import "golang.org/x/sys/unix"

var modeToProt = [...]int{
	NoAccess:         unix.PROT_NONE,
	Read:             unix.PROT_READ,
	Write:            unix.PROT_READ | unix.PROT_WRITE,
	ReadWrite:        unix.PROT_READ | unix.PROT_WRITE,
	Execute:          unix.PROT_EXEC,
	ExecuteRead:      unix.PROT_EXEC | unix.PROT_READ,
	ExecuteWrite:     unix.PROT_EXEC | unix.PROT_READ | unix.PROT_WRITE,
	ExecuteReadWrite: unix.PROT_EXEC | unix.PROT_READ | unix.PROT_WRITE,
}

// Write-only and write+exec pages don't exist on any supported kernel, so
// they are folded into their readable counterparts above and never come back
// out of fromNative.
func toNative(mode Mode) int {
	if !mode.Valid() {
		return unix.PROT_NONE
	}
	return modeToProt[mode]
}

func fromNative(prot int) Mode {
	switch prot {
	case unix.PROT_NONE:
		return NoAccess
	case unix.PROT_READ:
		return Read
	case unix.PROT_READ | unix.PROT_WRITE:
		return ReadWrite
	case unix.PROT_EXEC:
		return Execute
	case unix.PROT_EXEC | unix.PROT_READ:
		return ExecuteRead
	case unix.PROT_EXEC | unix.PROT_READ | unix.PROT_WRITE:
		return ExecuteReadWrite
	default:
		return NoAccess
	}
}
