//go:build windows

package hostmem

import "golang.org/x/sys/windows"

var modeToPage = [...]uint32{
	NoAccess:         windows.PAGE_NOACCESS,
	Read:             windows.PAGE_READONLY,
	Write:            windows.PAGE_READWRITE,
	ReadWrite:        windows.PAGE_READWRITE,
	Execute:          windows.PAGE_EXECUTE,
	ExecuteRead:      windows.PAGE_EXECUTE_READ,
	ExecuteWrite:     windows.PAGE_EXECUTE_READWRITE,
	ExecuteReadWrite: windows.PAGE_EXECUTE_READWRITE,
}

// Windows has no write-only page protection, so Write and ExecuteWrite fold
// into the readable constants and never come back out of fromNative.
func toNative(mode Mode) uint32 {
	if !mode.Valid() {
		return windows.PAGE_NOACCESS
	}
	return modeToPage[mode]
}

// fromNative only recognizes the six plain PAGE_ constants. Modifiers such as
// PAGE_GUARD and the copy-on-write protections map to NoAccess.
func fromNative(protect uint32) Mode {
	switch protect {
	case windows.PAGE_NOACCESS:
		return NoAccess
	case windows.PAGE_READONLY:
		return Read
	case windows.PAGE_READWRITE:
		return ReadWrite
	case windows.PAGE_EXECUTE:
		return Execute
	case windows.PAGE_EXECUTE_READ:
		return ExecuteRead
	case windows.PAGE_EXECUTE_READWRITE:
		return ExecuteReadWrite
	default:
		return NoAccess
	}
}
