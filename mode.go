package hostmem

import "fmt"

// Mode is a portable page protection.
type Mode uint8

const (
	NoAccess Mode = iota
	Read
	Write
	ReadWrite
	Execute
	ExecuteRead
	ExecuteWrite
	ExecuteReadWrite
)

var modeNames = [...]string{
	NoAccess:         "NoAccess",
	Read:             "Read",
	Write:            "Write",
	ReadWrite:        "ReadWrite",
	Execute:          "Execute",
	ExecuteRead:      "ExecuteRead",
	ExecuteWrite:     "ExecuteWrite",
	ExecuteReadWrite: "ExecuteReadWrite",
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m <= ExecuteReadWrite
}

func (m Mode) CanRead() bool {
	switch m {
	case Read, ReadWrite, ExecuteRead, ExecuteReadWrite:
		return true
	}
	return false
}

// CanWrite reports whether m allows writes. Write and ExecuteWrite count even
// though the OS maps them to their readable counterparts.
func (m Mode) CanWrite() bool {
	switch m {
	case Write, ReadWrite, ExecuteWrite, ExecuteReadWrite:
		return true
	}
	return false
}

func (m Mode) CanExecute() bool {
	switch m {
	case Execute, ExecuteRead, ExecuteWrite, ExecuteReadWrite:
		return true
	}
	return false
}

// writable returns the narrowest mode that keeps m's access and adds write.
func (m Mode) writable() Mode {
	if m.CanExecute() {
		return ExecuteReadWrite
	}
	return ReadWrite
}
