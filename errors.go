package hostmem

import (
	"errors"

	goerrors "github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrZeroSize        = errors.New("size must be greater than zero")
	ErrBadAlignment    = errors.New("alignment must be zero or a power of two")
	ErrUnsupportedArch = errors.New("unsupported architecture")
	ErrBranchRange     = errors.New("branch target out of range")
)

// fatal stops the program when the kernel's view of a mapping no longer
// matches what the caller was promised, e.g. a page left writable after a
// patch. The panic value is a *goerrors.Error so the stack survives recover.
func fatal(err error, fields logrus.Fields) {
	wrapped := goerrors.Wrap(err, 1)
	log().WithFields(fields).
		WithField("error", err).
		WithField("stack", string(wrapped.Stack())).
		Error("memory invariant violated")
	panic(wrapped)
}
