package hostmem

import (
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var logger atomic.Pointer[logrus.Logger]

func init() {
	logger.Store(logrus.StandardLogger())
}

// SetLogger replaces the logger used for diagnostics. The default is
// logrus.StandardLogger(). Passing nil restores the default.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger.Store(l)
}

func log() *logrus.Logger {
	return logger.Load()
}

func regionFields(addr, size uint64, mode Mode) logrus.Fields {
	return logrus.Fields{
		"addr": addrString(addr),
		"size": size,
		"mode": mode,
	}
}

func addrString(addr uint64) string {
	return fmt.Sprintf("%#x", addr)
}
