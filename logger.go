package storage

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs the diagnostic logger used by every operation. Failure
// paths emit a non-fatal warning here in addition to the returned error; the
// warnings are informational, never control flow. Passing nil restores the
// default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

func warn(msg, path string, err error) {
	logger.Load().Warn(msg, zap.String("path", path), zap.Error(err))
}
