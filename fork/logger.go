package fork

import (
	"sync"

	"go.uber.org/zap"
)

var (
	log      *zap.Logger
	logOnce  sync.Once
	logSetMu sync.Mutex
)

// SetLogger installs a logger for map parsing diagnostics. By default the
// package is silent.
func SetLogger(l *zap.Logger) {
	logSetMu.Lock()
	log = l
	logSetMu.Unlock()
}

func logger() *zap.Logger {
	logOnce.Do(func() {
		if log == nil {
			log = zap.NewNop()
		}
	})
	return log
}
