package atom

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// LogRecorder collects the lines LoggingObserver writes.
type LogRecorder struct {
	mu    sync.Mutex
	lines []string
}

// Lines returns the recorded lines as "SEVERITY message".
func (r *LogRecorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func (r *LogRecorder) String() string {
	return strings.Join(r.Lines(), "\n")
}

func (r *LogRecorder) sink(severity string) func(context.Context, string, ...any) {
	return func(_ context.Context, format string, a ...any) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.lines = append(r.lines, severity+" "+fmt.Sprintf(format, a...))
	}
}

// CaptureLogs redirects LoggingObserver output into a LogRecorder until the
// test finishes.
func CaptureLogs(t *testing.T) *LogRecorder {
	t.Helper()

	r := &LogRecorder{}
	debugf, warnf := logDebugf, logWarnf
	logDebugf, logWarnf = r.sink("DEBUG"), r.sink("WARNING")
	t.Cleanup(func() {
		logDebugf, logWarnf = debugf, warnf
	})
	return r
}
