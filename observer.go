package atom

import (
	"context"

	"go.alis.build/alog"
	"go.uber.org/atomic"
)

// Observer is notified as Atom operations complete.
// Methods run synchronously on the goroutine performing the operation, so they
// must be cheap and safe for concurrent use. They must not update the Atom
// they observe.
type Observer interface {
	// OnConflict is called when attempt lost its compare-and-swap and the
	// update is about to retry.
	OnConflict(attempt int)

	// OnSwap is called after an update installed its value. attempts counts
	// every try including the successful one.
	OnSwap(attempts int)

	// OnReset is called after Reset installed a value.
	OnReset()
}

// Observers combines several observers into one, notifying them in order.
// Nil observers are skipped.
func Observers(observers ...Observer) Observer {
	var m multiObserver
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	}
	return m
}

type multiObserver []Observer

func (m multiObserver) OnConflict(attempt int) {
	for _, o := range m {
		o.OnConflict(attempt)
	}
}

func (m multiObserver) OnSwap(attempts int) {
	for _, o := range m {
		o.OnSwap(attempts)
	}
}

func (m multiObserver) OnReset() {
	for _, o := range m {
		o.OnReset()
	}
}

// NoOpObserver is an Observer implementation that does nothing
type NoOpObserver struct{}

func (NoOpObserver) OnConflict(int) {}
func (NoOpObserver) OnSwap(int)     {}
func (NoOpObserver) OnReset()       {}

// Log sinks used by LoggingObserver.
var (
	logDebugf = alog.Debugf
	logWarnf  = alog.Warnf
)

// LoggingObserver logs Atom activity using alog.
// Conflicts and resets are logged at DEBUG. An update that needed at least the
// warnAfter passed to NewLoggingObserver attempts is logged at WARNING.
// A nil *LoggingObserver logs nothing.
type LoggingObserver struct {
	ctx       context.Context
	warnAfter int
}

// NewLoggingObserver creates a LoggingObserver that logs with ctx.
// A warnAfter of zero or less disables the contention warning.
func NewLoggingObserver(ctx context.Context, warnAfter int) *LoggingObserver {
	if ctx == nil {
		ctx = context.Background()
	}
	return &LoggingObserver{ctx: ctx, warnAfter: warnAfter}
}

func (l *LoggingObserver) OnConflict(attempt int) {
	if l == nil {
		return
	}
	logDebugf(l.ctx, "atom: compare-and-swap lost on attempt %d, retrying", attempt)
}

func (l *LoggingObserver) OnSwap(attempts int) {
	if l == nil {
		return
	}
	if l.warnAfter > 0 && attempts >= l.warnAfter {
		logWarnf(l.ctx, "atom: update needed %d attempts to install, the atom is heavily contended", attempts)
	}
}

func (l *LoggingObserver) OnReset() {
	if l == nil {
		return
	}
	logDebugf(l.ctx, "atom: value reset")
}

// Stats is a point-in-time copy of the counters of a MetricsObserver.
type Stats struct {
	// Swaps is the number of updates that installed a value.
	Swaps int64
	// Conflicts is the number of attempts that lost their compare-and-swap.
	Conflicts int64
	// Resets is the number of calls to Reset.
	Resets int64
	// MaxAttempts is the largest number of attempts a single update needed.
	MaxAttempts int64
}

// MetricsObserver counts Atom activity. It is safe to share between Atoms.
// A nil *MetricsObserver counts nothing and reports zero Stats.
type MetricsObserver struct {
	swaps       atomic.Int64
	conflicts   atomic.Int64
	resets      atomic.Int64
	maxAttempts atomic.Int64
}

// NewMetricsObserver creates a new MetricsObserver
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

func (m *MetricsObserver) OnConflict(int) {
	if m == nil {
		return
	}
	m.conflicts.Inc()
}

func (m *MetricsObserver) OnSwap(attempts int) {
	if m == nil {
		return
	}
	m.swaps.Inc()
	n := int64(attempts)
	for {
		cur := m.maxAttempts.Load()
		if n <= cur || m.maxAttempts.CompareAndSwap(cur, n) {
			return
		}
	}
}

func (m *MetricsObserver) OnReset() {
	if m == nil {
		return
	}
	m.resets.Inc()
}

// Stats returns the current counters. Counters are read one at a time, so a
// snapshot taken under load may mix values from different instants.
func (m *MetricsObserver) Stats() Stats {
	if m == nil {
		return Stats{}
	}
	return Stats{
		Swaps:       m.swaps.Load(),
		Conflicts:   m.conflicts.Load(),
		Resets:      m.resets.Load(),
		MaxAttempts: m.maxAttempts.Load(),
	}
}

// Reset zeroes all counters.
func (m *MetricsObserver) Reset() {
	if m == nil {
		return
	}
	m.swaps.Store(0)
	m.conflicts.Store(0)
	m.resets.Store(0)
	m.maxAttempts.Store(0)
}
