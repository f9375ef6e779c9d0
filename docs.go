/*
Package atom provides Atom, a lock-free cell holding a single immutable value
that is changed by applying pure functions with a compare-and-swap retry loop.

# Overview

An Atom always holds exactly one value. Readers call Get and never block.
Writers either install a value unconditionally with Reset, or describe the
change as a function of the current value with Update:

	counter := atom.New(0)
	counter.Update(func(n int) int { return n + 1 })

Update reads the current value, computes the next one and installs it only if
no other goroutine installed something in between. Otherwise it starts over
with the newer value. The update function may therefore run more than once
and must be free of side effects.

# Derived Values

UpdateWithResult lets the update function report something it learned while
computing the next state, such as whether an insert was a no-op:

	res := atom.UpdateWithResult(players, func(m map[string]Player) atom.Result[map[string]Player, bool] {
		if _, ok := m[id]; ok {
			return atom.NewResult(m, false)
		}
		next := maps.Clone(m)
		next[id] = p
		return atom.NewResult(next, true)
	})

Only the winning attempt's Result is returned. Results of attempts that lost
the race are discarded together with their candidate values.

# Values

The value type is assumed to be immutable. Maps, slices and pointers stored in
an Atom must be copied, not modified, by update functions. Two installs are
told apart by identity, not by equality, so T does not need to be comparable
and an update that returns an equal value still counts as a new install.

# Observability

An Observer can be attached at construction time to watch contention:

	metrics := atom.NewMetricsObserver()
	a := atom.New(state, atom.WithObserver(atom.Observers(
		metrics,
		atom.NewLoggingObserver(ctx, 8),
	)))

LoggingObserver writes through go.alis.build/alog. MetricsObserver keeps
counters that can be read with Stats.

# Liveness

Updates never block, but they are not starvation-free. Under sustained
contention a slow update function can keep losing to faster ones. There is no
backoff, timeout or cancellation; callers that need bounded latency must cap
retries themselves.

# Thread Safety

All Atom methods are safe for concurrent use. The zero value is an Atom
holding the zero value of T.
*/
package atom // import "go.alis.build/atom"
