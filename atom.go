package atom

import (
	"fmt"

	"go.uber.org/atomic"
)

// Atom is a lock-free cell holding a single value of type T.
//
// Every install stores a freshly allocated *T, and compare-and-swap compares
// those pointers. A candidate therefore only replaces the exact install it was
// computed from.
type Atom[T any] struct {
	_        nocmp
	ref      atomic.Pointer[T]
	observer Observer
}

// nocmp is an uncomparable type embedded to disallow == on Atoms.
type nocmp [0]func()

// New creates an Atom holding initial.
func New[T any](initial T, opts ...Option) *Atom[T] {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	a := &Atom[T]{observer: options.Observer}
	a.ref.Store(&initial)
	return a
}

// Get returns the current value.
func (a *Atom[T]) Get() T {
	return deref(a.ref.Load())
}

// Reset installs v unconditionally and returns it.
//
// Reset does not coordinate with concurrent updates: an update in flight may
// install over v, or v may replace the update's result.
func (a *Atom[T]) Reset(v T) T {
	a.ref.Store(&v)
	if a.observer != nil {
		a.observer.OnReset()
	}
	return v
}

// Update replaces the current value with f applied to it and returns the
// value it installed.
//
// f may be called several times when other goroutines update the Atom
// concurrently, so it must be pure. A panic in f propagates to the caller and
// leaves the Atom unchanged.
func (a *Atom[T]) Update(f func(T) T) T {
	next, _ := swap(a, func(v T) (T, struct{}) {
		return f(v), struct{}{}
	})
	return next
}

// UpdateWithResult is like Update, but f also returns a derived value
// describing the transition. Only the NewValue of the Result is installed; the
// Result of the attempt that won is returned as is.
//
// It is a function rather than a method because methods cannot declare type
// parameters.
func UpdateWithResult[T, R any](a *Atom[T], f func(T) Result[T, R]) Result[T, R] {
	next, derived := swap(a, func(v T) (T, R) {
		res := f(v)
		return res.newValue, res.derivedValue
	})
	return NewResult(next, derived)
}

// String formats the current value as Atom[value=...].
func (a *Atom[T]) String() string {
	return fmt.Sprintf("Atom[value=%v]", a.Get())
}

// swap runs the compare-and-swap loop until a candidate computed by f is
// installed over the reference it was computed from.
func swap[T, R any](a *Atom[T], f func(T) (T, R)) (T, R) {
	for attempt := 1; ; attempt++ {
		start := a.ref.Load()
		next, derived := f(deref(start))
		if a.ref.CompareAndSwap(start, &next) {
			if a.observer != nil {
				a.observer.OnSwap(attempt)
			}
			return next, derived
		}
		if a.observer != nil {
			a.observer.OnConflict(attempt)
		}
	}
}

// deref returns the zero value for the nil reference of a zero Atom.
func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
