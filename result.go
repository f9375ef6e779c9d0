package atom

// Result pairs the value an update installs with a value derived while
// computing it.
type Result[T, R any] struct {
	newValue     T
	derivedValue R
}

// NewResult creates a Result.
func NewResult[T, R any](newValue T, derivedValue R) Result[T, R] {
	return Result[T, R]{newValue: newValue, derivedValue: derivedValue}
}

// NewValue returns the value to install.
func (r Result[T, R]) NewValue() T {
	return r.newValue
}

// DerivedValue returns the value derived alongside NewValue.
func (r Result[T, R]) DerivedValue() R {
	return r.derivedValue
}
