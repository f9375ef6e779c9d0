package atom

// Options configures an Atom.
type Options struct {
	// Observer is notified of swaps, conflicts and resets. Nil disables
	// notifications.
	Observer Observer
}

// Option sets a field on Options.
type Option func(*Options)

// WithObserver attaches an Observer to the Atom.
// Use Observers to attach more than one. Custom observers stored as nil
// pointers must tolerate calls on a nil receiver, as the observers in this
// package do.
func WithObserver(observer Observer) Option {
	return func(opts *Options) {
		opts.Observer = observer
	}
}
