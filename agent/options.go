package agent

// DefaultMaxTurns is the turn ceiling applied when no option overrides it.
// A turn is one model round trip; tool-heavy conversations commonly take
// several, but an unbounded loop usually means the model is stuck.
const DefaultMaxTurns = 50

// Options configures a Loop.
type Options struct {
	// MaxTurns caps the number of model round trips in a single Run.
	// Zero or negative means DefaultMaxTurns.
	MaxTurns int
}

// Option mutates Options.
type Option func(*Options)

// WithMaxTurns overrides the turn ceiling for a single Run.
func WithMaxTurns(n int) Option {
	return func(o *Options) {
		o.MaxTurns = n
	}
}

// ApplyOptions folds opts over the defaults.
func ApplyOptions(opts ...Option) Options {
	o := Options{MaxTurns: DefaultMaxTurns}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxTurns <= 0 {
		o.MaxTurns = DefaultMaxTurns
	}
	return o
}
