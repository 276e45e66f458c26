package GeneralTree

type options struct {
	sequence int
	testing  bool
	index    bool
	sanitize bool
}

func defaults() options {
	return options{index: true, sanitize: true}
}

// Option configures a GeneralTree at construction.
type Option func(*options)

// WithSequence sets the first value of the id counter used in testing mode.
// Clear resets the counter to this value. Default 0.
func WithSequence(start int) Option {
	return func(o *options) {
		o.sequence = start
	}
}

// WithTesting makes generated ids the decimal values of a counter, "0", "1"...
// Otherwise generated ids are random UUIDs. Default false.
func WithTesting(on bool) Option {
	return func(o *options) {
		o.testing = on
	}
}

// WithIndex maintains an id to Node index that Find consults before searching.
// Default true.
func WithIndex(on bool) Option {
	return func(o *options) {
		o.index = on
	}
}

// WithSanitize gives an id to every Node without one during walks. Default
// true.
func WithSanitize(on bool) Option {
	return func(o *options) {
		o.sanitize = on
	}
}
