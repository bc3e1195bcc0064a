package btree

type options struct {
	logger Logger
}

func defaultOptions() options {
	return options{
		logger: DiscardLogger{},
	}
}

// Option configures a Tree using the functional options pattern.
type Option func(*options)

// WithLogger routes structural events (root split, root collapse) to l.
// A nil logger keeps the default DiscardLogger.
func WithLogger(l Logger) Option {
	return func(opts *options) {
		if l != nil {
			opts.logger = l
		}
	}
}
