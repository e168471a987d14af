package binstream

// Option configures a Writer or Reader at construction time.
type Option func(*options)

type options struct {
	metrics *Metrics
}

// WithMetrics attaches a Metrics recorder to the codec. Without it the
// codec records nothing.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
