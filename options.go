package carvecache

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures Cache construction.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging stays
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics collector. If nil is passed, metrics
// stay disabled.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
