package splitvec

type options struct {
	growth           Growth
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		growth:           DefaultGrowth(),
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a SplitVec.
type Option func(*options)

// WithGrowth sets the growth strategy used for every fragment allocated after
// construction. The zero Growth selects DefaultGrowth.
func WithGrowth(g Growth) Option {
	return func(o *options) {
		o.growth = g.normalize()
	}
}

// WithLogger sets the logger for fragment lifecycle events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified about fragment allocation,
// release, growth saturation and conversion.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
